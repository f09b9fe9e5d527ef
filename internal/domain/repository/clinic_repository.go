package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	FindActive(db *gorm.DB) ([]entity.Clinic, error)
	// FindActiveByID preloads the clinic's active gallery images and team
	// members in display order.
	FindActiveByID(db *gorm.DB, id uint) (*entity.Clinic, error)
}
