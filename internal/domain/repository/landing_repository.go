package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type LandingBgRepository interface {
	// FindActive returns the active background with its active carousel
	// images ordered, or nil when none is configured.
	FindActive(db *gorm.DB) (*entity.LandingPageBg, error)
}
