package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OfferRepository interface {
	// FindActive returns active offers ordered by sort_order then newest
	// first, optionally restricted to one clinic.
	FindActive(db *gorm.DB, clinicID *uint) ([]entity.Offer, error)
}
