package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Leaf listing repositories: active-filtered, display-ordered reads only.

type TreatmentFAQRepository interface {
	FindActive(db *gorm.DB) ([]entity.TreatmentFAQ, error)
}

type LandingFAQRepository interface {
	FindActive(db *gorm.DB) ([]entity.LandingFAQ, error)
}

type SkinConcernRepository interface {
	FindActive(db *gorm.DB) ([]entity.SkinConcern, error)
}

type TestimonialRepository interface {
	FindActive(db *gorm.DB) ([]entity.Testimonial, error)
}

type ResultRepository interface {
	FindActive(db *gorm.DB) ([]entity.Result, error)
	// FindLandingResult picks the featured result, falling back to any
	// active one; nil when none exist.
	FindLandingResult(db *gorm.DB) (*entity.Result, error)
}
