package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type TreatmentCategoryRepository interface {
	FindActive(db *gorm.DB) ([]entity.TreatmentCategory, error)
	FindActiveByID(db *gorm.DB, id uint) (*entity.TreatmentCategory, error)
}

// TreatmentRepository reads treatments with their clinic-scoped pricing.
// Every query filters is_active and orders by sort_order; a non-nil clinicID
// restricts results to treatments priced at that clinic.
type TreatmentRepository interface {
	FindActiveByCategory(db *gorm.DB, categoryID uint, clinicID *uint) ([]entity.Treatment, error)
	FindFeatured(db *gorm.DB, clinicID *uint) ([]entity.Treatment, error)
	FindActiveByID(db *gorm.DB, id uint) (*entity.Treatment, error)
	FindByClinic(db *gorm.DB, clinicID uint) ([]entity.Treatment, error)
	CountActiveByCategory(db *gorm.DB, categoryID uint) (int64, error)
	HasActivePricing(db *gorm.DB, treatmentID, clinicID uint) (bool, error)
	FindActiveBenefits(db *gorm.DB, treatmentID uint) ([]entity.TreatmentBenefit, error)
	FindActiveSteps(db *gorm.DB, treatmentID uint) ([]entity.TreatmentStep, error)
	FindActivePricing(db *gorm.DB, treatmentID uint, clinicID *uint) ([]entity.TreatmentClinicPricing, error)
}
