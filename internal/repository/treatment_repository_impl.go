package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentCategoryRepository struct{}

func NewTreatmentCategoryRepository() domainRepo.TreatmentCategoryRepository {
	return &treatmentCategoryRepository{}
}

func (r *treatmentCategoryRepository) FindActive(db *gorm.DB) ([]entity.TreatmentCategory, error) {
	var categories []entity.TreatmentCategory
	err := db.Where("is_active = ?", true).Order("sort_order, id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *treatmentCategoryRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.TreatmentCategory, error) {
	var category entity.TreatmentCategory
	err := db.Where("id = ? AND is_active = ?", id, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

// pricedAtClinic narrows a treatment query to treatments with at least one
// active pricing row at the given clinic.
func pricedAtClinic(db *gorm.DB, q *gorm.DB, clinicID uint) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).
		Model(&entity.TreatmentClinicPricing{}).
		Select("treatment_id").
		Where("clinic_id = ? AND is_active = ?", clinicID, true)
	return q.Where("treatments.id IN (?)", sub)
}

func pricingPreload(clinicID *uint) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("is_active = ?", true).Order("sort_order")
		if clinicID != nil {
			tx = tx.Where("clinic_id = ?", *clinicID)
		}
		return tx
	}
}

func (r *treatmentRepository) FindActiveByCategory(db *gorm.DB, categoryID uint, clinicID *uint) ([]entity.Treatment, error) {
	q := db.Where("category_id = ? AND is_active = ?", categoryID, true)
	if clinicID != nil {
		q = pricedAtClinic(db, q, *clinicID)
	}
	var treatments []entity.Treatment
	err := q.Preload("ClinicPricing", pricingPreload(clinicID)).
		Preload("ClinicPricing.Clinic").
		Order("sort_order, id").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) FindFeatured(db *gorm.DB, clinicID *uint) ([]entity.Treatment, error) {
	q := db.Where("is_active = ? AND is_featured = ?", true, true)
	if clinicID != nil {
		q = pricedAtClinic(db, q, *clinicID)
	}
	var treatments []entity.Treatment
	err := q.Preload("ClinicPricing", pricingPreload(clinicID)).
		Preload("ClinicPricing.Clinic").
		Order("sort_order, id").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := db.Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) FindByClinic(db *gorm.DB, clinicID uint) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	err := db.Distinct("treatments.*").
		Joins("JOIN treatment_clinic_pricing tcp ON tcp.treatment_id = treatments.id").
		Where("tcp.clinic_id = ? AND tcp.is_active = ? AND treatments.is_active = ?", clinicID, true, true).
		Order("treatments.sort_order, treatments.name").
		Preload("ClinicPricing", pricingPreload(&clinicID)).
		Preload("ClinicPricing.Clinic").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) CountActiveByCategory(db *gorm.DB, categoryID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Treatment{}).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

func (r *treatmentRepository) HasActivePricing(db *gorm.DB, treatmentID, clinicID uint) (bool, error) {
	var count int64
	err := db.Model(&entity.TreatmentClinicPricing{}).
		Where("treatment_id = ? AND clinic_id = ? AND is_active = ?", treatmentID, clinicID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *treatmentRepository) FindActiveBenefits(db *gorm.DB, treatmentID uint) ([]entity.TreatmentBenefit, error) {
	var benefits []entity.TreatmentBenefit
	// treatment_id IS NOT NULL is implied by the equality match, which also
	// keeps orphaned pre-migration rows out.
	err := db.Where("treatment_id = ? AND is_active = ?", treatmentID, true).
		Order("sort_order").
		Find(&benefits).Error
	if err != nil {
		return nil, err
	}
	return benefits, nil
}

func (r *treatmentRepository) FindActiveSteps(db *gorm.DB, treatmentID uint) ([]entity.TreatmentStep, error) {
	var steps []entity.TreatmentStep
	err := db.Where("treatment_id = ? AND is_active = ?", treatmentID, true).
		Order("sort_order, step_number").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *treatmentRepository) FindActivePricing(db *gorm.DB, treatmentID uint, clinicID *uint) ([]entity.TreatmentClinicPricing, error) {
	q := db.Joins("JOIN clinics ON clinics.id = treatment_clinic_pricing.clinic_id").
		Where("treatment_clinic_pricing.treatment_id = ? AND treatment_clinic_pricing.is_active = ?", treatmentID, true)
	if clinicID != nil {
		q = q.Where("treatment_clinic_pricing.clinic_id = ?", *clinicID)
	}
	var pricing []entity.TreatmentClinicPricing
	err := q.Order("treatment_clinic_pricing.sort_order, clinics.name").
		Preload("Clinic").
		Find(&pricing).Error
	if err != nil {
		return nil, err
	}
	return pricing, nil
}

type treatmentFAQRepository struct{}

func NewTreatmentFAQRepository() domainRepo.TreatmentFAQRepository {
	return &treatmentFAQRepository{}
}

func (r *treatmentFAQRepository) FindActive(db *gorm.DB) ([]entity.TreatmentFAQ, error) {
	var faqs []entity.TreatmentFAQ
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}
