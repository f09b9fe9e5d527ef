package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type landingFAQRepository struct{}

func NewLandingFAQRepository() domainRepo.LandingFAQRepository {
	return &landingFAQRepository{}
}

func (r *landingFAQRepository) FindActive(db *gorm.DB) ([]entity.LandingFAQ, error) {
	var faqs []entity.LandingFAQ
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

type skinConcernRepository struct{}

func NewSkinConcernRepository() domainRepo.SkinConcernRepository {
	return &skinConcernRepository{}
}

func (r *skinConcernRepository) FindActive(db *gorm.DB) ([]entity.SkinConcern, error) {
	var concerns []entity.SkinConcern
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&concerns).Error
	if err != nil {
		return nil, err
	}
	return concerns, nil
}

type testimonialRepository struct{}

func NewTestimonialRepository() domainRepo.TestimonialRepository {
	return &testimonialRepository{}
}

func (r *testimonialRepository) FindActive(db *gorm.DB) ([]entity.Testimonial, error) {
	var testimonials []entity.Testimonial
	err := db.Where("is_active = ?", true).Order("sort_order, created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

type resultRepository struct{}

func NewResultRepository() domainRepo.ResultRepository {
	return &resultRepository{}
}

func (r *resultRepository) FindActive(db *gorm.DB) ([]entity.Result, error) {
	var results []entity.Result
	err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindLandingResult(db *gorm.DB) (*entity.Result, error) {
	var result entity.Result
	err := db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		First(&result).Error
	if err == nil {
		return &result, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	// No featured result; fall back to any active one.
	err = db.Where("is_active = ?", true).Order("created_at DESC").First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
