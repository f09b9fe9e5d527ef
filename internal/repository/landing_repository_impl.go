package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type landingBgRepository struct{}

func NewLandingBgRepository() domainRepo.LandingBgRepository {
	return &landingBgRepository{}
}

func (r *landingBgRepository) FindActive(db *gorm.DB) (*entity.LandingPageBg, error) {
	var bg entity.LandingPageBg
	err := db.Preload("CarouselImages", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", true).Order("sort_order")
	}).Where("is_active = ?", true).First(&bg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bg, nil
}
