package repository

import (
	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type offerRepository struct{}

func NewOfferRepository() domainRepo.OfferRepository {
	return &offerRepository{}
}

func (r *offerRepository) FindActive(db *gorm.DB, clinicID *uint) ([]entity.Offer, error) {
	q := db.Where("is_active = ?", true)
	if clinicID != nil {
		q = q.Where("clinic_id = ?", *clinicID)
	}
	var offers []entity.Offer
	err := q.Preload("Clinic").Order("sort_order, created_at DESC").Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}
