package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) FindActive(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Where("is_active = ?", true).Order("sort_order, name").Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", true).Order("sort_order")
	}).Preload("TeamMembers", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", true).Order("sort_order, name")
	}).Where("id = ? AND is_active = ?", id, true).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}
