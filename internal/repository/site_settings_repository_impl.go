package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type siteSettingsRepository struct{}

func NewSiteSettingsRepository() domainRepo.SiteSettingsRepository {
	return &siteSettingsRepository{}
}

func (r *siteSettingsRepository) Find(db *gorm.DB) (*entity.SiteSettings, error) {
	var settings entity.SiteSettings
	err := db.Order("id").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *siteSettingsRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.SiteSettings{}).Count(&count).Error
	return count, err
}

func (r *siteSettingsRepository) Create(db *gorm.DB, settings *entity.SiteSettings) error {
	return db.Create(settings).Error
}

func (r *siteSettingsRepository) Save(db *gorm.DB, settings *entity.SiteSettings) error {
	return db.Save(settings).Error
}
