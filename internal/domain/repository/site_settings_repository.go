package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SiteSettingsRepository interface {
	// Find returns the singleton row, or nil when none exists yet.
	Find(db *gorm.DB) (*entity.SiteSettings, error)
	Count(db *gorm.DB) (int64, error)
	Create(db *gorm.DB, settings *entity.SiteSettings) error
	Save(db *gorm.DB, settings *entity.SiteSettings) error
}
