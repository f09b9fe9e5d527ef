package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type WhyChooseUsRepository interface {
	FindActive(db *gorm.DB) ([]entity.WhyChooseUs, error)
	FindByID(db *gorm.DB, id uint) (*entity.WhyChooseUs, error)
	// CountActiveExcluding counts active rows other than excludeID, locking
	// them against concurrent activations where the dialect supports it.
	// Pass 0 to count all active rows.
	CountActiveExcluding(db *gorm.DB, excludeID uint) (int64, error)
	Create(db *gorm.DB, benefit *entity.WhyChooseUs) error
	Save(db *gorm.DB, benefit *entity.WhyChooseUs) error
}
