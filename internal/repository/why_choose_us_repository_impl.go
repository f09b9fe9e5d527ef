package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type whyChooseUsRepository struct{}

func NewWhyChooseUsRepository() domainRepo.WhyChooseUsRepository {
	return &whyChooseUsRepository{}
}

func (r *whyChooseUsRepository) FindActive(db *gorm.DB) ([]entity.WhyChooseUs, error) {
	var benefits []entity.WhyChooseUs
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&benefits).Error
	if err != nil {
		return nil, err
	}
	return benefits, nil
}

func (r *whyChooseUsRepository) FindByID(db *gorm.DB, id uint) (*entity.WhyChooseUs, error) {
	var benefit entity.WhyChooseUs
	err := db.Where("id = ?", id).First(&benefit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &benefit, nil
}

// CountActiveExcluding selects the active rows instead of COUNT(*) so the
// Postgres FOR UPDATE lock can hold them against a concurrent activation.
// sqlite has no row locks; there the transaction alone serializes writers.
func (r *whyChooseUsRepository) CountActiveExcluding(db *gorm.DB, excludeID uint) (int64, error) {
	q := db.Model(&entity.WhyChooseUs{}).Where("is_active = ?", true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var ids []uint
	if err := q.Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *whyChooseUsRepository) Create(db *gorm.DB, benefit *entity.WhyChooseUs) error {
	return db.Create(benefit).Error
}

func (r *whyChooseUsRepository) Save(db *gorm.DB, benefit *entity.WhyChooseUs) error {
	return db.Save(benefit).Error
}
