package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type aboutUsRepository struct{}

func NewAboutUsRepository() domainRepo.AboutUsRepository {
	return &aboutUsRepository{}
}

func (r *aboutUsRepository) FindActiveByPageType(db *gorm.DB, pageType entity.AboutUsPageType) (*entity.AboutUs, error) {
	var about entity.AboutUs
	err := db.Where("page_type = ? AND is_active = ?", pageType, true).First(&about).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &about, nil
}

func (r *aboutUsRepository) FindActiveTeamMembers(db *gorm.DB) ([]entity.TeamMember, error) {
	var members []entity.TeamMember
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *aboutUsRepository) FindActivePhilosophyHighlights(db *gorm.DB) ([]entity.PhilosophyHighlight, error) {
	var highlights []entity.PhilosophyHighlight
	err := db.Where("is_active = ?", true).Order("sort_order").Find(&highlights).Error
	if err != nil {
		return nil, err
	}
	return highlights, nil
}
