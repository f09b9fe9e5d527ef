package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AboutUsRepository interface {
	FindActiveByPageType(db *gorm.DB, pageType entity.AboutUsPageType) (*entity.AboutUs, error)
	FindActiveTeamMembers(db *gorm.DB) ([]entity.TeamMember, error)
	FindActivePhilosophyHighlights(db *gorm.DB) ([]entity.PhilosophyHighlight, error)
}
