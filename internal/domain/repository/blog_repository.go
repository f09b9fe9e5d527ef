package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// BlogFilter narrows the published-blog listing.
type BlogFilter struct {
	FeaturedOnly bool
	Tag          string
	Search       string
}

type BlogRepository interface {
	FindPublished(db *gorm.DB, filter BlogFilter) ([]entity.Blog, error)
	// FindPublishedBySlug preloads the post's gallery images in order.
	FindPublishedBySlug(db *gorm.DB, slug string) (*entity.Blog, error)
	SlugExists(db *gorm.DB, slug string, excludeID uint) (bool, error)
	Create(db *gorm.DB, blog *entity.Blog) error
	Save(db *gorm.DB, blog *entity.Blog) error
	// IncrementViews bumps views_count by one in a single UPDATE so
	// concurrent detail reads never lose an increment.
	IncrementViews(db *gorm.DB, id uint) error
}
