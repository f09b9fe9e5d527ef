package repository

import (
	"errors"
	"strings"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type blogRepository struct{}

func NewBlogRepository() domainRepo.BlogRepository {
	return &blogRepository{}
}

func (r *blogRepository) FindPublished(db *gorm.DB, filter domainRepo.BlogFilter) ([]entity.Blog, error) {
	q := db.Where("is_published = ?", true)
	if filter.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	if filter.Tag != "" {
		q = q.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(filter.Tag)+"%")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}
	var blogs []entity.Blog
	err := q.Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) FindPublishedBySlug(db *gorm.DB, slug string) (*entity.Blog, error) {
	var blog entity.Blog
	err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("sort_order")
	}).Where("slug = ? AND is_published = ?", slug, true).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) SlugExists(db *gorm.DB, slug string, excludeID uint) (bool, error) {
	q := db.Model(&entity.Blog{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *blogRepository) Create(db *gorm.DB, blog *entity.Blog) error {
	return db.Create(blog).Error
}

func (r *blogRepository) Save(db *gorm.DB, blog *entity.Blog) error {
	return db.Save(blog).Error
}

// IncrementViews is a single-statement increment; concurrent detail reads of
// the same post never lose an update.
func (r *blogRepository) IncrementViews(db *gorm.DB, id uint) error {
	return db.Model(&entity.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}
