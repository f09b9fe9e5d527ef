package entity

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const blogExcerptLength = 150

// Blog is a published article with a globally unique slug and a read-time
// bumped view counter.
type Blog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(300);not null" json:"title"`
	Slug            string    `gorm:"type:varchar(350);uniqueIndex;not null" json:"slug"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Excerpt         string    `gorm:"type:varchar(500)" json:"excerpt"`
	Author          string    `gorm:"type:varchar(100)" json:"author"`
	FeaturedImage   string    `gorm:"type:varchar(500)" json:"featured_image"`
	IsPublished     bool      `gorm:"not null;index" json:"is_published"`
	IsFeatured      bool      `gorm:"not null;index" json:"is_featured"`
	MetaTitle       string    `gorm:"type:varchar(60)" json:"meta_title"`
	MetaDescription string    `gorm:"type:varchar(160)" json:"meta_description"`
	Tags            string    `gorm:"type:varchar(500)" json:"tags"`
	ReadTime        int       `gorm:"not null" json:"read_time"`
	ViewsCount      int64     `gorm:"not null" json:"views_count"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Images []BlogImage `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BeforeSave derives the slug from the title and the excerpt from the content
// when they are not supplied explicitly.
func (b *Blog) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}
	if b.Excerpt == "" {
		b.Excerpt = makeExcerpt(b.Content)
	}
	return nil
}

// TagList splits the comma-separated tags field, dropping empty entries.
func (b *Blog) TagList() []string {
	tags := []string{}
	for _, t := range strings.Split(b.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= blogExcerptLength {
		return content
	}
	return string(runes[:blogExcerptLength]) + "..."
}

// BlogImage is an ordered gallery image owned by a blog post.
type BlogImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BlogID    uint   `gorm:"not null;index" json:"blog_id"`
	Image     string `gorm:"type:varchar(500);not null" json:"image"`
	Caption   string `gorm:"type:varchar(200)" json:"caption"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
}

func (BlogImage) TableName() string {
	return "blog_images"
}
