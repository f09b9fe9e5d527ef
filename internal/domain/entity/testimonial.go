package entity

import "time"

// Testimonial is a Google review screenshot with optional SEO text.
type Testimonial struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Screenshot   string    `gorm:"type:varchar(500);not null" json:"screenshot"`
	UserImage    string    `gorm:"type:varchar(500)" json:"user_image"`
	ReviewerName string    `gorm:"type:varchar(200)" json:"reviewer_name"`
	ReviewText   string    `gorm:"type:text" json:"review_text"`
	Rating       int       `gorm:"not null" json:"rating"`
	SortOrder    int       `gorm:"column:sort_order;not null" json:"order"`
	IsActive     bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
