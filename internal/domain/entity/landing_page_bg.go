package entity

import "time"

// LandingBgType discriminates between a single static image and a carousel.
type LandingBgType string

const (
	LandingBgStatic   LandingBgType = "static"
	LandingBgCarousel LandingBgType = "carousel"
)

// LandingPageBg represents the landing page background configuration.
// Only one active row is expected to exist at a time.
type LandingPageBg struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Type        LandingBgType `gorm:"type:varchar(10);not null" json:"type"`
	StaticImage string        `gorm:"type:varchar(500)" json:"static_image"`
	IsActive    bool          `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CarouselImages []CarouselImage `gorm:"foreignKey:LandingBgID;constraint:OnDelete:CASCADE" json:"carousel_images,omitempty"`
}

func (LandingPageBg) TableName() string {
	return "landing_page_bgs"
}

// CarouselImage is a single slide owned by a carousel-type landing background.
type CarouselImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	LandingBgID uint   `gorm:"not null;index" json:"landing_bg_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(500);not null" json:"image"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`
}

func (CarouselImage) TableName() string {
	return "carousel_images"
}
