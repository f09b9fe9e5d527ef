package entity

import "time"

// AboutUsPageType selects which of the two mutually exclusive content shapes
// an AboutUs row carries.
type AboutUsPageType string

const (
	AboutUsPageNormal  AboutUsPageType = "normal"
	AboutUsPageLanding AboutUsPageType = "landing"
)

// AboutUs holds About-Us content for either the normal page or the landing
// page. Normal rows use the description/philosophy fields, landing rows use
// the two titled sections; the projection layer never emits both groups.
type AboutUs struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	PageType AboutUsPageType `gorm:"type:varchar(10);not null;index" json:"page_type"`

	// Normal page fields
	Desp1           string `gorm:"type:text" json:"desp1"`
	Desp2           string `gorm:"type:text" json:"desp2"`
	PhilosophyTitle string `gorm:"type:varchar(200)" json:"philosophy_title"`

	// Landing page fields
	Title1Heading string `gorm:"type:varchar(200)" json:"title1_heading"`
	Title1Desp1   string `gorm:"type:text" json:"title1_desp1"`
	Title1Desp2   string `gorm:"type:text" json:"title1_desp2"`
	Title1Image   string `gorm:"type:varchar(500)" json:"title1_image"`
	Title2Heading string `gorm:"type:varchar(200)" json:"title2_heading"`
	Title2Desp1   string `gorm:"type:text" json:"title2_desp1"`
	Title2Desp2   string `gorm:"type:text" json:"title2_desp2"`
	Title2Image   string `gorm:"type:varchar(500)" json:"title2_image"`

	IsActive  bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AboutUs) TableName() string {
	return "about_us"
}

// TeamMember represents a site-wide team member shown on the normal About-Us page.
type TeamMember struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Role      string `gorm:"type:varchar(100);not null" json:"role"`
	Bio       string `gorm:"type:text" json:"bio"`
	Image     string `gorm:"type:varchar(500)" json:"image"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive  bool   `gorm:"not null;index" json:"is_active"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// PhilosophyHighlight is a bullet in the philosophy block of the normal
// About-Us page.
type PhilosophyHighlight struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`
}

func (PhilosophyHighlight) TableName() string {
	return "philosophy_highlights"
}
