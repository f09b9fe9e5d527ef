package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clinic is an independent aggregate root for a physical location. Images,
// team members, offers, pricing rows and appointments hang off it and are
// removed with it.
type Clinic struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(200);not null" json:"name"`
	Specialization string          `gorm:"type:varchar(300)" json:"specialization"`
	Description    string          `gorm:"type:text" json:"description"`
	Address        string          `gorm:"type:text" json:"address"`
	City           string          `gorm:"type:varchar(100)" json:"city"`
	Phone          string          `gorm:"type:varchar(50)" json:"phone"`
	Email          string          `gorm:"type:varchar(255)" json:"email"`
	Rating         decimal.Decimal `gorm:"type:decimal(3,1)" json:"rating"`
	ReviewsCount   int             `gorm:"not null" json:"reviews_count"`
	ReviewsText    string          `gorm:"type:varchar(100)" json:"reviews_text"`
	BusinessHours  string          `gorm:"type:varchar(100)" json:"business_hours"`
	HoursNote      string          `gorm:"type:varchar(100)" json:"hours_note"`
	MainImage      string          `gorm:"type:varchar(500)" json:"main_image"`
	GoogleMapsURL  string          `gorm:"type:varchar(500)" json:"google_maps_url"`
	MapEmbedURL    string          `gorm:"type:varchar(500)" json:"map_embed_url"`
	SortOrder      int             `gorm:"column:sort_order;not null" json:"order"`
	IsActive       bool            `gorm:"not null;index" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Images      []ClinicImage      `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	TeamMembers []ClinicTeamMember `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE" json:"team_members,omitempty"`
	Offers      []Offer            `gorm:"foreignKey:ClinicID;constraint:OnDelete:CASCADE" json:"offers,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// ClinicImage is a gallery image owned by a clinic.
type ClinicImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ClinicID  uint   `gorm:"not null;index" json:"clinic_id"`
	Image     string `gorm:"type:varchar(500);not null" json:"image"`
	Caption   string `gorm:"type:varchar(200)" json:"caption"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive  bool   `gorm:"not null;index" json:"is_active"`
}

func (ClinicImage) TableName() string {
	return "clinic_images"
}

// ClinicTeamMember is a staff entry scoped to one clinic.
type ClinicTeamMember struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ClinicID  uint   `gorm:"not null;index" json:"clinic_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Role      string `gorm:"type:varchar(100);not null" json:"role"`
	Bio       string `gorm:"type:text" json:"bio"`
	Image     string `gorm:"type:varchar(500)" json:"image"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive  bool   `gorm:"not null;index" json:"is_active"`
}

func (ClinicTeamMember) TableName() string {
	return "clinic_team_members"
}
