package entity

import "time"

// MaxActiveWhyChooseUs caps how many benefits may be active simultaneously.
const MaxActiveWhyChooseUs = 4

// WhyChooseUsIcons lists the icon names the admin console may pick from.
var WhyChooseUsIcons = []string{
	"clock", "award", "zap", "heart", "shield", "star", "users", "check-circle",
}

// WhyChooseUs is a landing page benefit entry. At most four rows may be
// active at once; the check runs at write time inside a transaction.
type WhyChooseUs struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(20);not null" json:"icon"`
	SortOrder   int       `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WhyChooseUs) TableName() string {
	return "why_choose_us"
}
