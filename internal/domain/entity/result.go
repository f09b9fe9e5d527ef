package entity

import "time"

// Result showcases a treatment outcome. The earlier before/after two-image
// shape was collapsed into a single result image.
type Result struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Condition   string    `gorm:"type:varchar(200);not null" json:"condition"`
	Duration    string    `gorm:"type:varchar(100)" json:"duration"`
	Description string    `gorm:"type:text" json:"description"`
	ResultImage string    `gorm:"type:varchar(500)" json:"result_image"`
	IsFeatured  bool      `gorm:"not null;index" json:"is_featured"`
	SortOrder   int       `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Result) TableName() string {
	return "results"
}
