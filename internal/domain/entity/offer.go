package entity

import "time"

// Offer is a clinic-scoped promotion with an inclusive validity window.
// Validity and days remaining are derived at read time, never stored.
type Offer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClinicID    uint      `gorm:"not null;index" json:"clinic_id"`
	Header      string    `gorm:"type:varchar(200);not null" json:"header"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:varchar(500)" json:"image"`
	ValidFrom   time.Time `gorm:"type:date;not null" json:"valid_from"`
	ValidUntil  time.Time `gorm:"type:date;not null" json:"valid_until"`
	IsFeatured  bool      `gorm:"not null" json:"is_featured"`
	SortOrder   int       `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Offer) TableName() string {
	return "offers"
}

// IsValidOn reports whether the offer is valid on the given day,
// boundaries included.
func (o *Offer) IsValidOn(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(o.ValidFrom)) && !d.After(truncateToDay(o.ValidUntil))
}

// DaysRemainingOn returns whole days left until valid_until, never negative.
func (o *Offer) DaysRemainingOn(day time.Time) int {
	d := truncateToDay(day)
	until := truncateToDay(o.ValidUntil)
	if d.After(until) {
		return 0
	}
	return int(until.Sub(d).Hours() / 24)
}

// IsValid reports whether the offer is valid today.
func (o *Offer) IsValid() bool {
	return o.IsValidOn(time.Now().UTC())
}

// DaysRemaining returns whole days left as of today.
func (o *Offer) DaysRemaining() int {
	return o.DaysRemainingOn(time.Now().UTC())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
