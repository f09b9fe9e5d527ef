package entity

// SkinConcern is a leaf listing entry linking a concern to related
// treatments, products and expected results copy.
type SkinConcern struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(500)" json:"icon"`
	Treatments  string `gorm:"type:text" json:"treatments"`
	Products    string `gorm:"type:text" json:"products"`
	Results     string `gorm:"type:text" json:"results"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`
}

func (SkinConcern) TableName() string {
	return "skin_concerns"
}

// LandingFAQ is a landing page FAQ entry.
type LandingFAQ struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Question  string `gorm:"type:varchar(500);not null" json:"question"`
	Answer    string `gorm:"type:text" json:"answer"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive  bool   `gorm:"not null;index" json:"is_active"`
}

func (LandingFAQ) TableName() string {
	return "landing_faqs"
}
