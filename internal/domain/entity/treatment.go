package entity

// TreatmentCategory groups treatments for navigation and the treatments page.
type TreatmentCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`

	// Relationships
	Items []Treatment `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (TreatmentCategory) TableName() string {
	return "treatment_categories"
}

// Treatment is a single offered treatment within a category.
type Treatment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CategoryID  uint   `gorm:"not null;index" json:"category_id"`
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Duration    string `gorm:"type:varchar(50)" json:"duration"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(500)" json:"image"`
	IsFeatured  bool   `gorm:"not null;index" json:"is_featured"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`

	// Relationships
	Category      TreatmentCategory       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Benefits      []TreatmentBenefit      `gorm:"foreignKey:TreatmentID;constraint:OnDelete:CASCADE" json:"benefits,omitempty"`
	Steps         []TreatmentStep         `gorm:"foreignKey:TreatmentID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	ClinicPricing []TreatmentClinicPricing `gorm:"foreignKey:TreatmentID;constraint:OnDelete:CASCADE" json:"clinic_pricing,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// TreatmentBenefit is scoped to exactly one treatment. TreatmentID is
// nullable because rows created before the per-treatment migration may be
// orphaned; treatment-scoped projections must exclude those.
type TreatmentBenefit struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TreatmentID *uint  `gorm:"index" json:"treatment_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`
}

func (TreatmentBenefit) TableName() string {
	return "treatment_benefits"
}

// TreatmentStep is a "what to expect" process step, scoped like benefits.
type TreatmentStep struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TreatmentID *uint  `gorm:"index" json:"treatment_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	StepNumber  int    `gorm:"not null" json:"step_number"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`
}

func (TreatmentStep) TableName() string {
	return "treatment_steps"
}

// TreatmentClinicPricing prices a treatment at a specific clinic. At most one
// row may exist per (treatment, clinic) pair; the unique index is the hard
// invariant backing that.
type TreatmentClinicPricing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TreatmentID uint   `gorm:"not null;uniqueIndex:idx_pricing_treatment_clinic" json:"treatment_id"`
	ClinicID    uint   `gorm:"not null;uniqueIndex:idx_pricing_treatment_clinic;index" json:"clinic_id"`
	Price       string `gorm:"type:varchar(50);not null" json:"price"`
	SortOrder   int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`

	// Relationships
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (TreatmentClinicPricing) TableName() string {
	return "treatment_clinic_pricing"
}

// TreatmentFAQ is a site-wide FAQ entry for the treatments page.
type TreatmentFAQ struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Question  string `gorm:"type:varchar(500);not null" json:"question"`
	Answer    string `gorm:"type:text" json:"answer"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"order"`
	IsActive  bool   `gorm:"not null;index" json:"is_active"`
}

func (TreatmentFAQ) TableName() string {
	return "treatment_faqs"
}
