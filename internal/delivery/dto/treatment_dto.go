package dto

// Response DTOs

type ClinicPricingResponse struct {
	ClinicID   uint   `json:"clinic_id"`
	ClinicName string `json:"clinic_name"`
	Price      string `json:"price"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

type TreatmentItemResponse struct {
	ID            uint                    `json:"id"`
	Name          string                  `json:"name"`
	Duration      string                  `json:"duration"`
	Description   string                  `json:"description"`
	Image         string                  `json:"image"`
	IsActive      bool                    `json:"is_active"`
	ClinicPricing []ClinicPricingResponse `json:"clinic_pricing"`
}

type TreatmentLandingResponse struct {
	ID            uint                    `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Image         string                  `json:"image"`
	Duration      string                  `json:"duration"`
	ClinicPricing []ClinicPricingResponse `json:"clinic_pricing"`
}

type CategoryWithItemsResponse struct {
	ID          uint                    `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Items       []TreatmentItemResponse `json:"items"`
}

type CategorySummaryResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TreatmentCount int64  `json:"treatment_count"`
	Thumbnail      string `json:"thumbnail"`
}

type NavTreatmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryNavResponse carries a truncated treatment list for the navbar mega
// menu. TotalCount reports the full active count regardless of the limit.
type CategoryNavResponse struct {
	ID          uint                   `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Treatments  []NavTreatmentResponse `json:"treatments"`
	TotalCount  int64                  `json:"total_count"`
}

type TreatmentBenefitResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TreatmentStepResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StepNumber  int    `json:"step_number"`
}

type CategoryRefResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TreatmentDetailResponse struct {
	ID            uint                       `json:"id"`
	Name          string                     `json:"name"`
	Category      CategoryRefResponse        `json:"category"`
	Duration      string                     `json:"duration"`
	Description   string                     `json:"description"`
	Image         string                     `json:"image"`
	IsFeatured    bool                       `json:"is_featured"`
	Order         int                        `json:"order"`
	IsActive      bool                       `json:"is_active"`
	Benefits      []TreatmentBenefitResponse `json:"benefits"`
	Steps         []TreatmentStepResponse    `json:"steps"`
	ClinicPricing []ClinicPricingResponse    `json:"clinic_pricing"`
}

type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
