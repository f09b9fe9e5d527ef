package dto

// Response DTOs

type OfferResponse struct {
	ID            uint   `json:"id"`
	Header        string `json:"header"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	ClinicName    string `json:"clinic_name"`
	ValidFrom     string `json:"valid_from"`
	ValidUntil    string `json:"valid_until"`
	IsFeatured    bool   `json:"is_featured"`
	IsValid       bool   `json:"is_valid"`
	DaysRemaining int    `json:"days_remaining"`
}
