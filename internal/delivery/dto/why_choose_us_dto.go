package dto

// Request DTOs

type SaveWhyChooseUsRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"omitempty,oneof=clock award zap heart shield star users check-circle"`
	Order       int    `json:"order" validate:"omitempty,min=0"`
	IsActive    *bool  `json:"is_active"`
}

// Response DTOs

type WhyChooseUsResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}
