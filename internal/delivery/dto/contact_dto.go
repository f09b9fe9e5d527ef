package dto

// Request DTOs

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// Response DTOs

type ContactMessageCreatedResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}
