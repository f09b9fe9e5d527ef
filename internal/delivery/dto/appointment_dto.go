package dto

// Request DTOs

type CreateAppointmentRequest struct {
	ClinicID          *uint  `json:"clinic" validate:"omitempty,min=1"`
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"required,max=100"`
	Email             string `json:"email" validate:"required,email,max=254"`
	Phone             string `json:"phone" validate:"required,phone"`
	PreferredDate     string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime     string `json:"preferred_time" validate:"required,datetime=15:04"`
	TreatmentInterest string `json:"treatment_interest" validate:"max=200"`
	Message           string `json:"message"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// Response DTOs

type AppointmentCreatedResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}
