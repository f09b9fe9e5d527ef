package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the status of a booking request
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a public booking request, optionally linked to a clinic.
type Appointment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID          *uint             `gorm:"index" json:"clinic_id"`
	FirstName         string            `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string            `gorm:"type:varchar(100);not null" json:"last_name"`
	Email             string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone             string            `gorm:"type:varchar(20);not null" json:"phone"`
	PreferredDate     time.Time         `gorm:"type:date;not null" json:"preferred_date"`
	PreferredTime     string            `gorm:"type:varchar(5);not null" json:"preferred_time"`
	TreatmentInterest string            `gorm:"type:varchar(200)" json:"treatment_interest"`
	Message           string            `gorm:"type:text" json:"message"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AdminNotes        string            `gorm:"type:text" json:"admin_notes"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
	return nil
}

// FullName joins first and last name for notifications and admin views.
func (a *Appointment) FullName() string {
	return a.FirstName + " " + a.LastName
}
