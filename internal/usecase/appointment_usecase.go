package usecase

import (
	"context"
	"errors"
	"time"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"
	"wellness-cms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	clinicRepo      repository.ClinicRepository
	notifier        service.Notifier
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	clinicRepo repository.ClinicRepository,
	notifier service.Notifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		clinicRepo:      clinicRepo,
		notifier:        notifier,
	}
}

// CreateAppointment records a booking request and notifies the clinic owner.
// Notification is best effort; the appointment is created regardless of
// whether mail can be sent.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	db := u.db.WithContext(ctx)

	var clinicName string
	if req.ClinicID != nil {
		clinic, err := u.clinicRepo.FindActiveByID(db, *req.ClinicID)
		if err != nil {
			u.log.Warnf("Failed to find clinic %d: %+v", *req.ClinicID, err)
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
		clinicName = clinic.Name
	}

	// The handler already validated the date format.
	preferredDate, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ClinicID:          req.ClinicID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		PreferredDate:     preferredDate,
		PreferredTime:     req.PreferredTime,
		TreatmentInterest: req.TreatmentInterest,
		Message:           req.Message,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.notifier.NotifyAppointmentCreated(appointment, clinicName)

	u.log.Infof("Appointment created: id=%s, clinic=%q", appointment.ID, clinicName)
	return &dto.AppointmentCreatedResponse{
		Message:       "Appointment request submitted successfully",
		AppointmentID: appointment.ID.String(),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	affected, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	u.log.Infof("Appointment %s status set to %s", id, status)
	return nil
}
