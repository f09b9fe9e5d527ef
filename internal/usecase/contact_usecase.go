package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"
	"wellness-cms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrContactMessageNotFound = errors.New("contact message not found")

type ContactUsecase interface {
	CreateContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageCreatedResponse, error)
	MarkContactMessageRead(ctx context.Context, id uuid.UUID) error
}

type contactUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	contactRepo repository.ContactMessageRepository
	notifier    service.Notifier
}

func NewContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	contactRepo repository.ContactMessageRepository,
	notifier service.Notifier,
) ContactUsecase {
	return &contactUsecase{
		db:          db,
		log:         log,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

func (u *contactUsecase) CreateContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageCreatedResponse, error) {
	message := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := u.contactRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to create contact message: %+v", err)
		return nil, err
	}

	u.notifier.NotifyContactMessageCreated(message)

	u.log.Infof("Contact message created: id=%s", message.ID)
	return &dto.ContactMessageCreatedResponse{
		Message:   "Message sent successfully",
		ContactID: message.ID.String(),
	}, nil
}

func (u *contactUsecase) MarkContactMessageRead(ctx context.Context, id uuid.UUID) error {
	affected, err := u.contactRepo.MarkRead(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to mark contact message %s read: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}
