package repository

import (
	"wellness-cms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(db *gorm.DB, message *entity.ContactMessage) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ContactMessage, error)
	MarkRead(db *gorm.DB, id uuid.UUID) (int64, error)
}
