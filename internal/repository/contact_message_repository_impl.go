package repository

import (
	"errors"

	"wellness-cms-backend/internal/domain/entity"
	domainRepo "wellness-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactMessageRepository struct{}

func NewContactMessageRepository() domainRepo.ContactMessageRepository {
	return &contactMessageRepository{}
}

func (r *contactMessageRepository) Create(db *gorm.DB, message *entity.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactMessageRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ContactMessage, error) {
	var message entity.ContactMessage
	err := db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepository) MarkRead(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
