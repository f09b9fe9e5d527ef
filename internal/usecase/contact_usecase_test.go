package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactUsecase(t *testing.T) (ContactUsecase, *gorm.DB, *fakeNotifier) {
	t.Helper()
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	uc := NewContactUsecase(db, testLogger(), repository.NewContactMessageRepository(), notifier)
	return uc, db, notifier
}

func TestCreateContactMessage(t *testing.T) {
	ctx := context.Background()
	uc, db, notifier := newContactUsecase(t)

	resp, err := uc.CreateContactMessage(ctx, &dto.CreateContactMessageRequest{
		Name:    "Rahul Verma",
		Email:   "rahul@example.com",
		Subject: "Pricing question",
		Message: "Do you offer package deals?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Message sent successfully", resp.Message)

	id, err := uuid.Parse(resp.ContactID)
	require.NoError(t, err)

	var saved entity.ContactMessage
	require.NoError(t, db.First(&saved, "id = ?", id).Error)
	assert.False(t, saved.IsRead)
	assert.Equal(t, "Pricing question", saved.Subject)

	assert.Equal(t, 1, notifier.contactCalls)
}

func TestMarkContactMessageRead(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the read flag", func(t *testing.T) {
		uc, db, _ := newContactUsecase(t)

		resp, err := uc.CreateContactMessage(ctx, &dto.CreateContactMessageRequest{
			Name:    "Rahul Verma",
			Email:   "rahul@example.com",
			Message: "Hello.",
		})
		require.NoError(t, err)
		id := uuid.MustParse(resp.ContactID)

		require.NoError(t, uc.MarkContactMessageRead(ctx, id))

		var saved entity.ContactMessage
		require.NoError(t, db.First(&saved, "id = ?", id).Error)
		assert.True(t, saved.IsRead)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		uc, _, _ := newContactUsecase(t)

		err := uc.MarkContactMessageRead(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrContactMessageNotFound)
	})
}
