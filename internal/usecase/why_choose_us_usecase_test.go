package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBenefitUsecase(t *testing.T) (WhyChooseUsUsecase, func(active bool) *entity.WhyChooseUs) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewWhyChooseUsUsecase(db, testLogger(), repository.NewWhyChooseUsRepository())

	seed := func(active bool) *entity.WhyChooseUs {
		benefit := &entity.WhyChooseUs{
			Title:    "Expert Care",
			Icon:     "award",
			IsActive: active,
		}
		require.NoError(t, db.Create(benefit).Error)
		return benefit
	}
	return uc, seed
}

func boolPtr(v bool) *bool {
	return &v
}

func TestCreateWhyChooseUs(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults icon and active flag", func(t *testing.T) {
		uc, _ := newBenefitUsecase(t)

		resp, err := uc.CreateWhyChooseUs(ctx, &dto.SaveWhyChooseUsRequest{Title: "Fast Results"})
		require.NoError(t, err)

		assert.Equal(t, "clock", resp.Icon)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects a fifth active benefit", func(t *testing.T) {
		uc, seed := newBenefitUsecase(t)
		for i := 0; i < entity.MaxActiveWhyChooseUs; i++ {
			seed(true)
		}

		_, err := uc.CreateWhyChooseUs(ctx, &dto.SaveWhyChooseUsRequest{Title: "One Too Many"})
		assert.ErrorIs(t, err, ErrTooManyActiveBenefits)
	})

	t.Run("inactive benefits are not capped", func(t *testing.T) {
		uc, seed := newBenefitUsecase(t)
		for i := 0; i < entity.MaxActiveWhyChooseUs; i++ {
			seed(true)
		}

		resp, err := uc.CreateWhyChooseUs(ctx, &dto.SaveWhyChooseUsRequest{
			Title:    "Backbench",
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})
}

func TestUpdateWhyChooseUs(t *testing.T) {
	ctx := context.Background()

	t.Run("an already active benefit may stay active at the cap", func(t *testing.T) {
		uc, seed := newBenefitUsecase(t)
		var last *entity.WhyChooseUs
		for i := 0; i < entity.MaxActiveWhyChooseUs; i++ {
			last = seed(true)
		}

		resp, err := uc.UpdateWhyChooseUs(ctx, last.ID, &dto.SaveWhyChooseUsRequest{
			Title:    "Renamed",
			IsActive: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Title)
		assert.True(t, resp.IsActive)
	})

	t.Run("activating a fifth benefit fails", func(t *testing.T) {
		uc, seed := newBenefitUsecase(t)
		for i := 0; i < entity.MaxActiveWhyChooseUs; i++ {
			seed(true)
		}
		inactive := seed(false)

		_, err := uc.UpdateWhyChooseUs(ctx, inactive.ID, &dto.SaveWhyChooseUsRequest{
			Title:    inactive.Title,
			IsActive: boolPtr(true),
		})
		assert.ErrorIs(t, err, ErrTooManyActiveBenefits)
	})

	t.Run("deactivating frees a slot", func(t *testing.T) {
		uc, seed := newBenefitUsecase(t)
		var first *entity.WhyChooseUs
		for i := 0; i < entity.MaxActiveWhyChooseUs; i++ {
			b := seed(true)
			if first == nil {
				first = b
			}
		}

		_, err := uc.UpdateWhyChooseUs(ctx, first.ID, &dto.SaveWhyChooseUsRequest{
			Title:    first.Title,
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)

		_, err = uc.CreateWhyChooseUs(ctx, &dto.SaveWhyChooseUsRequest{Title: "Replacement"})
		assert.NoError(t, err)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		uc, _ := newBenefitUsecase(t)

		_, err := uc.UpdateWhyChooseUs(ctx, 999, &dto.SaveWhyChooseUsRequest{Title: "Ghost"})
		assert.ErrorIs(t, err, ErrWhyChooseUsNotFound)
	})
}
