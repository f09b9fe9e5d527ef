package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAboutUsecase(t *testing.T) (AboutUsUsecase, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewAboutUsUsecase(db, testLogger(), repository.NewAboutUsRepository(), testMediaBase)
	return uc, db
}

func TestGetAboutUs(t *testing.T) {
	ctx := context.Background()

	t.Run("normal page includes team and philosophy", func(t *testing.T) {
		uc, db := newAboutUsecase(t)
		require.NoError(t, db.Create(&entity.AboutUs{
			PageType:        entity.AboutUsPageNormal,
			Desp1:           "Founded in 2010.",
			Desp2:           "Three locations today.",
			PhilosophyTitle: "Our Philosophy",
			IsActive:        true,
		}).Error)
		require.NoError(t, db.Create(&entity.TeamMember{
			Name: "Dr. Kapoor", Role: "Dermatologist", Image: "team/kapoor.jpg", IsActive: true,
		}).Error)
		require.NoError(t, db.Create(&entity.PhilosophyHighlight{
			Title: "Safety first", IsActive: true,
		}).Error)

		result, err := uc.GetAboutUs(ctx, false)
		require.NoError(t, err)

		normal, ok := result.(*dto.AboutUsNormalResponse)
		require.True(t, ok)
		assert.Equal(t, "Founded in 2010.", normal.Desp1)
		require.Len(t, normal.Team, 1)
		assert.Equal(t, testMediaBase+"/team/kapoor.jpg", normal.Team[0].Image)
		assert.Equal(t, "Our Philosophy", normal.Philosophy.Title)
		require.Len(t, normal.Philosophy.Highlights, 1)
	})

	t.Run("landing request serves the landing row", func(t *testing.T) {
		uc, db := newAboutUsecase(t)
		require.NoError(t, db.Create(&entity.AboutUs{
			PageType:      entity.AboutUsPageLanding,
			Title1Heading: "Why Monalisa",
			Title2Heading: "Our Promise",
			IsActive:      true,
		}).Error)

		result, err := uc.GetAboutUs(ctx, true)
		require.NoError(t, err)

		landing, ok := result.(*dto.AboutUsLandingResponse)
		require.True(t, ok)
		assert.Equal(t, "Why Monalisa", landing.Title1.Heading)
		assert.Equal(t, "Our Promise", landing.Title2.Heading)
	})

	t.Run("landing request falls back to normal content", func(t *testing.T) {
		uc, db := newAboutUsecase(t)
		require.NoError(t, db.Create(&entity.AboutUs{
			PageType: entity.AboutUsPageNormal,
			Desp1:    "Fallback content.",
			IsActive: true,
		}).Error)

		result, err := uc.GetAboutUs(ctx, true)
		require.NoError(t, err)

		normal, ok := result.(*dto.AboutUsNormalResponse)
		require.True(t, ok)
		assert.Equal(t, "Fallback content.", normal.Desp1)
	})

	t.Run("no content yields not found", func(t *testing.T) {
		uc, _ := newAboutUsecase(t)

		_, err := uc.GetAboutUs(ctx, false)
		assert.ErrorIs(t, err, ErrAboutUsNotFound)
	})

	t.Run("inactive rows are ignored", func(t *testing.T) {
		uc, db := newAboutUsecase(t)
		require.NoError(t, db.Create(&entity.AboutUs{
			PageType: entity.AboutUsPageNormal,
			IsActive: false,
		}).Error)

		_, err := uc.GetAboutUs(ctx, false)
		assert.ErrorIs(t, err, ErrAboutUsNotFound)
	})
}
