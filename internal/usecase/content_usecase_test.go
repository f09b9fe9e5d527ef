package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"
	"wellness-cms-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentUsecase(t *testing.T) (ContentUsecase, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewContentUsecase(
		db, testLogger(),
		repository.NewLandingBgRepository(),
		repository.NewTreatmentFAQRepository(),
		repository.NewLandingFAQRepository(),
		repository.NewSkinConcernRepository(),
		repository.NewTestimonialRepository(),
		repository.NewResultRepository(),
		service.NewPageCache(nil, testLogger()),
		testMediaBase,
	)
	return uc, db
}

func TestGetLandingBackground(t *testing.T) {
	ctx := context.Background()

	t.Run("carousel background includes its ordered slides", func(t *testing.T) {
		uc, db := newContentUsecase(t)
		bg := &entity.LandingPageBg{Type: entity.LandingBgCarousel, IsActive: true}
		require.NoError(t, db.Create(bg).Error)
		require.NoError(t, db.Create(&entity.CarouselImage{
			LandingBgID: bg.ID, Title: "Second", Image: "bg/two.jpg", SortOrder: 2, IsActive: true,
		}).Error)
		require.NoError(t, db.Create(&entity.CarouselImage{
			LandingBgID: bg.ID, Title: "First", Image: "bg/one.jpg", SortOrder: 1, IsActive: true,
		}).Error)

		resp, err := uc.GetLandingBackground(ctx)
		require.NoError(t, err)

		assert.Equal(t, string(entity.LandingBgCarousel), resp.Type)
		require.Len(t, resp.CarouselImages, 2)
		assert.Equal(t, "First", resp.CarouselImages[0].Title)
		assert.Equal(t, testMediaBase+"/bg/one.jpg", resp.CarouselImages[0].Image)
		assert.Equal(t, resp.CarouselImages[0].Image, resp.Image)
		assert.Empty(t, resp.StaticImage)
	})

	t.Run("static background carries the image", func(t *testing.T) {
		uc, db := newContentUsecase(t)
		require.NoError(t, db.Create(&entity.LandingPageBg{
			Type: entity.LandingBgStatic, StaticImage: "bg/hero.jpg", IsActive: true,
		}).Error)

		resp, err := uc.GetLandingBackground(ctx)
		require.NoError(t, err)
		assert.Equal(t, testMediaBase+"/bg/hero.jpg", resp.StaticImage)
		assert.Equal(t, resp.StaticImage, resp.Image)
		assert.Empty(t, resp.CarouselImages)
	})

	t.Run("no active background yields not found", func(t *testing.T) {
		uc, db := newContentUsecase(t)
		require.NoError(t, db.Create(&entity.LandingPageBg{
			Type: entity.LandingBgStatic, IsActive: false,
		}).Error)

		_, err := uc.GetLandingBackground(ctx)
		assert.ErrorIs(t, err, ErrLandingBgNotFound)
	})
}

func TestGetLandingResult(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the featured result image", func(t *testing.T) {
		uc, db := newContentUsecase(t)
		require.NoError(t, db.Create(&entity.Result{
			Condition: "Acne", ResultImage: "results/acne.jpg", IsFeatured: true, IsActive: true,
		}).Error)

		resp, err := uc.GetLandingResult(ctx)
		require.NoError(t, err)
		assert.Equal(t, testMediaBase+"/results/acne.jpg", resp.ResultImage)
	})

	t.Run("empty string when no active result exists", func(t *testing.T) {
		uc, _ := newContentUsecase(t)

		resp, err := uc.GetLandingResult(ctx)
		require.NoError(t, err)
		assert.Equal(t, "", resp.ResultImage)
	})
}

func TestGetFAQs(t *testing.T) {
	ctx := context.Background()
	uc, db := newContentUsecase(t)

	require.NoError(t, db.Create(&entity.TreatmentFAQ{
		Question: "Does it hurt?", Answer: "No.", IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&entity.TreatmentFAQ{
		Question: "Hidden", IsActive: false,
	}).Error)
	require.NoError(t, db.Create(&entity.LandingFAQ{
		Question: "Where are you?", Answer: "Delhi and Gurugram.", IsActive: true,
	}).Error)

	t.Run("treatment faqs list only active entries", func(t *testing.T) {
		faqs, err := uc.GetTreatmentFAQs(ctx)
		require.NoError(t, err)
		require.Len(t, faqs, 1)
		assert.Equal(t, "Does it hurt?", faqs[0].Question)
	})

	t.Run("landing faqs are a separate list", func(t *testing.T) {
		faqs, err := uc.GetLandingFAQs(ctx)
		require.NoError(t, err)
		require.Len(t, faqs, 1)
		assert.Equal(t, "Where are you?", faqs[0].Question)
	})
}
