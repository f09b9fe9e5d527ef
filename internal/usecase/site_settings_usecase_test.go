package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/repository"
	"wellness-cms-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsUsecase(t *testing.T) SiteSettingsUsecase {
	t.Helper()
	db := setupTestDB(t)
	cache := service.NewPageCache(nil, testLogger())
	return NewSiteSettingsUsecase(db, testLogger(), repository.NewSiteSettingsRepository(), cache)
}

func TestGetSiteSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("serves defaults when no row exists", func(t *testing.T) {
		uc := newSettingsUsecase(t)

		resp, err := uc.GetSiteSettings(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Monalisa Wellness", resp.SiteName)
		assert.Equal(t, "#DC2626", resp.OffersStripColor)
		assert.NotEmpty(t, resp.PrimaryEmail)
	})

	t.Run("serves the saved row once one exists", func(t *testing.T) {
		uc := newSettingsUsecase(t)

		_, err := uc.UpdateSiteSettings(ctx, &dto.UpdateSiteSettingsRequest{
			SiteName:    "Monalisa Skin Clinic",
			SiteTagline: "Glow different",
		})
		require.NoError(t, err)

		resp, err := uc.GetSiteSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Monalisa Skin Clinic", resp.SiteName)
		assert.Equal(t, "Glow different", resp.SiteTagline)
	})
}

func TestUpdateSiteSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the row on first save", func(t *testing.T) {
		uc := newSettingsUsecase(t)

		resp, err := uc.UpdateSiteSettings(ctx, &dto.UpdateSiteSettingsRequest{
			SiteName:      "Monalisa Wellness",
			ContactEmails: []string{"hello@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"hello@example.com"}, resp.ContactEmails)
	})

	t.Run("folds legacy contact fields into the lists", func(t *testing.T) {
		uc := newSettingsUsecase(t)

		resp, err := uc.UpdateSiteSettings(ctx, &dto.UpdateSiteSettingsRequest{
			SiteName:     "Monalisa Wellness",
			ContactEmail: "legacy@example.com",
			ContactPhone: "+911234567890",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"legacy@example.com"}, resp.ContactEmails)
		assert.Equal(t, []string{"+911234567890"}, resp.ContactPhones)
		assert.Equal(t, "legacy@example.com", resp.PrimaryEmail)
	})

	t.Run("second save replaces rather than duplicates", func(t *testing.T) {
		uc := newSettingsUsecase(t)

		_, err := uc.UpdateSiteSettings(ctx, &dto.UpdateSiteSettingsRequest{SiteName: "First"})
		require.NoError(t, err)
		_, err = uc.UpdateSiteSettings(ctx, &dto.UpdateSiteSettingsRequest{SiteName: "Second"})
		require.NoError(t, err)

		resp, err := uc.GetSiteSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Second", resp.SiteName)
	})
}

func TestDeleteSiteSettings(t *testing.T) {
	uc := newSettingsUsecase(t)

	err := uc.DeleteSiteSettings(context.Background())
	assert.ErrorIs(t, err, ErrSettingsDeletionForbidden)
}
