package usecase

import (
	"context"
	"testing"
	"time"

	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClinicUsecase(t *testing.T) (ClinicUsecase, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewClinicUsecase(
		db, testLogger(),
		repository.NewClinicRepository(),
		repository.NewTreatmentRepository(),
		repository.NewOfferRepository(),
		testMediaBase,
	)
	return uc, db
}

func seedClinic(t *testing.T, db *gorm.DB, name string, active bool) *entity.Clinic {
	t.Helper()
	clinic := &entity.Clinic{Name: name, City: "Delhi", IsActive: active}
	require.NoError(t, db.Create(clinic).Error)
	return clinic
}

func TestGetClinics(t *testing.T) {
	ctx := context.Background()
	uc, db := newClinicUsecase(t)

	seedClinic(t, db, "Delhi Central", true)
	seedClinic(t, db, "Closed Branch", false)

	clinics, err := uc.GetClinics(ctx)
	require.NoError(t, err)

	require.Len(t, clinics, 1)
	assert.Equal(t, "Delhi Central", clinics[0].Name)
}

func TestGetClinicDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates treatments priced there and active offers", func(t *testing.T) {
		uc, db := newClinicUsecase(t)
		clinic := seedClinic(t, db, "Delhi Central", true)
		other := seedClinic(t, db, "Gurugram", true)

		category := &entity.TreatmentCategory{Title: "Facials", IsActive: true}
		require.NoError(t, db.Create(category).Error)

		here := &entity.Treatment{CategoryID: category.ID, Name: "HydraFacial", IsActive: true}
		elsewhere := &entity.Treatment{CategoryID: category.ID, Name: "Gold Facial", IsActive: true}
		require.NoError(t, db.Create(here).Error)
		require.NoError(t, db.Create(elsewhere).Error)

		require.NoError(t, db.Create(&entity.TreatmentClinicPricing{
			TreatmentID: here.ID, ClinicID: clinic.ID, Price: "₹2500", IsActive: true,
		}).Error)
		require.NoError(t, db.Create(&entity.TreatmentClinicPricing{
			TreatmentID: elsewhere.ID, ClinicID: other.ID, Price: "₹1800", IsActive: true,
		}).Error)

		now := time.Now().UTC()
		require.NoError(t, db.Create(&entity.Offer{
			ClinicID:   clinic.ID,
			Header:     "Monsoon Glow",
			ValidFrom:  now.AddDate(0, 0, -1),
			ValidUntil: now.AddDate(0, 0, 5),
			IsActive:   true,
		}).Error)

		detail, err := uc.GetClinicDetail(ctx, clinic.ID)
		require.NoError(t, err)

		assert.Equal(t, "Delhi Central", detail.Name)
		require.Len(t, detail.Treatments, 1)
		assert.Equal(t, "HydraFacial", detail.Treatments[0].Name)
		require.Len(t, detail.Offers, 1)
		assert.Equal(t, "Monsoon Glow", detail.Offers[0].Header)
		assert.True(t, detail.Offers[0].IsValid)
	})

	t.Run("unknown clinic yields not found", func(t *testing.T) {
		uc, _ := newClinicUsecase(t)

		_, err := uc.GetClinicDetail(ctx, 999)
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})

	t.Run("inactive clinic yields not found", func(t *testing.T) {
		uc, db := newClinicUsecase(t)
		clinic := seedClinic(t, db, "Closed Branch", false)

		_, err := uc.GetClinicDetail(ctx, clinic.ID)
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})
}

func TestGetClinicTreatments(t *testing.T) {
	ctx := context.Background()
	uc, db := newClinicUsecase(t)
	clinic := seedClinic(t, db, "Delhi Central", true)

	resp, err := uc.GetClinicTreatments(ctx, clinic.ID)
	require.NoError(t, err)

	assert.Equal(t, clinic.ID, resp.Clinic.ID)
	assert.Equal(t, "Delhi", resp.Clinic.City)
	assert.Empty(t, resp.Treatments)
}

func TestGetClinicOffers(t *testing.T) {
	ctx := context.Background()
	uc, db := newClinicUsecase(t)
	clinic := seedClinic(t, db, "Delhi Central", true)
	other := seedClinic(t, db, "Gurugram", true)

	now := time.Now().UTC()
	offers := []entity.Offer{
		{ClinicID: clinic.ID, Header: "Here", ValidFrom: now, ValidUntil: now.AddDate(0, 0, 3), IsActive: true},
		{ClinicID: other.ID, Header: "Elsewhere", ValidFrom: now, ValidUntil: now.AddDate(0, 0, 3), IsActive: true},
		{ClinicID: clinic.ID, Header: "Disabled", ValidFrom: now, ValidUntil: now.AddDate(0, 0, 3), IsActive: false},
	}
	for i := range offers {
		require.NoError(t, db.Create(&offers[i]).Error)
	}

	resp, err := uc.GetClinicOffers(ctx, clinic.ID)
	require.NoError(t, err)

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "Here", resp.Offers[0].Header)
}
