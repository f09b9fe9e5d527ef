package usecase

import (
	"context"
	"testing"

	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// treatmentFixture seeds two active categories, one empty category, two
// clinics and per-clinic pricing for a subset of the treatments.
type treatmentFixture struct {
	facials     entity.TreatmentCategory
	laser       entity.TreatmentCategory
	empty       entity.TreatmentCategory
	hydraFacial entity.Treatment
	goldFacial  entity.Treatment
	laserHair   entity.Treatment
	delhi       entity.Clinic
	gurugram    entity.Clinic
}

func newTreatmentUsecaseWithFixture(t *testing.T) (TreatmentUsecase, *gorm.DB, *treatmentFixture) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewTreatmentUsecase(
		db, testLogger(),
		repository.NewTreatmentCategoryRepository(),
		repository.NewTreatmentRepository(),
		testMediaBase,
	)

	f := &treatmentFixture{
		facials: entity.TreatmentCategory{Title: "Facials", SortOrder: 1, IsActive: true},
		laser:   entity.TreatmentCategory{Title: "Laser", SortOrder: 2, IsActive: true},
		empty:   entity.TreatmentCategory{Title: "Coming Soon", SortOrder: 3, IsActive: true},
	}
	require.NoError(t, db.Create(&f.facials).Error)
	require.NoError(t, db.Create(&f.laser).Error)
	require.NoError(t, db.Create(&f.empty).Error)

	f.delhi = entity.Clinic{Name: "Delhi Central", IsActive: true}
	f.gurugram = entity.Clinic{Name: "Gurugram", IsActive: true}
	require.NoError(t, db.Create(&f.delhi).Error)
	require.NoError(t, db.Create(&f.gurugram).Error)

	f.hydraFacial = entity.Treatment{
		CategoryID: f.facials.ID, Name: "HydraFacial", Image: "treatments/hydra.jpg",
		SortOrder: 1, IsActive: true, IsFeatured: true,
	}
	f.goldFacial = entity.Treatment{
		CategoryID: f.facials.ID, Name: "Gold Facial", SortOrder: 2, IsActive: true,
	}
	f.laserHair = entity.Treatment{
		CategoryID: f.laser.ID, Name: "Laser Hair Removal", SortOrder: 1, IsActive: true,
	}
	require.NoError(t, db.Create(&f.hydraFacial).Error)
	require.NoError(t, db.Create(&f.goldFacial).Error)
	require.NoError(t, db.Create(&f.laserHair).Error)

	// HydraFacial is priced at both clinics, Gold Facial only in Delhi,
	// Laser Hair Removal only in Gurugram.
	pricing := []entity.TreatmentClinicPricing{
		{TreatmentID: f.hydraFacial.ID, ClinicID: f.delhi.ID, Price: "₹2500", IsActive: true},
		{TreatmentID: f.hydraFacial.ID, ClinicID: f.gurugram.ID, Price: "₹2800", IsActive: true},
		{TreatmentID: f.goldFacial.ID, ClinicID: f.delhi.ID, Price: "₹1800", IsActive: true},
		{TreatmentID: f.laserHair.ID, ClinicID: f.gurugram.ID, Price: "₹3500", IsActive: true},
	}
	for i := range pricing {
		require.NoError(t, db.Create(&pricing[i]).Error)
	}

	return uc, db, f
}

func TestGetTreatmentsPage(t *testing.T) {
	ctx := context.Background()

	t.Run("groups treatments by category and drops empty categories", func(t *testing.T) {
		uc, _, _ := newTreatmentUsecaseWithFixture(t)

		page, err := uc.GetTreatmentsPage(ctx, nil, nil)
		require.NoError(t, err)

		require.Len(t, page, 2)
		assert.Equal(t, "Facials", page[0].Title)
		assert.Len(t, page[0].Items, 2)
		assert.Equal(t, "Laser", page[1].Title)
		assert.Len(t, page[1].Items, 1)
	})

	t.Run("clinic filter keeps only treatments priced there", func(t *testing.T) {
		uc, _, f := newTreatmentUsecaseWithFixture(t)

		page, err := uc.GetTreatmentsPage(ctx, uintPtr(f.gurugram.ID), nil)
		require.NoError(t, err)

		require.Len(t, page, 2)
		require.Len(t, page[0].Items, 1)
		assert.Equal(t, "HydraFacial", page[0].Items[0].Name)
		require.Len(t, page[1].Items, 1)
		assert.Equal(t, "Laser Hair Removal", page[1].Items[0].Name)
	})

	t.Run("category filter narrows to one category", func(t *testing.T) {
		uc, _, f := newTreatmentUsecaseWithFixture(t)

		page, err := uc.GetTreatmentsPage(ctx, nil, uintPtr(f.laser.ID))
		require.NoError(t, err)

		require.Len(t, page, 1)
		assert.Equal(t, "Laser", page[0].Title)
	})

	t.Run("unknown category yields an empty page", func(t *testing.T) {
		uc, _, _ := newTreatmentUsecaseWithFixture(t)

		page, err := uc.GetTreatmentsPage(ctx, nil, uintPtr(999))
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

func TestGetFeaturedTreatments(t *testing.T) {
	ctx := context.Background()
	uc, _, f := newTreatmentUsecaseWithFixture(t)

	featured, err := uc.GetFeaturedTreatments(ctx, nil)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, f.hydraFacial.Name, featured[0].Name)
	assert.Equal(t, testMediaBase+"/treatments/hydra.jpg", featured[0].Image)
}

func TestGetCategorySummaries(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTreatmentUsecaseWithFixture(t)

	summaries, err := uc.GetCategorySummaries(ctx)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, int64(2), summaries[0].TreatmentCount)
	assert.Equal(t, testMediaBase+"/treatments/hydra.jpg", summaries[0].Thumbnail)
	assert.Equal(t, int64(1), summaries[1].TreatmentCount)
}

func TestGetCategoryNav(t *testing.T) {
	ctx := context.Background()

	t.Run("truncates to the limit but keeps the full count", func(t *testing.T) {
		uc, _, _ := newTreatmentUsecaseWithFixture(t)

		nav, err := uc.GetCategoryNav(ctx, 1)
		require.NoError(t, err)

		require.Len(t, nav, 3)
		assert.Len(t, nav[0].Treatments, 1)
		assert.Equal(t, int64(2), nav[0].TotalCount)
	})

	t.Run("non positive limit falls back to the default", func(t *testing.T) {
		uc, _, _ := newTreatmentUsecaseWithFixture(t)

		nav, err := uc.GetCategoryNav(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, nav[0].Treatments, 2)
	})
}

func TestGetTreatmentDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("includes the ordered clinic pricing", func(t *testing.T) {
		uc, _, f := newTreatmentUsecaseWithFixture(t)

		detail, err := uc.GetTreatmentDetail(ctx, f.hydraFacial.ID, nil)
		require.NoError(t, err)

		assert.Equal(t, "HydraFacial", detail.Name)
		require.Len(t, detail.ClinicPricing, 2)
		assert.Equal(t, "Delhi Central", detail.ClinicPricing[0].ClinicName)
		assert.Equal(t, "Gurugram", detail.ClinicPricing[1].ClinicName)
	})

	t.Run("clinic filter narrows the pricing rows", func(t *testing.T) {
		uc, _, f := newTreatmentUsecaseWithFixture(t)

		detail, err := uc.GetTreatmentDetail(ctx, f.hydraFacial.ID, uintPtr(f.delhi.ID))
		require.NoError(t, err)

		require.Len(t, detail.ClinicPricing, 1)
		assert.Equal(t, "₹2500", detail.ClinicPricing[0].Price)
	})

	t.Run("treatment not priced at the clinic is not found there", func(t *testing.T) {
		uc, _, f := newTreatmentUsecaseWithFixture(t)

		_, err := uc.GetTreatmentDetail(ctx, f.goldFacial.ID, uintPtr(f.gurugram.ID))
		assert.ErrorIs(t, err, ErrTreatmentNotAtClinic)
	})

	t.Run("unknown treatment yields not found", func(t *testing.T) {
		uc, _, _ := newTreatmentUsecaseWithFixture(t)

		_, err := uc.GetTreatmentDetail(ctx, 999, nil)
		assert.ErrorIs(t, err, ErrTreatmentNotFound)
	})

	t.Run("benefits and steps are scoped to the treatment", func(t *testing.T) {
		uc, db, f := newTreatmentUsecaseWithFixture(t)
		require.NoError(t, db.Create(&entity.TreatmentBenefit{
			TreatmentID: &f.hydraFacial.ID, Title: "Deep cleanse", IsActive: true,
		}).Error)
		// Orphaned row from before the per-treatment migration.
		require.NoError(t, db.Create(&entity.TreatmentBenefit{
			Title: "Orphan", IsActive: true,
		}).Error)
		require.NoError(t, db.Create(&entity.TreatmentStep{
			TreatmentID: &f.hydraFacial.ID, Title: "Consultation", StepNumber: 1, IsActive: true,
		}).Error)

		detail, err := uc.GetTreatmentDetail(ctx, f.hydraFacial.ID, nil)
		require.NoError(t, err)

		require.Len(t, detail.Benefits, 1)
		assert.Equal(t, "Deep cleanse", detail.Benefits[0].Title)
		require.Len(t, detail.Steps, 1)
		assert.Equal(t, 1, detail.Steps[0].StepNumber)
	})
}

func TestClinicPricingUniquePerClinic(t *testing.T) {
	_, db, f := newTreatmentUsecaseWithFixture(t)

	err := db.Create(&entity.TreatmentClinicPricing{
		TreatmentID: f.hydraFacial.ID, ClinicID: f.delhi.ID, Price: "₹2600", IsActive: true,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
