package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTreatmentNotFound    = errors.New("treatment not found")
	ErrTreatmentNotAtClinic = errors.New("treatment not available at this clinic")
)

// DefaultNavTreatmentLimit caps how many treatments each category carries in
// the navbar payload when the caller does not pass a limit.
const DefaultNavTreatmentLimit = 6

type TreatmentUsecase interface {
	GetTreatmentsPage(ctx context.Context, clinicID, categoryID *uint) ([]dto.CategoryWithItemsResponse, error)
	GetFeaturedTreatments(ctx context.Context, clinicID *uint) ([]dto.TreatmentLandingResponse, error)
	GetCategorySummaries(ctx context.Context) ([]dto.CategorySummaryResponse, error)
	GetCategoryNav(ctx context.Context, limit int) ([]dto.CategoryNavResponse, error)
	GetTreatmentDetail(ctx context.Context, id uint, clinicID *uint) (*dto.TreatmentDetailResponse, error)
}

type treatmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.TreatmentCategoryRepository
	treatRepo    repository.TreatmentRepository
	mediaBaseURL string
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.TreatmentCategoryRepository,
	treatRepo repository.TreatmentRepository,
	mediaBaseURL string,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		treatRepo:    treatRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// GetTreatmentsPage returns active categories with their treatments. With a
// clinic filter only treatments priced at that clinic appear; categories left
// empty by the filters are dropped entirely.
func (u *treatmentUsecase) GetTreatmentsPage(ctx context.Context, clinicID, categoryID *uint) ([]dto.CategoryWithItemsResponse, error) {
	db := u.db.WithContext(ctx)

	categories, err := u.activeCategories(db, categoryID)
	if err != nil {
		return nil, err
	}

	page := make([]dto.CategoryWithItemsResponse, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		treatments, err := u.treatRepo.FindActiveByCategory(db, c.ID, clinicID)
		if err != nil {
			u.log.Warnf("Failed to find treatments for category %d: %+v", c.ID, err)
			return nil, err
		}
		if len(treatments) == 0 {
			continue
		}
		page = append(page, dto.CategoryWithItemsResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Items:       converter.TreatmentsToItemResponses(treatments, u.mediaBaseURL),
		})
	}
	return page, nil
}

func (u *treatmentUsecase) GetFeaturedTreatments(ctx context.Context, clinicID *uint) ([]dto.TreatmentLandingResponse, error) {
	treatments, err := u.treatRepo.FindFeatured(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find featured treatments: %+v", err)
		return nil, err
	}
	responses := make([]dto.TreatmentLandingResponse, 0, len(treatments))
	for i := range treatments {
		responses = append(responses, converter.TreatmentToLandingResponse(&treatments[i], u.mediaBaseURL))
	}
	return responses, nil
}

// GetCategorySummaries lists categories that have at least one active
// treatment, with the first treatment's image as the category thumbnail.
func (u *treatmentUsecase) GetCategorySummaries(ctx context.Context) ([]dto.CategorySummaryResponse, error) {
	db := u.db.WithContext(ctx)

	categories, err := u.categoryRepo.FindActive(db)
	if err != nil {
		u.log.Warnf("Failed to find treatment categories: %+v", err)
		return nil, err
	}

	summaries := make([]dto.CategorySummaryResponse, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		treatments, err := u.treatRepo.FindActiveByCategory(db, c.ID, nil)
		if err != nil {
			u.log.Warnf("Failed to find treatments for category %d: %+v", c.ID, err)
			return nil, err
		}
		if len(treatments) == 0 {
			continue
		}
		summaries = append(summaries, dto.CategorySummaryResponse{
			ID:             c.ID,
			Title:          c.Title,
			Description:    c.Description,
			TreatmentCount: int64(len(treatments)),
			Thumbnail:      converter.AbsoluteImageURL(u.mediaBaseURL, treatments[0].Image),
		})
	}
	return summaries, nil
}

// GetCategoryNav builds the navbar payload. Each category's treatment list is
// truncated to limit entries while total_count always reflects the full
// active count.
func (u *treatmentUsecase) GetCategoryNav(ctx context.Context, limit int) ([]dto.CategoryNavResponse, error) {
	if limit <= 0 {
		limit = DefaultNavTreatmentLimit
	}
	db := u.db.WithContext(ctx)

	categories, err := u.categoryRepo.FindActive(db)
	if err != nil {
		u.log.Warnf("Failed to find treatment categories: %+v", err)
		return nil, err
	}

	nav := make([]dto.CategoryNavResponse, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		treatments, err := u.treatRepo.FindActiveByCategory(db, c.ID, nil)
		if err != nil {
			u.log.Warnf("Failed to find treatments for category %d: %+v", c.ID, err)
			return nil, err
		}
		total, err := u.treatRepo.CountActiveByCategory(db, c.ID)
		if err != nil {
			u.log.Warnf("Failed to count treatments for category %d: %+v", c.ID, err)
			return nil, err
		}
		if len(treatments) > limit {
			treatments = treatments[:limit]
		}
		items := make([]dto.NavTreatmentResponse, 0, len(treatments))
		for _, t := range treatments {
			items = append(items, dto.NavTreatmentResponse{ID: t.ID, Name: t.Name})
		}
		nav = append(nav, dto.CategoryNavResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Treatments:  items,
			TotalCount:  total,
		})
	}
	return nav, nil
}

// GetTreatmentDetail loads one treatment with its benefits, steps and clinic
// pricing. A clinic filter both narrows the pricing rows and turns a
// treatment not sold at that clinic into a not-found.
func (u *treatmentUsecase) GetTreatmentDetail(ctx context.Context, id uint, clinicID *uint) (*dto.TreatmentDetailResponse, error) {
	db := u.db.WithContext(ctx)

	treatment, err := u.treatRepo.FindActiveByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	if clinicID != nil {
		priced, err := u.treatRepo.HasActivePricing(db, id, *clinicID)
		if err != nil {
			u.log.Warnf("Failed to check pricing for treatment %d at clinic %d: %+v", id, *clinicID, err)
			return nil, err
		}
		if !priced {
			return nil, ErrTreatmentNotAtClinic
		}
	}

	benefits, err := u.treatRepo.FindActiveBenefits(db, id)
	if err != nil {
		u.log.Warnf("Failed to find benefits for treatment %d: %+v", id, err)
		return nil, err
	}
	steps, err := u.treatRepo.FindActiveSteps(db, id)
	if err != nil {
		u.log.Warnf("Failed to find steps for treatment %d: %+v", id, err)
		return nil, err
	}
	pricing, err := u.treatRepo.FindActivePricing(db, id, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find pricing for treatment %d: %+v", id, err)
		return nil, err
	}

	return converter.TreatmentToDetailResponse(treatment, benefits, steps, pricing, u.mediaBaseURL), nil
}

func (u *treatmentUsecase) activeCategories(db *gorm.DB, categoryID *uint) ([]entity.TreatmentCategory, error) {
	if categoryID == nil {
		categories, err := u.categoryRepo.FindActive(db)
		if err != nil {
			u.log.Warnf("Failed to find treatment categories: %+v", err)
		}
		return categories, err
	}
	category, err := u.categoryRepo.FindActiveByID(db, *categoryID)
	if err != nil {
		u.log.Warnf("Failed to find treatment category %d: %+v", *categoryID, err)
		return nil, err
	}
	if category == nil {
		// Unknown category filters down to an empty page, not a 404.
		return nil, nil
	}
	return []entity.TreatmentCategory{*category}, nil
}
