package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/repository"
	"wellness-cms-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrLandingBgNotFound = errors.New("no active landing background")

// ContentUsecase serves the read-only landing page and listing content that
// has no write operations of its own.
type ContentUsecase interface {
	GetLandingBackground(ctx context.Context) (*dto.LandingBgResponse, error)
	GetTreatmentFAQs(ctx context.Context) ([]dto.FAQResponse, error)
	GetLandingFAQs(ctx context.Context) ([]dto.FAQResponse, error)
	GetSkinConcerns(ctx context.Context) ([]dto.SkinConcernResponse, error)
	GetTestimonials(ctx context.Context) ([]dto.TestimonialResponse, error)
	GetResults(ctx context.Context) ([]dto.ResultResponse, error)
	// GetLandingResult returns the single hero image, with result_image ""
	// when no active result exists.
	GetLandingResult(ctx context.Context) (*dto.ResultLandingResponse, error)
}

type contentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	landingBgRepo   repository.LandingBgRepository
	treatFAQRepo    repository.TreatmentFAQRepository
	landingFAQRepo  repository.LandingFAQRepository
	skinConcernRepo repository.SkinConcernRepository
	testimonialRepo repository.TestimonialRepository
	resultRepo      repository.ResultRepository
	cache           *service.PageCache
	mediaBaseURL    string
}

func NewContentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	landingBgRepo repository.LandingBgRepository,
	treatFAQRepo repository.TreatmentFAQRepository,
	landingFAQRepo repository.LandingFAQRepository,
	skinConcernRepo repository.SkinConcernRepository,
	testimonialRepo repository.TestimonialRepository,
	resultRepo repository.ResultRepository,
	cache *service.PageCache,
	mediaBaseURL string,
) ContentUsecase {
	return &contentUsecase{
		db:              db,
		log:             log,
		landingBgRepo:   landingBgRepo,
		treatFAQRepo:    treatFAQRepo,
		landingFAQRepo:  landingFAQRepo,
		skinConcernRepo: skinConcernRepo,
		testimonialRepo: testimonialRepo,
		resultRepo:      resultRepo,
		cache:           cache,
		mediaBaseURL:    mediaBaseURL,
	}
}

func (u *contentUsecase) GetLandingBackground(ctx context.Context) (*dto.LandingBgResponse, error) {
	var cached dto.LandingBgResponse
	if u.cache.Get(ctx, service.CacheKeyLandingBg, &cached) {
		return &cached, nil
	}

	bg, err := u.landingBgRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find landing background: %+v", err)
		return nil, err
	}
	if bg == nil {
		return nil, ErrLandingBgNotFound
	}

	resp := converter.LandingBgToResponse(bg, u.mediaBaseURL)
	u.cache.Set(ctx, service.CacheKeyLandingBg, resp)
	return resp, nil
}

func (u *contentUsecase) GetTreatmentFAQs(ctx context.Context) ([]dto.FAQResponse, error) {
	faqs, err := u.treatFAQRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find treatment FAQs: %+v", err)
		return nil, err
	}
	return converter.TreatmentFAQsToResponses(faqs), nil
}

func (u *contentUsecase) GetLandingFAQs(ctx context.Context) ([]dto.FAQResponse, error) {
	faqs, err := u.landingFAQRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find landing FAQs: %+v", err)
		return nil, err
	}
	return converter.LandingFAQsToResponses(faqs), nil
}

func (u *contentUsecase) GetSkinConcerns(ctx context.Context) ([]dto.SkinConcernResponse, error) {
	concerns, err := u.skinConcernRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find skin concerns: %+v", err)
		return nil, err
	}
	return converter.SkinConcernsToResponses(concerns, u.mediaBaseURL), nil
}

func (u *contentUsecase) GetTestimonials(ctx context.Context) ([]dto.TestimonialResponse, error) {
	testimonials, err := u.testimonialRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find testimonials: %+v", err)
		return nil, err
	}
	return converter.TestimonialsToResponses(testimonials, u.mediaBaseURL), nil
}

func (u *contentUsecase) GetResults(ctx context.Context) ([]dto.ResultResponse, error) {
	results, err := u.resultRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find results: %+v", err)
		return nil, err
	}
	return converter.ResultsToResponses(results, u.mediaBaseURL), nil
}

func (u *contentUsecase) GetLandingResult(ctx context.Context) (*dto.ResultLandingResponse, error) {
	result, err := u.resultRepo.FindLandingResult(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find landing result: %+v", err)
		return nil, err
	}
	resp := &dto.ResultLandingResponse{}
	if result != nil {
		resp.ResultImage = converter.AbsoluteImageURL(u.mediaBaseURL, result.ResultImage)
	}
	return resp, nil
}
