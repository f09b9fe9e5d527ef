package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAboutUsNotFound = errors.New("about us content not found")

type AboutUsUsecase interface {
	// GetAboutUs returns the page-type-shaped About-Us payload. A landing
	// request falls back to normal content when no landing row exists.
	GetAboutUs(ctx context.Context, isLanding bool) (interface{}, error)
}

type aboutUsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	aboutRepo    repository.AboutUsRepository
	mediaBaseURL string
}

func NewAboutUsUsecase(db *gorm.DB, log *logrus.Logger, aboutRepo repository.AboutUsRepository, mediaBaseURL string) AboutUsUsecase {
	return &aboutUsUsecase{
		db:           db,
		log:          log,
		aboutRepo:    aboutRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (u *aboutUsUsecase) GetAboutUs(ctx context.Context, isLanding bool) (interface{}, error) {
	db := u.db.WithContext(ctx)

	if isLanding {
		about, err := u.aboutRepo.FindActiveByPageType(db, entity.AboutUsPageLanding)
		if err != nil {
			u.log.Warnf("Failed to find landing about us: %+v", err)
			return nil, err
		}
		if about != nil {
			return converter.AboutUsToLandingResponse(about, u.mediaBaseURL), nil
		}
		// No landing row; fall through to the normal page content.
	}

	about, err := u.aboutRepo.FindActiveByPageType(db, entity.AboutUsPageNormal)
	if err != nil {
		u.log.Warnf("Failed to find about us: %+v", err)
		return nil, err
	}
	if about == nil {
		return nil, ErrAboutUsNotFound
	}

	team, err := u.aboutRepo.FindActiveTeamMembers(db)
	if err != nil {
		u.log.Warnf("Failed to find team members: %+v", err)
		return nil, err
	}
	highlights, err := u.aboutRepo.FindActivePhilosophyHighlights(db)
	if err != nil {
		u.log.Warnf("Failed to find philosophy highlights: %+v", err)
		return nil, err
	}

	return converter.AboutUsToNormalResponse(about, team, highlights, u.mediaBaseURL), nil
}
