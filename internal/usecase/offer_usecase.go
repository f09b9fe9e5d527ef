package usecase

import (
	"context"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OfferUsecase interface {
	GetOffers(ctx context.Context, clinicID *uint) ([]dto.OfferResponse, error)
}

type offerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	offerRepo    repository.OfferRepository
	mediaBaseURL string
}

func NewOfferUsecase(db *gorm.DB, log *logrus.Logger, offerRepo repository.OfferRepository, mediaBaseURL string) OfferUsecase {
	return &offerUsecase{
		db:           db,
		log:          log,
		offerRepo:    offerRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (u *offerUsecase) GetOffers(ctx context.Context, clinicID *uint) ([]dto.OfferResponse, error) {
	offers, err := u.offerRepo.FindActive(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find offers: %+v", err)
		return nil, err
	}
	return converter.OffersToResponses(offers, u.mediaBaseURL), nil
}
