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

var ErrClinicNotFound = errors.New("clinic not found")

type ClinicUsecase interface {
	GetClinics(ctx context.Context) ([]dto.ClinicListResponse, error)
	GetClinicDetail(ctx context.Context, id uint) (*dto.ClinicDetailResponse, error)
	GetClinicTreatments(ctx context.Context, id uint) (*dto.ClinicTreatmentsResponse, error)
	GetClinicOffers(ctx context.Context, id uint) (*dto.ClinicOffersResponse, error)
}

type clinicUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	treatRepo    repository.TreatmentRepository
	offerRepo    repository.OfferRepository
	mediaBaseURL string
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	treatRepo repository.TreatmentRepository,
	offerRepo repository.OfferRepository,
	mediaBaseURL string,
) ClinicUsecase {
	return &clinicUsecase{
		db:           db,
		log:          log,
		clinicRepo:   clinicRepo,
		treatRepo:    treatRepo,
		offerRepo:    offerRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (u *clinicUsecase) GetClinics(ctx context.Context) ([]dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find clinics: %+v", err)
		return nil, err
	}
	return converter.ClinicsToListResponses(clinics, u.mediaBaseURL), nil
}

// GetClinicDetail aggregates the clinic with the treatments priced there and
// its active offers.
func (u *clinicUsecase) GetClinicDetail(ctx context.Context, id uint) (*dto.ClinicDetailResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.findClinic(db, id)
	if err != nil {
		return nil, err
	}

	treatments, err := u.treatRepo.FindByClinic(db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatments for clinic %d: %+v", id, err)
		return nil, err
	}
	offers, err := u.offerRepo.FindActive(db, &id)
	if err != nil {
		u.log.Warnf("Failed to find offers for clinic %d: %+v", id, err)
		return nil, err
	}

	return converter.ClinicToDetailResponse(
		clinic,
		converter.TreatmentsToItemResponses(treatments, u.mediaBaseURL),
		converter.OffersToResponses(offers, u.mediaBaseURL),
		u.mediaBaseURL,
	), nil
}

func (u *clinicUsecase) GetClinicTreatments(ctx context.Context, id uint) (*dto.ClinicTreatmentsResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.findClinic(db, id)
	if err != nil {
		return nil, err
	}
	treatments, err := u.treatRepo.FindByClinic(db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatments for clinic %d: %+v", id, err)
		return nil, err
	}

	return &dto.ClinicTreatmentsResponse{
		Clinic:     converter.ClinicToRef(clinic),
		Treatments: converter.TreatmentsToItemResponses(treatments, u.mediaBaseURL),
	}, nil
}

func (u *clinicUsecase) GetClinicOffers(ctx context.Context, id uint) (*dto.ClinicOffersResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.findClinic(db, id)
	if err != nil {
		return nil, err
	}
	offers, err := u.offerRepo.FindActive(db, &id)
	if err != nil {
		u.log.Warnf("Failed to find offers for clinic %d: %+v", id, err)
		return nil, err
	}

	return &dto.ClinicOffersResponse{
		Clinic: converter.ClinicToRef(clinic),
		Offers: converter.OffersToResponses(offers, u.mediaBaseURL),
	}, nil
}

func (u *clinicUsecase) findClinic(db *gorm.DB, id uint) (*entity.Clinic, error) {
	clinic, err := u.clinicRepo.FindActiveByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return clinic, nil
}
