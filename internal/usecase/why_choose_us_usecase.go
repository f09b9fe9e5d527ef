package usecase

import (
	"context"
	"errors"
	"fmt"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWhyChooseUsNotFound   = errors.New("benefit not found")
	ErrTooManyActiveBenefits = fmt.Errorf("at most %d benefits can be active at once", entity.MaxActiveWhyChooseUs)
)

type WhyChooseUsUsecase interface {
	GetWhyChooseUs(ctx context.Context) ([]dto.WhyChooseUsResponse, error)
	CreateWhyChooseUs(ctx context.Context, req *dto.SaveWhyChooseUsRequest) (*dto.WhyChooseUsResponse, error)
	UpdateWhyChooseUs(ctx context.Context, id uint, req *dto.SaveWhyChooseUsRequest) (*dto.WhyChooseUsResponse, error)
}

type whyChooseUsUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	benefitRepo repository.WhyChooseUsRepository
}

func NewWhyChooseUsUsecase(db *gorm.DB, log *logrus.Logger, benefitRepo repository.WhyChooseUsRepository) WhyChooseUsUsecase {
	return &whyChooseUsUsecase{
		db:          db,
		log:         log,
		benefitRepo: benefitRepo,
	}
}

func (u *whyChooseUsUsecase) GetWhyChooseUs(ctx context.Context) ([]dto.WhyChooseUsResponse, error) {
	benefits, err := u.benefitRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find benefits: %+v", err)
		return nil, err
	}
	return converter.WhyChooseUsToResponses(benefits), nil
}

// CreateWhyChooseUs inserts a benefit. Activating one is checked against the
// four-active cap inside a transaction so concurrent activations cannot
// overshoot it.
func (u *whyChooseUsUsecase) CreateWhyChooseUs(ctx context.Context, req *dto.SaveWhyChooseUsRequest) (*dto.WhyChooseUsResponse, error) {
	benefit := &entity.WhyChooseUs{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.Order,
		IsActive:    true,
	}
	if req.Icon == "" {
		benefit.Icon = entity.WhyChooseUsIcons[0]
	}
	if req.IsActive != nil {
		benefit.IsActive = *req.IsActive
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if benefit.IsActive {
			if err := u.checkActiveCap(tx, 0); err != nil {
				return err
			}
		}
		return u.benefitRepo.Create(tx, benefit)
	})
	if err != nil {
		if !errors.Is(err, ErrTooManyActiveBenefits) {
			u.log.Warnf("Failed to create benefit: %+v", err)
		}
		return nil, err
	}

	u.log.Infof("Benefit created: id=%d", benefit.ID)
	return converter.WhyChooseUsToResponse(benefit), nil
}

func (u *whyChooseUsUsecase) UpdateWhyChooseUs(ctx context.Context, id uint, req *dto.SaveWhyChooseUsRequest) (*dto.WhyChooseUsResponse, error) {
	var updated *entity.WhyChooseUs

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		benefit, err := u.benefitRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if benefit == nil {
			return ErrWhyChooseUsNotFound
		}

		benefit.Title = req.Title
		benefit.Description = req.Description
		if req.Icon != "" {
			benefit.Icon = req.Icon
		}
		benefit.SortOrder = req.Order
		if req.IsActive != nil {
			benefit.IsActive = *req.IsActive
		}

		if benefit.IsActive {
			if err := u.checkActiveCap(tx, id); err != nil {
				return err
			}
		}
		if err := u.benefitRepo.Save(tx, benefit); err != nil {
			return err
		}
		updated = benefit
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTooManyActiveBenefits) && !errors.Is(err, ErrWhyChooseUsNotFound) {
			u.log.Warnf("Failed to update benefit %d: %+v", id, err)
		}
		return nil, err
	}

	return converter.WhyChooseUsToResponse(updated), nil
}

func (u *whyChooseUsUsecase) checkActiveCap(tx *gorm.DB, excludeID uint) error {
	count, err := u.benefitRepo.CountActiveExcluding(tx, excludeID)
	if err != nil {
		return err
	}
	if count >= entity.MaxActiveWhyChooseUs {
		return ErrTooManyActiveBenefits
	}
	return nil
}
