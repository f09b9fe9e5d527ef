package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"
	"wellness-cms-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSettingsExists            = errors.New("site settings already exist")
	ErrSettingsDeletionForbidden = errors.New("site settings cannot be deleted")
)

type SiteSettingsUsecase interface {
	// GetSiteSettings serves the singleton row, or the hardcoded defaults
	// when none exists yet.
	GetSiteSettings(ctx context.Context) (*dto.SiteSettingsResponse, error)
	UpdateSiteSettings(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error)
	DeleteSiteSettings(ctx context.Context) error
}

type siteSettingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.SiteSettingsRepository
	cache        *service.PageCache
}

func NewSiteSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SiteSettingsRepository,
	cache *service.PageCache,
) SiteSettingsUsecase {
	return &siteSettingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

func (u *siteSettingsUsecase) GetSiteSettings(ctx context.Context) (*dto.SiteSettingsResponse, error) {
	var cached dto.SiteSettingsResponse
	if u.cache.Get(ctx, service.CacheKeySiteSettings, &cached) {
		return &cached, nil
	}

	settings, err := u.settingsRepo.Find(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find site settings: %+v", err)
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSiteSettings()
	}

	resp := converter.SiteSettingsToResponse(settings)
	u.cache.Set(ctx, service.CacheKeySiteSettings, resp)
	return resp, nil
}

// UpdateSiteSettings replaces the singleton row, creating it on first save.
// Legacy scalar contact fields are folded into the list fields before
// persisting.
func (u *siteSettingsUsecase) UpdateSiteSettings(ctx context.Context, req *dto.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	var saved *entity.SiteSettings

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := u.settingsRepo.Find(tx)
		if err != nil {
			return err
		}

		creating := settings == nil
		if creating {
			settings = &entity.SiteSettings{}
		}
		applySettingsRequest(settings, req)
		settings.FoldLegacyContacts()

		if creating {
			// Guard against a concurrent first save slipping in a second row.
			count, err := u.settingsRepo.Count(tx)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrSettingsExists
			}
			if err := u.settingsRepo.Create(tx, settings); err != nil {
				return err
			}
		} else if err := u.settingsRepo.Save(tx, settings); err != nil {
			return err
		}

		saved = settings
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSettingsExists) {
			u.log.Warnf("Failed to save site settings: %+v", err)
		}
		return nil, err
	}

	u.cache.Invalidate(ctx, service.CacheKeySiteSettings)
	u.log.Info("Site settings saved")
	return converter.SiteSettingsToResponse(saved), nil
}

// DeleteSiteSettings always refuses; the singleton row is permanent.
func (u *siteSettingsUsecase) DeleteSiteSettings(ctx context.Context) error {
	return ErrSettingsDeletionForbidden
}

func applySettingsRequest(settings *entity.SiteSettings, req *dto.UpdateSiteSettingsRequest) {
	settings.SiteName = req.SiteName
	settings.SiteTagline = req.SiteTagline
	settings.SiteDescription = req.SiteDescription
	settings.ContactEmails = datatypes.JSONSlice[string](req.ContactEmails)
	settings.ContactPhones = datatypes.JSONSlice[string](req.ContactPhones)
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone
	settings.Address = req.Address
	settings.SocialFacebook = req.SocialFacebook
	settings.SocialInstagram = req.SocialInstagram
	settings.SocialTwitter = req.SocialTwitter
	settings.BusinessHours = req.BusinessHours
	settings.OffersStripColor = req.OffersStripColor
	settings.OffersStripGradientColor = req.OffersStripGradientColor
}
