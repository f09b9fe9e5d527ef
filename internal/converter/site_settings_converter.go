package converter

import (
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

func SiteSettingsToResponse(s *entity.SiteSettings) *dto.SiteSettingsResponse {
	return &dto.SiteSettingsResponse{
		SiteName:                 s.SiteName,
		SiteTagline:              s.SiteTagline,
		SiteDescription:          s.SiteDescription,
		ContactEmails:            append([]string{}, s.ContactEmails...),
		ContactPhones:            append([]string{}, s.ContactPhones...),
		AllContactEmails:         s.AllContactEmails(),
		AllContactPhones:         s.AllContactPhones(),
		PrimaryEmail:             s.PrimaryEmail(),
		PrimaryPhone:             s.PrimaryPhone(),
		ContactEmail:             s.ContactEmail,
		ContactPhone:             s.ContactPhone,
		Address:                  s.Address,
		SocialFacebook:           s.SocialFacebook,
		SocialInstagram:          s.SocialInstagram,
		SocialTwitter:            s.SocialTwitter,
		BusinessHours:            s.BusinessHours,
		OffersStripColor:         s.OffersStripColor,
		OffersStripGradientColor: s.OffersStripGradientColor,
	}
}
