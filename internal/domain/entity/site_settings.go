package entity

import (
	"gorm.io/datatypes"
)

// SiteSettings is the singleton settings aggregate. The store allows at most
// one row and deletion is always rejected.
//
// Contact info is carried in two representations: list-valued fields and a
// legacy scalar pair kept for backward-compatible reads. The legacy values
// are folded into the lists on save and merged at read time.
type SiteSettings struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	SiteName        string `gorm:"type:varchar(100);not null" json:"site_name"`
	SiteTagline     string `gorm:"type:varchar(200)" json:"site_tagline"`
	SiteDescription string `gorm:"type:text" json:"site_description"`

	ContactEmails datatypes.JSONSlice[string] `gorm:"type:json" json:"contact_emails"`
	ContactPhones datatypes.JSONSlice[string] `gorm:"type:json" json:"contact_phones"`

	// Legacy single-value fields, superseded by the lists above.
	ContactEmail string `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone string `gorm:"type:varchar(20)" json:"contact_phone"`

	Address         string `gorm:"type:text" json:"address"`
	SocialFacebook  string `gorm:"type:varchar(500)" json:"social_facebook"`
	SocialInstagram string `gorm:"type:varchar(500)" json:"social_instagram"`
	SocialTwitter   string `gorm:"type:varchar(500)" json:"social_twitter"`
	BusinessHours   string `gorm:"type:text" json:"business_hours"`

	OffersStripColor         string `gorm:"type:varchar(7)" json:"offers_strip_color"`
	OffersStripGradientColor string `gorm:"type:varchar(7)" json:"offers_strip_gradient_color"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// FoldLegacyContacts migrates the legacy scalar fields into the list fields
// when the lists are empty. One-directional and idempotent; runs on every save.
func (s *SiteSettings) FoldLegacyContacts() {
	if s.ContactEmail != "" && len(s.ContactEmails) == 0 {
		s.ContactEmails = datatypes.JSONSlice[string]{s.ContactEmail}
	}
	if s.ContactPhone != "" && len(s.ContactPhones) == 0 {
		s.ContactPhones = datatypes.JSONSlice[string]{s.ContactPhone}
	}
}

// AllContactEmails merges the list field with the legacy field, list values
// first, legacy last, without duplicating an already-listed legacy value.
func (s *SiteSettings) AllContactEmails() []string {
	return mergeLegacy(s.ContactEmails, s.ContactEmail)
}

// AllContactPhones merges phones the same way AllContactEmails merges emails.
func (s *SiteSettings) AllContactPhones() []string {
	return mergeLegacy(s.ContactPhones, s.ContactPhone)
}

// PrimaryEmail returns the first merged email, or "" if none exist.
func (s *SiteSettings) PrimaryEmail() string {
	return first(s.AllContactEmails())
}

// PrimaryPhone returns the first merged phone, or "" if none exist.
func (s *SiteSettings) PrimaryPhone() string {
	return first(s.AllContactPhones())
}

func mergeLegacy(list []string, legacy string) []string {
	merged := make([]string, 0, len(list)+1)
	merged = append(merged, list...)
	if legacy == "" {
		return merged
	}
	for _, v := range merged {
		if v == legacy {
			return merged
		}
	}
	return append(merged, legacy)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// DefaultSiteSettings is the hardcoded payload served when no settings row
// exists yet.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:        "Monalisa Wellness",
		SiteTagline:     "Skin Clinic",
		SiteDescription: "Expert skincare treatments and products that transform your skin and enhance your natural beauty.",
		ContactEmail:    "info@monalisaclinic.com",
		ContactPhone:    "092891 57655",
		Address:         "Delhi & Gurugram\nMultiple Locations",
		BusinessHours:   "Monday - Sunday: Open Daily\nCloses at: 7:30 PM\nCall for specific timings",

		OffersStripColor:         "#DC2626",
		OffersStripGradientColor: "#B91C1C",
	}
}
