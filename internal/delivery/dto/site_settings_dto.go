package dto

// Request DTOs

type UpdateSiteSettingsRequest struct {
	SiteName                 string   `json:"site_name" validate:"required,max=100"`
	SiteTagline              string   `json:"site_tagline" validate:"omitempty,max=200"`
	SiteDescription          string   `json:"site_description"`
	ContactEmails            []string `json:"contact_emails" validate:"omitempty,dive,email"`
	ContactPhones            []string `json:"contact_phones" validate:"omitempty,dive,phone"`
	ContactEmail             string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone             string   `json:"contact_phone" validate:"omitempty,max=20"`
	Address                  string   `json:"address"`
	SocialFacebook           string   `json:"social_facebook" validate:"omitempty,url"`
	SocialInstagram          string   `json:"social_instagram" validate:"omitempty,url"`
	SocialTwitter            string   `json:"social_twitter" validate:"omitempty,url"`
	BusinessHours            string   `json:"business_hours"`
	OffersStripColor         string   `json:"offers_strip_color" validate:"omitempty,hexcolor"`
	OffersStripGradientColor string   `json:"offers_strip_gradient_color" validate:"omitempty,hexcolor"`
}

// Response DTOs

type SiteSettingsResponse struct {
	SiteName                 string   `json:"site_name"`
	SiteTagline              string   `json:"site_tagline"`
	SiteDescription          string   `json:"site_description"`
	ContactEmails            []string `json:"contact_emails"`
	ContactPhones            []string `json:"contact_phones"`
	AllContactEmails         []string `json:"all_contact_emails"`
	AllContactPhones         []string `json:"all_contact_phones"`
	PrimaryEmail             string   `json:"primary_email"`
	PrimaryPhone             string   `json:"primary_phone"`
	ContactEmail             string   `json:"contact_email"`
	ContactPhone             string   `json:"contact_phone"`
	Address                  string   `json:"address"`
	SocialFacebook           string   `json:"social_facebook"`
	SocialInstagram          string   `json:"social_instagram"`
	SocialTwitter            string   `json:"social_twitter"`
	BusinessHours            string   `json:"business_hours"`
	OffersStripColor         string   `json:"offers_strip_color"`
	OffersStripGradientColor string   `json:"offers_strip_gradient_color"`
}
