package dto

import "github.com/shopspring/decimal"

// Response DTOs

type ClinicListResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Specialization string          `json:"specialization"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Rating         decimal.Decimal `json:"rating"`
	ReviewsCount   int             `json:"reviews_count"`
	ReviewsText    string          `json:"reviews_text"`
	BusinessHours  string          `json:"business_hours"`
	HoursNote      string          `json:"hours_note"`
	MainImage      string          `json:"main_image"`
	GoogleMapsURL  string          `json:"google_maps_url"`
	IsActive       bool            `json:"is_active"`
}

type ClinicImageResponse struct {
	ID      uint   `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

type ClinicTeamMemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

type ClinicDetailResponse struct {
	ID             uint                       `json:"id"`
	Name           string                     `json:"name"`
	Specialization string                     `json:"specialization"`
	Description    string                     `json:"description"`
	Address        string                     `json:"address"`
	City           string                     `json:"city"`
	Phone          string                     `json:"phone"`
	Email          string                     `json:"email"`
	Rating         decimal.Decimal            `json:"rating"`
	ReviewsCount   int                        `json:"reviews_count"`
	ReviewsText    string                     `json:"reviews_text"`
	BusinessHours  string                     `json:"business_hours"`
	HoursNote      string                     `json:"hours_note"`
	MainImage      string                     `json:"main_image"`
	GoogleMapsURL  string                     `json:"google_maps_url"`
	MapEmbedURL    string                     `json:"map_embed_url"`
	IsActive       bool                       `json:"is_active"`
	Images         []ClinicImageResponse      `json:"images"`
	TeamMembers    []ClinicTeamMemberResponse `json:"team_members"`
	Treatments     []TreatmentItemResponse    `json:"treatments"`
	Offers         []OfferResponse            `json:"offers"`
}

type ClinicRefResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type ClinicTreatmentsResponse struct {
	Clinic     ClinicRefResponse       `json:"clinic"`
	Treatments []TreatmentItemResponse `json:"treatments"`
}

type ClinicOffersResponse struct {
	Clinic ClinicRefResponse `json:"clinic"`
	Offers []OfferResponse   `json:"offers"`
}
