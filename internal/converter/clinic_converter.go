package converter

import (
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

func ClinicToListResponse(c *entity.Clinic, baseURL string) dto.ClinicListResponse {
	return dto.ClinicListResponse{
		ID:             c.ID,
		Name:           c.Name,
		Specialization: c.Specialization,
		Address:        c.Address,
		City:           c.City,
		Phone:          c.Phone,
		Email:          c.Email,
		Rating:         c.Rating,
		ReviewsCount:   c.ReviewsCount,
		ReviewsText:    c.ReviewsText,
		BusinessHours:  c.BusinessHours,
		HoursNote:      c.HoursNote,
		MainImage:      AbsoluteImageURL(baseURL, c.MainImage),
		GoogleMapsURL:  c.GoogleMapsURL,
		IsActive:       c.IsActive,
	}
}

func ClinicsToListResponses(clinics []entity.Clinic, baseURL string) []dto.ClinicListResponse {
	responses := make([]dto.ClinicListResponse, 0, len(clinics))
	for i := range clinics {
		responses = append(responses, ClinicToListResponse(&clinics[i], baseURL))
	}
	return responses
}

func ClinicToDetailResponse(c *entity.Clinic, treatments []dto.TreatmentItemResponse, offers []dto.OfferResponse, baseURL string) *dto.ClinicDetailResponse {
	resp := &dto.ClinicDetailResponse{
		ID:             c.ID,
		Name:           c.Name,
		Specialization: c.Specialization,
		Description:    c.Description,
		Address:        c.Address,
		City:           c.City,
		Phone:          c.Phone,
		Email:          c.Email,
		Rating:         c.Rating,
		ReviewsCount:   c.ReviewsCount,
		ReviewsText:    c.ReviewsText,
		BusinessHours:  c.BusinessHours,
		HoursNote:      c.HoursNote,
		MainImage:      AbsoluteImageURL(baseURL, c.MainImage),
		GoogleMapsURL:  c.GoogleMapsURL,
		MapEmbedURL:    c.MapEmbedURL,
		IsActive:       c.IsActive,
		Images:         make([]dto.ClinicImageResponse, 0, len(c.Images)),
		TeamMembers:    make([]dto.ClinicTeamMemberResponse, 0, len(c.TeamMembers)),
		Treatments:     treatments,
		Offers:         offers,
	}
	for _, img := range c.Images {
		resp.Images = append(resp.Images, dto.ClinicImageResponse{
			ID:      img.ID,
			Image:   AbsoluteImageURL(baseURL, img.Image),
			Caption: img.Caption,
			Order:   img.SortOrder,
		})
	}
	for _, m := range c.TeamMembers {
		resp.TeamMembers = append(resp.TeamMembers, dto.ClinicTeamMemberResponse{
			ID:    m.ID,
			Name:  m.Name,
			Role:  m.Role,
			Bio:   m.Bio,
			Image: AbsoluteImageURL(baseURL, m.Image),
			Order: m.SortOrder,
		})
	}
	return resp
}

func ClinicToRef(c *entity.Clinic) dto.ClinicRefResponse {
	return dto.ClinicRefResponse{ID: c.ID, Name: c.Name, City: c.City}
}
