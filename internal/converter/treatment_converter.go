package converter

import (
	"sort"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

// PricingToResponses converts pricing rows sorted by order then clinic name.
// Rows whose Clinic association was not loaded still convert, with an empty
// clinic name.
func PricingToResponses(pricing []entity.TreatmentClinicPricing) []dto.ClinicPricingResponse {
	sorted := make([]entity.TreatmentClinicPricing, len(pricing))
	copy(sorted, pricing)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].Clinic.Name < sorted[j].Clinic.Name
	})

	responses := make([]dto.ClinicPricingResponse, 0, len(sorted))
	for _, p := range sorted {
		responses = append(responses, dto.ClinicPricingResponse{
			ClinicID:   p.ClinicID,
			ClinicName: p.Clinic.Name,
			Price:      p.Price,
			Order:      p.SortOrder,
			IsActive:   p.IsActive,
		})
	}
	return responses
}

func TreatmentToItemResponse(t *entity.Treatment, baseURL string) dto.TreatmentItemResponse {
	return dto.TreatmentItemResponse{
		ID:            t.ID,
		Name:          t.Name,
		Duration:      t.Duration,
		Description:   t.Description,
		Image:         AbsoluteImageURL(baseURL, t.Image),
		IsActive:      t.IsActive,
		ClinicPricing: PricingToResponses(t.ClinicPricing),
	}
}

func TreatmentsToItemResponses(treatments []entity.Treatment, baseURL string) []dto.TreatmentItemResponse {
	responses := make([]dto.TreatmentItemResponse, 0, len(treatments))
	for i := range treatments {
		responses = append(responses, TreatmentToItemResponse(&treatments[i], baseURL))
	}
	return responses
}

func TreatmentToLandingResponse(t *entity.Treatment, baseURL string) dto.TreatmentLandingResponse {
	return dto.TreatmentLandingResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Image:         AbsoluteImageURL(baseURL, t.Image),
		Duration:      t.Duration,
		ClinicPricing: PricingToResponses(t.ClinicPricing),
	}
}

func TreatmentToDetailResponse(t *entity.Treatment, benefits []entity.TreatmentBenefit, steps []entity.TreatmentStep, pricing []entity.TreatmentClinicPricing, baseURL string) *dto.TreatmentDetailResponse {
	resp := &dto.TreatmentDetailResponse{
		ID:   t.ID,
		Name: t.Name,
		Category: dto.CategoryRefResponse{
			ID:          t.Category.ID,
			Title:       t.Category.Title,
			Description: t.Category.Description,
		},
		Duration:      t.Duration,
		Description:   t.Description,
		Image:         AbsoluteImageURL(baseURL, t.Image),
		IsFeatured:    t.IsFeatured,
		Order:         t.SortOrder,
		IsActive:      t.IsActive,
		Benefits:      make([]dto.TreatmentBenefitResponse, 0, len(benefits)),
		Steps:         make([]dto.TreatmentStepResponse, 0, len(steps)),
		ClinicPricing: PricingToResponses(pricing),
	}
	for _, b := range benefits {
		resp.Benefits = append(resp.Benefits, dto.TreatmentBenefitResponse{
			Title:       b.Title,
			Description: b.Description,
		})
	}
	for _, s := range steps {
		resp.Steps = append(resp.Steps, dto.TreatmentStepResponse{
			Title:       s.Title,
			Description: s.Description,
			StepNumber:  s.StepNumber,
		})
	}
	return resp
}

func TreatmentFAQsToResponses(faqs []entity.TreatmentFAQ) []dto.FAQResponse {
	responses := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		responses = append(responses, dto.FAQResponse{Question: f.Question, Answer: f.Answer})
	}
	return responses
}
