package converter

import (
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

// LandingBgToResponse emits only the group matching the row's type. Image
// resolves to the static path, or to the first carousel slide.
func LandingBgToResponse(bg *entity.LandingPageBg, baseURL string) *dto.LandingBgResponse {
	resp := &dto.LandingBgResponse{
		ID:       bg.ID,
		Type:     string(bg.Type),
		IsActive: bg.IsActive,
	}
	switch bg.Type {
	case entity.LandingBgCarousel:
		resp.CarouselImages = make([]dto.CarouselImageResponse, 0, len(bg.CarouselImages))
		for _, img := range bg.CarouselImages {
			resp.CarouselImages = append(resp.CarouselImages, dto.CarouselImageResponse{
				ID:          img.ID,
				Title:       img.Title,
				Description: img.Description,
				Image:       AbsoluteImageURL(baseURL, img.Image),
				Order:       img.SortOrder,
			})
		}
		if len(resp.CarouselImages) > 0 {
			resp.Image = resp.CarouselImages[0].Image
		}
	default:
		resp.StaticImage = AbsoluteImageURL(baseURL, bg.StaticImage)
		resp.Image = resp.StaticImage
	}
	return resp
}

func LandingFAQsToResponses(faqs []entity.LandingFAQ) []dto.FAQResponse {
	responses := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		responses = append(responses, dto.FAQResponse{Question: f.Question, Answer: f.Answer})
	}
	return responses
}

func SkinConcernsToResponses(concerns []entity.SkinConcern, baseURL string) []dto.SkinConcernResponse {
	responses := make([]dto.SkinConcernResponse, 0, len(concerns))
	for _, c := range concerns {
		responses = append(responses, dto.SkinConcernResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Icon:        AbsoluteImageURL(baseURL, c.Icon),
			Treatments:  c.Treatments,
			Products:    c.Products,
			Results:     c.Results,
			Order:       c.SortOrder,
		})
	}
	return responses
}

func TestimonialsToResponses(testimonials []entity.Testimonial, baseURL string) []dto.TestimonialResponse {
	responses := make([]dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		responses = append(responses, dto.TestimonialResponse{
			ID:           t.ID,
			Screenshot:   AbsoluteImageURL(baseURL, t.Screenshot),
			UserImage:    AbsoluteImageURL(baseURL, t.UserImage),
			ReviewerName: t.ReviewerName,
			ReviewText:   t.ReviewText,
			Rating:       t.Rating,
			Order:        t.SortOrder,
			IsActive:     t.IsActive,
			CreatedAt:    t.CreatedAt,
		})
	}
	return responses
}

func ResultsToResponses(results []entity.Result, baseURL string) []dto.ResultResponse {
	responses := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, dto.ResultResponse{
			ID:          r.ID,
			Condition:   r.Condition,
			Duration:    r.Duration,
			Description: r.Description,
			ResultImage: AbsoluteImageURL(baseURL, r.ResultImage),
			IsFeatured:  r.IsFeatured,
			IsActive:    r.IsActive,
			CreatedAt:   r.CreatedAt,
		})
	}
	return responses
}

func WhyChooseUsToResponse(b *entity.WhyChooseUs) *dto.WhyChooseUsResponse {
	return &dto.WhyChooseUsResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Icon:        b.Icon,
		Order:       b.SortOrder,
		IsActive:    b.IsActive,
	}
}

func WhyChooseUsToResponses(benefits []entity.WhyChooseUs) []dto.WhyChooseUsResponse {
	responses := make([]dto.WhyChooseUsResponse, 0, len(benefits))
	for i := range benefits {
		responses = append(responses, *WhyChooseUsToResponse(&benefits[i]))
	}
	return responses
}
