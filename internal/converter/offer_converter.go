package converter

import (
	"time"

	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

const offerDateLayout = "2006-01-02"

// OfferToResponseOn evaluates the validity window against the given day so
// callers (and tests) control the clock.
func OfferToResponseOn(o *entity.Offer, day time.Time, baseURL string) dto.OfferResponse {
	return dto.OfferResponse{
		ID:            o.ID,
		Header:        o.Header,
		Description:   o.Description,
		Image:         AbsoluteImageURL(baseURL, o.Image),
		ClinicName:    o.Clinic.Name,
		ValidFrom:     o.ValidFrom.Format(offerDateLayout),
		ValidUntil:    o.ValidUntil.Format(offerDateLayout),
		IsFeatured:    o.IsFeatured,
		IsValid:       o.IsValidOn(day),
		DaysRemaining: o.DaysRemainingOn(day),
	}
}

func OffersToResponses(offers []entity.Offer, baseURL string) []dto.OfferResponse {
	now := time.Now().UTC()
	responses := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		responses = append(responses, OfferToResponseOn(&offers[i], now, baseURL))
	}
	return responses
}
