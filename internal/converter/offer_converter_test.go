package converter

import (
	"testing"
	"time"

	"wellness-cms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestOfferToResponseOn(t *testing.T) {
	parse := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	offer := &entity.Offer{
		ID:         7,
		Header:     "Monsoon Glow",
		Image:      "offers/monsoon.jpg",
		ValidFrom:  parse("2026-08-10"),
		ValidUntil: parse("2026-08-20"),
		Clinic:     entity.Clinic{Name: "Delhi Central"},
	}

	t.Run("inside the window", func(t *testing.T) {
		resp := OfferToResponseOn(offer, parse("2026-08-15"), "https://cdn.test/media")

		assert.Equal(t, "2026-08-10", resp.ValidFrom)
		assert.Equal(t, "2026-08-20", resp.ValidUntil)
		assert.True(t, resp.IsValid)
		assert.Equal(t, 5, resp.DaysRemaining)
		assert.Equal(t, "Delhi Central", resp.ClinicName)
		assert.Equal(t, "https://cdn.test/media/offers/monsoon.jpg", resp.Image)
	})

	t.Run("after expiry", func(t *testing.T) {
		resp := OfferToResponseOn(offer, parse("2026-09-01"), "")

		assert.False(t, resp.IsValid)
		assert.Equal(t, 0, resp.DaysRemaining)
	})
}
