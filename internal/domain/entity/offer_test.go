package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOfferValidity(t *testing.T) {
	offer := &Offer{
		ValidFrom:  day("2026-08-10"),
		ValidUntil: day("2026-08-20"),
	}

	t.Run("valid inside the window", func(t *testing.T) {
		assert.True(t, offer.IsValidOn(day("2026-08-15")))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		assert.True(t, offer.IsValidOn(day("2026-08-10")))
		assert.True(t, offer.IsValidOn(day("2026-08-20")))
	})

	t.Run("invalid outside the window", func(t *testing.T) {
		assert.False(t, offer.IsValidOn(day("2026-08-09")))
		assert.False(t, offer.IsValidOn(day("2026-08-21")))
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		late := day("2026-08-20").Add(23*time.Hour + 59*time.Minute)
		assert.True(t, offer.IsValidOn(late))
	})
}

func TestOfferDaysRemaining(t *testing.T) {
	offer := &Offer{
		ValidFrom:  day("2026-08-10"),
		ValidUntil: day("2026-08-20"),
	}

	t.Run("counts whole days until the end", func(t *testing.T) {
		assert.Equal(t, 10, offer.DaysRemainingOn(day("2026-08-10")))
		assert.Equal(t, 5, offer.DaysRemainingOn(day("2026-08-15")))
	})

	t.Run("zero on the last day", func(t *testing.T) {
		assert.Equal(t, 0, offer.DaysRemainingOn(day("2026-08-20")))
	})

	t.Run("never negative after expiry", func(t *testing.T) {
		assert.Equal(t, 0, offer.DaysRemainingOn(day("2026-09-01")))
	})
}
