package converter

import (
	"testing"

	"wellness-cms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteImageURL(t *testing.T) {
	const base = "https://cdn.example.com/media"

	t.Run("joins base and relative path", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/media/img/a.jpg", AbsoluteImageURL(base, "img/a.jpg"))
		assert.Equal(t, "https://cdn.example.com/media/img/a.jpg", AbsoluteImageURL(base+"/", "/img/a.jpg"))
	})

	t.Run("empty path maps to empty string", func(t *testing.T) {
		assert.Equal(t, "", AbsoluteImageURL(base, ""))
	})

	t.Run("absolute values pass through", func(t *testing.T) {
		assert.Equal(t, "http://other.example.com/x.png", AbsoluteImageURL(base, "http://other.example.com/x.png"))
		assert.Equal(t, "https://other.example.com/x.png", AbsoluteImageURL(base, "https://other.example.com/x.png"))
	})

	t.Run("no base yields empty string for relative paths", func(t *testing.T) {
		assert.Equal(t, "", AbsoluteImageURL("", "img/a.jpg"))
	})
}

func TestPricingToResponses(t *testing.T) {
	pricing := []entity.TreatmentClinicPricing{
		{ClinicID: 2, Price: "₹2000", SortOrder: 1, Clinic: entity.Clinic{Name: "Gurugram"}},
		{ClinicID: 3, Price: "₹1500", SortOrder: 0, Clinic: entity.Clinic{Name: "Delhi South"}},
		{ClinicID: 1, Price: "₹1800", SortOrder: 0, Clinic: entity.Clinic{Name: "Delhi Central"}},
	}

	responses := PricingToResponses(pricing)

	t.Run("sorted by order then clinic name", func(t *testing.T) {
		assert.Equal(t, "Delhi Central", responses[0].ClinicName)
		assert.Equal(t, "Delhi South", responses[1].ClinicName)
		assert.Equal(t, "Gurugram", responses[2].ClinicName)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		assert.Equal(t, uint(2), pricing[0].ClinicID)
	})
}
