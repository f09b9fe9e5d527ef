package converter

import (
	"encoding/json"
	"testing"

	"wellness-cms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalLandingBg(t *testing.T, bg *entity.LandingPageBg) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(LandingBgToResponse(bg, "https://cdn.test/media"))
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestLandingBgToResponse(t *testing.T) {
	t.Run("carousel rows carry only their slides", func(t *testing.T) {
		payload := marshalLandingBg(t, &entity.LandingPageBg{
			ID:   1,
			Type: entity.LandingBgCarousel,
			CarouselImages: []entity.CarouselImage{
				{ID: 10, Title: "First", Image: "bg/one.jpg", SortOrder: 1},
				{ID: 11, Title: "Second", Image: "bg/two.jpg", SortOrder: 2},
			},
			IsActive: true,
		})

		assert.NotContains(t, payload, "static_image")
		assert.Contains(t, payload, "carousel_images")
		assert.Equal(t, "https://cdn.test/media/bg/one.jpg", payload["image"])
	})

	t.Run("static rows carry only the static image", func(t *testing.T) {
		payload := marshalLandingBg(t, &entity.LandingPageBg{
			ID:          2,
			Type:        entity.LandingBgStatic,
			StaticImage: "bg/hero.jpg",
			IsActive:    true,
		})

		assert.NotContains(t, payload, "carousel_images")
		assert.Equal(t, "https://cdn.test/media/bg/hero.jpg", payload["static_image"])
		assert.Equal(t, payload["static_image"], payload["image"])
	})
}
