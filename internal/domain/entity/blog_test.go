package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeExcerpt(t *testing.T) {
	t.Run("short content passes through", func(t *testing.T) {
		assert.Equal(t, "short", makeExcerpt("short"))
	})

	t.Run("long content is truncated with ellipsis", func(t *testing.T) {
		content := strings.Repeat("a", 200)
		excerpt := makeExcerpt(content)

		assert.Equal(t, strings.Repeat("a", 150)+"...", excerpt)
	})

	t.Run("truncation is rune safe", func(t *testing.T) {
		content := strings.Repeat("ä", 200)
		excerpt := makeExcerpt(content)

		assert.Equal(t, strings.Repeat("ä", 150)+"...", excerpt)
	})
}

func TestBlogTagList(t *testing.T) {
	t.Run("splits and trims comma separated tags", func(t *testing.T) {
		b := &Blog{Tags: "skincare, laser , acne"}

		assert.Equal(t, []string{"skincare", "laser", "acne"}, b.TagList())
	})

	t.Run("drops empty entries", func(t *testing.T) {
		b := &Blog{Tags: "skincare,,  ,laser"}

		assert.Equal(t, []string{"skincare", "laser"}, b.TagList())
	})

	t.Run("empty tags yield an empty list", func(t *testing.T) {
		b := &Blog{}

		assert.Empty(t, b.TagList())
	})
}
