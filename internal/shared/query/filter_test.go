package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNormalize(t *testing.T) {
	t.Run("all means absent", func(t *testing.T) {
		f := Filter{Status: "all", Category: " all ", Search: "  "}.Normalize()
		assert.Equal(t, Filter{}, f)
		assert.True(t, f.IsZero())
	})

	t.Run("sentinel is case sensitive", func(t *testing.T) {
		f := Filter{Status: "ALL", Category: "All"}.Normalize()
		assert.Equal(t, "ALL", f.Status)
		assert.Equal(t, "All", f.Category)
		assert.False(t, f.IsZero())
	})

	t.Run("trims values", func(t *testing.T) {
		f := Filter{Status: " draft ", Search: " divorce "}.Normalize()
		assert.Equal(t, "draft", f.Status)
		assert.Equal(t, "divorce", f.Search)
		assert.False(t, f.IsZero())
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := Filter{Status: "all", Category: " news", Search: "x "}
		assert.Equal(t, f.Normalize(), f.Normalize().Normalize())
	})
}

func TestFilterValues(t *testing.T) {
	v := Filter{Status: "all", Category: "news", Search: "tax"}.Values()
	assert.Equal(t, "", v.Get("status"))
	assert.Equal(t, "news", v.Get("category"))
	assert.Equal(t, "tax", v.Get("search"))

	back := FilterFromValues(v)
	assert.Equal(t, Filter{Category: "news", Search: "tax"}, back)
}

func TestFilterFromValues(t *testing.T) {
	q, _ := url.ParseQuery("status=unread&category=all&search=")
	assert.Equal(t, Filter{Status: "unread"}, FilterFromValues(q))
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"1":   1,
		" 4 ": 4,
		"99":  99,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}
