package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articleColumns = Columns{
	Status:   "status",
	Category: "category",
	Search:   []string{"title", "content", "excerpt"},
}

func TestWhere(t *testing.T) {
	t.Run("empty filter adds no where clause", func(t *testing.T) {
		sql, args, err := Where(PSQL.Select("id").From("articles"), Filter{Status: "all"}, articleColumns).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM articles", sql)
		assert.Empty(t, args)
	})

	t.Run("all keys", func(t *testing.T) {
		f := Filter{Status: "draft", Category: "news", Search: "tax"}
		sql, args, err := Where(PSQL.Select("id").From("articles"), f, articleColumns).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "status = $1")
		assert.Contains(t, sql, "category = $2")
		assert.Contains(t, sql, "title ILIKE $3")
		assert.Contains(t, sql, "excerpt ILIKE $5")
		assert.Contains(t, sql, " OR ")
		assert.Equal(t, []interface{}{"draft", "news", "%tax%", "%tax%", "%tax%"}, args)
	})

	t.Run("missing column skips the key", func(t *testing.T) {
		cols := Columns{Status: "status", Search: []string{"name"}}
		sql, args, err := Where(PSQL.Select("id").From("inquiries"), Filter{Category: "news"}, cols).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "WHERE")
		assert.Empty(t, args)
	})
}

func TestPage(t *testing.T) {
	sql, _, err := Page(PSQL.Select("id").From("contacts"), 3, 15).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 15")
	assert.Contains(t, sql, "OFFSET 30")

	sql, _, err = Page(PSQL.Select("id").From("faqs"), 3, Unbounded).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "LIMIT")

	sql, _, err = Page(PSQL.Select("id").From("articles"), math.MaxInt64/15+2, 15).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "OFFSET 9223372036854775807")
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 15))
	assert.Equal(t, 30, Offset(3, 15))
	assert.Equal(t, 0, Offset(-4, 15))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt64/15+2, 15))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 2))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, EscapeLike("50% off_now"))
	assert.Equal(t, `a\\b`, EscapeLike(`a\b`))
}
