package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/faq/model"
	"lawfirm-backend/internal/testutil/pgtest"
)

func newFaq(question string, order int, published bool) *model.Faq {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &model.Faq{
		ID:          uuid.New(),
		Question:    question,
		Answer:      "Answer to " + question,
		Category:    "general",
		SortOrder:   order,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// testRepository runs the same behaviour checks against every implementation
func testRepository(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("create get update delete", func(t *testing.T) {
		repo := newRepo(t)
		f := newFaq("How long does it take?", 1, true)
		require.NoError(t, repo.Create(ctx, f))

		got, err := repo.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, f.Question, got.Question)
		assert.True(t, got.IsPublished)

		f.Answer = "Two weeks."
		f.IsPublished = false
		require.NoError(t, repo.Update(ctx, f))

		got, err = repo.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Two weeks.", got.Answer)
		assert.False(t, got.IsPublished)

		require.NoError(t, repo.Delete(ctx, f.ID))
		_, err = repo.GetByID(ctx, f.ID)
		assert.ErrorIs(t, err, model.ErrFaqNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, f.ID), model.ErrFaqNotFound)
		assert.ErrorIs(t, repo.Update(ctx, f), model.ErrFaqNotFound)
	})

	t.Run("list is in manual order and scoped", func(t *testing.T) {
		repo := newRepo(t)
		third := newFaq("third", 3, true)
		first := newFaq("first", 1, true)
		hidden := newFaq("hidden", 2, false)
		for _, f := range []*model.Faq{third, first, hidden} {
			require.NoError(t, repo.Create(ctx, f))
		}

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"first", "hidden", "third"}, questions(all))

		published, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "third"}, questions(published))

		counts, err := repo.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Counts{Total: 3, Published: 2}, *counts)
	})
}

func questions(faqs []*model.Faq) []string {
	out := make([]string, len(faqs))
	for i, f := range faqs {
		out[i] = f.Question
	}
	return out
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) Repository { return NewMemoryRepository() })
}

func TestPostgresRepository(t *testing.T) {
	db := pgtest.Start(t)
	testRepository(t, func(t *testing.T) Repository {
		db.Truncate(t, "faqs")
		return NewPostgresRepository(db.Pool)
	})
}
