package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/testutil/pgtest"
)

func newService(title string, order int, active bool) *model.Service {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &model.Service{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " for individuals and businesses.",
		Features:    []string{"Initial assessment", "Document review"},
		Icon:        "ScaleIcon",
		SortOrder:   order,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("features round trip", func(t *testing.T) {
		repo := newRepo(t)
		s := newService("Family Law", 1, true)
		require.NoError(t, repo.Create(ctx, s))

		got, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Features, got.Features)
		assert.Nil(t, got.ImageURL)

		key := "services/family.jpg"
		s.Features = []string{"Custody"}
		s.ImageURL = &key
		require.NoError(t, repo.Update(ctx, s))

		got, err = repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Custody"}, got.Features)
		require.NotNil(t, got.ImageURL)
		assert.Equal(t, key, *got.ImageURL)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrServiceNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), model.ErrServiceNotFound)
	})

	t.Run("active listing keeps manual order", func(t *testing.T) {
		repo := newRepo(t)
		for _, s := range []*model.Service{
			newService("Real Estate", 3, true),
			newService("Notarial", 1, true),
			newService("Retired", 2, false),
		} {
			require.NoError(t, repo.Create(ctx, s))
		}

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Notarial", "Retired", "Real Estate"}, titles(all))

		active, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Notarial", "Real Estate"}, titles(active))

		counts, err := repo.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Counts{Total: 3, Active: 2}, *counts)
	})
}

func titles(services []*model.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Title
	}
	return out
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) Repository { return NewMemoryRepository() })
}

func TestPostgresRepository(t *testing.T) {
	db := pgtest.Start(t)
	testRepository(t, func(t *testing.T) Repository {
		db.Truncate(t, "services")
		return NewPostgresRepository(db.Pool)
	})
}
