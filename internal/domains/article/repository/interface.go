package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/shared/query"
)

// Order is the fixed sort of a listing
type Order int

const (
	// OrderCreated is newest created first (admin)
	OrderCreated Order = iota
	// OrderPublished is newest published first (blog)
	OrderPublished
)

// ListParams selects a page of articles. The filter applies first, the
// scopes narrow it further.
type ListParams struct {
	Filter query.Filter

	// LiveAt restricts to articles published at or before this instant
	LiveAt       *time.Time
	FeaturedOnly bool
	ExcludeID    uuid.UUID

	Order   Order
	Page    int
	PerPage int
}

type Repository interface {
	// Create returns model.ErrSlugTaken when the slug collides
	Create(ctx context.Context, a *model.Article) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	// Update returns model.ErrSlugTaken when the new slug collides
	Update(ctx context.Context, a *model.Article) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SlugExists ignores the article with id exclude
	SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)

	// List returns the page and the number of rows matching params
	List(ctx context.Context, params ListParams) ([]*model.Article, int, error)

	Stats(ctx context.Context) (*model.Stats, error)

	// IncrementViews adds one view atomically and returns the new count
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
}
