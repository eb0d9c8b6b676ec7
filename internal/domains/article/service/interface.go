package service

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/shared/query"
)

// ImageStore keeps featured images. *storage.Images implements it.
type ImageStore interface {
	Validate(up *storage.Upload) error
	Save(ctx context.Context, dir string, up *storage.Upload) (string, error)
	Release(ctx context.Context, key string)
	URL(key string) string
}

type ServiceInterface interface {
	// Admin
	List(ctx context.Context, f query.Filter, page int) (*model.AdminListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error)
	Create(ctx context.Context, req model.ArticleRequest, image *storage.Upload) (*model.ArticleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.ArticleRequest, image *storage.Upload) (*model.ArticleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Public blog
	BlogIndex(ctx context.Context, f query.Filter, page int) (*model.BlogIndexResponse, error)
	BlogCategory(ctx context.Context, category string, page int) (*model.BlogCategoryResponse, error)
	BlogShow(ctx context.Context, slug string) (*model.BlogShowResponse, error)
	Recent(ctx context.Context, limit int) ([]model.ArticleResponse, error)

	// RefreshCache drops every cached blog page
	RefreshCache(ctx context.Context) error
}
