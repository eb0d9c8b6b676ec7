package repository

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/faq/model"
)

type Repository interface {
	Create(ctx context.Context, f *model.Faq) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Faq, error)
	Update(ctx context.Context, f *model.Faq) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns FAQs in manual order, optionally only published ones
	List(ctx context.Context, publishedOnly bool) ([]*model.Faq, error)

	Counts(ctx context.Context) (*model.Counts, error)
}
