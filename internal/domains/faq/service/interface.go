package service

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/faq/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]*model.Faq, error)
	// Published returns the FAQs shown on the contact page
	Published(ctx context.Context) ([]*model.Faq, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Faq, error)
	Create(ctx context.Context, req model.FaqRequest) (*model.Faq, error)
	Update(ctx context.Context, id uuid.UUID, req model.FaqRequest) (*model.Faq, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Counts(ctx context.Context) (*model.Counts, error)
}
