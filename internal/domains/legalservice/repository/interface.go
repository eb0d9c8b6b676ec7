package repository

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/legalservice/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	Update(ctx context.Context, s *model.Service) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns services in manual order, optionally only the active ones
	List(ctx context.Context, activeOnly bool) ([]*model.Service, error)

	Counts(ctx context.Context) (*model.Counts, error)
}
