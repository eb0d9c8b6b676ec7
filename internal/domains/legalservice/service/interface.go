package service

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/infrastructure/storage"
)

// ImageStore keeps service images. *storage.Images implements it.
type ImageStore interface {
	Validate(up *storage.Upload) error
	Save(ctx context.Context, dir string, up *storage.Upload) (string, error)
	Release(ctx context.Context, key string)
	URL(key string) string
}

type ServiceInterface interface {
	// List returns every service in manual order (admin, not paginated)
	List(ctx context.Context) ([]model.ServiceResponse, error)
	// Active returns the services shown on the public site
	Active(ctx context.Context) ([]model.ServiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ServiceResponse, error)
	Create(ctx context.Context, req model.ServiceRequest, image *storage.Upload) (*model.ServiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.ServiceRequest, image *storage.Upload) (*model.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Counts(ctx context.Context) (*model.Counts, error)
}
