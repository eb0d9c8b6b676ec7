package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/domains/legalservice/repository"
	"lawfirm-backend/internal/infrastructure/storage"
)

const imageDir = "services"

type legalService struct {
	repo   repository.Repository
	images ImageStore
	now    func() time.Time
}

func NewLegalService(repo repository.Repository, images ImageStore) ServiceInterface {
	return &legalService{repo: repo, images: images, now: time.Now}
}

func (s *legalService) toResponses(list []*model.Service) []model.ServiceResponse {
	out := make([]model.ServiceResponse, len(list))
	for i, svc := range list {
		out[i] = model.ToResponse(*svc, s.images.URL)
	}
	return out
}

func (s *legalService) List(ctx context.Context) ([]model.ServiceResponse, error) {
	list, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return s.toResponses(list), nil
}

func (s *legalService) Active(ctx context.Context) ([]model.ServiceResponse, error) {
	list, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return s.toResponses(list), nil
}

func (s *legalService) find(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrServiceNotFound) {
			return nil, model.NewServiceNotFoundError()
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (s *legalService) Get(ctx context.Context, id uuid.UUID) (*model.ServiceResponse, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToResponse(*svc, s.images.URL)
	return &resp, nil
}

func (s *legalService) validate(req *model.ServiceRequest, image *storage.Upload) error {
	req.Normalize()

	errs := validation.Errors{}
	if err := req.Validate(); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}
	if err := s.images.Validate(image); err != nil {
		errs["image"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *legalService) Create(ctx context.Context, req model.ServiceRequest, image *storage.Upload) (*model.ServiceResponse, error) {
	if err := s.validate(&req, image); err != nil {
		return nil, err
	}

	now := s.now()
	svc := &model.Service{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
		SortOrder:   *req.SortOrder,
		IsActive:    req.Active(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if !image.Empty() {
		key, err := s.images.Save(ctx, imageDir, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store service image: %w", err)
		}
		svc.ImageURL = &key
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		if svc.ImageURL != nil {
			s.images.Release(ctx, *svc.ImageURL)
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	resp := model.ToResponse(*svc, s.images.URL)
	return &resp, nil
}

func (s *legalService) Update(ctx context.Context, id uuid.UUID, req model.ServiceRequest, image *storage.Upload) (*model.ServiceResponse, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&req, image); err != nil {
		return nil, err
	}

	svc.Title = req.Title
	svc.Description = req.Description
	svc.Features = req.Features
	svc.Icon = req.Icon
	svc.SortOrder = *req.SortOrder
	svc.IsActive = req.Active()
	svc.UpdatedAt = s.now()

	var oldImage string
	if !image.Empty() {
		key, err := s.images.Save(ctx, imageDir, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store service image: %w", err)
		}
		if svc.ImageURL != nil {
			oldImage = *svc.ImageURL
		}
		svc.ImageURL = &key
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		if !image.Empty() {
			s.images.Release(ctx, *svc.ImageURL)
		}
		if errors.Is(err, model.ErrServiceNotFound) {
			return nil, model.NewServiceNotFoundError()
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	s.images.Release(ctx, oldImage)

	resp := model.ToResponse(*svc, s.images.URL)
	return &resp, nil
}

func (s *legalService) Delete(ctx context.Context, id uuid.UUID) error {
	svc, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrServiceNotFound) {
			return model.NewServiceNotFoundError()
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if svc.ImageURL != nil {
		s.images.Release(ctx, *svc.ImageURL)
	}
	return nil
}

func (s *legalService) Counts(ctx context.Context) (*model.Counts, error) {
	c, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	return c, nil
}
