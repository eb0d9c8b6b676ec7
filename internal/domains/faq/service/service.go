package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/faq/model"
	"lawfirm-backend/internal/domains/faq/repository"
)

type faqService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewFaqService(repo repository.Repository) ServiceInterface {
	return &faqService{repo: repo, now: time.Now}
}

func (s *faqService) List(ctx context.Context) ([]*model.Faq, error) {
	faqs, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

func (s *faqService) Published(ctx context.Context) ([]*model.Faq, error) {
	faqs, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list published faqs: %w", err)
	}
	return faqs, nil
}

func (s *faqService) Get(ctx context.Context, id uuid.UUID) (*model.Faq, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrFaqNotFound) {
			return nil, model.NewFaqNotFoundError()
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return f, nil
}

func (s *faqService) Create(ctx context.Context, req model.FaqRequest) (*model.Faq, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	f := &model.Faq{
		ID:          uuid.New(),
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    req.Category,
		SortOrder:   *req.SortOrder,
		IsPublished: req.Published(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return f, nil
}

func (s *faqService) Update(ctx context.Context, id uuid.UUID, req model.FaqRequest) (*model.Faq, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f.Question = req.Question
	f.Answer = req.Answer
	f.Category = req.Category
	f.SortOrder = *req.SortOrder
	f.IsPublished = req.Published()
	f.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, f); err != nil {
		if errors.Is(err, model.ErrFaqNotFound) {
			return nil, model.NewFaqNotFoundError()
		}
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}
	return f, nil
}

func (s *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrFaqNotFound) {
			return model.NewFaqNotFoundError()
		}
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	return nil
}

func (s *faqService) Counts(ctx context.Context) (*model.Counts, error) {
	c, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count faqs: %w", err)
	}
	return c, nil
}
