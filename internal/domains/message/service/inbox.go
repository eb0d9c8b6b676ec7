package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/repository"
	"lawfirm-backend/internal/metrics"
	"lawfirm-backend/internal/shared/query"
)

const defaultExportLimit = 5000

type Config struct {
	PerPage int
	// ExportLimit caps the rows written to a spreadsheet
	ExportLimit int
	Clock       func() time.Time
}

func (c Config) withDefaults() Config {
	if c.PerPage <= 0 {
		c.PerPage = 15
	}
	if c.ExportLimit <= 0 {
		c.ExportLimit = defaultExportLimit
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// inbox implements the admin operations once for both message kinds
type inbox[T any] struct {
	kind      string
	repo      repository.Store[T]
	cfg       Config
	lifecycle func(*T) *model.Lifecycle
	notFound  func() *model.MessageError
	sheet     sheet[T]
}

func (s *inbox[T]) find(ctx context.Context, id uuid.UUID) (*T, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if model.IsNotFound(err) {
			return nil, s.notFound()
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}
	return m, nil
}

func (s *inbox[T]) List(ctx context.Context, f query.Filter, page int) (*model.ListResponse[T], error) {
	f = f.Normalize()

	items, total, err := s.repo.List(ctx, repository.ListParams{Filter: f, Page: page, PerPage: s.cfg.PerPage})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s messages: %w", s.kind, err)
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s messages: %w", s.kind, err)
	}

	values := make([]T, len(items))
	for i, m := range items {
		values[i] = *m
	}
	return &model.ListResponse[T]{
		Items:   query.NewPaginator(values, total, page, s.cfg.PerPage),
		Filters: f,
		Stats:   *stats,
	}, nil
}

func (s *inbox[T]) Show(ctx context.Context, id uuid.UUID) (*T, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.lifecycle(m).IsUnread() {
		return m, nil
	}

	changed, err := s.repo.MarkAsRead(ctx, id, s.cfg.Clock())
	if err != nil {
		if model.IsNotFound(err) {
			return nil, s.notFound()
		}
		return nil, fmt.Errorf("failed to mark %s as read: %w", s.kind, err)
	}
	if !changed {
		// another request moved it on first
		return s.find(ctx, id)
	}

	s.lifecycle(m).MarkAsRead()
	metrics.MessageTransitions.WithLabelValues(s.kind, string(model.StatusRead)).Inc()
	return m, nil
}

func (s *inbox[T]) Reply(ctx context.Context, id uuid.UUID, req model.ReplyRequest) (*T, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.cfg.Clock()
	if err := s.lifecycle(m).MarkAsReplied(req.AdminReply, now); err != nil {
		return nil, model.NewInvalidReplyError(err)
	}
	if err := s.repo.Reply(ctx, id, req.AdminReply, now); err != nil {
		if model.IsNotFound(err) {
			return nil, s.notFound()
		}
		return nil, fmt.Errorf("failed to reply to %s: %w", s.kind, err)
	}

	metrics.MessageTransitions.WithLabelValues(s.kind, string(model.StatusReplied)).Inc()
	return m, nil
}

func (s *inbox[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if model.IsNotFound(err) {
			return s.notFound()
		}
		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}
	return nil
}

func (s *inbox[T]) Recent(ctx context.Context, limit int) ([]*T, error) {
	items, _, err := s.repo.List(ctx, repository.ListParams{Page: 1, PerPage: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent %s messages: %w", s.kind, err)
	}
	return items, nil
}

func (s *inbox[T]) Stats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s messages: %w", s.kind, err)
	}
	return stats, nil
}

func (s *inbox[T]) Export(ctx context.Context, f query.Filter) (*excelize.File, error) {
	items, _, err := s.repo.List(ctx, repository.ListParams{Filter: f.Normalize(), Page: 1, PerPage: s.cfg.ExportLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s messages: %w", s.kind, err)
	}

	file, err := s.sheet.build(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return file, nil
}

// create stores a new submission and counts it
func (s *inbox[T]) create(ctx context.Context, m *T) error {
	if err := s.repo.Create(ctx, m); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.kind, err)
	}
	metrics.MessagesReceived.WithLabelValues(s.kind).Inc()
	return nil
}
