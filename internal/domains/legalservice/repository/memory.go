package repository

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/infrastructure/memstore"
	"lawfirm-backend/internal/shared/query"
)

type memoryServiceRepository struct {
	rows *memstore.Table[uuid.UUID, model.Service]
}

func NewMemoryRepository() Repository {
	return &memoryServiceRepository{
		rows: memstore.NewTable(func(s model.Service) uuid.UUID { return s.ID }, model.Service.Clone),
	}
}

func (r *memoryServiceRepository) Create(ctx context.Context, s *model.Service) error {
	r.rows.Insert(*s)
	return nil
}

func (r *memoryServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	s, ok := r.rows.Get(id)
	if !ok {
		return nil, model.ErrServiceNotFound
	}
	return &s, nil
}

func (r *memoryServiceRepository) Update(ctx context.Context, s *model.Service) error {
	_, ok := r.rows.Update(s.ID, func(stored *model.Service) bool {
		created := stored.CreatedAt
		*stored = s.Clone()
		stored.CreatedAt = created
		return true
	})
	if !ok {
		return model.ErrServiceNotFound
	}
	return nil
}

func (r *memoryServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.rows.Delete(id) {
		return model.ErrServiceNotFound
	}
	return nil
}

func (r *memoryServiceRepository) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	var scopes []query.Predicate[model.Service]
	if activeOnly {
		scopes = append(scopes, model.Active)
	}

	list := query.Apply(r.rows.All(), query.Filter{}, model.Ordered, scopes...)
	out := make([]*model.Service, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out, nil
}

func (r *memoryServiceRepository) Counts(ctx context.Context) (*model.Counts, error) {
	all := r.rows.All()
	return &model.Counts{Total: len(all), Active: query.Count(all, model.Active)}, nil
}
