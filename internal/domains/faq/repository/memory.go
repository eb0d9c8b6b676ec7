package repository

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/faq/model"
	"lawfirm-backend/internal/infrastructure/memstore"
	"lawfirm-backend/internal/shared/query"
)

type memoryFaqRepository struct {
	rows *memstore.Table[uuid.UUID, model.Faq]
}

func NewMemoryRepository() Repository {
	return &memoryFaqRepository{
		rows: memstore.NewTable[uuid.UUID, model.Faq](func(f model.Faq) uuid.UUID { return f.ID }, nil),
	}
}

func (r *memoryFaqRepository) Create(ctx context.Context, f *model.Faq) error {
	r.rows.Insert(*f)
	return nil
}

func (r *memoryFaqRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Faq, error) {
	f, ok := r.rows.Get(id)
	if !ok {
		return nil, model.ErrFaqNotFound
	}
	return &f, nil
}

func (r *memoryFaqRepository) Update(ctx context.Context, f *model.Faq) error {
	_, ok := r.rows.Update(f.ID, func(stored *model.Faq) bool {
		created := stored.CreatedAt
		*stored = *f
		stored.CreatedAt = created
		return true
	})
	if !ok {
		return model.ErrFaqNotFound
	}
	return nil
}

func (r *memoryFaqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.rows.Delete(id) {
		return model.ErrFaqNotFound
	}
	return nil
}

func (r *memoryFaqRepository) List(ctx context.Context, publishedOnly bool) ([]*model.Faq, error) {
	var scopes []query.Predicate[model.Faq]
	if publishedOnly {
		scopes = append(scopes, model.Published)
	}

	list := query.Apply(r.rows.All(), query.Filter{}, model.Ordered, scopes...)
	out := make([]*model.Faq, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out, nil
}

func (r *memoryFaqRepository) Counts(ctx context.Context) (*model.Counts, error) {
	all := r.rows.All()
	return &model.Counts{Total: len(all), Published: query.Count(all, model.Published)}, nil
}
