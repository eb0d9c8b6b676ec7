package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/infrastructure/memstore"
	"lawfirm-backend/internal/shared/query"
)

// memoryStore keeps one message kind in memory. lifecycle exposes the
// embedded status fields and touch the updated_at column.
type memoryStore[T any] struct {
	rows      *memstore.Table[uuid.UUID, T]
	spec      query.Spec[T]
	lifecycle func(*T) *model.Lifecycle
	touch     func(*T, time.Time)
	notFound  error
}

func NewMemoryContactRepository() ContactRepository {
	return &memoryStore[model.Contact]{
		rows:      memstore.NewTable[uuid.UUID, model.Contact](func(c model.Contact) uuid.UUID { return c.ID }, nil),
		spec:      model.ContactSpec,
		lifecycle: func(c *model.Contact) *model.Lifecycle { return &c.Lifecycle },
		touch:     func(c *model.Contact, at time.Time) { c.UpdatedAt = at },
		notFound:  model.ErrContactNotFound,
	}
}

func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryStore[model.Inquiry]{
		rows:      memstore.NewTable[uuid.UUID, model.Inquiry](func(i model.Inquiry) uuid.UUID { return i.ID }, nil),
		spec:      model.InquirySpec,
		lifecycle: func(i *model.Inquiry) *model.Lifecycle { return &i.Lifecycle },
		touch:     func(i *model.Inquiry, at time.Time) { i.UpdatedAt = at },
		notFound:  model.ErrInquiryNotFound,
	}
}

func (r *memoryStore[T]) Create(ctx context.Context, m *T) error {
	r.rows.Insert(*m)
	return nil
}

func (r *memoryStore[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	m, ok := r.rows.Get(id)
	if !ok {
		return nil, r.notFound
	}
	return &m, nil
}

func (r *memoryStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.rows.Delete(id) {
		return r.notFound
	}
	return nil
}

func (r *memoryStore[T]) List(ctx context.Context, p ListParams) ([]*T, int, error) {
	matched := query.Apply(r.rows.All(), p.Filter, r.spec)
	page := query.Paginate(matched, p.Page, p.PerPage)

	out := make([]*T, len(page.Items))
	for i := range page.Items {
		out[i] = &page.Items[i]
	}
	return out, len(matched), nil
}

func (r *memoryStore[T]) Stats(ctx context.Context) (*model.Stats, error) {
	s := &model.Stats{}
	for _, m := range r.rows.All() {
		s.Add(r.lifecycle(&m).Status)
	}
	return s, nil
}

func (r *memoryStore[T]) MarkAsRead(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	changed := false
	_, ok := r.rows.Update(id, func(m *T) bool {
		changed = r.lifecycle(m).MarkAsRead()
		if changed {
			r.touch(m, at)
		}
		return changed
	})
	if !ok {
		return false, r.notFound
	}
	return changed, nil
}

func (r *memoryStore[T]) Reply(ctx context.Context, id uuid.UUID, reply string, at time.Time) error {
	var replyErr error
	_, ok := r.rows.Update(id, func(m *T) bool {
		if replyErr = r.lifecycle(m).MarkAsReplied(reply, at); replyErr != nil {
			return false
		}
		r.touch(m, at)
		return true
	})
	if !ok {
		return r.notFound
	}
	return replyErr
}
