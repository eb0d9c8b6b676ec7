package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/shared/query"
)

type ListParams struct {
	Filter  query.Filter
	Page    int
	PerPage int
}

// Store is the persistence contract shared by contacts and inquiries.
// Status changes are single conditional statements so concurrent admin
// views cannot both count as the first read.
type Store[T any] interface {
	Create(ctx context.Context, m *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page, newest first, and the number of matching rows
	List(ctx context.Context, p ListParams) ([]*T, int, error)
	// Stats counts every row by status, ignoring any filter
	Stats(ctx context.Context) (*model.Stats, error)

	// MarkAsRead flips unread to read and reports whether this call did it
	MarkAsRead(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// Reply stores the admin reply and sets status replied
	Reply(ctx context.Context, id uuid.UUID, reply string, at time.Time) error
}

type ContactRepository = Store[model.Contact]

type InquiryRepository = Store[model.Inquiry]
