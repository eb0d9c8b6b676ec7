package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/shared/query"
)

// Inbox is the admin side of a message kind
type Inbox[T any] interface {
	List(ctx context.Context, f query.Filter, page int) (*model.ListResponse[T], error)
	// Show returns the message and marks it read if it was unread
	Show(ctx context.Context, id uuid.UUID) (*T, error)
	Reply(ctx context.Context, id uuid.UUID, req model.ReplyRequest) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Recent(ctx context.Context, limit int) ([]*T, error)
	Stats(ctx context.Context) (*model.Stats, error)
	// Export builds a spreadsheet of the filtered listing
	Export(ctx context.Context, f query.Filter) (*excelize.File, error)
}

type ContactService interface {
	Inbox[model.Contact]
	Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error)
}

type InquiryService interface {
	Inbox[model.Inquiry]
	Submit(ctx context.Context, req model.InquiryRequest, ip string) (*model.Inquiry, error)
}
