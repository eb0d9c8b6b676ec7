package service

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/repository"
)

const kindContact = "contact"

type contactService struct {
	*inbox[model.Contact]
}

func NewContactService(repo repository.ContactRepository, cfg Config) ContactService {
	return &contactService{inbox: &inbox[model.Contact]{
		kind:      kindContact,
		repo:      repo,
		cfg:       cfg.withDefaults(),
		lifecycle: func(c *model.Contact) *model.Lifecycle { return &c.Lifecycle },
		notFound:  model.NewContactNotFoundError,
		sheet: sheet[model.Contact]{
			name: "Contacts",
			headers: []string{
				"ID", "Name", "Email", "Phone", "Subject", "Message",
				"Status", "Admin Reply", "Replied At", "Received At",
			},
			row: func(c *model.Contact) []interface{} {
				return []interface{}{
					c.ID.String(), c.Name, c.Email, optionalCell(c.Phone), c.Subject, c.Message,
					string(c.Status), optionalCell(c.AdminReply), timeCell(c.RepliedAt), timeCell(&c.CreatedAt),
				}
			},
		},
	}}
}

func (s *contactService) Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.cfg.Clock()
	c := &model.Contact{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.PhoneOrNil(),
		Subject:   req.Subject,
		Message:   req.Message,
		Lifecycle: model.NewLifecycle(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
