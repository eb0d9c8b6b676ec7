package service

import (
	"context"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/repository"
)

const kindInquiry = "inquiry"

type inquiryService struct {
	*inbox[model.Inquiry]
}

func NewInquiryService(repo repository.InquiryRepository, cfg Config) InquiryService {
	return &inquiryService{inbox: &inbox[model.Inquiry]{
		kind:      kindInquiry,
		repo:      repo,
		cfg:       cfg.withDefaults(),
		lifecycle: func(i *model.Inquiry) *model.Lifecycle { return &i.Lifecycle },
		notFound:  model.NewInquiryNotFoundError,
		sheet: sheet[model.Inquiry]{
			name: "Inquiries",
			headers: []string{
				"ID", "Name", "Email", "Message", "IP Address",
				"Status", "Admin Reply", "Replied At", "Received At",
			},
			row: func(i *model.Inquiry) []interface{} {
				return []interface{}{
					i.ID.String(), optionalCell(i.Name), optionalCell(i.Email), i.Message, optionalCell(i.IPAddress),
					string(i.Status), optionalCell(i.AdminReply), timeCell(i.RepliedAt), timeCell(&i.CreatedAt),
				}
			},
		},
	}}
}

// Submit stores a public inquiry; ip is the client address seen by the server
func (s *inquiryService) Submit(ctx context.Context, req model.InquiryRequest, ip string) (*model.Inquiry, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.cfg.Clock()
	i := &model.Inquiry{
		ID:        uuid.New(),
		Name:      req.NameOrNil(),
		Email:     req.EmailOrNil(),
		Message:   req.Message,
		Lifecycle: model.NewLifecycle(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ip != "" {
		i.IPAddress = &ip
	}
	if err := s.create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}
