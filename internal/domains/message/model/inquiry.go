package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

// Inquiry is the short anonymous-capable message from the site's quick form
type Inquiry struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Message   string    `json:"message"`
	IPAddress *string   `json:"ip_address"`
	Lifecycle
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var InquirySpec = query.Spec[Inquiry]{
	Status: func(i Inquiry) string { return string(i.Status) },
	Search: []func(Inquiry) string{
		func(i Inquiry) string { return deref(i.Name) },
		func(i Inquiry) string { return deref(i.Email) },
		func(i Inquiry) string { return i.Message },
	},
	Less: LatestFirst(
		func(i Inquiry) time.Time { return i.CreatedAt },
		func(i Inquiry) string { return i.ID.String() },
	),
}
