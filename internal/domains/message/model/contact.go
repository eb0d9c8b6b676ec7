package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

type Contact struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   *string   `json:"phone"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Lifecycle
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ContactSpec = query.Spec[Contact]{
	Status: func(c Contact) string { return string(c.Status) },
	Search: []func(Contact) string{
		func(c Contact) string { return c.Name },
		func(c Contact) string { return c.Email },
		func(c Contact) string { return c.Subject },
		func(c Contact) string { return c.Message },
	},
	Less: LatestFirst(
		func(c Contact) time.Time { return c.CreatedAt },
		func(c Contact) string { return c.ID.String() },
	),
}
