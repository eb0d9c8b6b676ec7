package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

type Faq struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Category    string    `json:"category"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ordered is sort_order ascending, ties by id
var Ordered = query.Spec[Faq]{
	Category: func(f Faq) string { return f.Category },
	Less: func(a, b Faq) bool {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.ID.String() < b.ID.String()
	},
}

func Published(f Faq) bool { return f.IsPublished }

type Counts struct {
	Total     int `json:"total"`
	Published int `json:"published"`
}
