package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

// Service is a practice area offered by the firm
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	ImageURL    *string   `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Service) Clone() Service {
	s.Features = append([]string(nil), s.Features...)
	return s
}

// Ordered is the manual order: sort_order ascending, ties by id
var Ordered = query.Spec[Service]{
	Less: func(a, b Service) bool {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.ID.String() < b.ID.String()
	},
}

func Active(s Service) bool { return s.IsActive }

// Counts feed the dashboard
type Counts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
