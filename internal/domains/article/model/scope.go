package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

// Listing orders
var (
	// AdminSpec: newest created first
	AdminSpec = query.Spec[Article]{
		Status:   func(a Article) string { return string(a.Status) },
		Category: func(a Article) string { return a.Category },
		Search:   searchFields,
		Less: func(a, b Article) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID.String() > b.ID.String()
		},
	}

	// BlogSpec: newest published first
	BlogSpec = query.Spec[Article]{
		Status:   func(a Article) string { return string(a.Status) },
		Category: func(a Article) string { return a.Category },
		Search:   searchFields,
		Less: func(a, b Article) bool {
			pa, pb := publishedAt(a), publishedAt(b)
			if !pa.Equal(pb) {
				return pa.After(pb)
			}
			return a.ID.String() > b.ID.String()
		},
	}
)

var searchFields = []func(Article) string{
	func(a Article) string { return a.Title },
	func(a Article) string { return a.Content },
	func(a Article) string {
		if a.Excerpt == nil {
			return ""
		}
		return *a.Excerpt
	},
}

func publishedAt(a Article) time.Time {
	if a.PublishedAt == nil {
		return time.Time{}
	}
	return *a.PublishedAt
}

// Published matches articles that are live at now
func Published(now time.Time) query.Predicate[Article] {
	return func(a Article) bool { return a.IsPublished(now) }
}

func Featured(a Article) bool { return a.IsFeatured }

func WithStatus(s Status) query.Predicate[Article] {
	return func(a Article) bool { return a.Status == s }
}

func Excluding(id uuid.UUID) query.Predicate[Article] {
	return func(a Article) bool { return a.ID != id }
}

func InCategory(category string) query.Predicate[Article] {
	return func(a Article) bool { return a.Category == category }
}

// ComputeStats counts over the whole collection
func ComputeStats(all []Article) Stats {
	return Stats{
		Total:     len(all),
		Published: query.Count(all, WithStatus(StatusPublished)),
		Draft:     query.Count(all, WithStatus(StatusDraft)),
		Featured:  query.Count(all, Featured),
	}
}
