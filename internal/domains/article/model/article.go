package model

import (
	"time"

	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/content"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// DateLayout is how publish dates are shown on the site, e.g. "Jan 02, 2025"
const DateLayout = "Jan 02, 2006"

type Article struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   *string    `json:"featured_image"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Status          Status     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	ReadTime        *int       `json:"read_time"`
	PublishedAt     *time.Time `json:"published_at"`
	Views           int64      `json:"views"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsPublished reports whether the article is live at now:
// status published and a publish date that is not in the future.
func (a *Article) IsPublished(now time.Time) bool {
	return a.Status == StatusPublished && a.PublishedAt != nil && !a.PublishedAt.After(now)
}

// DisplayExcerpt is the stored excerpt or one cut from the body
func (a *Article) DisplayExcerpt() string {
	explicit := ""
	if a.Excerpt != nil {
		explicit = *a.Excerpt
	}
	return content.Excerpt(explicit, a.Content)
}

// EstimatedReadTime is the stored override or an estimate from the body
func (a *Article) EstimatedReadTime() int {
	return content.ReadTime(a.ReadTime, a.Content)
}

func (a *Article) FormattedPublishedAt() *string {
	if a.PublishedAt == nil {
		return nil
	}
	s := a.PublishedAt.Format(DateLayout)
	return &s
}

// Clone copies the article including its tags
func (a Article) Clone() Article {
	a.Tags = append([]string(nil), a.Tags...)
	return a
}

// Stats are the counters shown above the admin article list.
// They cover every article regardless of the active filter.
type Stats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Featured  int `json:"featured"`
}
