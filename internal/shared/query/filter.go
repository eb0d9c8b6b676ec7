// Package query holds the listing engine shared by every content type:
// filter normalization, in-memory filtering and ordering, SQL pushdown of the
// same filter, and pagination.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// All is the sentinel value meaning "no constraint" for status and category
const All = "all"

// Filter is the request-level filter for a listing.
// Zero value means no constraint at all.
type Filter struct {
	Status   string `form:"status" json:"status,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
}

// Normalize trims every field and clears status/category when they are exactly "all".
// Applying a normalized filter is the same as applying the raw one.
func (f Filter) Normalize() Filter {
	n := Filter{
		Status:   strings.TrimSpace(f.Status),
		Category: strings.TrimSpace(f.Category),
		Search:   strings.TrimSpace(f.Search),
	}
	if n.Status == All {
		n.Status = ""
	}
	if n.Category == All {
		n.Category = ""
	}
	return n
}

// IsZero reports whether the normalized filter constrains nothing
func (f Filter) IsZero() bool {
	n := f.Normalize()
	return n.Status == "" && n.Category == "" && n.Search == ""
}

// Values renders the filter as query parameters, skipping absent fields
func (f Filter) Values() url.Values {
	v := url.Values{}
	n := f.Normalize()
	if n.Status != "" {
		v.Set("status", n.Status)
	}
	if n.Category != "" {
		v.Set("category", n.Category)
	}
	if n.Search != "" {
		v.Set("search", n.Search)
	}
	return v
}

// FilterFromValues reads status, category and search from a query string
func FilterFromValues(v url.Values) Filter {
	return Filter{
		Status:   v.Get("status"),
		Category: v.Get("category"),
		Search:   v.Get("search"),
	}.Normalize()
}

// ParsePage turns the raw "page" parameter into a 1-based page number.
// Missing, non-numeric and non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
