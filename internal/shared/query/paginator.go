package query

import (
	"math"
	"net/url"
	"strconv"
)

// Unbounded as a page size returns every matching row on page 1
const Unbounded = 0

// Links are absolute or relative URLs for navigating a paginated listing.
// Empty strings mean "no such page".
type Links struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Paginator is one page of a filtered, ordered listing
type Paginator[T any] struct {
	Items       []T   `json:"data"`
	Total       int   `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	Links       Links `json:"links"`
}

// NewPaginator assembles a page from the items already sliced for it.
// last_page is never below 1, and a page past the end keeps the correct totals.
func NewPaginator[T any](items []T, total, page, perPage int) Paginator[T] {
	if page < 1 {
		page = 1
	}
	if items == nil {
		items = []T{}
	}

	p := Paginator[T]{
		Items:       items,
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    LastPage(total, perPage),
	}
	if perPage == Unbounded {
		p.PerPage = total
	}

	if len(items) > 0 {
		offset := Offset(page, perPage)
		p.From = offset + 1
		p.To = offset + len(items)
	}
	return p
}

// Paginate slices an already filtered and ordered list
func Paginate[T any](all []T, page, perPage int) Paginator[T] {
	if page < 1 {
		page = 1
	}
	if perPage == Unbounded {
		return NewPaginator(all, len(all), 1, Unbounded)
	}

	start := Offset(page, perPage)
	if start >= len(all) {
		return NewPaginator([]T{}, len(all), page, perPage)
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}

	out := make([]T, end-start)
	copy(out, all[start:end])
	return NewPaginator(out, len(all), page, perPage)
}

// LastPage is max(1, ceil(total/perPage))
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Offset returns the zero-based index of the first row on page.
// Pages too far out to address saturate at math.MaxInt.
func Offset(page, perPage int) int {
	if page < 1 || perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// WithLinks fills the navigation links. Every parameter of q other than
// "page" is kept so a filtered listing stays filtered while paging.
func (p Paginator[T]) WithLinks(path string, q url.Values) Paginator[T] {
	build := func(page int) string {
		v := url.Values{}
		for k, vals := range q {
			if k == "page" {
				continue
			}
			v[k] = append([]string(nil), vals...)
		}
		v.Set("page", strconv.Itoa(page))
		return path + "?" + v.Encode()
	}

	p.Links = Links{
		First: build(1),
		Last:  build(p.LastPage),
	}
	if p.CurrentPage > 1 {
		prev := p.CurrentPage - 1
		if prev > p.LastPage {
			prev = p.LastPage
		}
		p.Links.Prev = build(prev)
	}
	if p.CurrentPage < p.LastPage {
		p.Links.Next = build(p.CurrentPage + 1)
	}
	return p
}

// Map converts the items of a page while keeping its metadata
func Map[T, U any](p Paginator[T], fn func(T) U) Paginator[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return Paginator[U]{
		Items:       items,
		Total:       p.Total,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		From:        p.From,
		To:          p.To,
		Links:       p.Links,
	}
}
