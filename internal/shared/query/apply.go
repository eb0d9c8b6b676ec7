package query

import (
	"sort"
	"strings"
)

// Spec describes how a Filter applies to one entity type.
// A nil Status or Category accessor means the entity has no such dimension
// and the corresponding filter key is ignored.
type Spec[T any] struct {
	Status   func(T) string
	Category func(T) string
	// Search lists the text fields matched by a search term, OR-ed together
	Search []func(T) string
	// Less defines the fixed listing order. It must be a strict total order
	// (break ties on id) so pagination is deterministic.
	Less func(a, b T) bool
}

// Predicate is a named, composable condition on an entity
type Predicate[T any] func(T) bool

// And combines predicates; an empty list matches everything
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Match builds the predicate for a filter under spec
func (s Spec[T]) Match(f Filter) Predicate[T] {
	n := f.Normalize()
	var preds []Predicate[T]

	if n.Status != "" && s.Status != nil {
		preds = append(preds, func(v T) bool { return s.Status(v) == n.Status })
	}
	if n.Category != "" && s.Category != nil {
		preds = append(preds, func(v T) bool { return s.Category(v) == n.Category })
	}
	if n.Search != "" && len(s.Search) > 0 {
		needle := strings.ToLower(n.Search)
		preds = append(preds, func(v T) bool {
			for _, field := range s.Search {
				if strings.Contains(strings.ToLower(field(v)), needle) {
					return true
				}
			}
			return false
		})
	}
	return And(preds...)
}

// Apply filters items with f (plus any extra predicates) and returns them in
// the order Spec defines. The input slice is not modified.
func Apply[T any](items []T, f Filter, s Spec[T], extra ...Predicate[T]) []T {
	match := And(append([]Predicate[T]{s.Match(f)}, extra...)...)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	if s.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return s.Less(out[i], out[j]) })
	}
	return out
}

// Count returns how many items satisfy every predicate
func Count[T any](items []T, preds ...Predicate[T]) int {
	match := And(preds...)
	n := 0
	for _, it := range items {
		if match(it) {
			n++
		}
	}
	return n
}
