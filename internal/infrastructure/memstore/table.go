// Package memstore is the in-process backing store used with DB_DRIVER=memory
// and by service tests. Rows are stored by value and copied on the way in and
// out, so callers never share memory with the table.
package memstore

import (
	"sync"
)

// Table is a concurrency-safe map of rows keyed by K
type Table[K comparable, T any] struct {
	mu    sync.RWMutex
	rows  map[K]T
	key   func(T) K
	clone func(T) T
}

// NewTable creates an empty table. clone may be nil when T holds no
// reference types (slices, maps, pointers).
func NewTable[K comparable, T any](key func(T) K, clone func(T) T) *Table[K, T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Table[K, T]{
		rows:  make(map[K]T),
		key:   key,
		clone: clone,
	}
}

// Insert adds v; it returns false if the key is already taken
func (t *Table[K, T]) Insert(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := t.key(v)
	if _, ok := t.rows[k]; ok {
		return false
	}
	t.rows[k] = t.clone(v)
	return true
}

// Put inserts or replaces v
func (t *Table[K, T]) Put(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[t.key(v)] = t.clone(v)
}

func (t *Table[K, T]) Get(k K) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[k]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

// Update applies fn to the stored row under the write lock. fn returning
// false leaves the row unchanged. The result is the row after the call.
func (t *Table[K, T]) Update(k K, fn func(*T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.rows[k]
	if !ok {
		var zero T
		return zero, false
	}
	v = t.clone(v)
	if fn(&v) {
		t.rows[k] = v
	}
	return t.clone(v), true
}

func (t *Table[K, T]) Delete(k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[k]; !ok {
		return false
	}
	delete(t.rows, k)
	return true
}

// All returns a copy of every row, in no particular order
func (t *Table[K, T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, t.clone(v))
	}
	return out
}

// Find returns the first row matching pred
func (t *Table[K, T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, v := range t.rows {
		if pred(v) {
			return t.clone(v), true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[K, T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
