package testutil

import "slices"

// Model is a slice-backed reference list. Positions are 0-based from the
// head, the same order a list yields when iterated.
type Model[T any] struct {
	vals []T
}

// NewModel creates a model holding vals in order.
func NewModel[T any](vals ...T) *Model[T] {
	return &Model[T]{vals: slices.Clone(vals)}
}

// Len returns the number of values.
func (m *Model[T]) Len() int {
	return len(m.vals)
}

// Push appends v.
func (m *Model[T]) Push(v T) {
	m.vals = append(m.vals, v)
}

// InsertAfter places v right after position pos.
func (m *Model[T]) InsertAfter(pos int, v T) {
	m.vals = slices.Insert(m.vals, pos+1, v)
}

// Set replaces the value at pos.
func (m *Model[T]) Set(pos int, v T) {
	m.vals[pos] = v
}

// RemoveAt deletes and returns the value at pos.
func (m *Model[T]) RemoveAt(pos int) T {
	v := m.vals[pos]
	m.vals = slices.Delete(m.vals, pos, pos+1)
	return v
}

// Rotate makes position pos the new head.
func (m *Model[T]) Rotate(pos int) {
	m.vals = slices.Concat(m.vals[pos:], m.vals[:pos])
}

// Values returns a copy of the values in order.
func (m *Model[T]) Values() []T {
	return slices.Clone(m.vals)
}
