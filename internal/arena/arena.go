package arena

import (
	"errors"
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrOutOfBounds is returned when an index lies outside the cell storage.
	ErrOutOfBounds = errors.New("arena: index out of bounds")
	// ErrFreed is returned when an index names a released (tombstoned) cell.
	ErrFreed = errors.New("arena: cell is free")
)

// Stats tracks arena usage.
//
// Note on semantics:
//   - Slots: cells held; never shrinks, so it is the high-water mark of live cells
//   - Live: cells currently holding a value
//   - Free: tombstoned cells waiting on the free pool
//   - Capacity: reserved cell capacity of the backing slice
type Stats struct {
	Slots    int    // Current: cells held
	Live     int    // Current: live cells
	Free     int    // Current: free pool size
	Capacity int    // Current: reserved cells
	Appended uint64 // Historical: allocations that appended a fresh cell
	Reused   uint64 // Historical: allocations served from the free pool
	Released uint64 // Historical: cells released
	Grows    uint64 // Historical: backing slice reallocations
}

type counters struct {
	appended uint64
	reused   uint64
	released uint64
	grows    uint64
}

// Arena is a slot arena of cells of type S.
type Arena[S any] struct {
	cells []S
	live  *bitset.BitSet
	free  []int // LIFO
	count int
	stats counters
}

// New creates an empty Arena with room for capacity cells.
// A non-positive capacity reserves nothing.
func New[S any](capacity int) *Arena[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[S]{
		cells: make([]S, 0, capacity),
		live:  bitset.New(uint(capacity)),
	}
}

// Alloc stores v in a cell and returns its index. The most recently released
// cell is reused first; otherwise a fresh cell is appended. reused reports
// which of the two happened.
func (a *Arena[S]) Alloc(v S) (idx int, reused bool) {
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.cells[idx] = v
		a.stats.reused++
		reused = true
	} else {
		if len(a.cells) == cap(a.cells) {
			a.stats.grows++
		}
		idx = len(a.cells)
		a.cells = append(a.cells, v)
		a.stats.appended++
	}

	a.live.Set(uint(idx))
	a.count++
	return idx, reused
}

// Release tombstones the cell at idx, returns its value and pushes idx onto
// the free pool.
func (a *Arena[S]) Release(idx int) (S, error) {
	var zero S
	if err := a.Check(idx); err != nil {
		return zero, err
	}

	v := a.cells[idx]
	a.cells[idx] = zero // drop references held by the value
	a.live.Clear(uint(idx))
	a.free = append(a.free, idx)
	a.count--
	a.stats.released++
	return v, nil
}

// Get returns a pointer to the live cell at idx.
// The pointer is invalidated by the next Alloc that grows the storage.
func (a *Arena[S]) Get(idx int) (*S, error) {
	if err := a.Check(idx); err != nil {
		return nil, err
	}
	return &a.cells[idx], nil
}

// Check reports why idx does not name a live cell, or nil if it does.
func (a *Arena[S]) Check(idx int) error {
	if idx < 0 || idx >= len(a.cells) {
		return ErrOutOfBounds
	}
	if !a.live.Test(uint(idx)) {
		return ErrFreed
	}
	return nil
}

// IsLive reports whether idx names a live cell.
func (a *Arena[S]) IsLive(idx int) bool {
	return a.Check(idx) == nil
}

// Len returns the number of cells held, live or free.
func (a *Arena[S]) Len() int {
	return len(a.cells)
}

// Live returns the number of live cells.
func (a *Arena[S]) Live() int {
	return a.count
}

// Cap returns the reserved cell capacity.
func (a *Arena[S]) Cap() int {
	return cap(a.cells)
}

// LiveIndices yields the indices of live cells in ascending storage order.
func (a *Arena[S]) LiveIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := a.live.NextSet(0); ok && i < uint(len(a.cells)); i, ok = a.live.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// FreeIndices yields the free pool from the next index to be reused to the last.
func (a *Arena[S]) FreeIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := len(a.free) - 1; i >= 0; i-- {
			if !yield(a.free[i]) {
				return
			}
		}
	}
}

// Stats returns the current arena statistics.
func (a *Arena[S]) Stats() Stats {
	return Stats{
		Slots:    len(a.cells),
		Live:     a.count,
		Free:     len(a.free),
		Capacity: cap(a.cells),
		Appended: a.stats.appended,
		Reused:   a.stats.reused,
		Released: a.stats.released,
		Grows:    a.stats.grows,
	}
}

func (a *Arena[S]) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{slots: %d, live: %d, free: %d, cap: %d, appended: %d, reused: %d}",
		stats.Slots,
		stats.Live,
		stats.Free,
		stats.Capacity,
		stats.Appended,
		stats.Reused,
	)
}
