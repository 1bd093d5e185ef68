// Package arena provides a generic slot arena for index-linked data structures.
//
// The arena stores cells in one contiguous, growable slice and hands out
// integer indices instead of pointers. Released cells are tombstoned and kept
// on a LIFO free pool, so the next allocation reuses the most recently freed
// index before the slice grows again.
//
// # Features
//
//   - Contiguous storage: no per-cell heap allocation
//   - Liveness tracked in a bitset, O(1) stale index detection
//   - Storage bounded by the high-water mark of live cells
//   - Historical counters (appends, reuses, releases, grows)
//
// # Safety
//
// Get, Release and Check return ErrOutOfBounds or ErrFreed instead of
// panicking. The arena is not safe for concurrent use.
package arena
