package veclist

import (
	"context"

	"github.com/hupe1980/veclist/internal/arena"
)

// Handle names a node of a List. It is the node's index in the arena and
// stays valid until the node is removed; afterwards the index may be handed
// out again to a new node.
type Handle int

type node[T any] struct {
	value      T
	prev, next Handle
}

// Stats describes the arena behind a List.
type Stats struct {
	Len      int    // live nodes
	Slots    int    // arena slots, the high-water mark of live nodes
	Free     int    // tombstoned slots waiting for reuse
	Capacity int    // reserved slots
	Appended uint64 // inserts that appended a fresh slot
	Reused   uint64 // inserts that recycled a free slot
}

// List is a circular doubly-linked list whose nodes live in a flat arena.
//
// Use New or WithCapacity; the zero value is not ready for use.
// A List is not safe for concurrent use.
type List[T any] struct {
	slots   *arena.Arena[node[T]]
	head    Handle
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty list.
func New[T any](optFns ...Option) *List[T] {
	o := applyOptions(optFns)
	return &List[T]{
		slots:   arena.New[node[T]](o.capacity),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// WithCapacity creates an empty list with room for n nodes. The capacity
// is a performance hint and has no observable effect on behavior.
func WithCapacity[T any](n int, optFns ...Option) *List[T] {
	return New[T](append([]Option{WithInitialCapacity(n)}, optFns...)...)
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.slots.Live()
}

// Head returns the handle of the first node, or false if the list is empty.
func (l *List[T]) Head() (Handle, bool) {
	if l.Len() == 0 {
		return 0, false
	}
	return l.head, true
}

// Tail returns the handle of the last node, or false if the list is empty.
func (l *List[T]) Tail() (Handle, bool) {
	if l.Len() == 0 {
		return 0, false
	}
	return l.Offset(l.head, -1), true
}

// SetHead makes h the first node. The ring itself is unchanged, so this
// rotates the logical order. It panics if h is not live.
func (l *List[T]) SetHead(h Handle) {
	l.mustNode("set head", h)
	l.head = h
}

// Next returns the handle following h. It panics if h is not live.
func (l *List[T]) Next(h Handle) Handle {
	return l.mustNode("next", h).next
}

// Prev returns the handle preceding h. It panics if h is not live.
func (l *List[T]) Prev(h Handle) Handle {
	return l.mustNode("prev", h).prev
}

// Offset walks k nodes forward from h, or -k nodes backward when k is
// negative, wrapping around the ring. Offset(h, 0) returns h unchanged.
// It costs O(|k|) and panics if any node on the way is not live.
func (l *List[T]) Offset(h Handle, k int) Handle {
	for ; k < 0; k++ {
		h = l.mustNode("offset", h).prev
	}
	for ; k > 0; k-- {
		h = l.mustNode("offset", h).next
	}
	return h
}

// Contains reports whether h names a live node.
func (l *List[T]) Contains(h Handle) bool {
	return l.slots.IsLive(int(h))
}

// Get returns the value stored at h. Unlike the navigation methods it does
// not panic: ok is false if h is out of bounds or names a removed node.
func (l *List[T]) Get(h Handle) (v T, ok bool) {
	n, err := l.slots.Get(int(h))
	if err != nil {
		return v, false
	}
	return n.value, true
}

// GetMut returns a pointer to the value stored at h, or nil if h is out of
// bounds or names a removed node. The pointer is valid until the next Push
// or Insert.
func (l *List[T]) GetMut(h Handle) *T {
	n, err := l.slots.Get(int(h))
	if err != nil {
		return nil
	}
	return &n.value
}

// Insert places v right after the node at after and returns the new handle.
// It panics if after is not live, which includes every handle of an empty
// list; use Push to start a list.
func (l *List[T]) Insert(after Handle, v T) Handle {
	next := l.mustNode("insert", after).next

	h := l.alloc(node[T]{value: v, prev: after, next: next})
	l.at(after).next = h
	l.at(next).prev = h
	return h
}

// Push appends v after the last node and returns its handle.
func (l *List[T]) Push(v T) Handle {
	if l.Len() > 0 {
		return l.Insert(l.Offset(l.head, -1), v)
	}

	h := l.alloc(node[T]{value: v})
	n := l.at(h)
	n.prev, n.next = h, h
	l.head = h
	return h
}

// Remove unlinks the node at h and returns its value. Removing the head
// moves the head to its successor. The slot is tombstoned and reused by a
// later insert. It panics if h is not live.
func (l *List[T]) Remove(h Handle) T {
	n := l.mustNode("remove", h)
	prev, next := n.prev, n.next

	if l.Len() > 1 {
		if h == l.head {
			l.head = next
		}
		l.at(prev).next = next
		l.at(next).prev = prev
	}

	removed, _ := l.slots.Release(int(h))
	l.metrics.RecordRemove()
	return removed.value
}

// Stats returns arena usage of the list.
func (l *List[T]) Stats() Stats {
	s := l.slots.Stats()
	return Stats{
		Len:      s.Live,
		Slots:    s.Slots,
		Free:     s.Free,
		Capacity: s.Capacity,
		Appended: s.Appended,
		Reused:   s.Reused,
	}
}

func (l *List[T]) alloc(n node[T]) Handle {
	capBefore := l.slots.Cap()
	idx, reused := l.slots.Alloc(n)
	h := Handle(idx)

	ctx := context.Background()
	if reused {
		l.logger.LogReuse(ctx, h, l.slots.Stats().Free)
	}
	if c := l.slots.Cap(); c != capBefore {
		l.logger.LogGrow(ctx, l.slots.Len(), c)
		l.metrics.RecordGrow(c)
	}
	l.metrics.RecordInsert(reused)
	return h
}

// mustNode returns the live node at h or aborts op with a *HandleError.
func (l *List[T]) mustNode(op string, h Handle) *node[T] {
	n, err := l.slots.Get(int(h))
	if err != nil {
		herr := &HandleError{Op: op, Handle: h, cause: translateError(err)}
		l.logger.LogMisuse(context.Background(), herr)
		l.metrics.RecordMisuse(herr)
		panic(herr)
	}
	return n
}

// at returns the node at h, which the caller knows to be live.
func (l *List[T]) at(h Handle) *node[T] {
	n, _ := l.slots.Get(int(h))
	return n
}
