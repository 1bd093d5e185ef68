package veclist

import "iter"

// All returns an iterator over the values from head to tail.
//
// The walk takes exactly Len() steps, counted when ranging starts. The list
// must not be modified while it is being ranged over.
func (l *List[T]) All() iter.Seq[T] {
	return l.AllFrom(l.head)
}

// AllFrom is like All but starts the walk at start and wraps around the
// ring, so every value is still visited once. It panics if the list is not
// empty and start is not live.
func (l *List[T]) AllFrom(start Handle) iter.Seq[T] {
	walk := l.walk("iterate", start)
	return func(yield func(T) bool) {
		for _, v := range walk {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns an iterator over handle and value pairs from head to tail.
func (l *List[T]) Entries() iter.Seq2[Handle, T] {
	return l.walk("iterate", l.head)
}

// Handles returns an iterator over the handles from head to tail.
func (l *List[T]) Handles() iter.Seq[Handle] {
	walk := l.walk("iterate", l.head)
	return func(yield func(Handle) bool) {
		for h := range walk {
			if !yield(h) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes each value from the list as it
// yields it, from head onwards. Ranging to completion leaves the list empty.
// Breaking out early leaves the values not yet yielded in the list.
func (l *List[T]) Drain() iter.Seq[T] {
	return l.DrainFrom(l.head)
}

// DrainFrom is like Drain but starts at start and wraps around the ring.
// It panics if the list is not empty and start is not live.
func (l *List[T]) DrainFrom(start Handle) iter.Seq[T] {
	if l.Len() > 0 {
		l.mustNode("drain", start)
	}
	return func(yield func(T) bool) {
		h := start
		for l.Len() > 0 {
			next := l.mustNode("drain", h).next
			v := l.Remove(h)
			h = next
			if !yield(v) {
				return
			}
		}
	}
}

// walk validates start eagerly so misuse panics at the call site rather
// than inside the caller's range loop.
func (l *List[T]) walk(op string, start Handle) iter.Seq2[Handle, T] {
	if l.Len() > 0 {
		l.mustNode(op, start)
	}
	return func(yield func(Handle, T) bool) {
		h := start
		for range l.Len() {
			n := l.mustNode(op, h)
			next := n.next
			if !yield(h, n.value) {
				return
			}
			h = next
		}
	}
}

// Collect builds a list by pushing every value of seq in order.
func Collect[T any](seq iter.Seq[T], optFns ...Option) *List[T] {
	l := New[T](optFns...)
	for v := range seq {
		l.Push(v)
	}
	return l
}

// FromSlice builds a list holding vals in order.
func FromSlice[T any](vals []T, optFns ...Option) *List[T] {
	l := WithCapacity[T](len(vals), optFns...)
	for _, v := range vals {
		l.Push(v)
	}
	return l
}
