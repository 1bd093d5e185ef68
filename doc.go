// Package veclist provides a doubly-linked list stored in a flat arena.
//
// Nodes live in one contiguous, growable slice and are named by integer
// handles instead of pointers. The live nodes always form a single ring, so
// walking past the tail wraps to the head. Removed slots are tombstoned and
// recycled by later inserts, which bounds storage by the high-water mark of
// live nodes rather than by the number of inserts ever made.
//
// # Quick Start
//
//	l := veclist.New[string]()
//	l.Push("a")
//	b := l.Push("b")
//	l.Push("c")
//
//	l.Insert(b, "b2")       // a b b2 c
//	l.Remove(b)             // a b2 c
//	fmt.Println(l)          // * -> a -> b2 -> c -> *
//
// # Handles
//
// Push and Insert return a Handle that stays valid until the node is
// removed. Navigation and mutation (Next, Prev, Offset, Insert, Remove,
// SetHead) treat a removed or out-of-range handle as a programming error and
// panic with a *HandleError. Get, GetMut and Contains instead report absence,
// so they can be used to probe whether a saved handle is still live.
//
// # Iteration
//
// All and AllFrom walk the ring without changing it. Drain and DrainFrom
// remove every value as they yield it and leave the list empty when ranged
// to completion:
//
//	for v := range l.Drain() {
//	    process(v)
//	}
//
// # Concurrency
//
// A List is not safe for concurrent use. Do not modify a list while ranging
// over All, AllFrom, Entries or Handles.
package veclist
