package veclist

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Validate checks the structural invariants of the list and returns an
// *InvariantError describing the first violation, or nil:
//
//   - the live nodes form one ring in both directions, reachable from head
//   - next and prev links of every node agree with its neighbors
//   - the free pool holds every tombstoned slot exactly once
//
// Validate never panics. It costs O(Slots).
func (l *List[T]) Validate() error {
	count := l.Len()
	if count > 0 {
		if !l.Contains(l.head) {
			return &InvariantError{Handle: l.head, Reason: "head is not live"}
		}
		if err := l.checkRing(count, true); err != nil {
			return err
		}
		if err := l.checkRing(count, false); err != nil {
			return err
		}
	}
	return l.checkFreePool(count)
}

func (l *List[T]) checkRing(count int, forward bool) error {
	dir, back := "next", "prev"
	link := func(n *node[T]) Handle { return n.next }
	backLink := func(n *node[T]) Handle { return n.prev }
	if !forward {
		dir, back = back, dir
		link, backLink = backLink, link
	}

	visited := roaring.New()
	h := l.head
	for range count {
		n, err := l.slots.Get(int(h))
		if err != nil {
			return &InvariantError{Handle: h, Reason: fmt.Sprintf("%s walk reached a dead slot: %v", dir, translateError(err))}
		}
		if !visited.CheckedAdd(uint32(h)) {
			return &InvariantError{Handle: h, Reason: fmt.Sprintf("%s walk revisited node before closing the ring", dir)}
		}

		step := link(n)
		neighbor, err := l.slots.Get(int(step))
		if err != nil {
			return &InvariantError{Handle: h, Reason: fmt.Sprintf("%s link %d is not live", dir, step)}
		}
		if got := backLink(neighbor); got != h {
			return &InvariantError{Handle: step, Reason: fmt.Sprintf("%s link is %d, want %d", back, got, h)}
		}
		h = step
	}

	// count distinct live nodes were visited, so every live node is on the ring.
	if h != l.head {
		return &InvariantError{Handle: l.head, Reason: fmt.Sprintf("%s walk of %d steps ended at %d", dir, count, h)}
	}
	return nil
}

func (l *List[T]) checkFreePool(count int) error {
	live := 0
	for range l.slots.LiveIndices() {
		live++
	}
	if live != count {
		return &InvariantError{Handle: -1, Reason: fmt.Sprintf("%d slots marked live, want %d", live, count)}
	}

	free := roaring.New()
	for idx := range l.slots.FreeIndices() {
		if l.slots.IsLive(idx) {
			return &InvariantError{Handle: Handle(idx), Reason: "live node is on the free pool"}
		}
		if !free.CheckedAdd(uint32(idx)) {
			return &InvariantError{Handle: Handle(idx), Reason: "slot is on the free pool twice"}
		}
	}

	if got, want := free.GetCardinality(), uint64(l.slots.Len()-count); got != want {
		return &InvariantError{Handle: -1, Reason: fmt.Sprintf("free pool holds %d slots, want %d", got, want)}
	}
	return nil
}
