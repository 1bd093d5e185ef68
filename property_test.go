package veclist

import (
	"slices"
	"testing"

	"github.com/hupe1980/veclist/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	opPush = iota
	opInsert
	opRemove
	opRotate
	opMutate
	numOps
)

// applyOp performs the same operation on l and m, choosing positions with pick.
func applyOp(t *testing.T, l *List[int], m *testutil.Model[int], op, pick, value int) {
	t.Helper()

	if l.Len() == 0 {
		op = opPush
	}
	pos := 0
	if n := l.Len(); n > 0 {
		pos = pick % n
	}
	head, _ := l.Head()

	switch op {
	case opPush:
		l.Push(value)
		m.Push(value)
	case opInsert:
		h := l.Insert(l.Offset(head, pos), value)
		m.InsertAfter(pos, value)
		got, ok := l.Get(h)
		require.True(t, ok)
		require.Equal(t, value, got)
	case opRemove:
		got := l.Remove(l.Offset(head, pos))
		require.Equal(t, m.RemoveAt(pos), got)
	case opRotate:
		// Walk backwards so negative offsets get exercised too.
		l.SetHead(l.Offset(head, pos-l.Len()))
		m.Rotate(pos)
	case opMutate:
		p := l.GetMut(l.Offset(head, pos))
		require.NotNil(t, p)
		*p = value
		m.Set(pos, value)
	}
}

func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 4711} {
		rng := testutil.NewRNG(seed)
		l := New[int]()
		m := testutil.NewModel[int]()
		highWater := 0

		for i := range 2000 {
			applyOp(t, l, m, rng.Intn(numOps), rng.Intn(1<<20), i)

			highWater = max(highWater, l.Len())
			require.Equal(t, m.Len(), l.Len(), "seed=%d step=%d", seed, i)
			require.LessOrEqual(t, l.Stats().Slots, highWater, "seed=%d step=%d", seed, i)
		}

		require.NoError(t, l.Validate(), "seed=%d", seed)
		assert.Equal(t, m.Values(), slices.Collect(l.All()), "seed=%d", seed)
		assert.Equal(t, m.Values(), slices.Collect(l.Drain()), "seed=%d", seed)
		assert.Equal(t, 0, l.Len())
	}
}

func TestRingClosure_Random(t *testing.T) {
	rng := testutil.NewRNG(99)
	l := FromSlice(rng.Ints(200, 1000))
	for _, pos := range rng.Ints(80, 120) {
		head, _ := l.Head()
		l.Remove(l.Offset(head, pos))
	}

	head, ok := l.Head()
	require.True(t, ok)
	for _, k := range []int{l.Len(), -l.Len(), 3 * l.Len()} {
		assert.Equal(t, head, l.Offset(head, k), "k=%d", k)
	}
	for h := range l.Handles() {
		assert.Equal(t, h, l.Next(l.Prev(h)))
		assert.Equal(t, h, l.Prev(l.Next(h)))
	}
}
