package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Reproducible(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Ints(16, 100)

	rng.Reset()
	b := rng.Ints(16, 100)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}

func TestRNG_Perm(t *testing.T) {
	rng := NewRNG(1)

	p := rng.Perm(10)

	require.Len(t, p, 10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p)
}

func TestRNG_Chance(t *testing.T) {
	rng := NewRNG(1)

	assert.False(t, rng.Chance(0))
	assert.True(t, rng.Chance(1))
}

func TestModel(t *testing.T) {
	m := NewModel('M', 'a', 'r', 'c', 'u', 's')

	assert.Equal(t, 'r', m.RemoveAt(2))
	m.InsertAfter(3, 'H')
	assert.Equal(t, []rune("MacuHs"), m.Values())

	m.Set(0, 'm')
	assert.Equal(t, []rune("macuHs"), m.Values())

	m.Push('!')
	m.Rotate(4)
	assert.Equal(t, []rune("Hs!macu"), m.Values())
	assert.Equal(t, 7, m.Len())
}
