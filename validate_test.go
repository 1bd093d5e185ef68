package veclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	build := func() *List[int] {
		l := FromSlice([]int{0, 1, 2, 3, 4})
		l.Remove(1)
		l.Remove(3)
		return l
	}

	t.Run("healthy", func(t *testing.T) {
		require.NoError(t, build().Validate())
	})

	tests := []struct {
		name    string
		corrupt func(l *List[int])
		reason  string
	}{
		{
			name:    "dead head",
			corrupt: func(l *List[int]) { l.head = 1 },
			reason:  "head is not live",
		},
		{
			name:    "broken back link",
			corrupt: func(l *List[int]) { l.at(2).prev = 2 },
			reason:  "prev link is 2, want 0",
		},
		{
			name:    "next points at tombstone",
			corrupt: func(l *List[int]) { l.at(0).next = 3 },
			reason:  "next link 3 is not live",
		},
		{
			name: "short ring",
			corrupt: func(l *List[int]) {
				// 0 <-> 2 closed on itself, 4 left out
				l.at(2).next = 0
				l.at(0).prev = 2
			},
			reason: "revisited",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := build()
			tt.corrupt(l)

			err := l.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupted)
			var ierr *InvariantError
			require.ErrorAs(t, err, &ierr)
			assert.Contains(t, ierr.Reason, tt.reason)
		})
	}
}

func TestInvariantError(t *testing.T) {
	assert.Equal(t, "veclist: node 3: boom", (&InvariantError{Handle: 3, Reason: "boom"}).Error())
	assert.Equal(t, "veclist: boom", (&InvariantError{Handle: -1, Reason: "boom"}).Error())
}
