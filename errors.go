package veclist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/veclist/internal/arena"
)

var (
	// ErrOutOfBounds is the cause of a HandleError whose handle lies outside the arena.
	ErrOutOfBounds = errors.New("handle out of bounds")
	// ErrRemoved is the cause of a HandleError whose handle names a removed node.
	ErrRemoved = errors.New("handle names a removed node")
	// ErrCorrupted is wrapped by every InvariantError.
	ErrCorrupted = errors.New("list invariants violated")
)

// HandleError reports caller misuse of a handle. List operations that
// dereference a handle panic with a *HandleError; recover it and use
// errors.Is with ErrOutOfBounds or ErrRemoved to tell the two cases apart.
type HandleError struct {
	Op     string
	Handle Handle
	cause  error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("veclist: %s: node %d: %v", e.Op, e.Handle, e.cause)
}

func (e *HandleError) Unwrap() error { return e.cause }

// InvariantError describes the first broken invariant found by Validate.
type InvariantError struct {
	Handle Handle
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Handle < 0 {
		return fmt.Sprintf("veclist: %s", e.Reason)
	}
	return fmt.Sprintf("veclist: node %d: %s", e.Handle, e.Reason)
}

func (e *InvariantError) Unwrap() error { return ErrCorrupted }

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, arena.ErrOutOfBounds):
		return ErrOutOfBounds
	case errors.Is(err, arena.ErrFreed):
		return ErrRemoved
	default:
		return err
	}
}
