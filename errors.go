package colorful

import (
	"errors"
	"fmt"
)

// Sentinel errors for the colorful package.
var (
	// ErrInvalidConfiguration is returned when an animation is configured
	// with fewer than two colors, a non-positive step duration, or invalid
	// size metrics.
	ErrInvalidConfiguration = errors.New("colorful: invalid configuration")

	// ErrIllegalState is returned when a lifecycle operation is not allowed
	// in the animator's current state.
	ErrIllegalState = errors.New("colorful: illegal state")
)

// StateError describes a lifecycle operation rejected by an Animator.
// It unwraps to ErrIllegalState.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("colorful: %s not allowed in state %s", e.Op, e.State)
}

func (e *StateError) Unwrap() error {
	return ErrIllegalState
}
