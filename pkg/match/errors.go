package match

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks structurally invalid queries: bad clue syntax,
	// malformed expressions, oversized somewhere sets.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsatisfiable is returned by the keyword solver when no dictionary
	// entry satisfies every clue. It is an expected outcome, not a failure.
	ErrUnsatisfiable = errors.New("no keyword satisfies the clues")
)

// InputError describes why a piece of user input was rejected.
type InputError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is match both ErrInvalidInput and the cause.
func (e *InputError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

func invalid(input, reason string) error {
	return &InputError{Input: input, Reason: reason}
}
