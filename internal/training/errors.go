package training

import "errors"

var (
	// ErrNoCard indicates that the pool is empty. It is a terminal state, not a
	// failure: callers show an empty state and disable grading.
	ErrNoCard = errors.New("no card available")

	// ErrInvalidMode indicates an unknown selection mode.
	ErrInvalidMode = errors.New("invalid selection mode")

	// ErrInvalidTransition indicates a session action that is not allowed in
	// the current state.
	ErrInvalidTransition = errors.New("invalid session transition")
)
