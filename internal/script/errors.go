package script

import "errors"

// Errors for script state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("script state is closed")

	// ErrNoSuchFunction is returned when a named entry point does not exist.
	ErrNoSuchFunction = errors.New("script function not found")
)
