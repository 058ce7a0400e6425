package component

import "errors"

// Controller errors.
var (
	// ErrNotReady is returned when calling into a component module before
	// the lifecycle reached Ready (or after disposal).
	ErrNotReady = errors.New("component module is not ready")
)
