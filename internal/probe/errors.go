package probe

import "errors"

// Sentinel kinds for probe failures.
var (
	ErrUnhealthy     = errors.New("service unhealthy")
	ErrUnexpected    = errors.New("unexpected response")
	ErrChecksFailed  = errors.New("checks failed")
	ErrIndexMismatch = errors.New("notes index mismatch")
	ErrInvalidConfig = errors.New("invalid probe config")
)
