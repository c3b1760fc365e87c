package season

import "errors"

var (
	// ErrInvalidConfig is returned when interval data fails validation at
	// definition construction. The offending season is never registered.
	ErrInvalidConfig = errors.New("invalid season config")

	// ErrNotFound is returned by registry lookups for an unregistered
	// (sport, year) pair. The registry never fabricates defaults.
	ErrNotFound = errors.New("season not found")
)
