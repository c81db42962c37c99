package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a form value cannot be bound to a
	// statement parameter (bad hex, non-numeric yards, malformed date).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned with a partial page result when a singleton
	// lookup (color by hex, player by id) matches no row.
	ErrNotFound = errors.New("resource not found")
	// ErrDependencyUnavailable is returned when a page's service or store is
	// not wired.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
