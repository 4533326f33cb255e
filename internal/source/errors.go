package source

import "errors"

// Domain errors for source operations.
var (
	// Source validation errors
	ErrEmptyName     = errors.New("source name cannot be empty")
	ErrEmptyLocation = errors.New("source location cannot be empty")

	// Source registry errors
	ErrPersistenceFailed = errors.New("source list persistence failed")
)
