package export

import "errors"

// Package-specific errors
var (
	// ErrEmptyPath is returned when no destination path is provided.
	ErrEmptyPath = errors.New("export path is empty")

	// ErrWriteFailed is returned when the seed file cannot be written.
	ErrWriteFailed = errors.New("failed to write seed file")
)
