package scrambler

import "errors"

// Package-specific errors
var (
	// ErrNegativeCount is returned when a batch of negative size is requested.
	ErrNegativeCount = errors.New("requested seed count is negative")

	// ErrCountExceedsSpace is returned when the requested batch size is larger
	// than the total number of distinct adjective-noun pairs. Generating such
	// a batch is impossible under the uniqueness guarantee.
	ErrCountExceedsSpace = errors.New("requested seed count exceeds the pair space")

	// ErrEntropySource is returned when reading from the entropy source fails.
	ErrEntropySource = errors.New("failed to read from entropy source")
)
