package urn

import "errors"

var (
	// ErrNegativeCount indicates a construction mapping with a negative count.
	ErrNegativeCount = errors.New("urn: item count cannot be negative")
	// ErrNegativeDraw indicates a draw request for a negative number of items.
	ErrNegativeDraw = errors.New("urn: draw size cannot be negative")
)
