package config

import "errors"

var (
	// ErrInvalidDocumentCount indicates a non-positive result count.
	ErrInvalidDocumentCount = errors.New("document count must be at least 1")

	// ErrInvalidDimensions indicates a non-positive embedding width.
	ErrInvalidDimensions = errors.New("embedding dimensions must be at least 1")

	// ErrInvalidFilter indicates the filter predicate is not a JSON object.
	ErrInvalidFilter = errors.New("filter predicate must be a JSON object")
)
