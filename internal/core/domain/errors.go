package domain

import "errors"

// Domain errors represent comparison failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidPath indicates a file path does not exist or cannot be read.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyComparisonSet indicates a comparison was requested with no documents.
	ErrEmptyComparisonSet = errors.New("empty comparison set")

	// ErrZeroMagnitudeVector indicates a vector has zero magnitude,
	// so cosine similarity is undefined.
	ErrZeroMagnitudeVector = errors.New("zero magnitude vector")

	// ErrDimensionMismatch indicates two vectors passed to the scorer have
	// different lengths. Vectorisation guarantees alignment, so this is a defect.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no extractor handles a document format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractorToolNotFound indicates an external extraction tool is missing.
	ErrExtractorToolNotFound = errors.New("extractor tool not found")

	// ErrInvalidSetting indicates an unknown setting key or a bad value.
	ErrInvalidSetting = errors.New("invalid setting")
)
