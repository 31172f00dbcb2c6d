package analysis

import "errors"

var (
	// ErrResourceNotFound is returned when the move log cannot be opened.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrSchemaMismatch is returned when a required column is absent.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrRaggedVectorShape is returned when well-formed vectors in one column
	// disagree on length and cannot be stacked.
	ErrRaggedVectorShape = errors.New("ragged vector shape")
	// ErrInvalidField is returned when a scalar cell is not a number.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidFraction is returned for a dataset fraction outside (0, 1].
	ErrInvalidFraction = errors.New("dataset fraction must be in (0, 1]")
	// ErrInvalidBoundaries is returned when boundaries do not partition the moves.
	ErrInvalidBoundaries = errors.New("invalid segment boundaries")
	// ErrEmptySegmentDivision guards the per-segment mean against empty segments.
	ErrEmptySegmentDivision = errors.New("empty segment")
	// ErrMisalignedFields is returned when per-move arrays differ in length.
	ErrMisalignedFields = errors.New("misaligned dataset fields")
)
