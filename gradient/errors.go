package gradient

import "errors"

// Validation failures surfaced at construction time. The gradient value is
// either fully built or not constructed at all.
var (
	// ErrEmptyText indicates the input text sanitized to an empty string.
	ErrEmptyText = errors.New("text is empty")

	// ErrInvalidColorCount indicates fewer than two anchor colors, or at least
	// as many colors as characters.
	ErrInvalidColorCount = errors.New("invalid color count")

	// ErrInvalidHueCount indicates a hue count below two when anchor colors
	// are auto-generated from the default palette.
	ErrInvalidHueCount = errors.New("invalid hue count")

	// ErrInvalidPartition indicates a partition request that cannot give every
	// segment at least one index.
	ErrInvalidPartition = errors.New("invalid partition")
)
