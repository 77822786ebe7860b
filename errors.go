package zoomplot

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrSingularMatrix is returned when a transform has no inverse.
	ErrSingularMatrix = errors.New("zoomplot: matrix is not invertible")

	// ErrDegenerateBox is returned when a bounding box has no area where
	// one is required.
	ErrDegenerateBox = errors.New("zoomplot: bounding box has zero width or height")
)
