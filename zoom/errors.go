package zoom

import (
	"errors"

	"github.com/zoomplot/zoomplot"
)

var (
	// ErrInvalidZoom is returned for a zoom ratio that is not a positive
	// finite number.
	ErrInvalidZoom = errors.New("zoom: zoom ratio must be positive and finite")

	// ErrDegenerateBox is returned when the target region or placement has
	// zero width or height.
	ErrDegenerateBox = zoomplot.ErrDegenerateBox

	// ErrNoParent is returned when a viewport is created without a parent.
	ErrNoParent = errors.New("zoom: parent axes is nil")
)
