package zoom

import "github.com/zoomplot/zoomplot"

// Space names the coordinate system a placement rectangle is given in.
type Space int

const (
	// SpaceData places the inset in the parent's data coordinates.
	SpaceData Space = iota
	// SpaceAxes places the inset in parent axes fractions, y up.
	SpaceAxes
	// SpaceDevice places the inset in device pixels.
	SpaceDevice
)

// String implements fmt.Stringer.
func (s Space) String() string {
	switch s {
	case SpaceData:
		return "data"
	case SpaceAxes:
		return "axes"
	case SpaceDevice:
		return "device"
	default:
		return "unknown"
	}
}

// DefaultZOrder draws insets above ordinary artifacts.
const DefaultZOrder = 5

type options struct {
	space      Space
	zorder     float64
	frame      bool
	background *zoomplot.RGBA
	cull       bool
	cullMargin float64
}

func defaultOptions() options {
	bg := zoomplot.White
	return options{
		space:      SpaceData,
		zorder:     DefaultZOrder,
		frame:      true,
		background: &bg,
	}
}

// Option configures a Viewport.
type Option func(*options)

// WithPlacementSpace sets the space of the placement rectangle.
func WithPlacementSpace(s Space) Option {
	return func(o *options) { o.space = s }
}

// WithZOrder sets the inset's draw priority within the parent.
func WithZOrder(z float64) Option {
	return func(o *options) { o.zorder = z }
}

// WithFrame enables or disables the inset border.
func WithFrame(on bool) Option {
	return func(o *options) { o.frame = on }
}

// WithBackground sets the fill drawn behind replayed content.
// A fully transparent color disables the fill.
func WithBackground(c zoomplot.RGBA) Option {
	return func(o *options) {
		if c.A <= 0 {
			o.background = nil
			return
		}
		o.background = &c
	}
}

// WithCulling drops artifacts whose data extent misses the target region
// grown by margin times its size on each side. Artifacts without a known
// extent are always kept.
func WithCulling(margin float64) Option {
	return func(o *options) {
		o.cull = true
		o.cullMargin = margin
	}
}
