package render

import "github.com/zoomplot/zoomplot"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// GC is the graphics context handed along with each primitive.
//
// Renderers that change a GC must work on a Clone so the caller's context is
// never altered.
type GC struct {
	Color     zoomplot.RGBA // stroke and text color
	LineWidth float64       // points; zero disables stroking
	Dash      []float64     // points, on/off pairs
	Cap       LineCap
	Join      LineJoin
	Alpha     float64 // multiplies every color; zero value means opaque

	clip    zoomplot.Rect
	hasClip bool
}

// NewGC returns a context drawing 1pt black lines.
func NewGC() *GC {
	return &GC{Color: zoomplot.Black, LineWidth: 1, Alpha: 1}
}

// Clone returns an independent copy of gc.
func (gc *GC) Clone() *GC {
	c := *gc
	if gc.Dash != nil {
		c.Dash = append([]float64(nil), gc.Dash...)
	}
	return &c
}

// SetClipRect restricts drawing to r in device pixels.
func (gc *GC) SetClipRect(r zoomplot.Rect) {
	gc.clip = r
	gc.hasClip = true
}

// ClipRect returns the clip rectangle, if one is set.
func (gc *GC) ClipRect() (zoomplot.Rect, bool) {
	return gc.clip, gc.hasClip
}

// ClearClip removes the clip rectangle.
func (gc *GC) ClearClip() {
	gc.clip = zoomplot.Rect{}
	gc.hasClip = false
}

// EffectiveAlpha returns Alpha, treating the zero value as opaque.
func (gc *GC) EffectiveAlpha() float64 {
	if gc.Alpha <= 0 {
		return 1
	}
	if gc.Alpha > 1 {
		return 1
	}
	return gc.Alpha
}

// Apply returns c with the context alpha folded in.
func (gc *GC) Apply(c zoomplot.RGBA) zoomplot.RGBA {
	return c.WithAlpha(c.A * gc.EffectiveAlpha())
}
