package plot

import (
	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Line2D is a polyline in data space with optional circle markers.
type Line2D struct {
	Base

	Points      []zoomplot.Point
	Color       zoomplot.RGBA
	Width       float64   // points; zero hides the line
	Dash        []float64 // points
	MarkerSize  float64   // marker diameter in points; zero hides markers
	MarkerColor zoomplot.RGBA
}

// LineOption configures a Line2D.
type LineOption func(*Line2D)

// WithColor sets the line and marker color.
func WithColor(c zoomplot.RGBA) LineOption {
	return func(l *Line2D) {
		l.Color = c
		l.MarkerColor = c
	}
}

// WithWidth sets the line width in points.
func WithWidth(w float64) LineOption {
	return func(l *Line2D) { l.Width = w }
}

// WithDash sets the dash pattern in points.
func WithDash(d ...float64) LineOption {
	return func(l *Line2D) { l.Dash = d }
}

// WithMarkers draws a circle of the given diameter at each vertex.
func WithMarkers(size float64) LineOption {
	return func(l *Line2D) { l.MarkerSize = size }
}

// NewLine2D creates a 1.5pt line through pts.
func NewLine2D(pts []zoomplot.Point, opts ...LineOption) *Line2D {
	l := &Line2D{
		Points:      pts,
		Color:       zoomplot.Blue,
		MarkerColor: zoomplot.Blue,
		Width:       1.5,
	}
	l.zorder = ZOrderLine
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SizeExponent implements Scalable.
func (l *Line2D) SizeExponent() float64 { return 1 }

// MarkerSizeAt returns the marker diameter used when drawing in pass.
func (l *Line2D) MarkerSizeAt(pass Pass) float64 {
	return l.MarkerSize * pass.Scale()
}

// DataExtent implements Extenter.
func (l *Line2D) DataExtent() (zoomplot.Rect, bool) {
	return pointsExtent(l.Points)
}

// Draw implements Artist.
func (l *Line2D) Draw(r render.Renderer, pass Pass) error {
	if len(l.Points) == 0 {
		return nil
	}
	tr := l.Transform()

	if l.Width > 0 && len(l.Points) > 1 {
		gc := l.newGC()
		gc.Color = l.Color
		gc.LineWidth = l.Width
		gc.Dash = l.Dash
		gc.Join = render.LineJoinRound
		p := zoomplot.NewPath()
		p.Polyline(l.Points)
		if err := r.DrawPath(gc, p, tr, nil); err != nil {
			return err
		}
	}

	size := l.MarkerSizeAt(pass)
	if size <= 0 {
		return nil
	}
	gc := l.newGC()
	gc.LineWidth = 0
	radius := r.PointsToPixels(size) / 2
	fill := l.MarkerColor
	return r.DrawPath(gc, circles(tr.TransformPoints(l.Points), radius), zoomplot.Identity(), &fill)
}

func pointsExtent(pts []zoomplot.Point) (zoomplot.Rect, bool) {
	if len(pts) == 0 {
		return zoomplot.Rect{}, false
	}
	r := zoomplot.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(zoomplot.Rect{Min: p, Max: p})
	}
	return r, true
}
