package plot

import (
	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
	"github.com/zoomplot/zoomplot/text"
)

// Align is the horizontal anchor of a Text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text is a label anchored at a data position.
type Text struct {
	Base

	Pos   zoomplot.Point
	S     string
	Font  render.Font
	Color zoomplot.RGBA
	Angle float64 // degrees, counterclockwise
	Align Align
}

// NewText creates a left-aligned 10pt black label.
func NewText(pos zoomplot.Point, s string) *Text {
	t := &Text{Pos: pos, S: s, Font: render.Font{Family: "Go", Size: 10}, Color: zoomplot.Black}
	t.zorder = ZOrderText
	return t
}

// SizeExponent implements Scalable.
func (t *Text) SizeExponent() float64 { return 1 }

// FontSizeAt returns the font size used when drawing in pass.
func (t *Text) FontSizeAt(pass Pass) float64 {
	return t.Font.Size * pass.Scale()
}

// DataExtent implements Extenter. Only the anchor is known in data space.
func (t *Text) DataExtent() (zoomplot.Rect, bool) {
	return zoomplot.Rect{Min: t.Pos, Max: t.Pos}, true
}

// Draw implements Artist.
func (t *Text) Draw(r render.Renderer, pass Pass) error {
	if text.IsBlank(t.S) {
		return nil
	}
	f := t.Font.Scaled(pass.Scale())
	if f.Size <= 0 {
		return nil
	}
	pos := t.Transform().TransformPoint(t.Pos)

	if t.Align != AlignLeft {
		ext, err := r.TextExtents(t.S, f)
		if err != nil {
			return err
		}
		shift := ext.Width
		if t.Align == AlignCenter {
			shift /= 2
		}
		// Move back along the baseline direction.
		m := r.TextPathTransform(0, 0, f, t.Angle)
		pos = pos.Sub(m.TransformVector(zoomplot.Pt(shift, 0)))
	}

	gc := t.newGC()
	gc.Color = t.Color
	return r.DrawText(gc, pos.X, pos.Y, t.S, f, t.Angle)
}
