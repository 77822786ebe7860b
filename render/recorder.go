package render

import (
	"fmt"
	"image"

	"github.com/zoomplot/zoomplot"
)

// Op identifies a recorded primitive.
type Op uint8

const (
	OpPath Op = iota
	OpGouraud
	OpImage
	OpText
)

var opNames = [...]string{
	OpPath:    "DrawPath",
	OpGouraud: "DrawGouraudTriangles",
	OpImage:   "DrawImage",
	OpText:    "DrawText",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Call is one recorded primitive. Only the fields relevant to Op are set.
type Call struct {
	Op        Op
	GC        GC
	Path      *zoomplot.Path
	Transform zoomplot.Matrix
	Fill      *zoomplot.RGBA
	Triangles []Triangle
	X, Y      float64
	Image     *image.RGBA
	Text      string
	Font      Font
	Angle     float64
}

// Recorder is a Renderer that stores every call instead of drawing it.
// Recorded calls can be inspected with Calls or replayed with Playback.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	Base
	calls []Call
}

// NewRecorder creates a recorder for a surface of the given size.
func NewRecorder(width, height, dpi float64) *Recorder {
	return &Recorder{Base: Base{Width: width, Height: height, Resolution: dpi}}
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// CallsOf returns the recorded calls of one kind.
func (r *Recorder) CallsOf(op Op) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// DrawPath implements Renderer.
func (r *Recorder) DrawPath(gc *GC, p *zoomplot.Path, tr zoomplot.Matrix, fill *zoomplot.RGBA) error {
	c := Call{Op: OpPath, GC: *gc.Clone(), Path: p.Clone(), Transform: tr}
	if fill != nil {
		f := *fill
		c.Fill = &f
	}
	r.calls = append(r.calls, c)
	return nil
}

// DrawGouraudTriangles implements Renderer.
func (r *Recorder) DrawGouraudTriangles(gc *GC, tris []Triangle, tr zoomplot.Matrix) error {
	r.calls = append(r.calls, Call{
		Op:        OpGouraud,
		GC:        *gc.Clone(),
		Triangles: append([]Triangle(nil), tris...),
		Transform: tr,
	})
	return nil
}

// DrawImage implements Renderer.
func (r *Recorder) DrawImage(gc *GC, x, y float64, img *image.RGBA) error {
	r.calls = append(r.calls, Call{Op: OpImage, GC: *gc.Clone(), X: x, Y: y, Image: img})
	return nil
}

// DrawText implements Renderer.
func (r *Recorder) DrawText(gc *GC, x, y float64, s string, f Font, angleDeg float64) error {
	r.calls = append(r.calls, Call{Op: OpText, GC: *gc.Clone(), X: x, Y: y, Text: s, Font: f, Angle: angleDeg})
	return nil
}

// Playback issues every recorded call to dst in order.
func (r *Recorder) Playback(dst Renderer) error {
	for i := range r.calls {
		c := &r.calls[i]
		gc := c.GC.Clone()
		var err error
		switch c.Op {
		case OpPath:
			err = dst.DrawPath(gc, c.Path, c.Transform, c.Fill)
		case OpGouraud:
			err = dst.DrawGouraudTriangles(gc, c.Triangles, c.Transform)
		case OpImage:
			err = dst.DrawImage(gc, c.X, c.Y, c.Image)
		case OpText:
			err = dst.DrawText(gc, c.X, c.Y, c.Text, c.Font, c.Angle)
		}
		if err != nil {
			return fmt.Errorf("render: playback %s #%d: %w", c.Op, i, err)
		}
	}
	return nil
}
