package plot

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// Interpolation selects the resampling kernel for images.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
)

func (i Interpolation) transformer() xdraw.Transformer {
	if i == Bilinear {
		return xdraw.ApproxBiLinear
	}
	return xdraw.NearestNeighbor
}

// Image is a raster stretched over a data-space extent.
// The first row of Data is drawn at the top of the extent.
type Image struct {
	Base

	Data          *image.RGBA
	Extent        zoomplot.Rect // data space
	Interpolation Interpolation
	Alpha         float64 // zero value means opaque

	clip         zoomplot.Rect
	explicitClip bool
}

// NewImage creates an image covering extent.
func NewImage(data *image.RGBA, extent zoomplot.Rect) *Image {
	img := &Image{Data: data, Extent: extent}
	img.zorder = ZOrderImage
	return img
}

// ClipBox implements ImageClipper.
func (img *Image) ClipBox() (zoomplot.Rect, bool) {
	return img.clip, img.explicitClip
}

// SetClipBox implements ImageClipper.
func (img *Image) SetClipBox(r zoomplot.Rect, explicit bool) {
	img.clip = r
	img.explicitClip = explicit
}

// WindowExtent implements ImageClipper.
func (img *Image) WindowExtent() zoomplot.Rect {
	return img.Extent.Transform(img.Transform())
}

// DataExtent implements Extenter.
func (img *Image) DataExtent() (zoomplot.Rect, bool) {
	return img.Extent, !img.Extent.IsEmpty()
}

// effectiveClip is the device region the image is cropped to before it is
// issued.
func (img *Image) effectiveClip() (zoomplot.Rect, bool) {
	if img.explicitClip {
		return img.clip, true
	}
	if img.noClip || img.axes == nil {
		return zoomplot.Rect{}, false
	}
	return img.axes.DeviceBox(), true
}

// Draw implements Artist. The visible part of the image is resampled to
// device resolution times the renderer magnification and issued in device
// pixels.
func (img *Image) Draw(r render.Renderer, _ Pass) error {
	if img.Data == nil || img.Data.Bounds().Empty() || img.Extent.IsEmpty() {
		return nil
	}
	window := img.WindowExtent()
	visible := window
	if clip, ok := img.effectiveClip(); ok {
		var nonEmpty bool
		if visible, nonEmpty = window.Intersect(clip); !nonEmpty {
			return nil
		}
	}

	mag := r.ImageMagnification()
	w := int(math.Ceil(visible.Width() * mag))
	h := int(math.Ceil(visible.Height() * mag))
	if w <= 0 || h <= 0 {
		return nil
	}

	sb := img.Data.Bounds()
	src := zoomplot.NewRect(float64(sb.Min.X), float64(sb.Min.Y), float64(sb.Max.X), float64(sb.Max.Y))
	toOut := zoomplot.BoxToBox(src, window, false).
		Then(zoomplot.Translate(-visible.Min.X, -visible.Min.Y)).
		Then(zoomplot.Scale(mag, mag))

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Interpolation.transformer().Transform(out, Aff3(toOut), img.Data, sb, xdraw.Src, nil)

	gc := img.newGC()
	gc.Alpha = img.Alpha
	return r.DrawImage(gc, visible.Min.X, visible.Min.Y, out)
}

// Aff3 converts m to the x/image affine form.
func Aff3(m zoomplot.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
