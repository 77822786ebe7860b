// Package zoom draws magnified insets of a plot by replaying what the parent
// Axes has already drawn.
//
// A [Viewport] is placed inside a parent plot.Axes and shows a target region
// of the parent's data space. On every draw it sends the parent's artifacts
// through a [ReplayRenderer], which moves each primitive from the parent's
// device space into the inset's with
//
//	transfer(orig) = orig ∘ mock⁻¹ ∘ core
//
// where mock is the parent data transform and core is the inset's own. The
// parent's application code is never called again.
//
//	inset, err := zoom.New(ax, 4, zoomplot.NewRect(2.2, 48.7, 2.5, 49.0),
//	    zoomplot.NewRect(0.6, 0.6, 0.95, 0.95), zoom.WithPlacementSpace(zoom.SpaceAxes))
//
// Point-based sizes (marker diameter, font size, scatter area) are divided by
// the zoom ratio raised to each artifact's plot.Scalable exponent so replayed
// marks keep their apparent size. The factor is passed to the draw call, so
// parent artifacts are never modified and repeated draws give the same
// result.
package zoom
