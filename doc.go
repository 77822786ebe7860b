// Package zoomplot provides the geometry primitives shared by the zoom
// replay engine: affine transforms, points, bounding boxes, paths and colors.
//
// # Overview
//
// The interesting part of the module lives in the zoom package: a renderer
// adapter that replays the drawing primitives already issued by a parent
// plot view into a nested, magnified inset. Everything it needs to reason
// about coordinates is defined here.
//
//	fig := plot.NewFigure(8, 6, 100)
//	parent := fig.AddAxes(zoomplot.NewRect(0.1, 0.1, 0.9, 0.9))
//	parent.SetLimits(zoomplot.NewRect(0, 0, 100, 100))
//	parent.Scatter(points, sizes, nil)
//
//	inset, err := zoom.New(parent, 4,
//	    zoomplot.NewRect(40, 40, 50, 50), // region to magnify, parent data space
//	    zoomplot.NewRect(60, 5, 95, 40),  // where to draw it, parent data space
//	)
//
//	err = fig.Render("png", w)
//
// # Coordinate System
//
// Device space follows the usual raster convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data space is whatever the plot shows; an Axes maps it to device space with
// the y axis flipped so that larger data values appear higher up.
//
// # Transform Composition
//
// Matrix.Multiply follows the mathematical convention (m * other applies
// other first). Matrix.Then reads left to right: a.Then(b) applies a, then b.
// The replay engine is written with Then because its composition rule is
// stated in application order.
package zoomplot
