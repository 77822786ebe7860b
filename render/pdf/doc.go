// Package pdf is the vector backend, built on github.com/jung-kurt/gofpdf.
//
// The canvas is a single page whose size in points is the pixel size scaled
// by 72/DPI. Paths stay vector, images are embedded as PNG and text is
// written as glyph outlines so that output matches the raster backend.
// Gouraud-shaded triangles are approximated by flat fills of the average
// vertex color.
//
// Importing the package registers the "pdf" backend with render.
package pdf
