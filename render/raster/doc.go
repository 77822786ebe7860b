// Package raster is the pixel backend: paths are scan-converted with
// github.com/srwiley/rasterx into an *image.RGBA and the result is encoded
// as PNG.
//
// Importing the package registers the "png" backend with render.
package raster
