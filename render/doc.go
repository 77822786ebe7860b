// Package render defines the drawing surface that plot artifacts draw into.
//
// A [Renderer] accepts four primitives: paths, Gouraud-shaded triangles,
// raster images and glyph runs. Every primitive is issued in device pixels,
// y-down, after the artifact has applied its own transform, so a renderer
// can intercept and re-map primitives without knowing what produced them.
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/zoomplot/zoomplot/render/raster" // registers "png"
//
//	c, err := render.New("png", 800, 600, 100)
//
// [Recorder] captures calls as typed commands and can play them back into any
// other renderer.
package render
