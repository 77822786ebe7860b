// Package text turns strings into glyph outlines.
//
// A [Shaper] wraps one TrueType font. Shaping goes through the HarfBuzz port
// in github.com/go-text/typesetting, run direction is detected with
// golang.org/x/text/unicode/bidi, and outlines and vertical metrics come from
// golang.org/x/image/font/sfnt.
//
// All coordinates are in pixels, y-down, with the origin at the start of the
// baseline. A renderer places the result with its own text transform.
//
//	s := text.Default()
//	p, err := s.Path("Paris", 16)
package text
