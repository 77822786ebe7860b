package text

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/internal/cache"
)

// outlineCacheSize bounds the number of cached glyph-run outlines per font.
const outlineCacheSize = 512

// Glyph is one shaped glyph positioned relative to the run origin.
type Glyph struct {
	ID      uint16
	X, Y    float64 // pen position plus offset, y-down
	Advance float64
}

// Extents describes the size of a shaped string.
type Extents struct {
	Width   float64 // sum of advances
	Height  float64 // ascent + descent
	Ascent  float64 // above the baseline, positive
	Descent float64 // below the baseline, positive
}

// Shaper shapes and outlines text in a single font.
//
// Shaper is safe for concurrent use. The parsed fonts are read-only;
// HarfbuzzShaper instances and sfnt buffers are pooled since neither is
// safe to share.
type Shaper struct {
	outlines *sfnt.Font
	shaping  *font.Font

	shaperPool sync.Pool
	bufPool    sync.Pool

	outlineCache *cache.Cache[outlineKey, *zoomplot.Path]
}

type outlineKey struct {
	s    string
	size float64
}

// NewShaper parses TrueType or OpenType data.
func NewShaper(data []byte) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse outlines: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse for shaping: %w", err)
	}

	return &Shaper{
		outlines: outlines,
		shaping:  face.Font,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		bufPool: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
		outlineCache: cache.New[outlineKey, *zoomplot.Path](outlineCacheSize),
	}, nil
}

var (
	defaultOnce sync.Once
	regular     *Shaper
	bold        *Shaper
)

func loadDefaults() {
	var err error
	if regular, err = NewShaper(goregular.TTF); err != nil {
		panic(fmt.Sprintf("text: embedded Go Regular font: %v", err))
	}
	if bold, err = NewShaper(gobold.TTF); err != nil {
		panic(fmt.Sprintf("text: embedded Go Bold font: %v", err))
	}
}

// Default returns the shared shaper for the embedded Go Regular font.
func Default() *Shaper {
	defaultOnce.Do(loadDefaults)
	return regular
}

// DefaultBold returns the shared shaper for the embedded Go Bold font.
func DefaultBold() *Shaper {
	defaultOnce.Do(loadDefaults)
	return bold
}

// IsBlank reports whether s has nothing to draw.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Shape converts s into positioned glyphs at sizePx pixels per em.
func (s *Shaper) Shape(str string, sizePx float64) ([]Glyph, error) {
	if err := checkSize(sizePx); err != nil {
		return nil, err
	}
	if str == "" {
		return nil, nil
	}

	runes := []rune(str)
	dir := runDirection(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(s.shaping),
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // TrueType glyph indices are 16-bit
			X:       pen + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs, nil
}

// Path returns the outline of str at sizePx pixels per em.
// Empty or blank input yields an empty path. Outlines are cached, so
// redrawing the same labels does not reshape them; the returned path is
// the caller's to modify.
func (s *Shaper) Path(str string, sizePx float64) (*zoomplot.Path, error) {
	p, err := s.outlineCache.GetOrLoad(outlineKey{str, sizePx}, func() (*zoomplot.Path, error) {
		return s.outline(str, sizePx)
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// OutlineStats reports outline cache usage.
func (s *Shaper) OutlineStats() cache.Stats {
	return s.outlineCache.Stats()
}

func (s *Shaper) outline(str string, sizePx float64) (*zoomplot.Path, error) {
	glyphs, err := s.Shape(str, sizePx)
	if err != nil {
		return nil, err
	}

	buf := s.bufPool.Get().(*sfnt.Buffer)
	defer s.bufPool.Put(buf)

	p := zoomplot.NewPath()
	ppem := fixed.Int26_6(sizePx * 64)
	for _, g := range glyphs {
		segs, err := s.outlines.LoadGlyph(buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("text: load glyph %d: %w", g.ID, err)
		}
		appendSegments(p, segs, g.X, g.Y)
	}
	return p, nil
}

// Extents measures str at sizePx pixels per em.
func (s *Shaper) Extents(str string, sizePx float64) (Extents, error) {
	glyphs, err := s.Shape(str, sizePx)
	if err != nil {
		return Extents{}, err
	}

	buf := s.bufPool.Get().(*sfnt.Buffer)
	defer s.bufPool.Put(buf)

	m, err := s.outlines.Metrics(buf, fixed.Int26_6(sizePx*64), xfont.HintingNone)
	if err != nil {
		return Extents{}, fmt.Errorf("text: metrics: %w", err)
	}

	var width float64
	for _, g := range glyphs {
		width += g.Advance
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Extents{
		Width:   width,
		Height:  ascent + descent,
		Ascent:  ascent,
		Descent: descent,
	}, nil
}

// appendSegments adds sfnt segments, translated by (dx, dy), to p.
// sfnt already reports outlines y-down.
func appendSegments(p *zoomplot.Path, segs []sfnt.Segment, dx, dy float64) {
	pt := func(v fixed.Point26_6) (float64, float64) {
		return fixedToFloat(v.X) + dx, fixedToFloat(v.Y) + dy
	}
	started := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			started = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if started {
		p.Close()
	}
}

// runDirection resolves the paragraph direction of str.
func runDirection(str string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(str, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		if run := ordering.Run(i); run.Direction() != bidi.RightToLeft {
			return di.DirectionLTR
		}
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func checkSize(sizePx float64) error {
	if !(sizePx > 0) || math.IsInf(sizePx, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, sizePx)
	}
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
