package zoom

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/plot"
)

// indexedArtist is an artist stored in the culling R-tree.
type indexedArtist struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (a *indexedArtist) Bounds() rtreego.Rect { return a.rect }

// toRTreeRect converts r, padding zero-size sides to eps since the R-tree
// needs positive lengths.
func toRTreeRect(r zoomplot.Rect, eps float64) (rtreego.Rect, error) {
	w := math.Max(r.Width(), eps)
	h := math.Max(r.Height(), eps)
	return rtreego.NewRect(rtreego.Point{r.Min.X, r.Min.Y}, []float64{w, h})
}

// cull keeps the artists whose data extent meets window, in their original
// order. Artists without an extent are kept.
func cull(arts []plot.Artist, window zoomplot.Rect) []plot.Artist {
	eps := 1e-9 * math.Max(1, math.Max(window.Width(), window.Height()))
	// Grown so that extents touching the window edge still match.
	query, err := toRTreeRect(window.Expand(eps, eps), eps)
	if err != nil {
		return arts
	}

	keep := make([]bool, len(arts))
	tree := rtreego.NewTree(2, 25, 50)
	for i, art := range arts {
		e, ok := art.(plot.Extenter)
		if !ok {
			keep[i] = true
			continue
		}
		ext, ok := e.DataExtent()
		if !ok {
			keep[i] = true
			continue
		}
		rect, err := toRTreeRect(ext, eps)
		if err != nil {
			keep[i] = true
			continue
		}
		tree.Insert(&indexedArtist{index: i, rect: rect})
	}
	for _, s := range tree.SearchIntersect(query) {
		keep[s.(*indexedArtist).index] = true
	}

	out := arts[:0:0]
	for i, art := range arts {
		if keep[i] {
			out = append(out, art)
		}
	}
	zoomplot.Logger().Debug("zoom: culled artifacts", "kept", len(out), "total", len(arts))
	return out
}
