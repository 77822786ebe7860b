package plot

import (
	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/render"
)

// TriMesh is a Gouraud-shaded triangle mesh in data space.
// It is added with AddArtist.
type TriMesh struct {
	Base

	Triangles []render.Triangle
	Alpha     float64 // zero value means opaque
}

// NewTriMesh creates a mesh drawn with patches.
func NewTriMesh(tris []render.Triangle) *TriMesh {
	m := &TriMesh{Triangles: tris}
	m.zorder = ZOrderPatch
	return m
}

// DataExtent implements Extenter.
func (m *TriMesh) DataExtent() (zoomplot.Rect, bool) {
	return pointsExtent(render.TrianglePoints(m.Triangles))
}

// Draw implements Artist.
func (m *TriMesh) Draw(r render.Renderer, _ Pass) error {
	if len(m.Triangles) == 0 {
		return nil
	}
	gc := m.newGC()
	gc.Alpha = m.Alpha
	return r.DrawGouraudTriangles(gc, m.Triangles, m.Transform())
}
