package zoomplot

import "math"

// DefaultFlattenTolerance is the maximum distance, in path units, between a
// curve and the polyline used to approximate it in hit tests.
const DefaultFlattenTolerance = 0.25

// polyline is one flattened subpath.
type polyline struct {
	pts    []Point
	closed bool
}

// ControlBounds returns the bounding box of all path points, control points
// included. It is never smaller than the tight bounds and much cheaper.
// The boolean is false for an empty path.
func (p *Path) ControlBounds() (Rect, bool) {
	if p.IsEmpty() {
		return Rect{}, false
	}

	bbox := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
		case QuadTo:
			bbox = expandBBox(expandBBox(bbox, e.Control), e.Point)
		case CubicTo:
			bbox = expandBBox(expandBBox(expandBBox(bbox, e.Control1), e.Control2), e.Point)
		}
	}
	if math.IsInf(bbox.Min.X, 1) {
		return Rect{}, false
	}
	return bbox, true
}

// Flatten converts all curves to line segments with given tolerance and
// returns the points of every subpath, concatenated.
func (p *Path) Flatten(tolerance float64) []Point {
	var points []Point
	for _, sp := range p.subpaths(tolerance) {
		points = append(points, sp.pts...)
	}
	return points
}

// subpaths flattens the path into one polyline per subpath.
func (p *Path) subpaths(tolerance float64) []polyline {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	tolSq := tolerance * tolerance

	var (
		out     []polyline
		cur     *polyline
		current Point
	)
	begin := func(pt Point) {
		out = append(out, polyline{pts: []Point{pt}})
		cur = &out[len(out)-1]
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
			current = e.Point
		case LineTo:
			if cur == nil {
				begin(current)
			}
			cur.pts = append(cur.pts, e.Point)
			current = e.Point
		case QuadTo:
			if cur == nil {
				begin(current)
			}
			flattenQuad(current, e.Control, e.Point, tolSq, func(pt Point) { cur.pts = append(cur.pts, pt) })
			current = e.Point
		case CubicTo:
			if cur == nil {
				begin(current)
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolSq, func(pt Point) { cur.pts = append(cur.pts, pt) })
			current = e.Point
		case Close:
			if cur != nil {
				cur.closed = true
				current = cur.pts[0]
				cur = nil
			}
		}
	}
	return out
}

// flattenQuad recursively subdivides the quadratic until its control point
// lies within tolerance of the chord.
func flattenQuad(p0, p1, p2 Point, tolSq float64, fn func(Point)) {
	mid := p0.Lerp(p2, 0.5)
	if p1.Sub(mid).LengthSquared() <= tolSq {
		fn(p2)
		return
	}
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	m := a.Lerp(b, 0.5)
	flattenQuad(p0, a, m, tolSq, fn)
	flattenQuad(m, b, p2, tolSq, fn)
}

// flattenCubic recursively subdivides the cubic using the standard flatness
// metric.
func flattenCubic(p0, p1, p2, p3 Point, tolSq float64, fn func(Point)) {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - 2*p3.X - p0.X
	vy := 3*p2.Y - 2*p3.Y - p0.Y
	flatness := math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
	if flatness <= tolSq*16 {
		fn(p3)
		return
	}
	ab := p0.Lerp(p1, 0.5)
	bc := p1.Lerp(p2, 0.5)
	cd := p2.Lerp(p3, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	m := abc.Lerp(bcd, 0.5)
	flattenCubic(p0, ab, abc, m, tolSq, fn)
	flattenCubic(m, bcd, cd, p3, tolSq, fn)
}

// Contains tests if a point is inside the path using the non-zero fill rule.
// Open subpaths are treated as implicitly closed, as they are when filled.
func (p *Path) Contains(pt Point) bool {
	return winding(p.subpaths(DefaultFlattenTolerance), pt) != 0
}

// IntersectsRect reports whether the path touches r.
// A path intersects when one of its segments lies in or crosses r. When
// filled is set, a path whose interior covers r intersects too.
func (p *Path) IntersectsRect(r Rect, filled bool) bool {
	bounds, ok := p.ControlBounds()
	if !ok || !bounds.Intersects(r) {
		return false
	}

	subs := p.subpaths(DefaultFlattenTolerance)
	for _, sp := range subs {
		n := len(sp.pts)
		for i, pt := range sp.pts {
			if r.Contains(pt) {
				return true
			}
			if i > 0 && segmentIntersectsRect(sp.pts[i-1], pt, r) {
				return true
			}
		}
		if (sp.closed || filled) && n > 2 && segmentIntersectsRect(sp.pts[n-1], sp.pts[0], r) {
			return true
		}
	}
	return filled && winding(subs, r.Center()) != 0
}

// winding returns the winding number of pt against the implicitly closed
// polylines.
func winding(subs []polyline, pt Point) int {
	var w int
	for _, sp := range subs {
		n := len(sp.pts)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			w += lineWinding(sp.pts[i], sp.pts[(i+1)%n], pt)
		}
	}
	return w
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return p1.Sub(p0).Cross(pt.Sub(p0))
}

// segmentIntersectsRect reports whether segment a-b crosses one of the edges
// of r. Endpoints inside r are handled by the caller.
func segmentIntersectsRect(a, b Point, r Rect) bool {
	if math.Max(a.X, b.X) < r.Min.X || math.Min(a.X, b.X) > r.Max.X ||
		math.Max(a.Y, b.Y) < r.Min.Y || math.Min(a.Y, b.Y) > r.Max.Y {
		return false
	}
	c := r.Corners()
	for i := 0; i < 4; i++ {
		if segmentsIntersect(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share a point.
func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := isLeft(q1, q2, p1)
	d2 := isLeft(q1, q2, p2)
	d3 := isLeft(p1, p2, q1)
	d4 := isLeft(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// onSegment reports whether collinear point pt lies within the extent of a-b.
func onSegment(a, b, pt Point) bool {
	return pt.X >= math.Min(a.X, b.X) && pt.X <= math.Max(a.X, b.X) &&
		pt.Y >= math.Min(a.Y, b.Y) && pt.Y <= math.Max(a.Y, b.Y)
}
