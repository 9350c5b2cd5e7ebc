package territory

// Triangulate fills r.Triangles with the ear clipped index buffer of r.Vertices.
func Triangulate(r *Region) {
	r.Triangles = TriangulatePolygon(r.Vertices)
	Logger().Debug("territory: triangulated region",
		"region", r.Index,
		"vertices", len(r.Vertices),
		"triangles", len(r.Triangles)/3,
	)
}

// TriangulatePolygon triangulates a simple polygon given in either winding
// order by ear clipping. It returns three indices into poly per triangle,
// every triangle wound counter-clockwise (with y pointing up). A simple
// polygon of n vertices yields n-2 triangles. Fewer than three vertices or a
// polygon without area yields no triangles.
func TriangulatePolygon(poly []Point) []int {
	n := len(poly)
	if n < 3 {
		return nil
	}
	area := signedArea2(poly)
	if area == 0 {
		return nil
	}
	orient := int64(1)
	if area < 0 {
		orient = -1
	}

	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	indices := make([]int, 0, 3*(n-2))
	emit := func(a, b, c int) {
		if orient > 0 {
			indices = append(indices, a, b, c)
		} else {
			indices = append(indices, c, b, a)
		}
	}

	cur, misses := 0, 0
	for len(ring) > 3 {
		if cur >= len(ring) {
			cur = 0
		}
		if isEar(poly, ring, cur, orient) {
			clip(&ring, cur, emit)
			misses = 0
			continue
		}
		cur++
		misses++
		if misses < len(ring) {
			continue
		}

		// A full turn without an ear: the ring has collinear runs or
		// crosses itself. Clip the least harmful vertex to keep going.
		cur = fallbackVertex(poly, ring, orient)
		Logger().Debug("territory: forced ear clip",
			"vertex", ring[cur],
			"remaining", len(ring),
		)
		clip(&ring, cur, emit)
		misses = 0
	}
	emit(ring[0], ring[1], ring[2])
	return indices
}

// clip emits the triangle around ring[i] and removes the vertex from the ring.
func clip(ring *[]int, i int, emit func(a, b, c int)) {
	r := *ring
	n := len(r)
	emit(r[(i+n-1)%n], r[i], r[(i+1)%n])
	*ring = append(r[:i], r[i+1:]...)
}

// turn returns the orientation adjusted turn at ring[i]: positive for a
// convex corner, zero for a straight one and negative for a reflex one.
func turn(poly []Point, ring []int, i int, orient int64) int64 {
	n := len(ring)
	a := poly[ring[(i+n-1)%n]]
	b := poly[ring[i]]
	c := poly[ring[(i+1)%n]]
	return b.Sub(a).Cross(c.Sub(b)) * orient
}

func isEar(poly []Point, ring []int, i int, orient int64) bool {
	if turn(poly, ring, i, orient) <= 0 {
		return false
	}
	n := len(ring)
	a := poly[ring[(i+n-1)%n]]
	b := poly[ring[i]]
	c := poly[ring[(i+1)%n]]
	for k := 2; k < n-1; k++ {
		p := poly[ring[(i+k)%n]]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// fallbackVertex prefers a straight vertex, then any convex one, then the
// first vertex of the ring.
func fallbackVertex(poly []Point, ring []int, orient int64) int {
	convex := -1
	for i := range ring {
		t := turn(poly, ring, i, orient)
		if t == 0 {
			return i
		}
		if t > 0 && convex < 0 {
			convex = i
		}
	}
	if convex >= 0 {
		return convex
	}
	return 0
}

// inTriangle reports whether p lies inside or on the border of triangle abc.
func inTriangle(p, a, b, c Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// signedArea2 returns twice the signed area of the polygon, positive for a
// counter-clockwise winding.
func signedArea2(poly []Point) int64 {
	var sum int64
	n := len(poly)
	for i := 0; i < n; i++ {
		p, q := poly[i], poly[(i+1)%n]
		sum += int64(p.X)*int64(q.Y) - int64(q.X)*int64(p.Y)
	}
	return sum
}
