package territory

// Simplify reduces r.Edges to the cells where the boundary changes direction
// and stores them in r.Vertices.
func Simplify(r *Region) {
	r.Vertices = SimplifyPath(r.Edges)
}

// SimplifyPath keeps the first and last points of a cyclic path plus every
// interior point whose incoming and outgoing steps differ. A first or last
// point lying on the segment that closes the cycle is dropped.
func SimplifyPath(edges []Point) []Point {
	n := len(edges)
	if n <= 1 {
		return append([]Point(nil), edges...)
	}

	vertices := make([]Point, 0, n)
	vertices = append(vertices, edges[0])
	for i := 1; i < n-1; i++ {
		if edges[i].Sub(edges[i-1]) != edges[i+1].Sub(edges[i]) {
			vertices = append(vertices, edges[i])
		}
	}
	vertices = append(vertices, edges[n-1])

	// The first point sits between the last point and the second one.
	if len(vertices) > 2 && edges[n-1].Sub(edges[0]) == edges[0].Sub(edges[1]) {
		vertices = vertices[1:]
	}
	// The last point sits between the second to last point and the first one.
	if len(vertices) > 2 && edges[n-1].Sub(edges[n-2]) == edges[0].Sub(edges[n-1]) {
		vertices = vertices[:len(vertices)-1]
	}
	return vertices
}
