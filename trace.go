package territory

// Trace walks the boundary of the region and stores the visited cells in
// r.Edges. The walk starts at the first boundary cell found scanning from the
// seed towards the far corner of the grid (x outer, y inner) and then
// repeatedly steps to an unvisited neighboring boundary cell.
//
// The walk is greedy: it stops as soon as no unvisited boundary neighbor is
// left, so the contour may not close back on its start cell.
func Trace(r *Region) {
	g := r.Grid
	r.Edges = r.Edges[:0]
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return
	}
	visited := make([]bool, g.Width*g.Height)

	start, ok := findStart(r, visited)
	if !ok {
		return
	}
	cur := start
	for {
		visited[g.index(cur.X, cur.Y)] = true
		r.Edges = append(r.Edges, cur)

		next, found := nextEdge(g, visited, cur)
		if !found {
			break
		}
		cur = next
	}
	Logger().Debug("territory: traced region",
		"region", r.Index,
		"edges", len(r.Edges),
		"closed", isClosed(r.Edges),
	)
}

func findStart(r *Region, visited []bool) (Point, bool) {
	g := r.Grid
	for x := Max(r.Seed.X, 0); x < g.Width; x++ {
		for y := Max(r.Seed.Y, 0); y < g.Height; y++ {
			if !g.At(x, y) || visited[g.index(x, y)] {
				continue
			}
			if edge, _ := g.IsEdge(x, y); edge {
				return Pt(x, y), true
			}
		}
	}
	return Point{}, false
}

// nextEdge picks the successor of cur. Orthogonal neighbors are scanned
// first, diagonal ones second, both in x-major order. The first candidate
// wins unless a later one has more than two open sides.
func nextEdge(g *Grid, visited []bool, cur Point) (Point, bool) {
	var (
		best  Point
		found bool
	)
	for pass := 0; pass < 2; pass++ {
		diagonal := pass == 1
		for x := cur.X - 1; x <= cur.X+1; x++ {
			for y := cur.Y - 1; y <= cur.Y+1; y++ {
				if x == cur.X && y == cur.Y {
					continue
				}
				if (x != cur.X && y != cur.Y) != diagonal {
					continue
				}
				if !g.IsOnMap(x, y) || !g.At(x, y) || visited[g.index(x, y)] {
					continue
				}
				edge, count := g.IsEdge(x, y)
				if !edge {
					continue
				}
				if !found || count > 2 {
					best = Pt(x, y)
					found = true
				}
			}
		}
	}
	return best, found
}

// isClosed reports whether the last traced cell touches the first one.
func isClosed(edges []Point) bool {
	if len(edges) < 3 {
		return false
	}
	d := edges[len(edges)-1].Sub(edges[0])
	return Abs(d.X) <= 1 && Abs(d.Y) <= 1
}
