package territory

import (
	"image/color"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is a territory grown from a single seed. It is created by Partition
// and filled in place by the later pipeline stages: Trace sets Edges,
// Simplify sets Vertices and Triangulate sets Triangles.
type Region struct {
	Index int
	Seed  Seed
	Grid  *Grid

	// Edges holds the boundary cells in trace order, without duplicates.
	Edges []Point
	// Vertices is the subsequence of Edges where the walk changes direction.
	Vertices []Point
	// Triangles indexes Vertices, three entries per triangle.
	Triangles []int
}

// Color returns the region's color tag.
func (r *Region) Color() color.NRGBA {
	return r.Seed.Color
}

// WorldVertices maps the polygon vertices into the world frame of a
// width×height grid, with depth as the constant z coordinate.
func (r *Region) WorldVertices(width, height int, depth float64) []Vec3 {
	out := make([]Vec3, len(r.Vertices))
	for i, v := range r.Vertices {
		x, y := WorldPosition(v.X, v.Y, width, height)
		out[i] = Vec3{X: x, Y: y, Z: depth}
	}
	return out
}

// Outline returns the polygon as flattened world x, y pairs,
// the layout expected by 2D collision shapes.
func (r *Region) Outline(width, height int) []float64 {
	out := make([]float64, 0, 2*len(r.Vertices))
	for _, v := range r.Vertices {
		x, y := WorldPosition(v.X, v.Y, width, height)
		out = append(out, x, y)
	}
	return out
}

// Ring returns the polygon as a closed orb ring in world coordinates.
// Regions with fewer than 3 vertices return an open ring.
func (r *Region) Ring(width, height int) orb.Ring {
	ring := make(orb.Ring, 0, len(r.Vertices)+1)
	for _, v := range r.Vertices {
		x, y := WorldPosition(v.X, v.Y, width, height)
		ring = append(ring, orb.Point{x, y})
	}
	if len(ring) >= 3 {
		ring = append(ring, ring[0])
	}
	return ring
}

// Area returns the area enclosed by the simplified polygon in grid units.
func (r *Region) Area() float64 {
	if len(r.Vertices) < 3 {
		return 0
	}
	return math.Abs(planar.Area(r.Ring(0, 0)))
}

// Bound returns the world-space bounding box of the polygon.
func (r *Region) Bound(width, height int) orb.Bound {
	return r.Ring(width, height).Bound()
}
