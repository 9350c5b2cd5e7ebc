package territory

// Grid is a width×height membership grid. A cell is true when it belongs
// to the region owning the grid.
type Grid struct {
	Width  int
	Height int
	cells  []bool
}

// NewGrid allocates an empty membership grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// IsOnMap reports whether (x, y) lies inside the grid bounds.
func (g *Grid) IsOnMap(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At reports whether the cell is a member. Callers must check IsOnMap first.
func (g *Grid) At(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// Set marks or clears the cell membership.
func (g *Grid) Set(x, y int, member bool) {
	g.cells[g.index(x, y)] = member
}

// Count returns the number of member cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// IsEdge reports whether a cell sits on the region boundary, i.e. at least one
// of its four orthogonal neighbors is off the map or not a member. The number
// of such neighbors is returned as well; values above 2 flag cul-de-sac cells.
func (g *Grid) IsEdge(x, y int) (bool, int) {
	count := 0
	for _, d := range orthogonal {
		nx, ny := x+d.X, y+d.Y
		if !g.IsOnMap(nx, ny) || !g.At(nx, ny) {
			count++
		}
	}
	return count > 0, count
}

func (g *Grid) index(x, y int) int {
	if !g.IsOnMap(x, y) {
		panic("territory: grid access out of bounds")
	}
	return y*g.Width + x
}

var orthogonal = [4]Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
