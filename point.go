package territory

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns the step vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of the cross product of two step vectors.
func (p Point) Cross(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec3 is a position in the world frame consumed by the rendering side.
type Vec3 struct {
	X, Y, Z float64
}

// WorldPosition maps a grid coordinate into a world frame centered on a
// width×height grid. The half dimensions are integer halved.
func WorldPosition(x, y, width, height int) (float64, float64) {
	return float64(x - width/2), float64(y - height/2)
}
