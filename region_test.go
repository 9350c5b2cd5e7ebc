package territory

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"
)

func TestWorldPosition(t *testing.T) {
	tests := []struct {
		x, y, w, h int
		wx, wy     float64
	}{
		{0, 0, 10, 6, -5, -3},
		{5, 3, 10, 6, 0, 0},
		{9, 5, 10, 6, 4, 2},
		{0, 0, 7, 5, -3, -2},
	}
	for _, tt := range tests {
		wx, wy := WorldPosition(tt.x, tt.y, tt.w, tt.h)
		if wx != tt.wx || wy != tt.wy {
			t.Errorf("WorldPosition(%d,%d,%d,%d) = %v,%v; want %v,%v", tt.x, tt.y, tt.w, tt.h, wx, wy, tt.wx, tt.wy)
		}
	}
}

func TestRegion_Outputs(t *testing.T) {
	r := &Region{Vertices: []Point{{0, 0}, {0, 3}, {4, 3}, {4, 0}}}

	wantVerts := []Vec3{{-5, -3, 1}, {-5, 0, 1}, {-1, 0, 1}, {-1, -3, 1}}
	if got := r.WorldVertices(10, 6, 1); !reflect.DeepEqual(got, wantVerts) {
		t.Errorf("WorldVertices() = %v, want %v", got, wantVerts)
	}

	wantOutline := []float64{-5, -3, -5, 0, -1, 0, -1, -3}
	if got := r.Outline(10, 6); !reflect.DeepEqual(got, wantOutline) {
		t.Errorf("Outline() = %v, want %v", got, wantOutline)
	}

	ring := r.Ring(10, 6)
	if len(ring) != 5 || ring[0] != ring[4] {
		t.Errorf("Ring() = %v, want a closed ring of 5 points", ring)
	}
	if got := r.Area(); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if got, want := r.Bound(10, 6), (orb.Bound{Min: orb.Point{-5, -3}, Max: orb.Point{-1, 0}}); got != want {
		t.Errorf("Bound() = %v, want %v", got, want)
	}
}

func TestRegion_DegenerateOutputs(t *testing.T) {
	r := &Region{Vertices: []Point{{1, 1}, {2, 1}}}
	if got := r.Ring(4, 4); len(got) != 2 {
		t.Errorf("Ring() of 2 vertices = %v, want an open ring", got)
	}
	if got := r.Area(); got != 0 {
		t.Errorf("Area() = %v, want 0", got)
	}
}
