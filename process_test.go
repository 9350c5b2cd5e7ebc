package territory

import (
	"errors"
	"reflect"
	"testing"
)

func TestProcessor_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    Processor
		want error
	}{
		{"valid", Processor{Width: 10, Height: 10, ZoneCount: 10}, nil},
		{"min zones", Processor{Width: 10, Height: 10, ZoneCount: MinZoneCount}, nil},
		{"max zones", Processor{Width: 10, Height: 10, ZoneCount: MaxZoneCount}, nil},
		{"zero zones", Processor{Width: 10, Height: 10, ZoneCount: 0}, ErrInvalidZoneCount},
		{"too many zones", Processor{Width: 10, Height: 10, ZoneCount: 101}, ErrInvalidZoneCount},
		{"negative width", Processor{Width: -1, Height: 10, ZoneCount: 3}, ErrInvalidDimensions},
		{"zero area", Processor{Width: 0, Height: 0, ZoneCount: 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProcessor_GenerateInvalid(t *testing.T) {
	p := &Processor{Width: 10, Height: 10, ZoneCount: 0}
	if m, err := p.Generate(); m != nil || !errors.Is(err, ErrInvalidZoneCount) {
		t.Errorf("Generate() = %v, %v; want nil, %v", m, err, ErrInvalidZoneCount)
	}
}

func TestProcessor_GenerateZeroArea(t *testing.T) {
	p := &Processor{Width: 0, Height: 12, ZoneCount: 5, Seed: "empty"}
	m, err := p.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(m.Seeds) != 0 || len(m.Regions) != 0 {
		t.Errorf("zero area map has %d seeds and %d regions", len(m.Seeds), len(m.Regions))
	}
}

func TestProcessor_GenerateReproducible(t *testing.T) {
	p := &Processor{Width: 40, Height: 30, ZoneCount: 12, Seed: "abc"}
	a, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Seeds, b.Seeds) {
		t.Fatal("seed string abc produced different seed points")
	}
	if !reflect.DeepEqual(a.Regions, b.Regions) {
		t.Fatal("seed string abc produced different regions")
	}
}

func TestProcessor_WorkersMatchSequential(t *testing.T) {
	seq := &Processor{Width: 50, Height: 40, ZoneCount: 30, Seed: "workers"}
	par := &Processor{Width: 50, Height: 40, ZoneCount: 30, Seed: "workers", Workers: 4}

	a, err := seq.Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := par.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Regions, b.Regions) {
		t.Error("parallel generation differs from the sequential one")
	}
}

func TestProcessor_SingleZone(t *testing.T) {
	const w, h = 9, 6
	for _, seed := range []string{"abc", "one", "single", "zone"} {
		t.Run(seed, func(t *testing.T) {
			m, err := (&Processor{Width: w, Height: h, ZoneCount: 1, Seed: seed}).Generate()
			if err != nil {
				t.Fatal(err)
			}
			r := m.Regions[0]
			if len(r.Edges) != 2*w+2*h-4 {
				t.Errorf("got %d edges, want %d", len(r.Edges), 2*w+2*h-4)
			}
			corners := cornerSet(w, h)
			if len(r.Vertices) != 4 {
				t.Fatalf("got vertices %v, want the 4 corners", r.Vertices)
			}
			for _, v := range r.Vertices {
				if !corners[v] {
					t.Errorf("vertex %v is not a corner", v)
				}
			}
			if len(r.Triangles) != 6 {
				t.Errorf("got %d indices, want 6", len(r.Triangles))
			}
			if got, want := r.Area(), float64((w-1)*(h-1)); got != want {
				t.Errorf("Area() = %v, want %v", got, want)
			}
		})
	}
}

func TestMap_Region(t *testing.T) {
	m, err := (&Processor{Width: 20, Height: 20, ZoneCount: 6, Seed: "lookup"}).Generate()
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range m.Seeds {
		r := m.Region(s.X, s.Y)
		if r == nil || !r.Grid.At(s.X, s.Y) {
			t.Errorf("seed %d cell has no owning region", i)
		}
	}
	if r := m.Region(-1, 3); r != nil {
		t.Errorf("Region(-1, 3) = %v, want nil", r.Index)
	}
}
