package territory

import (
	"fmt"
	"sync"
	"time"
)

const (
	// MinZoneCount and MaxZoneCount bound the number of regions of a map.
	MinZoneCount = 1
	MaxZoneCount = 100

	// DefaultZoneCount is used by the command line tool.
	DefaultZoneCount = 10
)

// Processor : type with generation options
type Processor struct {
	Width     int
	Height    int
	ZoneCount int
	Seed      string
	// Depth is the z coordinate of the world vertices.
	Depth float64
	// Workers bounds the goroutines used for the per region stages.
	// Values below 2 run the stages sequentially.
	Workers int
}

// Map is a generated territory map.
type Map struct {
	Width   int
	Height  int
	Seed    string
	Depth   float64
	Seeds   []Seed
	Regions []*Region
}

// Validate checks the options before any generation work is done.
func (p *Processor) Validate() error {
	if p.ZoneCount < MinZoneCount || p.ZoneCount > MaxZoneCount {
		return fmt.Errorf("zone count %d not in [%d, %d]: %w",
			p.ZoneCount, MinZoneCount, MaxZoneCount, ErrInvalidZoneCount)
	}
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("grid %dx%d: %w", p.Width, p.Height, ErrInvalidDimensions)
	}
	return nil
}

// Generate places the seeds, partitions the grid and derives the boundary,
// polygon and triangle mesh of every region. A zero area grid produces an
// empty map.
func (p *Processor) Generate() (*Map, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	seeds := GenerateSeeds(NewRand(p.Seed), p.ZoneCount, p.Width, p.Height)
	m := &Map{
		Width:   p.Width,
		Height:  p.Height,
		Seed:    p.Seed,
		Depth:   p.Depth,
		Seeds:   seeds,
		Regions: Partition(seeds, p.Width, p.Height),
	}
	forEachRegion(m.Regions, p.Workers, func(r *Region) {
		Trace(r)
		Simplify(r)
		Triangulate(r)
	})

	Logger().Info("territory: map generated",
		"seed", p.Seed,
		"width", p.Width,
		"height", p.Height,
		"regions", len(m.Regions),
		"elapsed", time.Since(start),
	)
	return m, nil
}

// forEachRegion runs fn for every region on at most workers goroutines.
// Regions share no state, so the outcome does not depend on scheduling.
func forEachRegion(regions []*Region, workers int, fn func(*Region)) {
	if workers < 2 || len(regions) < 2 {
		for _, r := range regions {
			fn(r)
		}
		return
	}
	workers = Min(workers, len(regions))

	jobs := make(chan *Region)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for r := range jobs {
				fn(r)
			}
		}()
	}
	for _, r := range regions {
		jobs <- r
	}
	close(jobs)
	wg.Wait()
}

// WorldPosition maps a grid coordinate of the map into its world frame.
func (m *Map) WorldPosition(x, y int) Vec3 {
	wx, wy := WorldPosition(x, y, m.Width, m.Height)
	return Vec3{X: wx, Y: wy, Z: m.Depth}
}

// Region returns the region owning the grid cell, or nil when the cell is
// outside the map.
func (m *Map) Region(x, y int) *Region {
	for _, r := range m.Regions {
		if r.Grid.IsOnMap(x, y) && r.Grid.At(x, y) {
			return r
		}
	}
	return nil
}
