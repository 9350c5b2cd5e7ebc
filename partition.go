package territory

// Partition assigns every cell of a width×height grid to its nearest seed
// under Manhattan distance and returns one region per seed, in seed order.
// Ties go to the seed with the lowest index.
func Partition(seeds []Seed, width, height int) []*Region {
	if len(seeds) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	regions := make([]*Region, len(seeds))
	for i, s := range seeds {
		regions[i] = &Region{
			Index: i,
			Seed:  s,
			Grid:  NewGrid(width, height),
		}
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			n := 0
			best := manhattan(seeds[0].X, seeds[0].Y, x, y)
			for i := 1; i < len(seeds); i++ {
				if d := manhattan(seeds[i].X, seeds[i].Y, x, y); d < best {
					n, best = i, d
				}
			}
			regions[n].Grid.Set(x, y, true)
		}
	}
	return regions
}
