package territory

import (
	"hash/fnv"
	"image/color"
	"math/rand"
)

// Seed is the generator point of a region together with its color tag.
type Seed struct {
	X, Y  int
	Color color.NRGBA
}

// HashSeed maps an arbitrary seed string to the numeric state of the
// pseudo-random generator. The mapping is stable across runs and platforms.
func HashSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// NewRand returns a generator seeded from the hashed seed string.
func NewRand(seed string) *rand.Rand {
	return rand.New(rand.NewSource(HashSeed(seed)))
}

// GenerateSeeds places n seed points on a width×height grid. Every seed draws
// its x, then y coordinate, then its red, green and blue channels from rng,
// so the same generator state always reproduces the same layout.
func GenerateSeeds(rng *rand.Rand, n, width, height int) []Seed {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	seeds := make([]Seed, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Intn(width)
		y := rng.Intn(height)
		seeds = append(seeds, Seed{
			X: x,
			Y: y,
			Color: color.NRGBA{
				R: channel(rng),
				G: channel(rng),
				B: channel(rng),
				A: 0xff,
			},
		})
	}
	return seeds
}

func channel(rng *rand.Rand) uint8 {
	return uint8(rng.Float64() * 256)
}
