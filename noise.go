package territory

import (
	"image"
	"image/color"
)

// prng is a Park-Miller minimal standard generator. It is kept apart from
// the seed placement generator so the grain never shifts the map layout.
type prng struct {
	a     int64
	m     int64
	state int64
	div   float64
}

func newPrng(seed int64) *prng {
	const m = 0x7fffffff
	state := seed % m
	if state <= 0 {
		state += m - 1
	}
	return &prng{
		a:     16807,
		m:     m,
		state: state,
		div:   1.0 / m,
	}
}

func (p *prng) next() float64 {
	p.state = p.state * p.a % p.m
	return float64(p.state) * p.div
}

// Noise applies a grain filter, like adobe's grain filter, on the rendered map.
// The same seed always produces the same grain.
func Noise(amount int, src image.Image, seed int64) *image.NRGBA {
	dst := toNRGBA(src)
	rnd := newPrng(seed)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		noise := (rnd.next() - 0.1) * float64(amount)
		r, g, b := float64(dst.Pix[i]), float64(dst.Pix[i+1]), float64(dst.Pix[i+2])
		// Skip the pixel when any channel would overflow.
		if Abs(r+noise) < 255 && Abs(g+noise) < 255 && Abs(b+noise) < 255 {
			r += noise
			g += noise
			b += noise
		}
		dst.Pix[i+0] = uint8(Clamp(r, 0, 255))
		dst.Pix[i+1] = uint8(Clamp(g, 0, 255))
		dst.Pix[i+2] = uint8(Clamp(b, 0, 255))
	}
	return dst
}

// toNRGBA returns a copy of img as *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}
	return dst
}
