package territory

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNoise(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: color.NRGBA{R: 120, G: 80, B: 40, A: 255}}, image.Point{}, draw.Src)

	a := Noise(20, src, 42)
	b := Noise(20, src, 42)
	if a.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", a.Bounds(), src.Bounds())
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("same seed produced a different grain")
		}
	}

	changed := false
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := a.NRGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, c.A)
			}
			if c != src.NRGBAAt(x, y) {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("Noise() left the image untouched")
	}
}

func TestPrng(t *testing.T) {
	for _, seed := range []int64{0, 1, -5, 1 << 40} {
		p := newPrng(seed)
		for i := 0; i < 100; i++ {
			if v := p.next(); v <= 0 || v >= 1 {
				t.Fatalf("seed %d: next() = %v, want a value in (0,1)", seed, v)
			}
		}
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 7))
	src.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	src.SetNRGBA(5, 6, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	dst := toNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want (0,0)-(4,4)", dst.Bounds())
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("dst(0,0) = %v", got)
	}
	if got := dst.NRGBAAt(3, 3); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("dst(3,3) = %v", got)
	}

	dst.Pix[0] = 200
	if src.Pix[0] == 200 {
		t.Error("toNRGBA() must not share the source buffer")
	}
}
