package territory

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	WithoutWireframe = iota
	WithWireframe
	WireframeOnly
)

// DefaultCellSize is the default edge length of a grid cell in pixels.
const DefaultCellSize = 10

// Drawer : type with rendering options
type Drawer struct {
	CellSize    int
	Wireframe   int
	StrokeWidth float64
	Outline     bool
	Markers     bool
	Labels      bool
	Noise       int
}

// Draw renders the map: every region's triangle mesh in the region color,
// optionally with its wireframe, outline, seed marker and seed index label.
// The grid y axis points up, so rows are flipped in the image.
func (d *Drawer) Draw(m *Map) (image.Image, error) {
	if m == nil || m.Width == 0 || m.Height == 0 {
		return nil, ErrEmptyMap
	}
	cs := d.CellSize
	if cs <= 0 {
		cs = DefaultCellSize
	}
	width, height := m.Width*cs, m.Height*cs

	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	// center of grid cell p in image space
	pos := func(p Point) (float64, float64) {
		return (float64(p.X) + 0.5) * float64(cs), (float64(m.Height-1-p.Y) + 0.5) * float64(cs)
	}

	for _, r := range m.Regions {
		fill := r.Color()
		for i := 0; i+2 < len(r.Triangles); i += 3 {
			p0, p1, p2 := r.Vertices[r.Triangles[i]], r.Vertices[r.Triangles[i+1]], r.Vertices[r.Triangles[i+2]]

			ctx.Push()
			ctx.MoveTo(pos(p0))
			ctx.LineTo(pos(p1))
			ctx.LineTo(pos(p2))
			ctx.ClosePath()

			switch d.Wireframe {
			case WithoutWireframe:
				ctx.SetFillStyle(gg.NewSolidPattern(fill))
				ctx.Fill()
			case WithWireframe:
				ctx.SetFillStyle(gg.NewSolidPattern(fill))
				ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 20}))
				ctx.SetLineWidth(d.StrokeWidth)
				ctx.FillPreserve()
				ctx.Stroke()
			case WireframeOnly:
				ctx.SetStrokeStyle(gg.NewSolidPattern(fill))
				ctx.SetLineWidth(d.StrokeWidth)
				ctx.Stroke()
			}
			ctx.Pop()
		}

		if d.Outline && len(r.Vertices) > 1 {
			ctx.Push()
			ctx.MoveTo(pos(r.Vertices[0]))
			for _, v := range r.Vertices[1:] {
				ctx.LineTo(pos(v))
			}
			ctx.ClosePath()
			ctx.SetStrokeStyle(gg.NewSolidPattern(darken(fill)))
			ctx.SetLineWidth(Max(d.StrokeWidth, 1))
			ctx.Stroke()
			ctx.Pop()
		}
	}

	if d.Markers || d.Labels {
		if err := d.drawSeeds(ctx, m, cs, pos); err != nil {
			return nil, err
		}
	}

	img := ctx.Image()
	// Apply a noise on the final image. This will give it a more artistic look.
	if d.Noise > 0 {
		return Noise(d.Noise, img, HashSeed(m.Seed)), nil
	}
	return img, nil
}

func (d *Drawer) drawSeeds(ctx *gg.Context, m *Map, cs int, pos func(Point) (float64, float64)) error {
	if d.Labels {
		face, err := labelFace(Max(float64(cs), 8))
		if err != nil {
			return fmt.Errorf("unable to load label font: %w", err)
		}
		defer face.Close()
		ctx.SetFontFace(face)
	}
	size := float64(cs)
	for i, s := range m.Seeds {
		x, y := pos(Pt(s.X, s.Y))
		if d.Markers {
			ctx.DrawRectangle(x-size/2, y-size/2, size, size)
			ctx.SetRGB(0, 0, 0)
			ctx.Fill()
		}
		if d.Labels {
			ctx.SetRGB(0, 0, 0)
			ctx.DrawStringAnchored(strconv.Itoa(i), x+size, y-size, 0, 0.5)
		}
	}
	return nil
}

// Encode renders the map and writes it as PNG.
func (d *Drawer) Encode(w io.Writer, m *Map) error {
	img, err := d.Draw(m)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func labelFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
