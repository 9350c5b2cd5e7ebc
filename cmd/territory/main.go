package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/esimov/territory"
	"github.com/esimov/territory/utils"
	"golang.org/x/term"
)

const pipeName = "-"

var (
	// Flags
	destination = flag.String("out", "", "Destination PNG file (use \"-\" for stdout)")
	geoJSON     = flag.String("geojson", "", "Destination GeoJSON file")
	width       = flag.Int("width", 64, "Grid width in cells")
	height      = flag.Int("height", 48, "Grid height in cells")
	zones       = flag.Int("zones", territory.DefaultZoneCount, "Number of zones (1-100)")
	seed        = flag.String("seed", "", "Seed string (random when empty)")
	workers     = flag.Int("workers", 1, "Goroutines used to process the zones")
	cellSize    = flag.Int("cell", territory.DefaultCellSize, "Cell size in pixels")
	wireframe   = flag.Int("wireframe", 0, "Wireframe mode (0: without stroke, 1: with stroke, 2: stroke only)")
	strokeWidth = flag.Float64("stroke", 1, "Wireframe stroke width")
	outline     = flag.Bool("outline", true, "Draw the zone outlines")
	markers     = flag.Bool("markers", false, "Draw the seed markers")
	labels      = flag.Bool("labels", false, "Draw the seed indices")
	noise       = flag.Int("noise", 0, "Noise factor")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if len(*destination) == 0 && len(*geoJSON) == 0 {
		log.Fatal("Usage: territory -out map.png [-geojson map.json] [-seed abc]")
	}

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	territory.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *seed == "" {
		*seed = strconv.FormatInt(time.Now().UnixNano(), 36)
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Info("using random seed", "seed", *seed)
	}

	p := &territory.Processor{
		Width:     *width,
		Height:    *height,
		ZoneCount: *zones,
		Seed:      *seed,
		Workers:   *workers,
	}
	d := &territory.Drawer{
		CellSize:    *cellSize,
		Wireframe:   *wireframe,
		StrokeWidth: *strokeWidth,
		Outline:     *outline,
		Markers:     *markers,
		Labels:      *labels,
		Noise:       *noise,
	}

	var s *utils.Spinner
	if interactive && *destination != pipeName {
		s = utils.NewSpinner(os.Stderr, "Generating territory map...")
		s.Start()
	}
	start := time.Now()
	m, err := run(p, d)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		if errors.Is(err, territory.ErrInvalidZoneCount) || errors.Is(err, territory.ErrInvalidDimensions) {
			flag.Usage()
		}
		log.Fatalf(utils.Decorate("Error generating map: %v", utils.ErrorColor, interactive), err)
	}

	if *destination == pipeName {
		return
	}
	fmt.Fprintf(os.Stderr, "Generated in: %s\n",
		utils.Decorate(utils.FormatTime(time.Since(start)), utils.SuccessColor, interactive))
	fmt.Fprintf(os.Stderr, "Total number of %d zones, %d triangles\n", len(m.Regions), triangleCount(m))
	for _, out := range []string{*destination, *geoJSON} {
		if out != "" {
			fmt.Fprintf(os.Stderr, "Saved as: %s %s\n", path.Base(out), utils.Decorate("✓", utils.SuccessColor, interactive))
		}
	}
}

func run(p *territory.Processor, d *territory.Drawer) (*territory.Map, error) {
	m, err := p.Generate()
	if err != nil {
		return nil, err
	}
	if *destination != "" {
		if err := writeTo(*destination, func(w io.Writer) error { return d.Encode(w, m) }); err != nil {
			return nil, fmt.Errorf("unable to save the image: %w", err)
		}
	}
	if *geoJSON != "" {
		data, err := m.GeoJSON()
		if err != nil {
			return nil, fmt.Errorf("unable to encode geojson: %w", err)
		}
		if err := writeTo(*geoJSON, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}); err != nil {
			return nil, fmt.Errorf("unable to save the geojson: %w", err)
		}
	}
	return m, nil
}

// writeTo opens the destination, or stdout for the pipe name, and hands it to fn.
func writeTo(dst string, fn func(io.Writer) error) error {
	if dst == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return fn(os.Stdout)
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func triangleCount(m *territory.Map) int {
	n := 0
	for _, r := range m.Regions {
		n += len(r.Triangles) / 3
	}
	return n
}
