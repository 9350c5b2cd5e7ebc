package territory

import (
	"fmt"
	"image/color"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the map as GeoJSON in world coordinates, one
// feature per region. Regions simplified to fewer than three vertices are
// exported as a point or line string.
func (m *Map) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range m.Regions {
		f := geojson.NewFeature(regionGeometry(r, m.Width, m.Height))
		f.ID = r.Index
		f.Properties["index"] = r.Index
		f.Properties["color"] = hexColor(r.Color())
		f.Properties["seed"] = []int{r.Seed.X, r.Seed.Y}
		f.Properties["cells"] = r.Grid.Count()
		f.Properties["edges"] = len(r.Edges)
		f.Properties["vertices"] = len(r.Vertices)
		f.Properties["triangles"] = len(r.Triangles) / 3
		fc.Append(f)
	}
	return fc
}

// GeoJSON returns the encoded feature collection of the map.
func (m *Map) GeoJSON() ([]byte, error) {
	if len(m.Regions) == 0 {
		return nil, ErrEmptyMap
	}
	return m.FeatureCollection().MarshalJSON()
}

func regionGeometry(r *Region, width, height int) orb.Geometry {
	ring := r.Ring(width, height)
	switch len(r.Vertices) {
	case 0:
		x, y := WorldPosition(r.Seed.X, r.Seed.Y, width, height)
		return orb.Point{x, y}
	case 1:
		return ring[0]
	case 2:
		return orb.LineString(ring)
	}
	return orb.Polygon{ring}
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
