/*
Package territory is a procedural map library which splits a rectangular grid into
irregular colored territories grown from a handful of seed points.

Every cell is owned by its nearest seed under Manhattan distance. For each territory the
library walks the boundary cells, reduces the walk to the corners where it changes
direction and ear clips the resulting polygon into a triangle index buffer, ready to be
handed over to a renderer or a collision system.

The package provides a command line utility rendering the map to PNG and GeoJSON.
Check the supported commands by typing:

	$ territory --help

Example to generate a map and output the result as a raster type:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/territory"
	)

	func main() {
		p := &territory.Processor{
			Width:     64,
			Height:    48,
			ZoneCount: 10,
			Seed:      "abc",
		}
		m, err := p.Generate()
		if err != nil {
			log.Fatalf("Error on generation process: %s", err.Error())
		}

		d := &territory.Drawer{CellSize: 10, Outline: true}
		if err := d.Encode(os.Stdout, m); err != nil {
			log.Fatal(err)
		}
	}

Each region exposes its world space vertices, a flattened 2D outline and the triangle
indices:

	for _, r := range m.Regions {
		verts := r.WorldVertices(m.Width, m.Height, 0)
		outline := r.Outline(m.Width, m.Height)
		_ = r.Triangles
	}
*/
package territory
