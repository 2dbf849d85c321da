package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r3"
)

// This file parses the svg fixtures into faces over z=0 point fields. It is
// not a full (or even correct) svg parser: it finds whatever the single
// polygon element is and converts it. If anything goes wrong, it aborts.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension. Each is reoriented if necessary so its area vector points
// along +z.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (Polygon, PointField) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var points PointField
	var face Polygon
	for _, ps := range strings.Fields(pointString) {
		xy := strings.Split(ps, ",")
		if len(xy) != 2 {
			log.Fatalf("Invalid point string %q", ps)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", xy[0], err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", xy[1], err)
		}
		face = append(face, len(points))
		points = append(points, r3.Vector{X: x, Y: y})
	}

	// SVG y points down, so the listing usually winds negative; flip to a
	// +z area vector for predictable assertions.
	if face.Area(points).Z < 0 {
		face.Flip()
	}
	return face, points
}
