package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/meshkit/polyface"
)

// Demo of the kernel. Input on stdin should be newline separated points in
// the form "x y z" (z optional), with each polygon separated by an extra
// newline. Prints each polygon's geometric properties and decomposes it.
//
// Polygons are assumed simple; nothing is validated.

var (
	quads   = kingpin.Flag("quads", "Prefer quads over triangles when splitting.").Bool()
	density = kingpin.Flag("density", "Density used for the inertia tensor.").Default("1").Float64()
)

func main() {
	kingpin.Parse()

	points, polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons over %d points\n", len(polygons), len(points))

	for i, f := range polygons {
		area := f.Area(points)
		centre := f.Centre(points)
		fmt.Printf("polygon %d: |area| %.6g  centre (%.4g %.4g %.4g)  normal (%.4g %.4g %.4g)\n",
			i, area.Norm(),
			centre.X, centre.Y, centre.Z,
			f.Normal(points).X, f.Normal(points).Y, f.Normal(points).Z)

		inertia := f.Inertia(points, centre, *density)
		fmt.Printf("  inertia trace about centre: %.6g\n", inertia.Trace())

		if *quads {
			tris, qs, err := polyface.TrianglesQuads(f, points)
			if err != nil {
				fmt.Fprintf(os.Stderr, "polygon %d: %v\n", i, err)
				continue
			}
			fmt.Printf("  split into %d triangles and %d quads\n", len(tris), len(qs))
		} else {
			tris, err := polyface.Triangles(f, points)
			if err != nil {
				fmt.Fprintf(os.Stderr, "polygon %d: %v\n", i, err)
				continue
			}
			fmt.Printf("  split into %d triangles\n", len(tris))
		}
	}
}

func readPolygons(in *os.File) (polyface.PointField, []polyface.Polygon) {
	var points polyface.PointField
	var polygons []polyface.Polygon

	// Scan lines
	scanner := bufio.NewScanner(in)
	var current polyface.Polygon
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of
		// the polygon
		if line == "" {
			if len(current) > 0 {
				polygons = append(polygons, current)
				current = nil
			}
			continue
		}

		// Parse the point out of the line and reference it from the polygon
		points = append(points, parsePoint(line))
		current = append(current, len(points)-1)
	}

	// Handle trailing polygon if any
	if len(current) > 0 {
		polygons = append(polygons, current)
	}
	return points, polygons
}

func parsePoint(line string) r3.Vector {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	z := 0.0
	if len(parts) > 2 {
		z, _ = strconv.ParseFloat(parts[2], 64)
	}
	return r3.Vector{X: x, Y: y, Z: z}
}
