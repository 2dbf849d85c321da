package geom

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/meshkit/polyface/internal/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the polygons projected onto the xy plane and prints the
// image in the terminal (iTerm only). Handy for eyeballing a decomposition.
func (pl PolygonList) dbgDraw(points PointField, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range pl {
		for _, pi := range poly {
			p := points[pi]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	for _, poly := range pl {
		c.NewSubPath()
		for _, pi := range poly {
			p := points[pi]
			c.LineTo(
				scale*(p.X-minX)+dbgDrawPadding,
				scale*(p.Y-minY)+dbgDrawPadding,
			)
		}
		c.ClosePath()
		c.SetRGBA(0.5, 0.8, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	c.SavePNG("/tmp/polyface_pieces.png")
	imgcat.CatFile("/tmp/polyface_pieces.png", os.Stdout)
}

// String names each piece for split tracing: triangles green, quads cyan,
// anything degenerate red.
func (pl PolygonList) String() string {
	parts := make([]string, len(pl))
	for i := range pl {
		name := dbg.Name(&pl[i])
		switch {
		case len(pl[i]) < 3:
			name = aurora.Red(name).String()
		case len(pl[i]) == 3:
			name = aurora.Green(name).String()
		case len(pl[i]) == 4:
			name = aurora.Cyan(name).String()
		}
		parts[i] = fmt.Sprintf("%s%v", name, []int(pl[i]))
	}
	return strings.Join(parts, ", ")
}
