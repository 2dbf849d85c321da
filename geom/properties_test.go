package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularPolygon(n int) (Polygon, PointField) {
	points := make(PointField, n)
	face := make(Polygon, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = r3.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
		face[i] = i
	}
	return face, points
}

func translated(points PointField, d r3.Vector) PointField {
	moved := make(PointField, len(points))
	for i, p := range points {
		moved[i] = p.Add(d)
	}
	return moved
}

func TestUnitSquareProperties(t *testing.T) {
	points := PointField{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	square := Polygon{0, 1, 2, 3}

	area := square.Area(points)
	assert.InDelta(t, 1, area.Norm(), 1e-12)
	assert.InDelta(t, 1, area.Z, 1e-12)

	normal := square.Normal(points)
	assert.InDelta(t, 0, normal.X, 1e-12)
	assert.InDelta(t, 0, normal.Y, 1e-12)
	assert.InDelta(t, 1, normal.Z, 1e-12)

	centre := square.Centre(points)
	assert.InDelta(t, 0.5, centre.X, 1e-12)
	assert.InDelta(t, 0.5, centre.Y, 1e-12)
	assert.InDelta(t, 0, centre.Z, 1e-12)
}

func TestAreaRotationInvariantFlipNegates(t *testing.T) {
	face, points := LoadFixture("pentagon")
	base := face.Area(points)
	require.Greater(t, base.Norm(), 0.0)

	for shift := 1; shift < len(face); shift++ {
		rotated := make(Polygon, len(face))
		for i := range face {
			rotated[i] = face[CircularIndex(i+shift, len(face))]
		}
		got := rotated.Area(points)
		assert.InDelta(t, base.Z, got.Z, 1e-9*base.Norm(), "shift %d", shift)
	}

	flipped := face.Reversed()
	assert.InDelta(t, -base.Z, flipped.Area(points).Z, 1e-9*base.Norm())
}

func TestGeneralPathMatchesTriangleFastPath(t *testing.T) {
	// The same geometric triangle, once as three vertices (fast path) and
	// once padded with a collinear mid-edge vertex so the general fan code
	// runs instead.
	points := PointField{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 2},
		{X: 1, Y: 0}, // midpoint of the first edge
	}
	tri := Polygon{0, 1, 2}
	padded := Polygon{0, 3, 1, 2}

	triArea := tri.Area(points)
	paddedArea := padded.Area(points)
	assert.InDelta(t, triArea.Z, paddedArea.Z, 1e-12)
	assert.InDelta(t, triArea.Norm(), paddedArea.Norm(), 1e-12)

	triCentre := tri.Centre(points)
	paddedCentre := padded.Centre(points)
	assert.InDelta(t, triCentre.X, paddedCentre.X, 1e-9)
	assert.InDelta(t, triCentre.Y, paddedCentre.Y, 1e-9)
	assert.InDelta(t, triCentre.Z, paddedCentre.Z, 1e-9)

	refPt := r3.Vector{X: 0.3, Y: -0.2, Z: 0.1}
	triJ := tri.Inertia(points, refPt, 1)
	paddedJ := padded.Inertia(points, refPt, 1)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.InDelta(t, triJ.At(row, col), paddedJ.At(row, col), 1e-9,
				"inertia entry (%d,%d)", row, col)
		}
	}
}

func TestCentreConcave(t *testing.T) {
	// The L-shape is two rectangles: 100x50 at the bottom and 50x50 on the
	// top left; the analytic centroid is (125/3, 125/3).
	face, points := LoadFixture("lshape")
	centre := face.Centre(points)
	assert.InDelta(t, 125.0/3.0, centre.X, 1e-9)
	assert.InDelta(t, 125.0/3.0, centre.Y, 1e-9)
	assert.InDelta(t, 0, centre.Z, 1e-9)
}

func TestCentreDegenerateFallsBack(t *testing.T) {
	// All vertices coincide: no reliable area to weight by, so the centre
	// falls back to the vertex average.
	p := r3.Vector{X: 4, Y: 5, Z: 6}
	points := PointField{p, p, p, p}
	face := Polygon{0, 1, 2, 3}

	assert.Equal(t, p, face.Centre(points))

	normal := face.Normal(points)
	assert.False(t, math.IsNaN(normal.X) || math.IsNaN(normal.Y) || math.IsNaN(normal.Z))
	assert.Equal(t, 0.0, normal.Norm())
}

func TestSquareInertiaAboutCentroid(t *testing.T) {
	points := PointField{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	square := Polygon{0, 1, 2, 3}

	// Unit square about its own centroid: Ixx = Iyy = 1/12, Izz = 1/6.
	j := square.Inertia(points, square.Centre(points), 1)
	assert.InDelta(t, 1.0/12.0, j.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0/12.0, j.At(1, 1), 1e-12)
	assert.InDelta(t, 1.0/6.0, j.At(2, 2), 1e-12)
	assert.InDelta(t, 0, j.At(0, 1), 1e-12)
	assert.InDelta(t, 0, j.At(0, 2), 1e-12)
	assert.InDelta(t, 0, j.At(1, 2), 1e-12)
}

func TestSweptVolUnmovedIsZero(t *testing.T) {
	for n := 3; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("%d-gon", n), func(t *testing.T) {
			face, points := regularPolygon(n)
			assert.Zero(t, face.SweptVol(points, points))
		})
	}
}

func TestSweptVolTranslation(t *testing.T) {
	face, points := LoadFixture("pentagon")
	area := face.Area(points).Z
	require.Greater(t, area, 0.0)

	dz := 2.5
	moved := translated(points, r3.Vector{Z: dz})

	assert.InDelta(t, area*dz, face.SweptVol(points, moved), 1e-9*area*dz)
	assert.InDelta(t, -area*dz, face.SweptVol(moved, points), 1e-9*area*dz)
}

func TestSweptVolInPlaneMotionIsZero(t *testing.T) {
	// Sliding a planar face within its own plane sweeps no volume.
	face, points := regularPolygon(6)
	moved := translated(points, r3.Vector{X: 1.5, Y: -0.5})
	assert.InDelta(t, 0, face.SweptVol(points, moved), 1e-12)
}
