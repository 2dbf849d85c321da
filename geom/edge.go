package geom

import "github.com/golang/geo/r3"

// An Edge is an undirected pair of vertex indices into a PointField.
type Edge struct {
	Start, End int
}

// Vec returns the vector from the start point to the end point.
func (e Edge) Vec(points PointField) r3.Vector {
	return points[e.End].Sub(points[e.Start])
}

// Mag returns the edge length.
func (e Edge) Mag(points PointField) float64 {
	return e.Vec(points).Norm()
}
