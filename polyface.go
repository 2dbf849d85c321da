// Package polyface is a polygon geometry kernel for mesh-based simulation.
//
// A polygon is an ordered, circular list of vertex indices into a shared
// point store. The kernel computes geometric properties (signed area
// vector, centroid, unit normal, inertia tensor, swept volume between two
// time-states of a moving mesh), decomposes arbitrary polygons into
// triangles and quads, and decides whether two polygons describe the same
// shape regardless of where their vertex listing starts or which way it
// winds. The property and decomposition code is written to stay robust for
// concave and mildly non-planar faces, not just convex planar ones.
package polyface

import "github.com/meshkit/polyface/geom"

type Polygon = geom.Polygon
type PointField = geom.PointField
type PolygonList = geom.PolygonList
type Edge = geom.Edge
type Triangle = geom.Triangle

// Triangles decomposes f into triangles containing only f's own vertices.
//
// A face with fewer than three vertices has no valid geometric
// interpretation for splitting; it produces an error and no partial result.
func Triangles(f Polygon, points PointField) (result PolygonList, err error) {
	defer func() {
		recoveredErr := geom.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return f.Triangles(points), nil
}

// TrianglesQuads decomposes f into quads where possible and triangles
// otherwise. Error behavior as for Triangles.
func TrianglesQuads(f Polygon, points PointField) (tris, quads PolygonList, err error) {
	defer func() {
		recoveredErr := geom.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			tris = nil
			quads = nil
			err = recoveredErr
		}
	}()
	tris, quads = f.TrianglesQuads(points)
	return tris, quads, nil
}

// NTrianglesQuads counts the pieces TrianglesQuads would produce, without
// materializing them. Error behavior as for Triangles.
func NTrianglesQuads(f Polygon, points PointField) (nTri, nQuad int, err error) {
	defer func() {
		recoveredErr := geom.HandleSplitPanicRecover(recover())
		if recoveredErr != nil {
			nTri = 0
			nQuad = 0
			err = recoveredErr
		}
	}()
	nTri, nQuad = f.NTrianglesQuads(points)
	return nTri, nQuad, nil
}

// Compare tests whether a and b describe the same circular vertex sequence:
// +1 for a rotation with identical winding, -1 for a rotation with opposite
// winding, 0 otherwise.
func Compare(a, b Polygon) int {
	return geom.Compare(a, b)
}

// SameVertices reports whether a and b contain the same vertex ids as
// multisets, ignoring order and winding.
func SameVertices(a, b Polygon) bool {
	return geom.SameVertices(a, b)
}
