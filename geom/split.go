package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// SplitMode selects what a decomposition produces: piece counts or
// materialized pieces, triangles only or quads where possible.
type SplitMode int

const (
	// CountTriangle counts the triangles a triangle-only split would emit.
	CountTriangle SplitMode = iota
	// CountQuad counts the pieces a quad-preferring split would emit.
	CountQuad
	// SplitTriangle materializes a triangle-only decomposition.
	SplitTriangle
	// SplitQuad materializes a quad-preferring decomposition.
	SplitQuad
)

// splitState accumulates decomposition results across the recursion. It is
// discarded wholesale if the split panics, so no partial result escapes.
type splitState struct {
	nTri, nQuad int
	tris, quads PolygonList
}

// calcEdges returns the unit direction of each edge, guarded against
// zero-length edges.
func (f Polygon) calcEdges(points PointField) []r3.Vector {
	edges := make([]r3.Vector, len(f))
	for i := range f {
		edges[i] = normalised(points[f[f.fcIndex(i)]].Sub(points[f[i]]))
	}
	return edges
}

// The edge arriving at vertex i and the edge leaving it.
func (f Polygon) left(i int) int  { return f.rcIndex(i) }
func (f Polygon) right(i int) int { return i }

// mostConcaveAngle returns the vertex with the largest interior angle,
// along with that angle. Whether a corner is concave is decided by the
// local edge normal pointing with or against the overall face area vector.
func (f Polygon) mostConcaveAngle(points PointField, edges []r3.Vector) (int, float64) {
	a := f.Area(points)

	index := 0
	maxAngle := -great

	for i := range edges {
		leftEdge := edges[f.left(i)]
		rightEdge := edges[f.right(i)]

		edgeNormal := rightEdge.Cross(leftEdge)
		edgeAngle := math.Acos(clamp1(leftEdge.Dot(rightEdge)))

		var angle float64
		if edgeNormal.Dot(a) > 0 {
			// Concave corner.
			angle = math.Pi + edgeAngle
		} else {
			// Convex corner. The pi complement accounts for the left and
			// right edges being connected head to tail.
			angle = math.Pi - edgeAngle
		}

		if angle > maxAngle {
			maxAngle = angle
			index = i
		}
	}

	return index, maxAngle
}

// split decomposes the face according to mode, accumulating into st, and
// returns the number of new pieces this call produced. Faces with fewer
// than three vertices have no valid split and panic with a SplitError.
//
// The strategy is greedy: resolve the sharpest (most concave) corner first
// by cutting from it to the opposite vertex that best bisects its angle.
// This biases the recursion away from sliver pieces, though it makes no
// claim of global optimality.
func (f Polygon) split(mode SplitMode, points PointField, st *splitState) int {
	oldIndices := st.nTri + st.nQuad

	switch {
	case len(f) < 3:
		fatalf("asked to split a face with %d vertices", len(f))

	case len(f) == 3:
		// Triangle. Just copy.
		if mode == CountTriangle || mode == CountQuad {
			st.nTri++
		} else {
			st.tris = append(st.tris, f)
			st.nTri++
		}

	case len(f) == 4:
		switch mode {
		case CountTriangle:
			st.nTri += 2
		case CountQuad:
			st.nQuad++
		case SplitTriangle:
			// Cut along the diagonal through the vertex with the largest
			// interior angle.
			edges := f.calcEdges(points)
			startIndex, _ := f.mostConcaveAngle(points, edges)

			nextIndex := f.fcIndex(startIndex)
			splitIndex := f.fcIndex(nextIndex)

			st.tris = append(st.tris,
				Polygon{f[startIndex], f[nextIndex], f[splitIndex]},
				Polygon{f[splitIndex], f[f.fcIndex(splitIndex)], f[startIndex]},
			)
			st.nTri += 2
		default:
			st.quads = append(st.quads, f)
			st.nQuad++
		}

	default:
		// General case. Like the quad: start at the largest interior angle.
		edges := f.calcEdges(points)
		startIndex, maxAngle := f.mostConcaveAngle(points, edges)

		bisectAngle := maxAngle / 2
		rightEdge := edges[f.right(startIndex)]

		// Look for the opposite vertex which as close as possible bisects
		// that angle. Candidates start two vertices ahead, skipping the
		// immediate neighbours.
		index := f.fcIndex(f.fcIndex(startIndex))

		minIndex := index
		minDiff := math.Pi

		for i := 0; i < len(f)-3; i++ {
			splitEdge := normalised(points[f[index]].Sub(points[f[startIndex]]))

			splitAngle := math.Acos(clamp1(splitEdge.Dot(rightEdge)))
			angleDiff := math.Abs(splitAngle - bisectAngle)

			if angleDiff < minDiff {
				minDiff = angleDiff
				minIndex = index
			}

			index = f.fcIndex(index)
		}

		// Split into two subshapes along the chosen diagonal: face1 runs
		// startIndex to minIndex, face2 runs minIndex back to startIndex,
		// both in circular order, sharing exactly the diagonal endpoints.
		diff := minIndex - startIndex
		if diff < 0 {
			// Folded around.
			diff += len(f)
		}

		nPoints1 := diff + 1
		nPoints2 := len(f) - diff + 1

		face1 := make(Polygon, nPoints1)
		index = startIndex
		for i := 0; i < nPoints1; i++ {
			face1[i] = f[index]
			index = f.fcIndex(index)
		}

		face2 := make(Polygon, nPoints2)
		index = minIndex
		for i := 0; i < nPoints2; i++ {
			face2[i] = f[index]
			index = f.fcIndex(index)
		}

		face1.split(mode, points, st)
		face2.split(mode, points, st)
	}

	return st.nTri + st.nQuad - oldIndices
}

// Triangles decomposes the face into triangles containing only its own
// vertices. Panics with a SplitError on faces with fewer than three
// vertices; the root package wraps this in an error-returning API.
func (f Polygon) Triangles(points PointField) PolygonList {
	st := splitState{}
	f.split(SplitTriangle, points, &st)
	return st.tris
}

// TrianglesQuads decomposes the face into quads where possible and
// triangles otherwise. Panic behavior as for Triangles.
func (f Polygon) TrianglesQuads(points PointField) (PolygonList, PolygonList) {
	st := splitState{}
	f.split(SplitQuad, points, &st)
	return st.tris, st.quads
}

// NTrianglesQuads counts the pieces TrianglesQuads would produce, without
// materializing them. Panic behavior as for Triangles.
func (f Polygon) NTrianglesQuads(points PointField) (nTri, nQuad int) {
	st := splitState{}
	f.split(CountQuad, points, &st)
	return st.nTri, st.nQuad
}
