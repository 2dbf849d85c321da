package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Area returns the signed area vector of the face under the right-hand
// rule. A triangle is computed directly. Anything larger is decomposed into
// the fan of triangles joining each edge to the average of the vertices;
// the fan apex is the same for every triangle, which makes the sum
// independent of the apex choice and keeps the result well behaved for
// concave and mildly non-planar faces.
func (f Polygon) Area(ps PointField) r3.Vector {
	if len(f) == 3 {
		return Triangle{ps[f[0]], ps[f[1]], ps[f[2]]}.Area()
	}

	pAvg := r3.Vector{}
	for _, pi := range f {
		pAvg = pAvg.Add(ps[pi])
	}
	pAvg = pAvg.Mul(1 / float64(len(f)))

	sumA := r3.Vector{}
	for i := range f {
		p := ps[f[i]]
		pNext := ps[f[f.fcIndex(i)]]

		sumA = sumA.Add(pNext.Sub(p).Cross(pAvg.Sub(p)))
	}

	return sumA.Mul(0.5)
}

// Normal returns the unit area normal. A degenerate face yields a defined
// zero-length vector rather than NaN.
func (f Polygon) Normal(ps PointField) r3.Vector {
	return normalised(f.Area(ps))
}

// Centre returns the face centroid. A triangle is averaged directly. Larger
// faces take two passes over the central triangle fan: the first estimates
// the centre and the unit area normal, the second accumulates the triangle
// centroids weighted by triangle area projected onto that normal. The
// projected signed area, *not* its magnitude, is what makes the result
// independent of the initial estimate. If the face is too small for the
// sums to be reliably divided, the centre falls back to the estimate.
func (f Polygon) Centre(ps PointField) r3.Vector {
	if len(f) == 3 {
		return ps[f[0]].Add(ps[f[1]]).Add(ps[f[2]]).Mul(1.0 / 3.0)
	}

	pAvg := r3.Vector{}
	for _, pi := range f {
		pAvg = pAvg.Add(ps[pi])
	}
	pAvg = pAvg.Mul(1 / float64(len(f)))

	sumA := r3.Vector{}
	for i := range f {
		p := ps[f[i]]
		pNext := ps[f[f.fcIndex(i)]]

		sumA = sumA.Add(pNext.Sub(p).Cross(pAvg.Sub(p)))
	}
	sumAHat := normalised(sumA)

	sumAn := 0.0
	sumAnc := r3.Vector{}
	for i := range f {
		p := ps[f[i]]
		pNext := ps[f[f.fcIndex(i)]]

		a := pNext.Sub(p).Cross(pAvg.Sub(p))
		c := p.Add(pNext).Add(pAvg)

		an := a.Dot(sumAHat)

		sumAn += an
		sumAnc = sumAnc.Add(c.Mul(an))
	}

	if sumAn > vSmall {
		return sumAnc.Mul(1.0 / (3.0 * sumAn))
	}
	return pAvg
}

// Inertia returns the second moment of area of the face about refPt, scaled
// by density. A triangle delegates to the primitive; larger faces sum the
// fan of triangles joining each edge to the true centroid.
func (f Polygon) Inertia(ps PointField, refPt r3.Vector, density float64) mgl64.Mat3 {
	if len(f) == 3 {
		return Triangle{ps[f[0]], ps[f[1]], ps[f[2]]}.Inertia(refPt, density)
	}

	ctr := f.Centre(ps)

	var j mgl64.Mat3
	for i := range f {
		j = j.Add(Triangle{ps[f[i]], ps[f[f.fcIndex(i)]], ctr}.Inertia(refPt, density))
	}

	return j
}

// SweptVol returns the volume swept by the face as its vertices move from
// oldPoints to newPoints over a time step. The face is decomposed into the
// central fan about its centroid under each point set and the per-triangle
// swept volumes are summed.
//
// A triangle fast path would be valid for faces of tetrahedral cells, but
// on cells mixing triangular and polygonal faces it makes the swept volumes
// of faces sharing an edge disagree, breaking volume conservation. Every
// size therefore uses the same central decomposition.
func (f Polygon) SweptVol(oldPoints, newPoints PointField) float64 {
	centreOldPoint := f.Centre(oldPoints)
	centreNewPoint := f.Centre(newPoints)

	sv := 0.0
	for pi := range f {
		ni := f.fcIndex(pi)

		sv += Triangle{
			centreOldPoint,
			oldPoints[f[pi]],
			oldPoints[f[ni]],
		}.SweptVol(Triangle{
			centreNewPoint,
			newPoints[f[pi]],
			newPoints[f[ni]],
		})
	}

	return sv
}
