package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// A Triangle is the primitive that every polygon computation reduces to:
// three points with closed-form area, centroid, inertia, and swept volume.
type Triangle struct {
	A, B, C r3.Vector
}

// Area returns the signed area vector under the right-hand rule.
func (t Triangle) Area() r3.Vector {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Mul(0.5)
}

// Mag returns the area magnitude.
func (t Triangle) Mag() float64 {
	return t.Area().Norm()
}

// Normal returns the unit area normal, zero-length for a degenerate
// triangle.
func (t Triangle) Normal() r3.Vector {
	return normalised(t.Area())
}

// Centre returns the centroid.
func (t Triangle) Centre() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// SweptVol returns the signed volume swept as the triangle moves to state
// next, positive for motion along the triangle's normal. The prism between
// the two states is decomposed into three tetrahedra, each carrying one
// vertex displacement as a factor, so an unmoved triangle sweeps exactly
// zero.
func (t Triangle) SweptVol(next Triangle) float64 {
	v1 := t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Dot(next.A.Sub(t.A))
	v2 := t.C.Sub(t.B).Cross(next.A.Sub(t.B)).Dot(next.B.Sub(t.B))
	v3 := next.A.Sub(t.C).Cross(next.B.Sub(t.C)).Dot(next.C.Sub(t.C))

	return (v1 + v2 + v3) / 6.0
}

// Inertia returns the second moment of area about refPt, scaled by density.
func (t Triangle) Inertia(refPt r3.Vector, density float64) mgl64.Mat3 {
	aRel := t.A.Sub(refPt)
	bRel := t.B.Sub(refPt)
	cRel := t.C.Sub(refPt)

	V := mgl64.Mat3FromRows(vec3(aRel), vec3(bRel), vec3(cRel))

	// Twice the triangle area.
	a := t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Norm()

	// S is the second-moment coupling of the three vertices: integrating a
	// product of barycentric coordinates over the triangle gives area/6 on
	// the diagonal and area/12 off it; the 1/24 absorbs the doubled area.
	S := mgl64.Mat3{2, 1, 1, 1, 2, 1, 1, 1, 2}.Mul(1.0 / 24.0)

	vsv := V.Transpose().Mul3(S).Mul3(V)

	return mgl64.Ident3().Mul(vsv.Trace()).Sub(vsv).Mul(a * density)
}

func vec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
