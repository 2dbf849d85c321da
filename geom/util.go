package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Numerical guard constants, in the spirit of the usual scalar limits for
// float64 geometry.
const (
	// vSmall stabilizes divisions: added to a magnitude before dividing so
	// a degenerate (zero-length) vector normalizes to zero instead of NaN.
	vSmall = 1e-300

	// small is the general floating tolerance for near-zero comparisons.
	small = 1e-15

	// great is an effectively infinite angle/length sentinel.
	great = 1e15
)

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// fcIndex and rcIndex step forward and backward around the polygon.
func (f Polygon) fcIndex(i int) int { return CircularIndex(i+1, len(f)) }
func (f Polygon) rcIndex(i int) int { return CircularIndex(i-1, len(f)) }

// normalised scales v to unit length with a guarded denominator, so a zero
// vector comes back as a zero vector.
func normalised(v r3.Vector) r3.Vector {
	return v.Mul(1 / (v.Norm() + vSmall))
}

// clamp1 confines a cosine to [-1, 1] before math.Acos sees it.
func clamp1(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
