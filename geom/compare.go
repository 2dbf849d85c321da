package geom

// Compare tests whether a and b describe the same circular vertex sequence,
// possibly starting at a different element and/or traversed in the opposite
// direction. It returns +1 if b is a rotation of a with the same winding,
// -1 if b is a rotation of a with opposite winding, and 0 otherwise.
//
// The dual-direction walk is done with two explicit modulo cursors over the
// backing slices.
func Compare(a, b Polygon) int {
	// Trivial reject: faces are different size.
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if len(a) == 1 {
		if a[0] == b[0] {
			return 1
		}
		return 0
	}

	n := len(a)

	// Rotate a cursor over b until it lines up with a's first element.
	align := -1
	for i := 0; i < n; i++ {
		if b[i] == a[0] {
			align = i
			break
		}
	}

	// No element of b matches, so the faces don't share a vertex.
	if align == -1 {
		return 0
	}

	// Walk both faces forward from the alignment point.
	forward := true
	for i := 0; i < n; i++ {
		if a[i] != b[CircularIndex(align+i, n)] {
			forward = false
			break
		}
	}
	if forward {
		return 1
	}

	// Reset to the alignment point and walk a forward while walking b
	// backward.
	backward := true
	for i := 0; i < n; i++ {
		if a[i] != b[CircularIndex(align-i, n)] {
			backward = false
			break
		}
	}
	if backward {
		return -1
	}

	return 0
}

// SameVertices reports whether a and b contain the same vertex ids as
// multisets, ignoring order and winding entirely. Multiplicities are
// checked by direct counting; nothing is assumed about ordering.
func SameVertices(a, b Polygon) bool {
	// Trivial reject: faces are different size.
	if len(a) != len(b) {
		return false
	}
	if len(a) == 1 {
		return a[0] == b[0]
	}

	for i := range a {
		aOcc := 0
		for j := range a {
			if a[i] == a[j] {
				aOcc++
			}
		}

		bOcc := 0
		for j := range b {
			if a[i] == b[j] {
				bOcc++
			}
		}

		if aOcc != bOcc {
			return false
		}
	}

	return true
}
