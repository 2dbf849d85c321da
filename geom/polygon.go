package geom

// Collapse removes consecutive duplicate vertex indices in place, including
// the wraparound duplicate between the last and first entries, and returns
// the new size. Merging vertices elsewhere in a mesh can leave such
// duplicates behind.
func (f *Polygon) Collapse() int {
	if len(*f) > 1 {
		p := *f
		ci := 0
		for i := 1; i < len(p); i++ {
			if p[i] != p[ci] {
				ci++
				p[ci] = p[i]
			}
		}
		if p[ci] != p[0] {
			ci++
		}
		*f = p[:ci]
	}
	return len(*f)
}

// Flip reverses the winding in place. The first vertex stays fixed, so the
// flipped polygon starts at the same vertex as the original.
func (f Polygon) Flip() {
	n := len(f)
	if n > 2 {
		for i := 1; i < (n+1)/2; i++ {
			f[i], f[n-i] = f[n-i], f[i]
		}
	}
}

// Reversed returns a new polygon with the winding reversed. As with Flip,
// the starting vertices of the original and reversed polygons are identical.
func (f Polygon) Reversed() Polygon {
	if len(f) == 0 {
		return nil
	}

	newList := make(Polygon, len(f))
	newList[0] = f[0]
	for i := 1; i < len(f); i++ {
		newList[i] = f[len(f)-i]
	}
	return newList
}

// Which returns the local position of the given vertex id, or -1 if the
// polygon doesn't contain it.
func (f Polygon) Which(globalIndex int) int {
	for localIdx, v := range f {
		if v == globalIndex {
			return localIdx
		}
	}
	return -1
}

// Edges materializes the circularly adjacent vertex pairs, closing with the
// pair (last, first).
func (f Polygon) Edges() []Edge {
	if len(f) == 0 {
		return nil
	}

	e := make([]Edge, len(f))
	for i := 0; i < len(f)-1; i++ {
		e[i] = Edge{f[i], f[i+1]}
	}
	e[len(f)-1] = Edge{f[len(f)-1], f[0]}
	return e
}

// EdgeDirection reports how e runs relative to this polygon's own winding:
// +1 forward, -1 reverse, 0 if e is not an edge of the polygon.
func (f Polygon) EdgeDirection(e Edge) int {
	for i := range f {
		if f[i] == e.Start {
			if f[f.rcIndex(i)] == e.End {
				return -1
			} else if f[f.fcIndex(i)] == e.End {
				return 1
			}
			return 0
		} else if f[i] == e.End {
			if f[f.rcIndex(i)] == e.Start {
				return 1
			} else if f[f.fcIndex(i)] == e.Start {
				return -1
			}
			return 0
		}
	}
	return 0
}

// NTriangles returns how many triangles the polygon decomposes into. Any
// diagonal decomposition of an n-gon yields n-2 triangles, so no geometry
// is needed.
func (f Polygon) NTriangles() int {
	return len(f) - 2
}

// LongestEdge returns the index of f's longest edge.
func LongestEdge(f Polygon, points PointField) int {
	longestEdgeI := -1
	longestEdgeLength := -small

	for edI, ed := range f.Edges() {
		edgeLength := ed.Mag(points)
		if edgeLength > longestEdgeLength {
			longestEdgeI = edI
			longestEdgeLength = edgeLength
		}
	}

	return longestEdgeI
}
