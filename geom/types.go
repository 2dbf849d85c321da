package geom

import "github.com/golang/geo/r3"

// A Polygon is an ordered list of vertex indices into an externally owned
// PointField, interpreted circularly: the element after the last is the
// first. Winding is significant; traversal order fixes the sign of the area
// vector under the right-hand rule. Consecutive duplicate indices are legal
// in the base representation and can be removed with Collapse.
type Polygon []int

// A PointField is a view onto the shared coordinate store that polygon
// vertex indices refer to. Indices are never range checked here; keeping
// them valid is the caller's job.
type PointField []r3.Vector

// A PolygonList holds decomposition output.
type PolygonList []Polygon
