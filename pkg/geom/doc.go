// Package geom provides the planar geometric primitives that back the
// outline engine: points with tolerance-based equality, and segments
// (lines, circular arcs, full circles) with intersection and bounding-box
// operations. Everything here is value-typed and z = 0 planar; there is no
// I/O and no shared mutable state.
package geom
