// Package outline implements the outline engine: a closed, oriented chain
// of geom.Segment values supporting point-in-outline queries and boolean
// addition/subtraction against another outline or a circular hole, plus
// extrusion of a closed outline into the side/top/bottom surface patches
// an IGES writer turns into trimmed parametric surfaces.
//
// An Outline carries no knowledge of IGES entities. It hands its results
// back as plain geometry (segment chains, SurfacePatch descriptions); the
// entity graph is the client that wraps them into E102/E142/E144 entities.
package outline
