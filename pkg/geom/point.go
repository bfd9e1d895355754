package geom

import "math"

// Epsilon is the default tolerance used for point equality and degeneracy
// checks. It is a package-level configuration option (spec: default 1e-8)
// that callers may override for a session.
var Epsilon = 1e-8

// ArcRadialTolerance bounds how far an arc's start/end points may fall from
// its nominal radius before construction fails (spec: default 1e-3).
var ArcRadialTolerance = 1e-3

// Point is an ordered triple of double-precision coordinates. Planar
// primitives always carry Z == 0.
type Point struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross2D returns the z-component of the 2D cross product p × q, treating
// both as vectors in the XY plane.
func (p Point) Cross2D(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsPlanar reports whether p lies in the z = 0 plane.
func (p Point) IsPlanar() bool {
	return p.Z == 0
}

// HasNaN reports whether any coordinate of p is NaN.
func (p Point) HasNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// PointMatches reports whether a and b are equal within tol on all three
// coordinates.
func PointMatches(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

// Equal reports whether a and b are equal within the package Epsilon.
func (p Point) Equal(q Point) bool {
	return PointMatches(p, q, Epsilon)
}
