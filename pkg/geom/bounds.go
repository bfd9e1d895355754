package geom

import "math"

// Box is an axis-aligned bounding rectangle in the XY plane, given as its
// lower-left and upper-right corners.
type Box struct {
	Min, Max Point
}

// Union returns the smallest Box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Contains reports whether p falls within b, inclusive of the boundary.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Bounds computes the axis-aligned bounding box of the segment. For a Line
// this is simply the extent of its two endpoints. For an Arc or Circle it
// also accounts for the axis-aligned extrema of the circle (the four
// points at angle 0, π/2, π, 3π/2) that fall within the segment's angular
// span — an arc that sweeps past one of those points bulges further than
// its chord endpoints suggest.
func (s Segment) Bounds() Box {
	switch s.kind {
	case Line:
		return Box{
			Min: Point{X: math.Min(s.start.X, s.end.X), Y: math.Min(s.start.Y, s.end.Y)},
			Max: Point{X: math.Max(s.start.X, s.end.X), Y: math.Max(s.start.Y, s.end.Y)},
		}
	case Circle:
		return Box{
			Min: Point{X: s.center.X - s.radius, Y: s.center.Y - s.radius},
			Max: Point{X: s.center.X + s.radius, Y: s.center.Y + s.radius},
		}
	default: // Arc
		box := Box{
			Min: Point{X: math.Min(s.start.X, s.end.X), Y: math.Min(s.start.Y, s.end.Y)},
			Max: Point{X: math.Max(s.start.X, s.end.X), Y: math.Max(s.start.Y, s.end.Y)},
		}
		for _, extremum := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
			if s.inAngularInterval(extremum) || s.inAngularInterval(extremum+2*math.Pi) {
				p := Point{
					X: s.center.X + s.radius*math.Cos(extremum),
					Y: s.center.Y + s.radius*math.Sin(extremum),
				}
				box = box.Union(Box{Min: p, Max: p})
			}
		}
		return box
	}
}
