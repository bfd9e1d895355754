package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Kind identifies which of the three segment variants a Segment holds.
// A Segment's kind is immutable after construction.
type Kind int

const (
	Line Kind = iota
	Arc
	Circle
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Arc:
		return "arc"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// Segment is a planar (z = 0) primitive: a line, a circular arc, or a full
// circle. StartAngle/EndAngle are always expressed in the CCW convention
// with EndAngle > StartAngle; CW records whether the outline that owns this
// segment traverses it clockwise.
type Segment struct {
	kind       Kind
	start, end Point
	center     Point
	radius     float64
	startAngle float64
	endAngle   float64
	cw         bool
}

// NewLine constructs a Line segment. It fails with ErrDegenerateGeometry if
// start and end coincide within Epsilon, or ErrNonPlanar if either point has
// a nonzero Z.
func NewLine(start, end Point) (Segment, error) {
	if !start.IsPlanar() || !end.IsPlanar() {
		return Segment{}, errors.Wrap(ErrNonPlanar, "NewLine")
	}
	if PointMatches(start, end, Epsilon) {
		return Segment{}, errors.Wrap(ErrDegenerateGeometry, "NewLine: start == end")
	}
	return Segment{kind: Line, start: start, end: end}, nil
}

// NewArc constructs an Arc traced from start to end around center. cw
// records the traversal direction; if start and end coincide within
// Epsilon, the result degenerates into a Circle with radius |start-center|
// and canonical start point center+(radius,0,0), per spec. It fails with
// ErrNonPlanar if any point has a nonzero Z, with ErrDegenerateGeometry if
// center coincides with start or end, and with ErrDegenerateGeometry if the
// start/end radii differ by more than ArcRadialTolerance.
func NewArc(center, start, end Point, cw bool) (Segment, error) {
	if !center.IsPlanar() || !start.IsPlanar() || !end.IsPlanar() {
		return Segment{}, errors.Wrap(ErrNonPlanar, "NewArc")
	}
	if PointMatches(center, start, Epsilon) || PointMatches(center, end, Epsilon) {
		return Segment{}, errors.Wrap(ErrDegenerateGeometry, "NewArc: center coincides with an endpoint")
	}

	radius := center.Distance(start)

	if PointMatches(start, end, Epsilon) {
		canonicalStart := center.Add(Point{X: radius})
		return Segment{
			kind:   Circle,
			center: center,
			radius: radius,
			start:  canonicalStart,
			end:    canonicalStart,
		}, nil
	}

	r2 := center.Distance(end)
	if math.Abs(r2-radius) > ArcRadialTolerance {
		return Segment{}, errors.Wrap(ErrDegenerateGeometry, "NewArc: start/end radii differ beyond tolerance")
	}

	startAngle := math.Atan2(start.Y-center.Y, start.X-center.X)
	endAngle := math.Atan2(end.Y-center.Y, end.X-center.X)

	// The stored pair is always CCW; if the arc is traversed CW, the raw
	// start/end angles describe the CCW pair in reverse order.
	if cw {
		startAngle, endAngle = endAngle, startAngle
	}
	for endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	return Segment{
		kind:       Arc,
		center:     center,
		radius:     radius,
		start:      start,
		end:        end,
		startAngle: startAngle,
		endAngle:   endAngle,
		cw:         cw,
	}, nil
}

// Kind returns the segment's variant.
func (s Segment) Kind() Kind { return s.kind }

// Start returns the traversal start point (as the outline chains it).
func (s Segment) Start() Point { return s.start }

// End returns the traversal end point.
func (s Segment) End() Point { return s.end }

// Center returns the center point for Arc and Circle segments.
func (s Segment) Center() Point { return s.center }

// Radius returns the radius for Arc and Circle segments.
func (s Segment) Radius() float64 { return s.radius }

// StartAngle returns the CCW-convention start angle for Arc segments.
func (s Segment) StartAngle() float64 { return s.startAngle }

// EndAngle returns the CCW-convention end angle for Arc segments.
func (s Segment) EndAngle() float64 { return s.endAngle }

// CW reports whether the outline traverses this Arc clockwise.
func (s Segment) CW() bool { return s.cw }

// ccwEndpoints returns the (start, end) pair as they would be named if the
// arc were described in pure CCW order — swapped relative to the traversal
// Start()/End() when CW() is true. Used internally for angle-based math.
func (s Segment) ccwEndpoints() (Point, Point) {
	if s.cw {
		return s.end, s.start
	}
	return s.start, s.end
}

// midpoint returns a point on the segment roughly halfway between its
// endpoints: the chord midpoint for a Line, the angular-bisector point on
// the circle for an Arc or Circle.
func (s Segment) midpoint() Point {
	switch s.kind {
	case Line:
		return s.start.Add(s.end).Scale(0.5)
	default:
		mid := (s.startAngle + s.endAngle) / 2
		if s.kind == Circle {
			mid = math.Pi
		}
		return Point{
			X: s.center.X + s.radius*math.Cos(mid),
			Y: s.center.Y + s.radius*math.Sin(mid),
		}
	}
}

// Midpoint returns a point roughly halfway along the segment's traversal:
// the chord midpoint for a Line, the angular-bisector point on the circle
// for an Arc or Circle. The outline package samples this when the chord
// between a curved segment's endpoints is a poor proxy for which side of
// the chord the segment actually bulges toward (shoelace orientation).
func (s Segment) Midpoint() Point { return s.midpoint() }

// inAngularInterval reports whether angle a (any representation) falls
// within [s.startAngle, s.endAngle], normalizing by adding 2π when a falls
// short of startAngle, as spec directs.
func (s Segment) inAngularInterval(a float64) bool {
	if a < s.startAngle {
		a += 2 * math.Pi
	}
	return a >= s.startAngle-1e-9 && a <= s.endAngle+1e-9
}
