package geom

import (
	"math"
	"sort"
)

// IntersectFlag classifies the outcome of Segment.Intersect beyond a plain
// point list.
type IntersectFlag int

const (
	// None indicates a normal intersection result (zero, one, or two
	// points, depending on the segment kinds) with no special geometry.
	None IntersectFlag = iota
	// Tangent indicates the segments touch at exactly one point where
	// their curves are tangent.
	Tangent
	// Coincident indicates the two segments describe the identical
	// underlying circle.
	Coincident
	// SegmentInsideOther indicates the receiver lies entirely inside the
	// other circle with no crossing.
	SegmentInsideOther
	// OtherInsideSegment indicates the other circle lies entirely inside
	// the receiver with no crossing.
	OtherInsideSegment
	// EdgeOverlap indicates the segments share a run of coincident edge
	// (collinear overlapping lines, or arcs/circles sharing a base circle
	// where one is a full circle or one arc's angular range contains the
	// other's; a partial overlap of two arcs is reported as None).
	EdgeOverlap
)

func (f IntersectFlag) String() string {
	switch f {
	case None:
		return "none"
	case Tangent:
		return "tangent"
	case Coincident:
		return "coincident"
	case SegmentInsideOther:
		return "segment-inside-other"
	case OtherInsideSegment:
		return "other-inside-segment"
	case EdgeOverlap:
		return "edge-overlap"
	default:
		return "unknown"
	}
}

// Intersect computes the intersection of s with other. It never returns an
// error: degeneracy and special configurations are reported via the flag.
func (s Segment) Intersect(other Segment) ([]Point, IntersectFlag) {
	switch {
	case s.kind == Circle && other.kind == Circle:
		return circleCircleIntersect(s.center, s.radius, other.center, other.radius)
	case (s.kind == Arc || s.kind == Circle) && (other.kind == Arc || other.kind == Circle):
		return checkArcs(s, other)
	case s.kind == Line && other.kind == Line:
		return checkLines(s, other)
	case s.kind == Line:
		pts, flag := checkArcLine(other, s)
		return pts, flag
	default: // s is Arc/Circle, other is Line
		return checkArcLine(s, other)
	}
}

// circleCircleIntersect implements the Circle × Circle contract of spec
// §4.1: coincident/tangent/nested detection, then the radical-line
// construction for the generic two-point case, ordered in CW traversal
// direction on the first circle.
func circleCircleIntersect(c1 Point, r1 float64, c2 Point, r2 float64) ([]Point, IntersectFlag) {
	d := c1.Distance(c2)

	if PointMatches(c1, c2, ArcRadialTolerance) && math.Abs(r1-r2) < ArcRadialTolerance {
		return nil, Coincident
	}
	if d > r1+r2 {
		return nil, None
	}
	if math.Abs(d-(r1+r2)) < ArcRadialTolerance {
		return nil, Tangent
	}
	if d <= r1-r2 {
		return nil, OtherInsideSegment
	}
	if d <= r2-r1 {
		return nil, SegmentInsideOther
	}

	p1, p2 := radicalLinePoints(c1, r1, c2, r2, d)
	return orderCW(c1, p1, p2), None
}

// radicalLinePoints computes the two intersection points of circles
// (c1, r1) and (c2, r2) given their center distance d, via the radical-line
// construction: the intersection points lie on the line connecting centers
// at signed distance rd = (d² − r2² + r1²) / (2d) from c1, offset
// perpendicular to the center line by height h = √(r1² − rd²).
func radicalLinePoints(c1 Point, r1 float64, c2 Point, r2 float64, d float64) (Point, Point) {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y

	rd := (d*d - r2*r2 + r1*r1) / (2 * d)
	mx := c1.X + rd*dx/d
	my := c1.Y + rd*dy/d

	h := math.Sqrt(math.Max(r1*r1-rd*rd, 0))
	// Perpendicular unit vector to (dx, dy)/d is (-dy, dx)/d.
	ox := -h * dy / d
	oy := h * dx / d

	return Point{X: mx + ox, Y: my + oy}, Point{X: mx - ox, Y: my - oy}
}

// orderCW returns p1 and p2 ordered so that sweeping clockwise from angle 0
// around center visits the first returned point before the second.
func orderCW(center, p1, p2 Point) []Point {
	a1 := normalizeAngle(math.Atan2(p1.Y-center.Y, p1.X-center.X))
	a2 := normalizeAngle(math.Atan2(p2.Y-center.Y, p2.X-center.X))
	if a1 >= a2 {
		return []Point{p1, p2}
	}
	return []Point{p2, p1}
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// checkArcs implements Arc×Arc and Arc×Circle (spec §4.1). a is the
// receiver ("first arc"); results are ordered by angular position along a
// from its StartAngle.
func checkArcs(a, b Segment) ([]Point, IntersectFlag) {
	sameCircle := PointMatches(a.center, b.center, ArcRadialTolerance) &&
		math.Abs(a.radius-b.radius) < ArcRadialTolerance

	if sameCircle {
		return edgeOverlapOnSharedCircle(a, b)
	}

	pts, flag := circleCircleIntersect(a.center, a.radius, b.center, b.radius)
	if flag != None {
		return nil, flag
	}

	var kept []Point
	for _, p := range pts {
		angA := math.Atan2(p.Y-a.center.Y, p.X-a.center.X)
		angB := math.Atan2(p.Y-b.center.Y, p.X-b.center.X)
		if a.kind == Circle || a.inAngularInterval(angA) {
			if b.kind == Circle || b.inAngularInterval(angB) {
				kept = append(kept, p)
			}
		}
	}
	if len(kept) == 0 {
		return nil, None
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return arcOrderKey(a, kept[i]) < arcOrderKey(a, kept[j])
	})
	return kept, None
}

// arcOrderKey returns a's angular position of p, normalized so it falls at
// or after a.StartAngle (adding 2π when short, as spec directs).
func arcOrderKey(a Segment, p Point) float64 {
	ang := math.Atan2(p.Y-a.center.Y, p.X-a.center.X)
	if ang < a.startAngle {
		ang += 2 * math.Pi
	}
	return ang
}

// edgeOverlapOnSharedCircle handles Arc×Arc / Arc×Circle when both
// segments lie on the same underlying circle.
func edgeOverlapOnSharedCircle(a, b Segment) ([]Point, IntersectFlag) {
	if a.kind == Circle {
		return []Point{b.start, b.end}, EdgeOverlap
	}
	if b.kind == Circle {
		return []Point{a.start, a.end}, EdgeOverlap
	}
	if a.startAngle >= b.startAngle-1e-9 && a.endAngle <= b.endAngle+1e-9 {
		return []Point{a.start, a.end}, EdgeOverlap
	}
	if b.startAngle >= a.startAngle-1e-9 && b.endAngle <= a.endAngle+1e-9 {
		return []Point{b.start, b.end}, EdgeOverlap
	}
	// Partial, non-nested overlap between two distinct arcs on the same
	// circle is outside the two-unique-intersection model this kernel
	// supports; report no intersection rather than guess at a result.
	return nil, None
}

// checkArcLine implements Arc×Line and Circle×Line (spec §4.1). arcSeg is
// the Arc/Circle participant; results are sorted along arcSeg's CCW
// direction.
func checkArcLine(arcSeg, line Segment) ([]Point, IntersectFlag) {
	ls, le := line.start, line.end
	c := arcSeg.center
	r := arcSeg.radius

	dx := ls.X - le.X
	dy := ls.Y - le.Y

	A := dx*dx + dy*dy
	B := 2 * (dx*(le.X-c.X) + dy*(le.Y-c.Y))
	C := (le.X-c.X)*(le.X-c.X) + (le.Y-c.Y)*(le.Y-c.Y) - r*r

	D := B*B - 4*A*C

	if D < 0 {
		return nil, None
	}
	if math.Abs(D) < 1e-3 {
		return nil, Tangent
	}

	sq := math.Sqrt(D)
	t0 := (-B + sq) / (2 * A)
	t1 := (-B - sq) / (2 * A)

	var candidates []Point
	for _, t := range []float64{t0, t1} {
		if t >= 0 && t <= 1 {
			candidates = append(candidates, Point{
				X: t*ls.X + (1-t)*le.X,
				Y: t*ls.Y + (1-t)*le.Y,
			})
		}
	}
	if len(candidates) == 0 {
		return nil, None
	}

	var kept []Point
	for _, p := range candidates {
		if arcSeg.kind == Circle {
			kept = append(kept, p)
			continue
		}
		ang := math.Atan2(p.Y-c.Y, p.X-c.X)
		if arcSeg.inAngularInterval(ang) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, None
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return arcSortKey(arcSeg, kept[i]) < arcSortKey(arcSeg, kept[j])
	})
	return kept, None
}

// arcSortKey orders a point along arcSeg's CCW direction: by raw angle for
// a full circle, by normalized angle-from-start for an arc.
func arcSortKey(arcSeg Segment, p Point) float64 {
	ang := math.Atan2(p.Y-arcSeg.center.Y, p.X-arcSeg.center.X)
	if arcSeg.kind == Circle {
		return normalizeAngle(ang)
	}
	return arcOrderKey(arcSeg, p)
}

// checkLines implements Line×Line (spec §4.1): the 2×2 parametric system,
// with parallel lines checked for collinear overlap.
func checkLines(a, b Segment) ([]Point, IntersectFlag) {
	d1 := a.end.Sub(a.start)
	d2 := b.end.Sub(b.start)

	denom := d1.X*d2.Y - d1.Y*d2.X

	if math.Abs(denom) < 1e-9 {
		return parallelLineOverlap(a, b, d1)
	}

	w := b.start.Sub(a.start)
	t := (w.X*d2.Y - w.Y*d2.X) / denom
	u := (w.X*d1.Y - w.Y*d1.X) / denom

	if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
		return nil, None
	}

	p := a.start.Add(d1.Scale(t))
	return []Point{p}, None
}

// parallelLineOverlap checks whether two parallel lines are also collinear
// and, if so, whether their parameter ranges overlap, returning the two
// inner endpoints of the overlap.
func parallelLineOverlap(a, b Segment, d1 Point) ([]Point, IntersectFlag) {
	w := b.start.Sub(a.start)
	if math.Abs(w.Cross2D(d1)) > 1e-6*math.Max(1, d1.Dot(d1)) {
		return nil, None // parallel but not collinear
	}

	// Project all four endpoints onto the direction d1 to find the
	// overlap interval.
	denom := d1.Dot(d1)
	proj := func(p Point) float64 { return p.Sub(a.start).Dot(d1) / denom }

	ta0, ta1 := 0.0, 1.0
	tb0, tb1 := proj(b.start), proj(b.end)
	if tb0 > tb1 {
		tb0, tb1 = tb1, tb0
	}

	lo := math.Max(ta0, tb0)
	hi := math.Min(ta1, tb1)
	if lo > hi+1e-9 {
		return nil, None
	}

	p0 := a.start.Add(d1.Scale(lo))
	p1 := a.start.Add(d1.Scale(hi))
	if PointMatches(p0, p1, Epsilon) {
		return []Point{p0}, None
	}
	return []Point{p0, p1}, EdgeOverlap
}
