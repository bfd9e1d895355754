package outline

import (
	"github.com/dhconnelly/rtreego"
	"github.com/pcbkernel/iges/pkg/geom"
)

// Subtract removes other from self: a cutout if they cross at exactly two
// points, a new nested hole if other lies entirely inside self with no
// crossing. self and other must both be Closed or Finalized.
func (self *Outline) Subtract(other *Outline) (*Outline, error) {
	return self.boolOp(other, true)
}

// Add merges other into self at exactly two crossing points, or is a
// no-op if other lies entirely outside self. self and other must both be
// Closed or Finalized.
func (self *Outline) Add(other *Outline) (*Outline, error) {
	return self.boolOp(other, false)
}

// SubtractCircle is a convenience wrapper building a one-segment circular
// Outline and subtracting it.
func (self *Outline) SubtractCircle(center geom.Point, radius float64) (*Outline, error) {
	circle, err := circleOutline(center, radius)
	if err != nil {
		return nil, err
	}
	return self.Subtract(circle)
}

// AddCircle is the Add counterpart of SubtractCircle.
func (self *Outline) AddCircle(center geom.Point, radius float64) (*Outline, error) {
	circle, err := circleOutline(center, radius)
	if err != nil {
		return nil, err
	}
	return self.Add(circle)
}

func circleOutline(center geom.Point, radius float64) (*Outline, error) {
	edge := center.Add(geom.Point{X: radius})
	seg, err := geom.NewArc(center, edge, edge, false)
	if err != nil {
		return nil, err
	}
	o := New()
	if err := o.AddSegment(seg); err != nil {
		return nil, err
	}
	if err := o.Close(); err != nil {
		return nil, err
	}
	return o, nil
}

func (self *Outline) boolOp(other *Outline, isSubtract bool) (*Outline, error) {
	if self.state == Open {
		return nil, errWrap(ErrWrongState, "boolean operation on an Open outline")
	}
	if other.state == Open {
		return nil, errWrap(ErrWrongState, "boolean operation against an Open outline")
	}

	pts, blocked := findIntersections(self, other)
	if blocked {
		return nil, errWrap(ErrInvalidIntersection, "segments touch tangentially or overlap along an edge")
	}

	switch len(pts) {
	case 0:
		return self.boolOpZero(other, isSubtract)
	case 2:
		return self.boolOpTwo(other, pts[0], pts[1], isSubtract)
	default:
		return nil, errWrap(ErrInvalidIntersection, "intersection count is not 0 or 2")
	}
}

func (self *Outline) boolOpZero(other *Outline, isSubtract bool) (*Outline, error) {
	contained := self.IsPointInside(other.segments[0].Start())

	if isSubtract {
		if !contained {
			return nil, errWrap(ErrInvalidIntersection, "subtract operand does not intersect and is not contained")
		}
		hole, err := asHole(self, other)
		if err != nil {
			return nil, err
		}
		result := self.clone()
		result.holes = append(result.holes, hole)
		return result, nil
	}

	if contained {
		return nil, errWrap(ErrInvalidIntersection, "add operand is entirely inside self, producing disjoint bodies")
	}
	return self.clone(), nil
}

func (self *Outline) boolOpTwo(other *Outline, p1, p2 geom.Point, isSubtract bool) (*Outline, error) {
	selfA, selfB, err := cutChain(self.segments, p1, p2)
	if err != nil {
		return nil, err
	}
	otherA, otherB, err := cutChain(other.segments, p1, p2)
	if err != nil {
		return nil, err
	}

	selfOutside, _ := classifyChains(selfA, selfB, other)
	otherOutside, otherInside := classifyChains(otherA, otherB, self)

	var combined []geom.Segment
	if isSubtract {
		revInside, err := reverseChain(otherInside)
		if err != nil {
			return nil, err
		}
		combined = append(append(combined, selfOutside...), revInside...)
	} else {
		combined = append(append(combined, selfOutside...), otherOutside...)
	}

	result := New()
	for _, seg := range combined {
		if err := result.AddSegment(seg); err != nil {
			return nil, err
		}
	}
	if err := result.Close(); err != nil {
		return nil, err
	}
	result.orientation = self.orientation
	result.holes = append(result.holes, self.holes...)
	if !isSubtract {
		result.holes = append(result.holes, other.holes...)
	}
	return result, nil
}

// classifyChains sorts the two complementary halves of a cut chain into
// (outside, inside) relative to reference, by sampling a point from each.
func classifyChains(a, b []geom.Segment, reference *Outline) (outside, inside []geom.Segment) {
	sampleA := chainSample(a)
	if reference.IsPointInside(sampleA) {
		return b, a
	}
	return a, b
}

func chainSample(chain []geom.Segment) geom.Point {
	return chain[len(chain)/2].Midpoint()
}

func (o *Outline) clone() *Outline {
	holes := make([]*Outline, len(o.holes))
	copy(holes, o.holes)
	return &Outline{
		segments:    o.segments,
		state:       o.state,
		orientation: o.orientation,
		bbox:        o.bbox,
		holes:       holes,
	}
}

// asHole prepares candidate as a nested hole of outer: if its natural
// winding matches outer's, the chain is reversed so the hole winds the
// opposite way, the conventional CAD representation of a cutout. A chain
// that is a single full Circle comes back from reverseChain unchanged, so
// such a hole keeps its CCW winding even when outer is CCW.
func asHole(outer, candidate *Outline) (*Outline, error) {
	if candidate.orientation != outer.orientation {
		return candidate.clone(), nil
	}
	reversed, err := reverseChain(candidate.segments)
	if err != nil {
		return nil, err
	}
	return &Outline{
		segments:    reversed,
		state:       Closed,
		orientation: computeOrientation(reversed),
		bbox:        candidate.bbox,
	}, nil
}

// segSpatial adapts a geom.Segment's bounding box to rtreego.Spatial so a
// tree of one outline's segments can be queried against the other's.
type segSpatial struct {
	seg  geom.Segment
	rect rtreego.Rect
}

func (s *segSpatial) Bounds() rtreego.Rect { return s.rect }

func boxToRect(b geom.Box) rtreego.Rect {
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	if w <= 0 {
		w = 1e-6
	}
	if h <= 0 {
		h = 1e-6
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y}, []float64{w, h})
	return rect
}

func buildSegmentIndex(segs []geom.Segment) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 5, 20)
	for _, seg := range segs {
		tree.Insert(&segSpatial{seg: seg, rect: boxToRect(seg.Bounds())})
	}
	return tree
}

// findIntersections returns every unique point at which self's chain
// crosses other's chain, pruning candidate segment pairs with an R-tree
// over other's segment bounding boxes, and reports blocked = true if any
// pair touches tangentially, coincides, or overlaps along an edge — any
// of which disqualifies a clean 0-or-2-point boolean operation.
func findIntersections(self, other *Outline) (points []geom.Point, blocked bool) {
	tree := buildSegmentIndex(other.segments)

	for _, segA := range self.segments {
		candidates := tree.SearchIntersect(boxToRect(segA.Bounds()))
		for _, c := range candidates {
			segB := c.(*segSpatial).seg
			pts, flag := segA.Intersect(segB)
			switch flag {
			case geom.None:
				for _, p := range pts {
					points = appendUniquePoint(points, p)
				}
			case geom.Tangent, geom.Coincident, geom.EdgeOverlap:
				blocked = true
			}
		}
	}
	return points, blocked
}

func appendUniquePoint(points []geom.Point, p geom.Point) []geom.Point {
	for _, q := range points {
		if p.Equal(q) {
			return points
		}
	}
	return append(points, p)
}
