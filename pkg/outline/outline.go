package outline

import (
	"github.com/pcbkernel/iges/pkg/geom"
)

// State is the outline's lifecycle stage.
type State int

const (
	// Open accepts AddSegment calls; no boolean operation or query is
	// permitted yet.
	Open State = iota
	// Closed has a validated cyclic chain with orientation and bounding
	// box computed; boolean operations and queries are permitted, and
	// the chain may still gain nested holes.
	Closed
	// Finalized is terminal: read-only, no further mutation of any kind.
	Finalized
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Orientation is the traversal direction of a closed chain.
type Orientation int

const (
	CCW Orientation = iota
	CW
)

func (o Orientation) String() string {
	if o == CW {
		return "cw"
	}
	return "ccw"
}

// Outline is a closed, oriented chain of segments: the planar unit of
// boolean composition. A zero-value Outline is not usable; construct with
// New.
type Outline struct {
	segments    []geom.Segment
	state       State
	orientation Orientation
	bbox        geom.Box

	// holes are nested outlines fully contained within this one, with
	// reversed orientation (except a single-Circle hole, which stays CCW;
	// see asHole), produced by a zero-intersection Subtract.
	// They carry through to extrusion as additional trim boundaries.
	holes []*Outline
}

// New returns an empty Outline in the Open state, ready for AddSegment.
func New() *Outline {
	return &Outline{state: Open}
}

// Segments returns the chain's segments in traversal order. The returned
// slice must not be mutated.
func (o *Outline) Segments() []geom.Segment { return o.segments }

// State returns the outline's lifecycle stage.
func (o *Outline) State() State { return o.state }

// Orientation returns the outline's traversal direction. Valid only once
// the outline is Closed or Finalized.
func (o *Outline) Orientation() Orientation { return o.orientation }

// Bounds returns the outline's cached bounding box. Valid only once the
// outline is Closed or Finalized.
func (o *Outline) Bounds() geom.Box { return o.bbox }

// Holes returns the nested inner outlines registered by a prior Subtract.
func (o *Outline) Holes() []*Outline { return o.holes }

// AddSegment appends seg to the open end of the chain. The first segment
// may start anywhere; every subsequent segment's Start must meet the
// chain's current End within geom.Epsilon.
func (o *Outline) AddSegment(seg geom.Segment) error {
	if o.state != Open {
		return errWrap(ErrWrongState, "AddSegment")
	}
	if len(o.segments) > 0 {
		last := o.segments[len(o.segments)-1]
		if !last.End().Equal(seg.Start()) {
			return errWrap(ErrDiscontinuous, "AddSegment")
		}
	}
	o.segments = append(o.segments, seg)
	return nil
}

// Close validates that the chain is cyclic, computes orientation and the
// bounding box, and transitions to Closed.
func (o *Outline) Close() error {
	if o.state != Open {
		return errWrap(ErrWrongState, "Close")
	}
	if len(o.segments) == 0 {
		return errWrap(ErrEmptyOutline, "Close")
	}
	first := o.segments[0]
	last := o.segments[len(o.segments)-1]
	if !last.End().Equal(first.Start()) {
		return errWrap(ErrNotClosed, "Close")
	}

	o.orientation = computeOrientation(o.segments)
	o.bbox = computeBounds(o.segments)
	o.state = Closed
	return nil
}

// Finalize transitions a Closed outline to Finalized, after which it may
// only be read.
func (o *Outline) Finalize() error {
	if o.state != Closed {
		return errWrap(ErrWrongState, "Finalize")
	}
	o.state = Finalized
	return nil
}

// computeOrientation applies the shoelace formula over a sample polyline
// derived from the chain. A straight chord between a curved segment's
// endpoints is a poor proxy for which side of the chord the segment
// actually bulges toward, so every Arc contributes its own Midpoint as an
// extra sample and every Circle contributes four quadrant samples — this
// is the arc-midpoint-sampling fix the source flags as an open question.
func computeOrientation(segs []geom.Segment) Orientation {
	pts := samplePolyline(segs)

	var sum float64
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}

	if sum > 0 {
		return CCW
	}
	return CW
}

// samplePolyline flattens a segment chain into a point sequence suitable
// for shoelace-style area/orientation math.
func samplePolyline(segs []geom.Segment) []geom.Point {
	var pts []geom.Point
	for _, seg := range segs {
		pts = append(pts, seg.Start())
		switch seg.Kind() {
		case geom.Arc:
			pts = append(pts, seg.Midpoint())
		case geom.Circle:
			pts = append(pts, quadrantSamples(seg)...)
		}
	}
	return pts
}

// quadrantSamples returns four points evenly spaced around a full-circle
// segment, used only for orientation/area sampling (a circle traversed as
// a single segment has no other interior samples to offer).
func quadrantSamples(seg geom.Segment) []geom.Point {
	c := seg.Center()
	r := seg.Radius()
	return []geom.Point{
		{X: c.X + r, Y: c.Y},
		{X: c.X, Y: c.Y + r},
		{X: c.X - r, Y: c.Y},
		{X: c.X, Y: c.Y - r},
	}
}

// computeBounds unions the bounding box of every segment in the chain.
func computeBounds(segs []geom.Segment) geom.Box {
	box := segs[0].Bounds()
	for _, seg := range segs[1:] {
		box = box.Union(seg.Bounds())
	}
	return box
}
