package outline

import (
	"math"

	"github.com/pcbkernel/iges/pkg/geom"
)

// errSkipSegment marks a degenerate sub-segment (zero length) that should
// simply be omitted from a split chain rather than treated as a failure.
type errSkipSegment struct{}

func (errSkipSegment) Error() string { return "degenerate sub-segment, skip" }

var skipSegment = errSkipSegment{}

// segmentContainsPoint reports whether p lies on seg's curve within
// tolerance (not merely within its bounding box).
func segmentContainsPoint(seg geom.Segment, p geom.Point) bool {
	switch seg.Kind() {
	case geom.Line:
		start, end := seg.Start(), seg.End()
		chord := end.Sub(start)
		toP := p.Sub(start)
		cross := chord.Cross2D(toP)
		if math.Abs(cross) > 1e-6*math.Max(1, chord.Dot(chord)) {
			return false
		}
		t := toP.Dot(chord) / chord.Dot(chord)
		return t >= -1e-9 && t <= 1+1e-9
	default: // Arc, Circle
		if math.Abs(p.Distance(seg.Center())-seg.Radius()) > geom.ArcRadialTolerance {
			return false
		}
		if seg.Kind() == geom.Circle {
			return true
		}
		ang := math.Atan2(p.Y-seg.Center().Y, p.X-seg.Center().X)
		return segAngularContains(seg, ang)
	}
}

func segAngularContains(seg geom.Segment, ang float64) bool {
	start := seg.StartAngle()
	if ang < start {
		ang += 2 * math.Pi
	}
	return ang >= start-1e-6 && ang <= seg.EndAngle()+1e-6
}

// subSegmentBetween returns the portion of seg running from `from` to
// `to`, both of which must lie on seg. Returns skipSegment if from and to
// coincide (nothing to contribute).
func subSegmentBetween(seg geom.Segment, from, to geom.Point) (geom.Segment, error) {
	if from.Equal(to) {
		return geom.Segment{}, skipSegment
	}
	switch seg.Kind() {
	case geom.Line:
		return geom.NewLine(from, to)
	default: // Arc, Circle treated as an Arc over the requested span
		return geom.NewArc(seg.Center(), from, to, seg.CW())
	}
}

// reverseSegment returns seg traversed in the opposite direction.
func reverseSegment(seg geom.Segment) (geom.Segment, error) {
	switch seg.Kind() {
	case geom.Line:
		return geom.NewLine(seg.End(), seg.Start())
	case geom.Circle:
		return seg, nil
	default:
		return geom.NewArc(seg.Center(), seg.End(), seg.Start(), !seg.CW())
	}
}

// reverseChain returns chain traversed in the opposite order and
// direction.
func reverseChain(chain []geom.Segment) ([]geom.Segment, error) {
	out := make([]geom.Segment, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		rev, err := reverseSegment(chain[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, nil
}

// insertSplitPoint returns segs with p inserted as an explicit vertex: if
// p already coincides with some segment's Start (equivalently, the prior
// segment's End), segs is returned unchanged; otherwise the one segment
// whose curve contains p is replaced by its two sub-segments split at p.
//
// A full Circle is not a special case here: splitting it once still
// leaves a single closed curve (now expressed as two arcs sharing the
// circle's canonical start point as an extra vertex), which a second
// insertSplitPoint call then splits again normally.
func insertSplitPoint(segs []geom.Segment, p geom.Point) ([]geom.Segment, error) {
	for _, seg := range segs {
		if seg.Start().Equal(p) {
			return segs, nil
		}
	}

	for i, seg := range segs {
		if !segmentContainsPoint(seg, p) {
			continue
		}
		if seg.End().Equal(p) {
			return segs, nil
		}

		before, errBefore := subSegmentBetween(seg, seg.Start(), p)
		if errBefore != nil && errBefore != skipSegment {
			return nil, errBefore
		}
		after, errAfter := subSegmentBetween(seg, p, seg.End())
		if errAfter != nil && errAfter != skipSegment {
			return nil, errAfter
		}

		out := make([]geom.Segment, 0, len(segs)+1)
		out = append(out, segs[:i]...)
		if errBefore != skipSegment {
			out = append(out, before)
		}
		if errAfter != skipSegment {
			out = append(out, after)
		}
		out = append(out, segs[i+1:]...)
		return out, nil
	}

	return nil, errWrap(ErrInvalidIntersection, "split point does not lie on chain")
}

func indexOfVertex(segs []geom.Segment, p geom.Point) int {
	for i, seg := range segs {
		if seg.Start().Equal(p) {
			return i
		}
	}
	return -1
}

// cyclicSlice returns the segments starting at index from up to (not
// including) index to, wrapping around the end of segs.
func cyclicSlice(segs []geom.Segment, from, to int) []geom.Segment {
	n := len(segs)
	var out []geom.Segment
	for i := from; i != to; i = (i + 1) % n {
		out = append(out, segs[i])
	}
	return out
}

// cutChain splits a closed chain at two points that must each lie on the
// chain, returning the two complementary sub-chains p1→p2 and p2→p1, each
// running forward in the chain's original traversal direction.
func cutChain(segs []geom.Segment, p1, p2 geom.Point) (chainA, chainB []geom.Segment, err error) {
	split, err := insertSplitPoint(segs, p1)
	if err != nil {
		return nil, nil, err
	}
	split, err = insertSplitPoint(split, p2)
	if err != nil {
		return nil, nil, err
	}

	idx1 := indexOfVertex(split, p1)
	idx2 := indexOfVertex(split, p2)
	if idx1 < 0 || idx2 < 0 || idx1 == idx2 {
		return nil, nil, errWrap(ErrInvalidIntersection, "could not locate split points on chain")
	}

	chainA = cyclicSlice(split, idx1, idx2)
	chainB = cyclicSlice(split, idx2, idx1)
	if len(chainA) == 0 || len(chainB) == 0 {
		return nil, nil, errWrap(ErrInvalidIntersection, "split produced an empty chain")
	}
	return chainA, chainB, nil
}
