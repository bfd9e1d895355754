package outline

import (
	"math"

	"github.com/pcbkernel/iges/pkg/geom"
)

// IsPointInside reports whether p lies within the outline's interior,
// treating any registered holes as cut out (even-odd fill rule across the
// outer chain and every hole chain together). Valid once the outline is
// Closed or Finalized.
func (o *Outline) IsPointInside(p geom.Point) bool {
	crossings := countCrossings(o.segments, p)
	for _, hole := range o.holes {
		crossings += countCrossings(hole.segments, p)
	}
	return crossings%2 == 1
}

// countCrossings counts how many times a horizontal ray cast from p in the
// +X direction crosses segs, applying a half-open-interval tie-break on
// Line segments (so a ray passing exactly through a shared vertex of two
// adjacent lines counts that vertex once, not twice) and a direct
// intersection count against curved segments.
func countCrossings(segs []geom.Segment, p geom.Point) int {
	farX := p.X
	for _, seg := range segs {
		b := seg.Bounds()
		if b.Max.X > farX {
			farX = b.Max.X
		}
	}
	farX += 1 // guaranteed beyond every segment's extent and beyond p itself

	count := 0
	for _, seg := range segs {
		switch seg.Kind() {
		case geom.Line:
			if lineCrossesRay(seg, p) {
				count++
			}
		default:
			count += curveCrossesRay(seg, p, farX)
		}
	}
	return count
}

// lineCrossesRay applies the standard half-open-interval edge test: a ray
// cast in +X from p crosses a line segment when p.Y lies in the segment's
// Y range (lower endpoint inclusive, upper endpoint exclusive, whatever
// the traversal direction) and the crossing's X coordinate exceeds p.X.
func lineCrossesRay(seg geom.Segment, p geom.Point) bool {
	a, b := seg.Start(), seg.End()
	if (a.Y <= p.Y && b.Y > p.Y) || (b.Y <= p.Y && a.Y > p.Y) {
		t := (p.Y - a.Y) / (b.Y - a.Y)
		x := a.X + t*(b.X-a.X)
		return x > p.X
	}
	return false
}

// curveCrossesRay counts intersections of an Arc/Circle with the
// horizontal ray from p, by constructing the ray as a finite line out to
// farX and filtering to points strictly right of p.
func curveCrossesRay(seg geom.Segment, p geom.Point, farX float64) int {
	ray, err := geom.NewLine(p, geom.Point{X: farX, Y: p.Y})
	if err != nil {
		return 0
	}
	pts, flag := seg.Intersect(ray)
	if flag != geom.None {
		return 0
	}
	n := 0
	for _, pt := range pts {
		if pt.X > p.X+1e-9 && math.Abs(pt.Y-p.Y) < 1e-6 {
			n++
		}
	}
	return n
}
