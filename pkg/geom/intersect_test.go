package geom

import "testing"

// S1: two lines crossing at right angles.
func TestIntersectLinesOrthogonalCross(t *testing.T) {
	a, _ := NewLine(Point{X: -1, Y: 0}, Point{X: 1, Y: 0})
	b, _ := NewLine(Point{X: 0, Y: -1}, Point{X: 0, Y: 1})

	pts, flag := a.Intersect(b)
	if flag != None {
		t.Fatalf("flag = %v, want None", flag)
	}
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	if !pts[0].Equal(Point{X: 0, Y: 0}) {
		t.Errorf("intersection = %v, want origin", pts[0])
	}
}

func TestIntersectLinesParallelNoOverlap(t *testing.T) {
	a, _ := NewLine(Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
	b, _ := NewLine(Point{X: 0, Y: 1}, Point{X: 1, Y: 1})

	pts, flag := a.Intersect(b)
	if flag != None || pts != nil {
		t.Fatalf("got pts=%v flag=%v, want none/None", pts, flag)
	}
}

func TestIntersectLinesCollinearOverlap(t *testing.T) {
	a, _ := NewLine(Point{X: 0, Y: 0}, Point{X: 2, Y: 0})
	b, _ := NewLine(Point{X: 1, Y: 0}, Point{X: 3, Y: 0})

	pts, flag := a.Intersect(b)
	if flag != EdgeOverlap {
		t.Fatalf("flag = %v, want EdgeOverlap", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
}

// S2: two circles tangent at a single point.
func TestIntersectCirclesTangent(t *testing.T) {
	a, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 0}, false)
	b, _ := NewArc(Point{X: 2, Y: 0}, Point{X: 3, Y: 0}, Point{X: 3, Y: 0}, false)

	_, flag := a.Intersect(b)
	if flag != Tangent {
		t.Fatalf("flag = %v, want Tangent", flag)
	}
}

// S3: concentric circles, one strictly inside the other.
func TestIntersectCirclesConcentricNested(t *testing.T) {
	a, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 0}, false)
	b, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 3, Y: 0}, Point{X: 3, Y: 0}, false)

	_, flag := a.Intersect(b)
	if flag != SegmentInsideOther {
		t.Fatalf("flag = %v, want SegmentInsideOther", flag)
	}

	_, flag = b.Intersect(a)
	if flag != OtherInsideSegment {
		t.Fatalf("flag = %v, want OtherInsideSegment", flag)
	}
}

func TestIntersectCirclesTwoPoints(t *testing.T) {
	a, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 5, Y: 0}, Point{X: 5, Y: 0}, false)
	b, _ := NewArc(Point{X: 8, Y: 0}, Point{X: 13, Y: 0}, Point{X: 13, Y: 0}, false)

	pts, flag := a.Intersect(b)
	if flag != None {
		t.Fatalf("flag = %v, want None", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	for _, p := range pts {
		if d := p.Distance(Point{X: 0, Y: 0}); d < 4.999 || d > 5.001 {
			t.Errorf("point %v not on circle a (d=%v)", p, d)
		}
		if d := p.Distance(Point{X: 8, Y: 0}); d < 4.999 || d > 5.001 {
			t.Errorf("point %v not on circle b (d=%v)", p, d)
		}
	}
}

// Invariant: intersecting a circle with itself reports Coincident.
func TestIntersectSelfCircleCoincident(t *testing.T) {
	a, _ := NewArc(Point{X: 1, Y: 1}, Point{X: 4, Y: 1}, Point{X: 4, Y: 1}, false)
	_, flag := a.Intersect(a)
	if flag != Coincident {
		t.Fatalf("flag = %v, want Coincident", flag)
	}
}

// Invariant: intersection is order-independent up to point-set equality.
func TestIntersectSymmetric(t *testing.T) {
	a, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 5, Y: 0}, Point{X: 5, Y: 0}, false)
	b, _ := NewArc(Point{X: 8, Y: 0}, Point{X: 13, Y: 0}, Point{X: 13, Y: 0}, false)

	pts1, flag1 := a.Intersect(b)
	pts2, flag2 := b.Intersect(a)

	if flag1 != flag2 {
		t.Fatalf("flags differ: %v vs %v", flag1, flag2)
	}
	if len(pts1) != len(pts2) {
		t.Fatalf("point counts differ: %d vs %d", len(pts1), len(pts2))
	}
	for _, p := range pts1 {
		found := false
		for _, q := range pts2 {
			if p.Equal(q) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("point %v from a.Intersect(b) missing from b.Intersect(a)", p)
		}
	}
}

func TestIntersectArcLine(t *testing.T) {
	circle, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 0}, false)
	line, _ := NewLine(Point{X: -2, Y: 0}, Point{X: 2, Y: 0})

	pts, flag := circle.Intersect(line)
	if flag != None {
		t.Fatalf("flag = %v, want None", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
}

func TestIntersectArcLineMiss(t *testing.T) {
	circle, _ := NewArc(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 0}, false)
	line, _ := NewLine(Point{X: -2, Y: 5}, Point{X: 2, Y: 5})

	pts, flag := circle.Intersect(line)
	if flag != None || pts != nil {
		t.Fatalf("got pts=%v flag=%v, want none/None", pts, flag)
	}
}

func TestIntersectArcsSameCircleEnvelope(t *testing.T) {
	center := Point{X: 0, Y: 0}
	outer, _ := NewArc(center, Point{X: 1, Y: 0}, Point{X: -1, Y: 0}, false)
	inner, _ := NewArc(center, Point{X: 0.5, Y: 0.866}, Point{X: -0.5, Y: 0.866}, false)

	pts, flag := outer.Intersect(inner)
	if flag != EdgeOverlap {
		t.Fatalf("flag = %v, want EdgeOverlap", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
}
