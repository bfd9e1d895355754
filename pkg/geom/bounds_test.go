package geom

import "testing"

func TestBoundsLine(t *testing.T) {
	seg, _ := NewLine(Point{X: -1, Y: 2}, Point{X: 3, Y: -4})
	box := seg.Bounds()
	if !box.Min.Equal(Point{X: -1, Y: -4}) || !box.Max.Equal(Point{X: 3, Y: 2}) {
		t.Errorf("Bounds = %+v", box)
	}
}

func TestBoundsCircle(t *testing.T) {
	seg, _ := NewArc(Point{X: 1, Y: 1}, Point{X: 4, Y: 1}, Point{X: 4, Y: 1}, false)
	box := seg.Bounds()
	if !box.Min.Equal(Point{X: -2, Y: -2}) || !box.Max.Equal(Point{X: 4, Y: 4}) {
		t.Errorf("Bounds = %+v", box)
	}
}

func TestBoundsArcIncludesExtremum(t *testing.T) {
	// Arc from (1,0) to (-1,0) the short way through (0,1) must include
	// the top extremum at (0,1), not just its chord endpoints.
	center := Point{X: 0, Y: 0}
	seg, _ := NewArc(center, Point{X: 1, Y: 0}, Point{X: -1, Y: 0}, false)
	box := seg.Bounds()
	if box.Max.Y < 0.999 {
		t.Errorf("Bounds %+v does not include top extremum", box)
	}
}

func TestBoundsArcExcludesExtremumOutsideSpan(t *testing.T) {
	// Arc confined to the lower-right quadrant must not report the top
	// extremum (0, r) as part of its box.
	center := Point{X: 0, Y: 0}
	seg, _ := NewArc(center, Point{X: 1, Y: 0}, Point{X: 0, Y: -1}, true)
	box := seg.Bounds()
	if box.Max.Y > 1e-9 {
		t.Errorf("Bounds %+v should not include the top extremum", box)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 10}}
	if !b.Contains(Point{X: 5, Y: 5}) {
		t.Error("expected (5,5) to be contained")
	}
	if b.Contains(Point{X: 11, Y: 5}) {
		t.Error("expected (11,5) to be outside")
	}
}
