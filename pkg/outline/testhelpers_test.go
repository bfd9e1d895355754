package outline

import (
	"testing"

	"github.com/pcbkernel/iges/pkg/geom"
)

// rectOutline builds a CCW axis-aligned rectangle outline.
func rectOutline(t *testing.T, x0, y0, x1, y1 float64) *Outline {
	t.Helper()
	pts := []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
	o := New()
	for i := range pts {
		seg, err := geom.NewLine(pts[i], pts[(i+1)%len(pts)])
		if err != nil {
			t.Fatalf("NewLine: %v", err)
		}
		if err := o.AddSegment(seg); err != nil {
			t.Fatalf("AddSegment: %v", err)
		}
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return o
}

// semicircleOutline builds an outline consisting of an upward-bulging arc
// from (rightX,y) to (leftX,y) plus a closing base line back across the
// diameter.
func semicircleOutline(t *testing.T, leftX, rightX, y float64) *Outline {
	t.Helper()
	center := geom.Point{X: (leftX + rightX) / 2, Y: y}
	arcStart := geom.Point{X: rightX, Y: y}
	arcEnd := geom.Point{X: leftX, Y: y}

	arc, err := geom.NewArc(center, arcStart, arcEnd, false)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	base, err := geom.NewLine(arcEnd, arcStart)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	o := New()
	if err := o.AddSegment(arc); err != nil {
		t.Fatalf("AddSegment(arc): %v", err)
	}
	if err := o.AddSegment(base); err != nil {
		t.Fatalf("AddSegment(base): %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return o
}
