package outline

import (
	"testing"

	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pkg/errors"
)

// S4: rectangle minus a circular hole fully inside it.
func TestSubtractCircleFullyInside(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)

	result, err := rect.SubtractCircle(geom.Point{X: 50, Y: 25}, 10)
	if err != nil {
		t.Fatalf("SubtractCircle: %v", err)
	}
	if len(result.Holes()) != 1 {
		t.Fatalf("got %d holes, want 1", len(result.Holes()))
	}
	if result.IsPointInside(geom.Point{X: 50, Y: 25}) {
		t.Error("hole center should read as outside")
	}
	if !result.IsPointInside(geom.Point{X: 5, Y: 5}) {
		t.Error("point away from the hole should read as inside")
	}
}

func TestAddCircleFullyInsideIsInvalid(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	_, err := rect.AddCircle(geom.Point{X: 50, Y: 25}, 10)
	if !errors.Is(err, ErrInvalidIntersection) {
		t.Fatalf("got %v, want ErrInvalidIntersection", err)
	}
}

func TestSubtractCircleFullyOutsideIsInvalid(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	_, err := rect.SubtractCircle(geom.Point{X: 500, Y: 500}, 10)
	if !errors.Is(err, ErrInvalidIntersection) {
		t.Fatalf("got %v, want ErrInvalidIntersection", err)
	}
}

func TestAddCircleFullyOutsideIsNoOp(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	result, err := rect.AddCircle(geom.Point{X: 500, Y: 500}, 10)
	if err != nil {
		t.Fatalf("AddCircle: %v", err)
	}
	if result.Bounds() != rect.Bounds() {
		t.Errorf("no-op add changed bounds: %+v vs %+v", result.Bounds(), rect.Bounds())
	}
}

// S5, first variant: the semicircle's closing base line exactly overlaps
// part of the rectangle's top edge, an edge overlap that must be
// rejected regardless of the clean two-point arc crossing.
func TestSubtractSemicircleEdgeOverlapRejected(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	semi := semicircleOutline(t, 40, 60, 50)

	_, err := rect.Subtract(semi)
	if !errors.Is(err, ErrInvalidIntersection) {
		t.Fatalf("got %v, want ErrInvalidIntersection", err)
	}
}

// S5, second variant: translated down so only the arc crosses the top
// edge, at exactly two interior points.
func TestSubtractSemicirclePenetratingSucceeds(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	semi := semicircleOutline(t, 40, 60, 45)

	result, err := rect.Subtract(semi)
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}
	if result.State() != Closed {
		t.Fatalf("State = %v, want Closed", result.State())
	}
	// The notch removes the region above the semicircle's arc within the
	// rectangle: a point directly under the arc's peak, close to the top
	// edge, should now read as outside.
	if result.IsPointInside(geom.Point{X: 50, Y: 49}) {
		t.Error("point under the arc's peak should now be outside")
	}
	// A point far from the notch should still read as inside.
	if !result.IsPointInside(geom.Point{X: 5, Y: 5}) {
		t.Error("point away from the notch should still be inside")
	}
}

// Invariant 6: add(other).subtract(other) reproduces the original
// outline's interior when other has exactly two intersections and lies
// partly outside self.
func TestAddSubtractRoundTrip(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	other := rectOutline(t, 90, 10, 120, 40)

	added, err := rect.Add(other)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	roundTrip, err := added.Subtract(other)
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}

	samples := []geom.Point{
		{X: 50, Y: 25}, {X: 5, Y: 5}, {X: 95, Y: 45},
		{X: 95, Y: 5}, {X: 95, Y: 25}, {X: 150, Y: 150},
	}
	for _, p := range samples {
		want := rect.IsPointInside(p)
		got := roundTrip.IsPointInside(p)
		if got != want {
			t.Errorf("IsPointInside(%v) = %v, want %v", p, got, want)
		}
	}
}
