package sdfx

import (
	"math"
	"testing"

	"github.com/pcbkernel/iges/pkg/kernel"
)

func squarePrism(t *testing.T, k *SdfxKernel, side, height float64) kernel.Solid {
	t.Helper()
	poly := [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}}
	s, err := k.Extrude(poly, height)
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	return s
}

func TestExtrude(t *testing.T) {
	k := New()
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	s, err := k.Extrude(square, 5)
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("extrusion mesh is empty")
	}
	min, max := s.BoundingBox()
	const tol = 0.5
	if math.Abs(max[2]-min[2]-5) > tol {
		t.Errorf("extrusion height = %f, want ~5", max[2]-min[2])
	}
	if math.Abs(min[0]) > tol || math.Abs(max[0]-10) > tol {
		t.Errorf("extrusion X bounds = [%f, %f], want ~[0, 10]", min[0], max[0])
	}
}

func TestExtrudeRejectsDegeneratePolygon(t *testing.T) {
	k := New()
	_, err := k.Extrude([][2]float64{{0, 0}, {1, 0}}, 5)
	if err == nil {
		t.Fatal("expected error for a 2-point polygon")
	}
}

func TestDifference(t *testing.T) {
	k := New()

	base, err := k.Extrude([][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, 10)
	if err != nil {
		t.Fatalf("Extrude(base): %v", err)
	}
	baseMesh, err := k.ToMesh(base)
	if err != nil {
		t.Fatalf("ToMesh(base): %v", err)
	}

	hole, err := k.Extrude([][2]float64{{40, 40}, {60, 40}, {60, 60}, {40, 60}}, 10)
	if err != nil {
		t.Fatalf("Extrude(hole): %v", err)
	}

	diff := k.Difference(base, hole)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff): %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A board prism with a hole cut through it has more triangles than
	// the plain prism.
	if diffMesh.TriangleCount() <= baseMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than base (%d triangles)",
			diffMesh.TriangleCount(), baseMesh.TriangleCount())
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	square := squarePrism(t, k, 10, 10)
	translated := k.Translate(square, 100, 200, 300)

	min, max := translated.BoundingBox()

	// squarePrism spans [0,10] in X and Y, [0,10] in Z before the
	// translate; shifting by (100,200,300) should move it to
	// [100,110], [200,210], [300,310].
	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}
