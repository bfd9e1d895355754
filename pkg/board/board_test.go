package board

import (
	"testing"

	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/iges"
	"github.com/pcbkernel/iges/pkg/kernel"
	"github.com/pcbkernel/iges/pkg/outline"
)

func rectOutline(t *testing.T, x0, y0, x1, y1 float64) *outline.Outline {
	t.Helper()
	pts := []geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
	o := outline.New()
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

// boardWithHole builds the S4 scenario: a 100x50 rectangle with a
// circular hole fully inside it, finalized and ready for New.
func boardWithHole(t *testing.T) *outline.Outline {
	t.Helper()
	rect := rectOutline(t, 0, 0, 100, 50)
	withHole, err := rect.SubtractCircle(geom.Point{X: 50, Y: 25}, 10)
	if err != nil {
		t.Fatalf("SubtractCircle: %v", err)
	}
	if err := withHole.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return withHole
}

func TestNewRejectsUnfinalizedOutline(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	if _, err := New(rect, 0, 1.6); err != ErrNotFinalized {
		t.Fatalf("got %v, want ErrNotFinalized", err)
	}
}

func TestNewRejectsNonPositiveThickness(t *testing.T) {
	o := boardWithHole(t)
	if _, err := New(o, 1.6, 1.6); err == nil {
		t.Fatal("expected error for botZ == topZ")
	}
	if _, err := New(o, 1.6, 0); err == nil {
		t.Fatal("expected error for topZ < botZ")
	}
}

func TestBuildProducesCapsAndPanels(t *testing.T) {
	o := boardWithHole(t)
	b, err := New(o, 0, 1.6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.RunID.String() == "" {
		t.Error("RunID should be populated")
	}

	result, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.TopCap == nil || result.BottomCap == nil {
		t.Fatal("expected both caps to be built")
	}
	// Four rectangle walls plus one cylindrical wall for the hole.
	if len(result.SidePanels) != 5 {
		t.Fatalf("got %d side panels, want 5", len(result.SidePanels))
	}

	if len(result.TopCap.InnerBoundaries()) != 1 {
		t.Errorf("top cap should have 1 inner boundary for the hole, got %d", len(result.TopCap.InnerBoundaries()))
	}

	foundCylindrical := false
	for _, panel := range result.SidePanels {
		surf := panel.Surface()
		if _, ok := surf.(*iges.CylindricalSurface192); ok {
			foundCylindrical = true
		}
	}
	if !foundCylindrical {
		t.Error("expected one side panel backed by a CylindricalSurface192 for the hole wall")
	}

	if got := len(result.Model.GetEntitiesByType(iges.TypeTrimmedSurface144)); got != 7 {
		t.Errorf("got %d TrimmedSurface144 entities registered in the model, want 7 (2 caps + 5 walls)", got)
	}
}

type stubKernel struct {
	extrudeCalls int
	diffCalls    int
}

type stubSolid struct {
	min, max [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) { return s.min, s.max }

func (k *stubKernel) Extrude(poly [][2]float64, height float64) (kernel.Solid, error) {
	k.extrudeCalls++
	minX, minY := poly[0][0], poly[0][1]
	maxX, maxY := poly[0][0], poly[0][1]
	for _, p := range poly {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return &stubSolid{min: [3]float64{minX, minY, 0}, max: [3]float64{maxX, maxY, height}}, nil
}

func (k *stubKernel) Difference(a, b kernel.Solid) kernel.Solid {
	k.diffCalls++
	return a
}

func (k *stubKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	ss := s.(*stubSolid)
	return &stubSolid{
		min: [3]float64{ss.min[0] + x, ss.min[1] + y, ss.min[2] + z},
		max: [3]float64{ss.max[0] + x, ss.max[1] + y, ss.max[2] + z},
	}
}

func (k *stubKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	ss := s.(*stubSolid)
	return &kernel.Mesh{
		Vertices: []float32{
			float32(ss.min[0]), float32(ss.min[1]), float32(ss.min[2]),
			float32(ss.max[0]), float32(ss.max[1]), float32(ss.max[2]),
		},
	}, nil
}

func TestPreviewMeshExtrudesOutlineAndCutsHole(t *testing.T) {
	o := boardWithHole(t)
	b, err := New(o, 0, 1.6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	k := &stubKernel{}
	mesh, err := b.PreviewMesh(k, 4)
	if err != nil {
		t.Fatalf("PreviewMesh: %v", err)
	}
	if mesh == nil || len(mesh.Vertices) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	if k.extrudeCalls != 2 {
		t.Errorf("got %d Extrude calls, want 2 (outline + 1 hole)", k.extrudeCalls)
	}
	if k.diffCalls != 1 {
		t.Errorf("got %d Difference calls, want 1", k.diffCalls)
	}
}

func TestPreviewMeshRejectsUnfinalizedOutline(t *testing.T) {
	rect := rectOutline(t, 0, 0, 100, 50)
	b := &Board{Outline: rect, BotZ: 0, TopZ: 1.6}
	if _, err := b.PreviewMesh(&stubKernel{}, 4); err != ErrNotFinalized {
		t.Fatalf("got %v, want ErrNotFinalized", err)
	}
}

func TestTessellateChainChordsCircle(t *testing.T) {
	circle, err := geom.NewArc(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 0}, false)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	pts := tessellateChain([]geom.Segment{circle}, 4)
	if len(pts) != 16 {
		t.Fatalf("got %d points for a full circle at 4 segments/quarter, want 16", len(pts))
	}
}
