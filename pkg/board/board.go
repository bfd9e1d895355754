package board

import (
	"log"

	"github.com/google/uuid"
	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/iges"
	"github.com/pcbkernel/iges/pkg/outline"
	"github.com/pkg/errors"
)

// Board wraps a finalized outline.Outline with the thickness a PCB
// extrusion needs, plus a RunID correlating every diagnostic this build
// session emits.
type Board struct {
	RunID uuid.UUID

	Outline    *outline.Outline
	BotZ, TopZ float64
}

// New wraps a Finalized outline for building. botZ must be less than topZ.
func New(o *outline.Outline, botZ, topZ float64) (*Board, error) {
	if o.State() != outline.Finalized {
		return nil, ErrNotFinalized
	}
	if topZ <= botZ {
		return nil, errors.Errorf("board: botZ (%g) must be less than topZ (%g)", botZ, topZ)
	}
	return &Board{
		RunID:   uuid.New(),
		Outline: o,
		BotZ:    botZ,
		TopZ:    topZ,
	}, nil
}

// Result collects the top-level entities Build produces, for a caller
// that wants to reference them directly (e.g. to add the model to a
// larger assembly) without re-scanning the model by type.
type Result struct {
	Model       *iges.Model
	TopCap      *iges.TrimmedSurface144
	BottomCap   *iges.TrimmedSurface144
	SidePanels  []*iges.TrimmedSurface144
}

// Build drives outline.ExtrudeToTrimmedSurfaces and wraps every resulting
// patch into the E100/E110 → E102 → E142 → E144 entity chain spec.md §4.2
// describes, wiring it all into a freshly created iges.Model.
func (b *Board) Build() (*Result, error) {
	ext := b.Outline.ExtrudeToTrimmedSurfaces(b.TopZ, b.BotZ)
	if len(ext.Sides) == 0 {
		return nil, ErrEmptyExtrusion
	}

	log.Printf("board %s: building %d side panels, outline bounds %+v", b.RunID, len(ext.Sides), b.Outline.Bounds())

	m := iges.NewModel()

	topCap, err := buildCap(m, ext.Top, 1)
	if err != nil {
		return nil, err
	}
	botCap, err := buildCap(m, ext.Bottom, -1)
	if err != nil {
		return nil, err
	}

	panels := make([]*iges.TrimmedSurface144, 0, len(ext.Sides))
	for _, side := range ext.Sides {
		panel, err := buildSidePanel(m, side)
		if err != nil {
			return nil, err
		}
		panels = append(panels, panel)
	}

	return &Result{
		Model:      m,
		TopCap:     topCap,
		BottomCap:  botCap,
		SidePanels: panels,
	}, nil
}

// curveEntityAt wraps one geom.Segment into its model-space curve entity
// (E100 for Arc/Circle, E110 for Line) lying in the plane z = z.
func curveEntityAt(m *iges.Model, seg geom.Segment, z float64) (iges.Entity, error) {
	switch seg.Kind() {
	case geom.Line:
		ent, err := m.CreateEntity(iges.TypeLine110)
		if err != nil {
			return nil, err
		}
		line := ent.(*iges.Line110)
		s, e := seg.Start(), seg.End()
		line.Start = [3]float64{s.X, s.Y, z}
		line.End = [3]float64{e.X, e.Y, z}
		return line, nil
	default: // Arc, Circle
		ent, err := m.CreateEntity(iges.TypeCircularArc100)
		if err != nil {
			return nil, err
		}
		arc := ent.(*iges.CircularArc100)
		c, s, e := seg.Center(), seg.Start(), seg.End()
		arc.ZT = z
		arc.Center = [2]float64{c.X, c.Y}
		arc.Start = [2]float64{s.X, s.Y}
		arc.End = [2]float64{e.X, e.Y}
		return arc, nil
	}
}

// buildCompositeCurve wraps an ordered chain of segments, all lying in
// the plane z = z, into a single E102 composite curve.
func buildCompositeCurve(m *iges.Model, segs []geom.Segment, z float64) (*iges.CompositeCurve102, error) {
	ent, err := m.CreateEntity(iges.TypeCompositeCurve102)
	if err != nil {
		return nil, err
	}
	composite := ent.(*iges.CompositeCurve102)
	for _, seg := range segs {
		curve, err := curveEntityAt(m, seg, z)
		if err != nil {
			return nil, err
		}
		if err := composite.AddChild(curve); err != nil {
			return nil, err
		}
	}
	return composite, nil
}

// wireBoundary wraps a composite curve and the surface it lies on into an
// E142 curve-on-surface entity, ready to serve as a TrimmedSurface144
// boundary.
func wireBoundary(m *iges.Model, composite *iges.CompositeCurve102, surface iges.Entity) (*iges.CurveOnSurface142, error) {
	ent, err := m.CreateEntity(iges.TypeCurveOnSurface142)
	if err != nil {
		return nil, err
	}
	cos := ent.(*iges.CurveOnSurface142)
	cos.Preference = iges.PreferenceBPTR
	if surface != nil {
		if err := cos.SetSurface(surface); err != nil {
			return nil, err
		}
	}
	if err := cos.SetBPointer(composite); err != nil {
		return nil, err
	}
	return cos, nil
}

// buildCap wraps a CapPatch's outer boundary (and any hole loops) into a
// single planar TrimmedSurface144, backed by one PlaneSurface190 whose
// normal is outwardNormalZ (+1 for the top cap, -1 for the bottom).
func buildCap(m *iges.Model, cap outline.CapPatch, outwardNormalZ float64) (*iges.TrimmedSurface144, error) {
	surfEnt, err := m.CreateEntity(iges.TypePlaneSurface190)
	if err != nil {
		return nil, err
	}
	surf := surfEnt.(*iges.PlaneSurface190)
	p := cap.Outer[0].Start()
	surf.Point = [3]float64{p.X, p.Y, cap.Z}
	surf.Normal = [3]float64{0, 0, outwardNormalZ}
	surf.RefDir = [3]float64{1, 0, 0}

	outerComposite, err := buildCompositeCurve(m, cap.Outer, cap.Z)
	if err != nil {
		return nil, err
	}
	outerBoundary, err := wireBoundary(m, outerComposite, surf)
	if err != nil {
		return nil, err
	}

	tsEnt, err := m.CreateEntity(iges.TypeTrimmedSurface144)
	if err != nil {
		return nil, err
	}
	ts := tsEnt.(*iges.TrimmedSurface144)
	if err := ts.SetSurface(surf); err != nil {
		return nil, err
	}
	if err := ts.SetOuterBoundary(outerBoundary); err != nil {
		return nil, err
	}

	for _, hole := range cap.HoleLoops {
		holeComposite, err := buildCompositeCurve(m, hole, cap.Z)
		if err != nil {
			return nil, err
		}
		holeBoundary, err := wireBoundary(m, holeComposite, surf)
		if err != nil {
			return nil, err
		}
		if err := ts.AddInnerBoundary(holeBoundary); err != nil {
			return nil, err
		}
	}

	return ts, nil
}
