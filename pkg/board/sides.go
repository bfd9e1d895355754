package board

import (
	"math"

	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/iges"
	"github.com/pcbkernel/iges/pkg/outline"
)

// buildSidePanel wraps one wall panel of an extrusion — a flat
// quadrilateral swept by a Line, or a cylindrical panel swept by an
// Arc/Circle — into a single TrimmedSurface144.
func buildSidePanel(m *iges.Model, side outline.SidePatch) (*iges.TrimmedSurface144, error) {
	if side.Kind == outline.PlanarQuad {
		return buildPlanarPanel(m, side)
	}
	return buildCylindricalPanel(m, side)
}

func buildPlanarPanel(m *iges.Model, side outline.SidePatch) (*iges.TrimmedSurface144, error) {
	corners := side.Corners
	curves := make([]iges.Entity, 4)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		line, err := line3D(m, [3]float64{a.X, a.Y, a.Z}, [3]float64{b.X, b.Y, b.Z})
		if err != nil {
			return nil, err
		}
		curves[i] = line
	}
	composite, err := newCompositeCurveFrom(m, curves)
	if err != nil {
		return nil, err
	}

	u := corners[1].Sub(corners[0])
	v := corners[3].Sub(corners[0])
	normal := unitCross(u, v)

	surfEnt, err := m.CreateEntity(iges.TypePlaneSurface190)
	if err != nil {
		return nil, err
	}
	surf := surfEnt.(*iges.PlaneSurface190)
	surf.Point = [3]float64{corners[0].X, corners[0].Y, corners[0].Z}
	surf.Normal = normal
	surf.RefDir = unit(u)

	outerBoundary, err := wireBoundary(m, composite, surf)
	if err != nil {
		return nil, err
	}

	ts, err := newTrimmedSurface(m, surf, outerBoundary)
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// buildCylindricalPanel wraps the lateral surface swept by an Arc/Circle
// segment into a TrimmedSurface144 bounded by a closed curve made of the
// bottom arc, a vertical line up, the top arc traversed in reverse, and a
// vertical line back down — a loop entirely on the cylinder's surface.
func buildCylindricalPanel(m *iges.Model, side outline.SidePatch) (*iges.TrimmedSurface144, error) {
	c, r := side.Center, side.Radius
	botStart := circlePoint(c, r, side.StartAngle)
	botEnd := circlePoint(c, r, side.EndAngle)

	botArc, err := arc2DAtZ(m, [2]float64{c.X, c.Y}, botStart, botEnd, side.BotZ)
	if err != nil {
		return nil, err
	}
	vertUp, err := line3D(m,
		[3]float64{botEnd[0], botEnd[1], side.BotZ},
		[3]float64{botEnd[0], botEnd[1], side.TopZ})
	if err != nil {
		return nil, err
	}
	topArc, err := arc2DAtZ(m, [2]float64{c.X, c.Y}, botEnd, botStart, side.TopZ)
	if err != nil {
		return nil, err
	}
	vertDown, err := line3D(m,
		[3]float64{botStart[0], botStart[1], side.TopZ},
		[3]float64{botStart[0], botStart[1], side.BotZ})
	if err != nil {
		return nil, err
	}

	composite, err := newCompositeCurveFrom(m, []iges.Entity{botArc, vertUp, topArc, vertDown})
	if err != nil {
		return nil, err
	}

	surfEnt, err := m.CreateEntity(iges.TypeCylindricalSurface192)
	if err != nil {
		return nil, err
	}
	surf := surfEnt.(*iges.CylindricalSurface192)
	surf.Location = [3]float64{c.X, c.Y, side.BotZ}
	surf.Axis = [3]float64{0, 0, 1}
	surf.Radius = r

	outerBoundary, err := wireBoundary(m, composite, surf)
	if err != nil {
		return nil, err
	}
	return newTrimmedSurface(m, surf, outerBoundary)
}

func circlePoint(c geom.Point, r, angle float64) [2]float64 {
	return [2]float64{c.X + r*math.Cos(angle), c.Y + r*math.Sin(angle)}
}

func line3D(m *iges.Model, start, end [3]float64) (*iges.Line110, error) {
	ent, err := m.CreateEntity(iges.TypeLine110)
	if err != nil {
		return nil, err
	}
	line := ent.(*iges.Line110)
	line.Start = start
	line.End = end
	return line, nil
}

func arc2DAtZ(m *iges.Model, center, start, end [2]float64, z float64) (*iges.CircularArc100, error) {
	ent, err := m.CreateEntity(iges.TypeCircularArc100)
	if err != nil {
		return nil, err
	}
	arc := ent.(*iges.CircularArc100)
	arc.ZT = z
	arc.Center = center
	arc.Start = start
	arc.End = end
	return arc, nil
}

func newCompositeCurveFrom(m *iges.Model, curves []iges.Entity) (*iges.CompositeCurve102, error) {
	ent, err := m.CreateEntity(iges.TypeCompositeCurve102)
	if err != nil {
		return nil, err
	}
	composite := ent.(*iges.CompositeCurve102)
	for _, curve := range curves {
		if err := composite.AddChild(curve); err != nil {
			return nil, err
		}
	}
	return composite, nil
}

func newTrimmedSurface(m *iges.Model, surface iges.Entity, outer *iges.CurveOnSurface142) (*iges.TrimmedSurface144, error) {
	ent, err := m.CreateEntity(iges.TypeTrimmedSurface144)
	if err != nil {
		return nil, err
	}
	ts := ent.(*iges.TrimmedSurface144)
	if err := ts.SetSurface(surface); err != nil {
		return nil, err
	}
	if err := ts.SetOuterBoundary(outer); err != nil {
		return nil, err
	}
	return ts, nil
}

func unit(p geom.Point) [3]float64 {
	l := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if l < geom.Epsilon {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{p.X / l, p.Y / l, p.Z / l}
}

func unitCross(u, v geom.Point) [3]float64 {
	cx := u.Y*v.Z - u.Z*v.Y
	cy := u.Z*v.X - u.X*v.Z
	cz := u.X*v.Y - u.Y*v.X
	l := math.Sqrt(cx*cx + cy*cy + cz*cz)
	if l < geom.Epsilon {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{cx / l, cy / l, cz / l}
}
