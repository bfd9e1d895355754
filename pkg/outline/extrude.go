package outline

import (
	"github.com/pcbkernel/iges/pkg/geom"
)

// PatchKind distinguishes the two surface parameterizations an extrusion
// produces.
type PatchKind int

const (
	// PlanarQuad is a flat quadrilateral: the side wall swept by a Line
	// segment, or a planar top/bottom cap.
	PlanarQuad PatchKind = iota
	// Cylindrical is the lateral surface swept by an Arc or Circle
	// segment, parameterized by angle and height.
	Cylindrical
)

// SidePatch describes one vertical wall panel of an extrusion.
type SidePatch struct {
	Kind PatchKind

	// Planar fields: the four corners of the wall, in order.
	Corners [4]geom.Point

	// Cylindrical fields.
	Center     geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	TopZ, BotZ float64
}

// CapPatch describes the top or bottom planar surface, trimmed to the
// outline's footprint (including any holes).
type CapPatch struct {
	Z         float64
	Outer     []geom.Segment
	HoleLoops [][]geom.Segment
}

// Extrusion is the pure-geometry result of extruding a closed outline
// from botZ to topZ: one SidePatch per boundary segment (of the outer
// chain and of every hole), plus a top and bottom CapPatch. The entity
// graph wraps these into E142/E144/E102 entities for output; this package
// has no notion of IGES entities.
type Extrusion struct {
	Sides []SidePatch
	Top   CapPatch
	Bottom CapPatch
}

// ExtrudeToTrimmedSurfaces builds the side walls and trimmed top/bottom
// caps for the solid swept by this outline (and its holes) between botZ
// and topZ. Valid once the outline is Closed or Finalized.
func (o *Outline) ExtrudeToTrimmedSurfaces(topZ, botZ float64) Extrusion {
	var ext Extrusion

	ext.Sides = append(ext.Sides, sidesForChain(o.segments, topZ, botZ)...)
	for _, hole := range o.holes {
		ext.Sides = append(ext.Sides, sidesForChain(hole.segments, topZ, botZ)...)
	}

	ext.Top = CapPatch{Z: topZ, Outer: o.segments}
	ext.Bottom = CapPatch{Z: botZ, Outer: o.segments}
	for _, hole := range o.holes {
		ext.Top.HoleLoops = append(ext.Top.HoleLoops, hole.segments)
		ext.Bottom.HoleLoops = append(ext.Bottom.HoleLoops, hole.segments)
	}

	return ext
}

func sidesForChain(segs []geom.Segment, topZ, botZ float64) []SidePatch {
	out := make([]SidePatch, 0, len(segs))
	for _, seg := range segs {
		switch seg.Kind() {
		case geom.Line:
			s, e := seg.Start(), seg.End()
			out = append(out, SidePatch{
				Kind: PlanarQuad,
				Corners: [4]geom.Point{
					{X: s.X, Y: s.Y, Z: botZ},
					{X: e.X, Y: e.Y, Z: botZ},
					{X: e.X, Y: e.Y, Z: topZ},
					{X: s.X, Y: s.Y, Z: topZ},
				},
			})
		default: // Arc, Circle: one cylindrical patch over the whole angular range, not split into quarters
			startAngle, endAngle := seg.StartAngle(), seg.EndAngle()
			if seg.Kind() == geom.Circle {
				startAngle, endAngle = 0, 2*3.141592653589793
			}
			out = append(out, SidePatch{
				Kind:       Cylindrical,
				Center:     seg.Center(),
				Radius:     seg.Radius(),
				StartAngle: startAngle,
				EndAngle:   endAngle,
				TopZ:       topZ,
				BotZ:       botZ,
			})
		}
	}
	return out
}
