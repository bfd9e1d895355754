package board

import (
	"math"

	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/kernel"
	"github.com/pcbkernel/iges/pkg/outline"
)

// PreviewMesh tessellates the board's outer outline and every hole into
// closed 2D polygons, extrudes each between BotZ and TopZ with k, and
// subtracts the holes from the base solid, returning a triangle mesh a
// caller can render without going through the IGES entity chain at all.
// segmentsPerQuarterTurn controls how finely arcs and circles are chorded;
// it has no effect on straight segments.
func (b *Board) PreviewMesh(k kernel.Kernel, segmentsPerQuarterTurn int) (*kernel.Mesh, error) {
	if b.Outline.State() != outline.Finalized {
		return nil, ErrNotFinalized
	}
	height := b.TopZ - b.BotZ

	base, err := k.Extrude(tessellateChain(b.Outline.Segments(), segmentsPerQuarterTurn), height)
	if err != nil {
		return nil, err
	}
	base = k.Translate(base, 0, 0, b.BotZ)

	for _, hole := range b.Outline.Holes() {
		holeSolid, err := k.Extrude(tessellateChain(hole.Segments(), segmentsPerQuarterTurn), height)
		if err != nil {
			return nil, err
		}
		holeSolid = k.Translate(holeSolid, 0, 0, b.BotZ)
		base = k.Difference(base, holeSolid)
	}

	return k.ToMesh(base)
}

// tessellateChain flattens a closed segment chain into an ordered polygon,
// chording each Arc/Circle into segmentsPerQuarterTurn points per quarter
// turn. Lines contribute only their start point — the chain is closed, so
// each segment's end is the next segment's start.
func tessellateChain(segs []geom.Segment, segmentsPerQuarterTurn int) [][2]float64 {
	var pts [][2]float64
	for _, seg := range segs {
		s := seg.Start()
		pts = append(pts, [2]float64{s.X, s.Y})
		switch seg.Kind() {
		case geom.Arc:
			pts = append(pts, chordArc(seg, segmentsPerQuarterTurn)...)
		case geom.Circle:
			pts = append(pts, chordCircle(seg, segmentsPerQuarterTurn)...)
		}
	}
	return pts
}

// chordArc returns the interior points (excluding both endpoints) along
// seg's traversal direction, finely enough to hold segmentsPerQuarterTurn
// chords per quarter turn of arc.
func chordArc(seg geom.Segment, segmentsPerQuarterTurn int) [][2]float64 {
	c, r := seg.Center(), seg.Radius()
	span := seg.EndAngle() - seg.StartAngle()
	n := int(math.Round(span / (math.Pi / 2) * float64(segmentsPerQuarterTurn)))
	if n < 1 {
		n = 1
	}
	pts := make([][2]float64, 0, n-1)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		var angle float64
		if seg.CW() {
			angle = seg.EndAngle() - t*span
		} else {
			angle = seg.StartAngle() + t*span
		}
		pts = append(pts, [2]float64{c.X + r*math.Cos(angle), c.Y + r*math.Sin(angle)})
	}
	return pts
}

// chordCircle returns segmentsPerQuarterTurn*4-1 points around a full
// circle, starting just past the segment's canonical start point (which
// the caller already appended) and stopping just short of it again.
func chordCircle(seg geom.Segment, segmentsPerQuarterTurn int) [][2]float64 {
	c, r := seg.Center(), seg.Radius()
	n := 4 * segmentsPerQuarterTurn
	if n < 4 {
		n = 4
	}
	pts := make([][2]float64, 0, n-1)
	for i := 1; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		pts = append(pts, [2]float64{c.X + r*math.Cos(angle), c.Y + r*math.Sin(angle)})
	}
	return pts
}
