package export

import (
	"math"

	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/outline"
	"github.com/pkg/errors"
	dxflib "github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// WriteDXF exports o's outer boundary and every hole to a DXF drawing
// saved at path — a second neutral 2D CAD interchange format alongside
// the SVG/PNG previews. o must be Closed or Finalized.
func WriteDXF(path string, o *outline.Outline) error {
	if o.State() == outline.Open {
		return ErrNotClosed
	}
	d := dxflib.NewDrawing()
	addChainToDXF(d, o.Segments())
	for _, hole := range o.Holes() {
		addChainToDXF(d, hole.Segments())
	}
	if err := d.SaveAs(path); err != nil {
		return errors.Wrap(err, "export: write DXF")
	}
	return nil
}

func addChainToDXF(d *drawing.Drawing, segs []geom.Segment) {
	const degPerRad = 180 / math.Pi
	for _, seg := range segs {
		switch seg.Kind() {
		case geom.Line:
			s, e := seg.Start(), seg.End()
			d.Line(s.X, s.Y, 0, e.X, e.Y, 0)
		case geom.Circle:
			c := seg.Center()
			d.Circle(c.X, c.Y, 0, seg.Radius())
		default: // Arc
			// DXF arcs run CCW from start to end angle, which is already
			// the convention of StartAngle/EndAngle for CW and CCW arcs
			// alike.
			c := seg.Center()
			start, end := seg.StartAngle()*degPerRad, seg.EndAngle()*degPerRad
			d.Arc(c.X, c.Y, 0, seg.Radius(), start, end)
		}
	}
}
