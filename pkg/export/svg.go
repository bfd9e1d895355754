package export

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/outline"
)

// SVGOptions controls WriteSVG's canvas and styling.
type SVGOptions struct {
	Width, Height int
	Margin        float64
	OutlineStyle  string
	HoleStyle     string
}

// DefaultSVGOptions is a reasonable starting point for a board-sized
// outline: an 800x600 canvas with a 20-pixel margin. WriteSVG scales the
// outline's bounding box to fit inside the margin, so there is no fixed
// unit-to-pixel ratio.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:        800,
		Height:       600,
		Margin:       20,
		OutlineStyle: "fill:none;stroke:black;stroke-width:1",
		HoleStyle:    "fill:none;stroke:red;stroke-width:1",
	}
}

// WriteSVG renders o's outer boundary and every hole as SVG path
// primitives: lines as <line>, arcs as elliptical-arc path commands,
// full circles as <circle>. o must be Closed or Finalized.
func WriteSVG(w io.Writer, o *outline.Outline, opt SVGOptions) error {
	if o.State() == outline.Open {
		return ErrNotClosed
	}
	bounds := o.Bounds()
	tx := newSVGTransform(bounds, opt)

	canvas := svg.New(w)
	canvas.Start(opt.Width, opt.Height)
	drawChain(canvas, o.Segments(), tx, opt.OutlineStyle)
	for _, hole := range o.Holes() {
		drawChain(canvas, hole.Segments(), tx, opt.HoleStyle)
	}
	canvas.End()
	return nil
}

func drawChain(canvas *svg.SVG, segs []geom.Segment, tx svgTransform, style string) {
	for _, seg := range segs {
		switch seg.Kind() {
		case geom.Line:
			s, e := seg.Start(), seg.End()
			sx, sy := tx.point(s)
			ex, ey := tx.point(e)
			canvas.Line(sx, sy, ex, ey, style)
		case geom.Circle:
			c := seg.Center()
			cx, cy := tx.point(c)
			canvas.Circle(cx, cy, tx.length(seg.Radius()), style)
		default: // Arc
			s, e := seg.Start(), seg.End()
			sx, sy := tx.point(s)
			ex, ey := tx.point(e)
			r := tx.length(seg.Radius())
			large := (seg.EndAngle() - seg.StartAngle()) > math.Pi
			sweep := !seg.CW()
			canvas.Arc(sx, sy, r, r, 0, large, sweep, ex, ey, style)
		}
	}
}

// svgTransform maps outline-space (Y-up, arbitrary units) coordinates
// into the canvas's pixel grid (Y-down), fitting bounds within
// opt.Margin of the canvas edges.
type svgTransform struct {
	scale        float64
	offX, offY   float64
	height       int
}

func newSVGTransform(bounds geom.Box, opt SVGOptions) svgTransform {
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	avail := float64(opt.Width) - 2*opt.Margin
	availH := float64(opt.Height) - 2*opt.Margin
	scale := 1.0
	if w > 0 && h > 0 {
		scale = math.Min(avail/w, availH/h)
	}
	return svgTransform{
		scale:  scale,
		offX:   opt.Margin - bounds.Min.X*scale,
		offY:   opt.Margin - bounds.Min.Y*scale,
		height: opt.Height,
	}
}

func (t svgTransform) point(p geom.Point) (int, int) {
	x := p.X*t.scale + t.offX
	y := float64(t.height) - (p.Y*t.scale + t.offY)
	return int(math.Round(x)), int(math.Round(y))
}

func (t svgTransform) length(l float64) int {
	return int(math.Round(l * t.scale))
}
