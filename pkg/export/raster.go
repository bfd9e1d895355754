package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/pcbkernel/iges/pkg/geom"
	"github.com/pcbkernel/iges/pkg/outline"
)

// RasterOptions controls WritePNG's canvas, matching SVGOptions' shape so
// the two previews can be generated from the same layout.
type RasterOptions struct {
	Width, Height int
	Margin        float64
}

// DefaultRasterOptions mirrors DefaultSVGOptions' canvas size.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{Width: 800, Height: 600, Margin: 20}
}

// WritePNG rasterizes o's outer boundary (black) and every hole (red)
// into a PNG, tracing each segment with draw2d's path commands — ArcTo
// for Arc and Circle segments, LineTo for Line segments. o must be
// Closed or Finalized.
func WritePNG(w io.Writer, o *outline.Outline, opt RasterOptions) error {
	if o.State() == outline.Open {
		return ErrNotClosed
	}
	bounds := o.Bounds()
	tx := newSVGTransform(bounds, SVGOptions{Width: opt.Width, Height: opt.Height, Margin: opt.Margin})

	dest := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(dest, dest.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	gc := draw2dimg.NewGraphicContext(dest)

	gc.SetLineWidth(1)
	gc.SetStrokeColor(color.Black)
	traceChain(gc, o.Segments(), tx)

	gc.SetStrokeColor(color.RGBA{R: 220, G: 0, B: 0, A: 255})
	for _, hole := range o.Holes() {
		traceChain(gc, hole.Segments(), tx)
	}

	return png.Encode(w, dest)
}

func traceChain(gc *draw2dimg.GraphicContext, segs []geom.Segment, tx svgTransform) {
	if len(segs) == 0 {
		return
	}
	start := segs[0].Start()
	sx, sy := tx.point(start)
	gc.MoveTo(float64(sx), float64(sy))

	for _, seg := range segs {
		switch seg.Kind() {
		case geom.Line:
			e := seg.End()
			ex, ey := tx.point(e)
			gc.LineTo(float64(ex), float64(ey))
		default: // Arc, Circle
			c := seg.Center()
			cx, cy := tx.point(c)
			r := float64(tx.length(seg.Radius()))
			startAngle := seg.StartAngle()
			sweep := seg.EndAngle() - seg.StartAngle()
			if seg.Kind() == geom.Circle {
				sweep = 2 * math.Pi
			} else if seg.CW() {
				// A CW arc is traversed from its CCW-convention EndAngle
				// back down to StartAngle.
				startAngle = seg.EndAngle()
				sweep = -sweep
			}
			// draw2d's Y axis runs opposite outline-space Y, so a CCW
			// sweep in outline space traces CW on the raster canvas.
			gc.ArcTo(float64(cx), float64(cy), r, r, -startAngle, -sweep)
		}
	}
	gc.Close()
	gc.Stroke()
}
