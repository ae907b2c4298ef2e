package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"sketchboard/internal/render"
	"sketchboard/internal/state"
)

// SVG writes the vector markup: an opaque background base layer, then
// one primitive per element in paint order with a 1:1 geometry and style
// translation. Missing style fields fall back to the renderer defaults,
// so the markup matches what the raster path would paint. Equal input
// produces byte-identical output.
func (e *Exporter) SVG(w io.Writer, els []state.Element, canvasWidth, canvasHeight float64) error {
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:white")
	for _, el := range els {
		st := render.EffectiveStyle(el.Style)
		switch el.Kind {
		case state.KindPath:
			if len(el.Points) < 2 {
				continue
			}
			xs := make([]float64, len(el.Points))
			ys := make([]float64, len(el.Points))
			for i, p := range el.Points {
				xs[i], ys[i] = p.X, p.Y
			}
			canvas.Polyline(xs, ys, fmt.Sprintf(
				"fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round",
				st.StrokeColor, st.StrokeWidth))
		case state.KindRect:
			canvas.Rect(el.X, el.Y, el.W, el.H, shapeStyle(st))
		case state.KindCircle:
			canvas.Circle(el.X, el.Y, el.W, shapeStyle(st))
		case state.KindText:
			// Filled with the stroke color, like the raster path.
			canvas.Text(el.X, el.Y, el.Text, fmt.Sprintf(
				"fill:%s;font-size:%gpx;font-family:sans-serif",
				st.StrokeColor, st.FontSize))
		}
	}
	canvas.End()
	return nil
}

func shapeStyle(st state.Style) string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
		st.FillColor, st.StrokeColor, st.StrokeWidth)
}
