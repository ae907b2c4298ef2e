package export

import (
	"fmt"
	"io"

	"sketchboard/internal/render"
	"sketchboard/internal/state"
)

// PNG writes the lossless raster encoding: the committed elements on an
// opaque white background, grid and in-progress gestures excluded.
func (e *Exporter) PNG(w io.Writer, els []state.Element, canvasWidth, canvasHeight float64) error {
	dc := render.Rasterize(els, canvasWidth, canvasHeight, e.Scale)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// JPEG writes the lossy raster encoding with the given quality (1..100;
// out-of-range values use DefaultJPEGQuality).
func (e *Exporter) JPEG(w io.Writer, els []state.Element, canvasWidth, canvasHeight float64, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	dc := render.Rasterize(els, canvasWidth, canvasHeight, e.Scale)
	if err := dc.EncodeJPEG(w, quality); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
