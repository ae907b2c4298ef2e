package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	log "github.com/sirupsen/logrus"

	"sketchboard/internal/state"
)

// PageWriter wraps a raster image as a single-page paged document. It is
// the exporter's one optional dependency.
type PageWriter interface {
	// WritePage emits a one-page document of the given extent containing
	// the PNG-encoded image scaled to fill the page.
	WritePage(w io.Writer, png []byte, pageWidth, pageHeight float64) error
}

// PDF writes the paged document: the lossless raster wrapped as a single
// page sized to the canvas extent. When the page writer is missing or
// fails, the call degrades to the raster payload itself and reports
// which format actually went out; a failing export never aborts the
// user's action.
func (e *Exporter) PDF(w io.Writer, els []state.Element, canvasWidth, canvasHeight float64) (Format, error) {
	var png bytes.Buffer
	if err := e.PNG(&png, els, canvasWidth, canvasHeight); err != nil {
		return "", err
	}
	if e.PageWriter == nil {
		log.Warn("pdf page writer unavailable, falling back to png")
		_, err := w.Write(png.Bytes())
		return FormatPNG, err
	}
	var pdf bytes.Buffer
	if err := e.PageWriter.WritePage(&pdf, png.Bytes(), canvasWidth, canvasHeight); err != nil {
		log.WithError(err).Warn("pdf encoding failed, falling back to png")
		_, werr := w.Write(png.Bytes())
		return FormatPNG, werr
	}
	_, err := w.Write(pdf.Bytes())
	return FormatPDF, err
}

// FpdfPageWriter is the default PageWriter, backed by gofpdf.
type FpdfPageWriter struct{}

func (FpdfPageWriter) WritePage(w io.Writer, png []byte, pageWidth, pageHeight float64) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, bytes.NewReader(png))
	pdf.ImageOptions("canvas", 0, 0, pageWidth, pageHeight, false, opts, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("gofpdf output: %w", err)
	}
	return nil
}
