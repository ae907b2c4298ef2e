package export

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/state"
)

func scenarioElements() []state.Element {
	rect := state.NewRectElement(0, 0, state.Style{
		StrokeColor: "black", StrokeWidth: 2, FillColor: "none", FontSize: 16,
	})
	rect.W, rect.H = 100, 50
	txt := state.NewTextElement(10, 60, "Submit", state.Style{
		StrokeColor: "black", StrokeWidth: 2, FillColor: "none", FontSize: 16,
	})
	return []state.Element{rect, txt}
}

func TestSVGEndToEnd(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	require.NoError(t, e.SVG(&buf, scenarioElements(), 800, 600))
	out := buf.String()

	// Background base layer, then exactly one rect primitive followed by
	// one text primitive.
	assert.Equal(t, 1, strings.Count(out, "fill:white"))
	assert.Equal(t, 1, strings.Count(out, "<text"))
	assert.Equal(t, 2, strings.Count(out, "<rect"), "background + element rect")
	assert.Contains(t, out, "fill:none;stroke:black;stroke-width:2")
	assert.Contains(t, out, "Submit")
	assert.Less(t, strings.Index(out, "fill:none"), strings.Index(out, "<text"),
		"paint order is preserved")
}

func TestSVGDeterministic(t *testing.T) {
	e := New()
	els := scenarioElements()
	var a, b bytes.Buffer
	require.NoError(t, e.SVG(&a, els, 800, 600))
	require.NoError(t, e.SVG(&b, els, 800, 600))
	assert.Equal(t, a.Bytes(), b.Bytes(),
		"identical snapshots must yield byte-identical markup")
}

func TestSVGMissingStyleFallsBack(t *testing.T) {
	el := state.NewRectElement(0, 0, state.Style{}) // no style at all
	el.W, el.H = 10, 10
	e := New()
	var buf bytes.Buffer
	require.NoError(t, e.SVG(&buf, []state.Element{el}, 100, 100))
	assert.Contains(t, buf.String(), "fill:none;stroke:black;stroke-width:2")
}

func TestPNGExportDimensions(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	require.NoError(t, e.PNG(&buf, scenarioElements(), 200, 150))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// Opaque white background.
	r, g, b, a := img.At(199, 149).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestPNGExportDeviceScale(t *testing.T) {
	e := New()
	e.Scale = 2
	var buf bytes.Buffer
	require.NoError(t, e.PNG(&buf, nil, 100, 80))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestJPEGExport(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	require.NoError(t, e.JPEG(&buf, scenarioElements(), 120, 90, 75))

	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestPDFExport(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	format, err := e.PDF(&buf, scenarioElements(), 200, 150)
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFFallsBackToPNG(t *testing.T) {
	e := New()
	e.PageWriter = nil // encoding dependency unavailable
	var buf bytes.Buffer
	format, err := e.PDF(&buf, scenarioElements(), 200, 150)
	require.NoError(t, err, "a missing page writer degrades, it never fails the action")
	assert.Equal(t, FormatPNG, format)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

type failingPageWriter struct{}

func (failingPageWriter) WritePage(io.Writer, []byte, float64, float64) error {
	return errors.New("page writer broke")
}

func TestPDFWriterFailureFallsBack(t *testing.T) {
	e := New()
	e.PageWriter = failingPageWriter{}
	var buf bytes.Buffer
	format, err := e.PDF(&buf, scenarioElements(), 100, 100)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "whiteboard-2024-03-09.svg", Filename("whiteboard", FormatSVG, at))
	assert.Equal(t, "whiteboard-2024-03-09.pdf", Filename("whiteboard", FormatPDF, at))
	assert.Equal(t, "whiteboard-2024-03-09.jpg", Filename("whiteboard", FormatJPEG, at))
}
