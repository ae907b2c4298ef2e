// Package export turns scene snapshots into file payloads. Every
// exporter is pure over the element sequence and canvas extent it is
// given; none of them can reach back into the live scene.
package export

import (
	"fmt"
	"time"
)

// Format identifies an export payload encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatPDF  Format = "pdf"
)

// DefaultJPEGQuality is used when the caller passes a quality outside
// 1..100.
const DefaultJPEGQuality = 90

// Exporter bundles the tunables shared by the format encoders.
type Exporter struct {
	// Scale provisions raster output at device pixel density while the
	// content keeps its logical coordinates. Values <= 0 mean 1.
	Scale float64

	// PageWriter produces the paged (PDF) encoding. It is treated as an
	// optional dependency: when nil, PDF exports degrade to the lossless
	// raster payload with a logged warning.
	PageWriter PageWriter
}

// New returns an exporter with the gofpdf page writer wired in.
func New() *Exporter {
	return &Exporter{Scale: 1, PageWriter: FpdfPageWriter{}}
}

// Filename derives the deterministic date-stamped name shared by all
// formats, e.g. "whiteboard-2026-08-23.svg".
func Filename(base string, f Format, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, t.Format("2006-01-02"), f)
}
