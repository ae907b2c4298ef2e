package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"sketchboard/internal/export"
	"sketchboard/internal/tools"
)

const exportBaseName = "whiteboard"

// NewExportBar builds the export buttons. Each one snapshots the scene,
// encodes it off the live model, and writes the payload under the
// deterministic date-stamped filename.
func NewExportBar(session *tools.Session, win fyne.Window) fyne.CanvasObject {
	save := func(format export.Format) {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()

			exp := export.New()
			exp.Scale = float64(win.Canvas().Scale())
			els := session.Scene.Elements()
			cw, ch := session.CanvasWidth, session.CanvasHeight

			switch format {
			case export.FormatSVG:
				err = exp.SVG(writer, els, cw, ch)
			case export.FormatPNG:
				err = exp.PNG(writer, els, cw, ch)
			case export.FormatJPEG:
				err = exp.JPEG(writer, els, cw, ch, export.DefaultJPEGQuality)
			case export.FormatPDF:
				var got export.Format
				got, err = exp.PDF(writer, els, cw, ch)
				if err == nil && got != export.FormatPDF {
					log.WithField("format", got).Warn("paged export degraded")
				}
			}
			if err != nil {
				log.WithError(err).WithField("format", format).Error("export failed")
				dialog.ShowError(err, win)
				return
			}
			log.WithField("format", format).Info("exported scene")
		}, win)
		d.SetFileName(export.Filename(exportBaseName, format, time.Now()))
		d.Show()
	}

	return container.NewHBox(
		widget.NewLabel("Export:"),
		widget.NewButton("SVG", func() { save(export.FormatSVG) }),
		widget.NewButton("PNG", func() { save(export.FormatPNG) }),
		widget.NewButton("JPEG", func() { save(export.FormatJPEG) }),
		widget.NewButton("PDF", func() { save(export.FormatPDF) }),
	)
}
