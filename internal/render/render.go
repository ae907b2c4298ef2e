// Package render rasterizes a scene snapshot with the gg software
// renderer. The live on-screen surface is drawn by the Fyne widget in
// internal/ui; this package backs the raster and paged exports, which is
// why it never paints the reference grid.
package render

import (
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"sketchboard/internal/state"
)

// Renderer defaults, also the fallbacks the exporters use for elements
// with missing style fields.
const (
	DefaultStrokeColor = "black"
	DefaultFillColor   = "none"
	DefaultStrokeWidth = 2.0
	DefaultFontSize    = 16.0
)

var palette = map[string]color.Color{
	"black":  color.Black,
	"white":  color.White,
	"red":    color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	"green":  color.NRGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
	"blue":   color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	"yellow": color.NRGBA{R: 0xfd, G: 0xd8, B: 0x35, A: 0xff},
	"orange": color.NRGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
	"purple": color.NRGBA{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	"gray":   color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
}

// ParseColor resolves a style color string: palette name or #rrggbb hex.
// Unknown input falls back to black.
func ParseColor(s string) color.Color {
	if c, ok := palette[s]; ok {
		return c
	}
	if len(s) > 0 && s[0] == '#' {
		return gg.Hex(s).Color()
	}
	return color.Black
}

// EffectiveStyle fills missing style fields with the renderer defaults.
func EffectiveStyle(st state.Style) state.Style {
	if st.StrokeColor == "" {
		st.StrokeColor = DefaultStrokeColor
	}
	if st.FillColor == "" {
		st.FillColor = DefaultFillColor
	}
	if st.StrokeWidth <= 0 {
		st.StrokeWidth = DefaultStrokeWidth
	}
	if st.FontSize <= 0 {
		st.FontSize = DefaultFontSize
	}
	return st
}

// The embedded Go Regular face backs all raster text. Loading it can
// only fail if the embedded TTF is corrupt; in that case text elements
// degrade to no-ops.
var (
	fontOnce   sync.Once
	fontSource *ggtext.FontSource
)

func fontFace(size float64) ggtext.Face {
	fontOnce.Do(func() {
		src, err := ggtext.NewFontSource(goregular.TTF)
		if err != nil {
			log.WithError(err).Warn("font source unavailable, text will not rasterize")
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	return fontSource.Face(size)
}

// Rasterize paints the element sequence onto a fresh context with an
// opaque white background. Logical coordinates stay device-independent:
// the backing surface is provisioned at scale times the logical extent
// and the content is scaled uniformly.
func Rasterize(els []state.Element, width, height, scale float64) *gg.Context {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(width*scale+0.5), int(height*scale+0.5))
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.Scale(scale, scale)
	for _, el := range els {
		paintElement(dc, el)
	}
	return dc
}

func paintElement(dc *gg.Context, el state.Element) {
	st := EffectiveStyle(el.Style)
	switch el.Kind {
	case state.KindPath:
		if len(el.Points) < 2 {
			return
		}
		dc.MoveTo(el.Points[0].X, el.Points[0].Y)
		for _, p := range el.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.SetColor(ParseColor(st.StrokeColor))
		dc.SetLineWidth(st.StrokeWidth)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		_ = dc.Stroke()
	case state.KindRect:
		dc.DrawRectangle(el.X, el.Y, el.W, el.H)
		fillThenStroke(dc, st)
	case state.KindCircle:
		dc.DrawCircle(el.X, el.Y, el.W)
		fillThenStroke(dc, st)
	case state.KindText:
		face := fontFace(st.FontSize)
		if face == nil {
			return
		}
		dc.SetFont(face)
		// Text is filled with the stroke color; the anchor is the
		// baseline start.
		dc.SetColor(ParseColor(st.StrokeColor))
		dc.DrawString(el.Text, el.X, el.Y)
	}
}

func fillThenStroke(dc *gg.Context, st state.Style) {
	if st.FillColor != "none" {
		dc.SetColor(ParseColor(st.FillColor))
		_ = dc.FillPreserve()
	}
	dc.SetColor(ParseColor(st.StrokeColor))
	dc.SetLineWidth(st.StrokeWidth)
	_ = dc.Stroke()
}
