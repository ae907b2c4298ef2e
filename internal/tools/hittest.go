package tools

import (
	"math"
	"unicode/utf8"

	"sketchboard/internal/state"
)

// Hit-test tuning. The text box is an estimate: real glyph metrics are a
// rendering concern, the eraser only needs a plausible target area.
const (
	// DefaultPathTolerance is how close (in logical units) a point must be
	// to one of a path's vertices to count as a hit. Segments between
	// vertices are not tested.
	DefaultPathTolerance = 10
	// DefaultTextCharWidth is the assumed advance per character when
	// estimating a text element's box.
	DefaultTextCharWidth = 8
	// DefaultTextBoxHeight is the assumed height of a text element's box.
	DefaultTextBoxHeight = 20
)

// HitOptions configures the eraser's hit-testing heuristics.
type HitOptions struct {
	PathTolerance float64
	TextCharWidth float64
	TextBoxHeight float64
}

func DefaultHitOptions() HitOptions {
	return HitOptions{
		PathTolerance: DefaultPathTolerance,
		TextCharWidth: DefaultTextCharWidth,
		TextBoxHeight: DefaultTextBoxHeight,
	}
}

// Hit reports whether p falls on el. It is a pure predicate over one
// element; the eraser walks the scene in reverse paint order and removes
// the first element this reports true for.
func Hit(o HitOptions, p state.Point, el state.Element) bool {
	switch el.Kind {
	case state.KindRect:
		return p.X >= el.X && p.X <= el.X+el.W &&
			p.Y >= el.Y && p.Y <= el.Y+el.H
	case state.KindCircle:
		// W is the radius; see the Element doc for why H is unused.
		return math.Hypot(p.X-el.X, p.Y-el.Y) <= el.W
	case state.KindPath:
		for _, v := range el.Points {
			if math.Hypot(p.X-v.X, p.Y-v.Y) <= o.PathTolerance {
				return true
			}
		}
		return false
	case state.KindText:
		// The anchor is the baseline start, so the box sits above and to
		// the right of it.
		w := float64(utf8.RuneCountInString(el.Text)) * o.TextCharWidth
		return p.X >= el.X && p.X <= el.X+w &&
			p.Y >= el.Y-o.TextBoxHeight && p.Y <= el.Y
	}
	return false
}
