package state

import (
	"time"

	"github.com/google/uuid"
)

// Point is a position in logical canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind discriminates the element variants. Every consumer (renderer,
// hit-tester, exporter) switches exhaustively on it.
type Kind string

const (
	KindPath   Kind = "path"
	KindRect   Kind = "rect"
	KindCircle Kind = "circle"
	KindText   Kind = "text"
)

// Style is captured from the current tool defaults when an element is
// created and never changes afterwards. Later style commands only affect
// future elements.
type Style struct {
	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   string  `json:"fillColor"` // "none" disables fill
	FontSize    float64 `json:"fontSize"`
}

// DefaultStyle is the style a fresh session starts with.
func DefaultStyle() Style {
	return Style{
		StrokeColor: "black",
		StrokeWidth: 2,
		FillColor:   "none",
		FontSize:    16,
	}
}

// Element is one committed drawable. X,Y anchor a shape's top-left corner,
// a circle's center, a text run's baseline start; paths keep their anchor
// at the first point.
//
// For circles W holds the radius and is the only dimension consulted at
// render and hit-test time. H is still written while the drag is in
// progress because rectangles and circles share the drag code, but it is
// deliberately ignored afterwards.
type Element struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	W         float64   `json:"w,omitempty"`
	H         float64   `json:"h,omitempty"`
	Style     Style     `json:"style"`
	Points    []Point   `json:"points,omitempty"` // KindPath only
	Text      string    `json:"text,omitempty"`   // KindText only
	CreatedAt time.Time `json:"createdAt"`
}

func NewPathElement(points []Point, st Style) Element {
	el := Element{
		ID:        uuid.NewString(),
		Kind:      KindPath,
		Style:     st,
		Points:    append([]Point(nil), points...),
		CreatedAt: time.Now(),
	}
	if len(points) > 0 {
		el.X, el.Y = points[0].X, points[0].Y
	}
	return el
}

func NewRectElement(x, y float64, st Style) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindRect,
		X:         x,
		Y:         y,
		Style:     st,
		CreatedAt: time.Now(),
	}
}

func NewCircleElement(x, y float64, st Style) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindCircle,
		X:         x,
		Y:         y,
		Style:     st,
		CreatedAt: time.Now(),
	}
}

func NewTextElement(x, y float64, text string, st Style) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindText,
		X:         x,
		Y:         y,
		Style:     st,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// CloneElements deep-copies an element sequence, including path point
// slices, so holders of a copy can never alias live scene state.
func CloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el
		if el.Points != nil {
			out[i].Points = append([]Point(nil), el.Points...)
		}
	}
	return out
}
