package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/render"
	"sketchboard/internal/state"
	"sketchboard/internal/tools"
)

const gridSpacing = 50

var gridColor = color.NRGBA{R: 220, G: 220, B: 220, A: 100}

// BoardWidget is the live paint surface. It translates desktop mouse
// events into controller pointer events and paints the reference grid,
// the committed elements, and the live in-progress path. The grid is a
// visual aid only; exports never include it.
type BoardWidget struct {
	widget.BaseWidget
	session *tools.Session
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(session *tools.Session) *BoardWidget {
	b := &BoardWidget{session: session}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.session.Controller.Press(toPoint(e.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.session.Controller.Release(toPoint(e.Position))
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.Controller.Move(toPoint(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is the release-equivalent: leaving the surface ends any
// gesture in flight.
func (b *BoardWidget) MouseOut() {
	b.session.Controller.Leave()
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	objects = append(objects, r.gridLines()...)
	for _, el := range r.board.session.Scene.Elements() {
		objects = append(objects, elementObjects(el)...)
	}
	if live := r.board.session.Controller.LivePath(); len(live) > 1 {
		st := r.board.session.Controller.Style()
		objects = append(objects, polylineObjects(live, st)...)
	}
	return objects
}

func (r *boardRenderer) gridLines() []fyne.CanvasObject {
	size := r.board.Size()
	var lines []fyne.CanvasObject
	for x := float32(gridSpacing); x < size.Width; x += gridSpacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := float32(gridSpacing); y < size.Height; y += gridSpacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

func elementObjects(el state.Element) []fyne.CanvasObject {
	st := render.EffectiveStyle(el.Style)
	switch el.Kind {
	case state.KindPath:
		return polylineObjects(el.Points, st)
	case state.KindRect:
		rect := canvas.NewRectangle(fillColor(st))
		rect.StrokeColor = render.ParseColor(st.StrokeColor)
		rect.StrokeWidth = float32(st.StrokeWidth)
		rect.Move(fyne.NewPos(float32(el.X), float32(el.Y)))
		rect.Resize(fyne.NewSize(float32(el.W), float32(el.H)))
		return []fyne.CanvasObject{rect}
	case state.KindCircle:
		circle := canvas.NewCircle(fillColor(st))
		circle.StrokeColor = render.ParseColor(st.StrokeColor)
		circle.StrokeWidth = float32(st.StrokeWidth)
		r := float32(el.W)
		circle.Position1 = fyne.NewPos(float32(el.X)-r, float32(el.Y)-r)
		circle.Position2 = fyne.NewPos(float32(el.X)+r, float32(el.Y)+r)
		return []fyne.CanvasObject{circle}
	case state.KindText:
		// Text fills with the stroke color; the anchor is the baseline,
		// fyne positions from the top-left.
		txt := canvas.NewText(el.Text, render.ParseColor(st.StrokeColor))
		txt.TextSize = float32(st.FontSize)
		txt.Move(fyne.NewPos(float32(el.X), float32(el.Y-st.FontSize)))
		return []fyne.CanvasObject{txt}
	}
	return nil
}

func polylineObjects(points []state.Point, st state.Style) []fyne.CanvasObject {
	if len(points) < 2 {
		return nil
	}
	col := render.ParseColor(st.StrokeColor)
	segments := make([]fyne.CanvasObject, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		seg := canvas.NewLine(col)
		seg.StrokeWidth = float32(st.StrokeWidth)
		seg.Position1 = fyne.NewPos(float32(points[i].X), float32(points[i].Y))
		seg.Position2 = fyne.NewPos(float32(points[i+1].X), float32(points[i+1].Y))
		segments = append(segments, seg)
	}
	return segments
}

func fillColor(st state.Style) color.Color {
	if st.FillColor == "none" {
		return color.Transparent
	}
	return render.ParseColor(st.FillColor)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
