package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/render"
	"sketchboard/internal/tools"
)

// colorSwatch is a small tappable color square.
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(render.ParseColor(s.Name))
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

var fontSizes = []string{"12", "16", "24", "32", "48"}

// NewToolbar builds the tool, style, and history controls for a session.
func NewToolbar(session *tools.Session, board *BoardWidget) fyne.CanvasObject {
	c := session.Controller

	setTool := func(t tools.Tool) func() {
		return func() { c.SetTool(t) }
	}
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), setTool(tools.ToolPen)),
		widget.NewToolbarAction(theme.CheckButtonIcon(), setTool(tools.ToolRect)),
		widget.NewToolbarAction(theme.RadioButtonIcon(), setTool(tools.ToolCircle)),
		widget.NewToolbarAction(theme.DocumentIcon(), setTool(tools.ToolText)),
		widget.NewToolbarAction(theme.ContentClearIcon(), setTool(tools.ToolEraser)),
		widget.NewToolbarAction(theme.SearchIcon(), setTool(tools.ToolSelect)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() {
			c.Undo()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() {
			c.Redo()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			c.Clear()
			board.Refresh()
		}),
	)

	strokeBox := container.NewHBox(
		newColorSwatch("black", c.SetStrokeColor),
		newColorSwatch("red", c.SetStrokeColor),
		newColorSwatch("green", c.SetStrokeColor),
		newColorSwatch("blue", c.SetStrokeColor),
		newColorSwatch("orange", c.SetStrokeColor),
	)

	fillSelect := widget.NewSelect(
		[]string{"none", "white", "yellow", "red", "green", "blue", "gray"},
		c.SetFillColor)
	fillSelect.SetSelected("none")

	strokeSlider := widget.NewSlider(1, 20)
	strokeSlider.SetValue(2)
	strokeSlider.OnChanged = func(v float64) { c.SetStrokeWidth(v) }
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	fontSelect := widget.NewSelect(fontSizes, func(s string) {
		if size, err := strconv.ParseFloat(s, 64); err == nil {
			c.SetFontSize(size)
		}
	})
	fontSelect.SetSelected("16")

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Stroke:"),
		strokeBox,
		sliderBox,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		fillSelect,
		widget.NewLabel("Font:"),
		fontSelect,
		layout.NewSpacer(),
	)
}
