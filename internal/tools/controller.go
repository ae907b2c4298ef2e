package tools

import (
	"math"
	"strings"

	log "github.com/sirupsen/logrus"

	"sketchboard/internal/state"
)

type mode int

const (
	modeIdle mode = iota
	modeDrawingPath
	modeDraggingShape
	modePlacingText
)

// Controller is the tool state machine. It owns all scene mutation:
// pointer events arrive through Press/Move/Release, and every gesture
// that changes the committed sequence records a history snapshot and
// notifies the observer with the full sequence exactly once.
type Controller struct {
	scene   *state.Scene
	history *state.History
	hit     HitOptions

	tool  Tool
	style state.Style

	mode   mode
	buf    []state.Point // pen point buffer
	anchor state.Point   // shape drag / text placement anchor
	last   state.Point

	// OnSceneChanged receives the full updated sequence after each
	// committed gesture, undo/redo restore, or clear.
	OnSceneChanged func([]state.Element)

	// RequestText is invoked when the text tool enters its dialog
	// sub-state. The dialog resolves it via ConfirmText or CancelText;
	// until then all pointer events are ignored.
	RequestText func()
}

func NewController(scene *state.Scene, history *state.History, hit HitOptions) *Controller {
	c := &Controller{
		scene:   scene,
		history: history,
		hit:     hit,
		tool:    ToolPen,
		style:   state.DefaultStyle(),
	}
	// Seed history with the empty scene so the first edit is undoable.
	history.AddState(scene.Elements())
	return c
}

func (c *Controller) Tool() Tool { return c.tool }

// SetTool switches the active tool. Ignored while the text dialog is
// open; a gesture still in flight is ended as if the pointer had left
// the surface, so a half-dragged shape is committed rather than left
// dangling in the scene.
func (c *Controller) SetTool(t Tool) {
	if c.mode == modePlacingText {
		return
	}
	c.Leave()
	c.tool = t
}

// Style setters affect only elements created afterwards.

func (c *Controller) Style() state.Style           { return c.style }
func (c *Controller) SetStrokeColor(col string)    { c.style.StrokeColor = col }
func (c *Controller) SetFillColor(col string)      { c.style.FillColor = col }
func (c *Controller) SetStrokeWidth(width float64) { c.style.StrokeWidth = width }
func (c *Controller) SetFontSize(size float64)     { c.style.FontSize = size }

// Press begins a gesture at p under the current tool.
func (c *Controller) Press(p state.Point) {
	if c.mode == modePlacingText {
		return
	}
	c.last = p
	switch c.tool {
	case ToolPen:
		c.buf = []state.Point{p}
		c.mode = modeDrawingPath
	case ToolRect:
		c.scene.Append(state.NewRectElement(p.X, p.Y, c.style))
		c.anchor = p
		c.mode = modeDraggingShape
	case ToolCircle:
		c.scene.Append(state.NewCircleElement(p.X, p.Y, c.style))
		c.anchor = p
		c.mode = modeDraggingShape
	case ToolText:
		c.anchor = p
		c.mode = modePlacingText
		if c.RequestText != nil {
			c.RequestText()
		}
	case ToolEraser:
		c.erase(p)
	case ToolSelect:
		// reserved; no scene mutation
	}
}

// Move extends the gesture to p.
func (c *Controller) Move(p state.Point) {
	c.last = p
	switch c.mode {
	case modeDrawingPath:
		c.buf = append(c.buf, p)
	case modeDraggingShape:
		// Dimensions are recomputed from the anchor on every move, never
		// accumulated, so jitter cannot compound.
		c.scene.ResizeLast(math.Abs(p.X-c.anchor.X), math.Abs(p.Y-c.anchor.Y))
	}
}

// Release ends the gesture at p and commits its result, if any.
func (c *Controller) Release(p state.Point) {
	switch c.mode {
	case modeDrawingPath:
		c.mode = modeIdle
		if len(c.buf) >= 2 {
			c.scene.Append(state.NewPathElement(c.buf, c.style))
			c.commit()
		}
		c.buf = nil
	case modeDraggingShape:
		c.mode = modeIdle
		c.scene.ResizeLast(math.Abs(p.X-c.anchor.X), math.Abs(p.Y-c.anchor.Y))
		c.commit()
	}
}

// Leave is the release-equivalent fired when the pointer exits the
// surface mid-gesture.
func (c *Controller) Leave() {
	if c.mode == modeDrawingPath || c.mode == modeDraggingShape {
		c.Release(c.last)
	}
}

// ConfirmText resolves the text dialog sub-state. Empty or
// whitespace-only input is silently discarded.
func (c *Controller) ConfirmText(text string) {
	if c.mode != modePlacingText {
		return
	}
	c.mode = modeIdle
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c.scene.Append(state.NewTextElement(c.anchor.X, c.anchor.Y, text, c.style))
	c.commit()
}

// CancelText resolves the text dialog sub-state without creating
// anything.
func (c *Controller) CancelText() {
	if c.mode == modePlacingText {
		c.mode = modeIdle
	}
}

// LivePath exposes the in-progress pen buffer for the live renderer.
// Returns nil when no pen gesture is active.
func (c *Controller) LivePath() []state.Point {
	if c.mode != modeDrawingPath {
		return nil
	}
	return append([]state.Point(nil), c.buf...)
}

// Gesturing reports whether a pen or drag gesture is in flight.
func (c *Controller) Gesturing() bool {
	return c.mode == modeDrawingPath || c.mode == modeDraggingShape
}

func (c *Controller) erase(p state.Point) {
	// Topmost first: reverse paint order, remove the first hit only.
	for i := c.scene.Len() - 1; i >= 0; i-- {
		if Hit(c.hit, p, c.scene.At(i)) {
			id := c.scene.At(i).ID
			c.scene.RemoveAt(i)
			log.WithField("id", id).Debug("erased element")
			c.commit()
			return
		}
	}
}

// Clear empties the scene on explicit user action.
func (c *Controller) Clear() {
	if c.mode == modePlacingText {
		return
	}
	c.mode = modeIdle
	c.buf = nil
	c.scene.Clear()
	c.commit()
}

// Undo restores the previous snapshot. A no-op at the oldest snapshot.
func (c *Controller) Undo() {
	if els, ok := c.history.Undo(); ok {
		c.scene.Replace(els)
		c.notify()
	}
}

// Redo restores the next snapshot. A no-op at the newest snapshot.
func (c *Controller) Redo() {
	if els, ok := c.history.Redo(); ok {
		c.scene.Replace(els)
		c.notify()
	}
}

// commit records the post-gesture scene in history and notifies the
// observer. Called exactly once per committed gesture.
func (c *Controller) commit() {
	els := c.scene.Elements()
	c.history.AddState(els)
	if c.OnSceneChanged != nil {
		c.OnSceneChanged(els)
	}
}

// notify informs the observer without recording history; undo and redo
// restores go through here.
func (c *Controller) notify() {
	if c.OnSceneChanged != nil {
		c.OnSceneChanged(c.scene.Elements())
	}
}
