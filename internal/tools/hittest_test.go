package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sketchboard/internal/state"
)

func TestHitRect(t *testing.T) {
	el := state.NewRectElement(10, 20, state.DefaultStyle())
	el.W, el.H = 30, 40
	o := DefaultHitOptions()

	assert.True(t, Hit(o, state.Point{X: 10, Y: 20}, el), "the anchor is always a hit")
	assert.True(t, Hit(o, state.Point{X: 40, Y: 60}, el), "the far corner is inclusive")
	assert.False(t, Hit(o, state.Point{X: 41, Y: 61}, el),
		"anchor + (width+1, height+1) is never a hit")
	assert.False(t, Hit(o, state.Point{X: 9, Y: 20}, el))
}

func TestHitCircleUsesWidthAsRadius(t *testing.T) {
	el := state.NewCircleElement(100, 100, state.DefaultStyle())
	el.W = 25
	el.H = 999 // tracked during drag, ignored here
	o := DefaultHitOptions()

	assert.True(t, Hit(o, state.Point{X: 100, Y: 100}, el))
	assert.True(t, Hit(o, state.Point{X: 125, Y: 100}, el), "the rim is inclusive")
	assert.False(t, Hit(o, state.Point{X: 126, Y: 100}, el))
	assert.False(t, Hit(o, state.Point{X: 100, Y: 126}, el),
		"H must not widen the hit area")
}

func TestHitPathVertexTolerance(t *testing.T) {
	el := state.NewPathElement([]state.Point{{0, 0}, {100, 0}}, state.DefaultStyle())
	o := DefaultHitOptions()

	assert.True(t, Hit(o, state.Point{X: 5, Y: 5}, el))
	assert.True(t, Hit(o, state.Point{X: 100, Y: 10}, el))
	// Vertices only: the segment midpoint is outside both tolerance
	// circles even though it lies exactly on the polyline.
	assert.False(t, Hit(o, state.Point{X: 50, Y: 0}, el))
}

func TestHitTextEstimatedBox(t *testing.T) {
	el := state.NewTextElement(10, 60, "Submit", state.DefaultStyle())
	o := DefaultHitOptions()
	// 6 chars * 8 = 48 wide, 20 tall, above and right of the baseline
	// anchor.
	assert.True(t, Hit(o, state.Point{X: 11, Y: 50}, el))
	assert.True(t, Hit(o, state.Point{X: 58, Y: 41}, el))
	assert.False(t, Hit(o, state.Point{X: 59, Y: 50}, el), "past the estimated width")
	assert.False(t, Hit(o, state.Point{X: 11, Y: 61}, el), "below the baseline")
	assert.False(t, Hit(o, state.Point{X: 11, Y: 39}, el), "above the box")
}

func TestHitOptionsAreConfigurable(t *testing.T) {
	el := state.NewPathElement([]state.Point{{0, 0}, {100, 0}}, state.DefaultStyle())
	wide := HitOptions{PathTolerance: 60, TextCharWidth: 8, TextBoxHeight: 20}
	assert.True(t, Hit(wide, state.Point{X: 50, Y: 0}, el))
}
