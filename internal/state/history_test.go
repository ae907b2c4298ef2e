package state

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textScene(labels ...string) []Element {
	els := make([]Element, 0, len(labels))
	for _, l := range labels {
		els = append(els, NewTextElement(0, 0, l, DefaultStyle()))
	}
	return els
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	s1 := textScene("a")
	s2 := textScene("a", "b")
	s3 := textScene("a", "b", "c")
	h.AddState(s1)
	h.AddState(s2)
	h.AddState(s3)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(s2, got))

	got, ok = h.Undo()
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(s1, got))

	_, ok = h.Undo()
	assert.False(t, ok, "undo past the oldest snapshot must be a no-op")

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(s2, got))

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(s3, got))

	_, ok = h.Redo()
	assert.False(t, ok, "redo past the newest snapshot must be a no-op")
}

func TestHistoryUndoAllThenRedoAll(t *testing.T) {
	const n = 20
	h := NewHistory(DefaultHistoryCapacity)
	var last []Element
	labels := []string{}
	for i := 0; i < n; i++ {
		labels = append(labels, fmt.Sprintf("e%d", i))
		last = textScene(labels...)
		h.AddState(last)
	}
	for i := 0; i < n; i++ {
		h.Undo()
	}
	var got []Element
	for i := 0; i < n; i++ {
		if els, ok := h.Redo(); ok {
			got = els
		}
	}
	assert.Empty(t, cmp.Diff(last, got),
		"undo N then redo N must restore the pre-undo scene")
}

func TestHistoryCapacityEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 4; i++ {
		h.AddState(textScene(fmt.Sprintf("e%d", i)))
	}
	assert.Equal(t, 3, h.Len())

	// Two undos reach the oldest retained snapshot (e1); the evicted e0
	// is unrecoverable.
	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "e2", got[0].Text)
	got, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "e1", got[0].Text)
	_, ok = h.Undo()
	assert.False(t, ok)
}

func TestHistoryEditDiscardsRedo(t *testing.T) {
	h := NewHistory(10)
	h.AddState(textScene("a"))
	h.AddState(textScene("a", "b"))
	_, ok := h.Undo()
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.AddState(textScene("a", "c"))
	assert.False(t, h.CanRedo(), "a new edit must clear redo state")
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	h := NewHistory(10)
	scene := []Element{NewPathElement([]Point{{0, 0}, {5, 5}}, DefaultStyle())}
	h.AddState(scene)

	// Mutating the caller's slice must not reach the stored snapshot.
	scene[0].Points[0] = Point{99, 99}
	h.AddState(textScene("x"))
	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, got[0].Points[0])
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	h.AddState(textScene("a"))
	h.Clear()
	assert.Equal(t, 0, h.Len())
	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}
