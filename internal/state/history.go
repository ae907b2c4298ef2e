package state

import "time"

// DefaultHistoryCapacity bounds how many snapshots the history keeps.
const DefaultHistoryCapacity = 50

// HistoryEntry is an immutable deep copy of the scene at one point in the
// edit history.
type HistoryEntry struct {
	Elements []Element
	Time     time.Time
}

// History is a bounded snapshot stack with a cursor. The cursor always
// points at the snapshot matching the current scene; entries past it are
// redo state and are discarded by the next edit.
type History struct {
	entries  []HistoryEntry
	cursor   int
	capacity int
}

// NewHistory creates a history holding at most capacity snapshots.
// Non-positive capacities fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{cursor: -1, capacity: capacity}
}

// AddState records the scene after a mutation. Any redo entries beyond
// the cursor are dropped first; if the stack then exceeds capacity the
// oldest snapshot is evicted and the cursor shifts to stay valid.
func (h *History) AddState(els []Element) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, HistoryEntry{
		Elements: CloneElements(els),
		Time:     time.Now(),
	})
	h.cursor++
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
		h.cursor--
	}
}

// Undo steps the cursor back and returns that snapshot. At the oldest
// snapshot it reports false and changes nothing.
func (h *History) Undo() ([]Element, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return CloneElements(h.entries[h.cursor].Elements), true
}

// Redo steps the cursor forward and returns that snapshot. At the newest
// snapshot it reports false and changes nothing.
func (h *History) Redo() ([]Element, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return CloneElements(h.entries[h.cursor].Elements), true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.entries) }

// Clear resets the history to empty.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
