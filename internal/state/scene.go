package state

// Scene is the ordered collection of committed elements. Insertion order
// is paint order: later elements draw on top.
//
// All mutation happens synchronously inside pointer/keyboard handlers on
// the UI goroutine, so the scene carries no lock. Consumers that need to
// keep a reference across events (history, exporters, the AI snapshot)
// get deep copies.
type Scene struct {
	elements []Element
}

func NewScene() *Scene {
	return &Scene{elements: make([]Element, 0)}
}

// Append adds a fully-formed element on top of the paint order.
func (s *Scene) Append(el Element) {
	s.elements = append(s.elements, el)
}

// Replace swaps the whole sequence, copying the input so the caller's
// slice stays independent. Used by undo/redo restores.
func (s *Scene) Replace(els []Element) {
	s.elements = CloneElements(els)
	if s.elements == nil {
		s.elements = make([]Element, 0)
	}
}

// Elements returns a deep copy of the current sequence in paint order.
func (s *Scene) Elements() []Element {
	return CloneElements(s.elements)
}

func (s *Scene) Len() int {
	return len(s.elements)
}

// At returns the element at index i without copying; callers must not
// hold the value across a mutation.
func (s *Scene) At(i int) Element {
	return s.elements[i]
}

// RemoveAt deletes the element at index i, preserving order. Only the
// eraser and clear remove elements.
func (s *Scene) RemoveAt(i int) {
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
}

// Clear empties the scene.
func (s *Scene) Clear() {
	s.elements = s.elements[:0]
}

// ResizeLast adjusts the dimensions of the most recently appended
// element. It exists for the in-progress shape drag and is owned by the
// interaction controller; nothing else may call it.
func (s *Scene) ResizeLast(w, h float64) {
	if len(s.elements) == 0 {
		return
	}
	last := &s.elements[len(s.elements)-1]
	last.W, last.H = w, h
}
