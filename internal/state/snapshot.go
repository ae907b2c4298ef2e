package state

import (
	"encoding/json"
	"io"
)

// ElementSnapshot is the reduced element view handed to external
// consumers: kind, anchor, dimensions where the kind has them, and any
// text payload. Style and point data stay internal.
type ElementSnapshot struct {
	Kind Kind     `json:"kind"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	W    *float64 `json:"w,omitempty"`
	H    *float64 `json:"h,omitempty"`
	Text string   `json:"text,omitempty"`
}

// Snapshot is the serializable scene view consumed by the generative-text
// caller. The core guarantees only the shape of this payload; what comes
// back is the caller's concern.
type Snapshot struct {
	Elements     []ElementSnapshot `json:"elements"`
	CanvasWidth  float64           `json:"canvasWidth"`
	CanvasHeight float64           `json:"canvasHeight"`
}

// TakeSnapshot builds a snapshot from an element sequence and the canvas
// extent.
func TakeSnapshot(els []Element, canvasWidth, canvasHeight float64) Snapshot {
	snap := Snapshot{
		Elements:     make([]ElementSnapshot, 0, len(els)),
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
	}
	for _, el := range els {
		es := ElementSnapshot{Kind: el.Kind, X: el.X, Y: el.Y}
		switch el.Kind {
		case KindRect, KindCircle:
			w, h := el.W, el.H
			es.W, es.H = &w, &h
		case KindText:
			es.Text = el.Text
		case KindPath:
			// anchor only; vertex data stays internal
		}
		snap.Elements = append(snap.Elements, es)
	}
	return snap
}

// Encode writes the snapshot as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
