package tools

import "sketchboard/internal/state"

// Config carries the session parameters. Zero values fall back to the
// package defaults.
type Config struct {
	CanvasWidth     float64
	CanvasHeight    float64
	HistoryCapacity int
	Hit             HitOptions
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:     1024,
		CanvasHeight:    704,
		HistoryCapacity: state.DefaultHistoryCapacity,
		Hit:             DefaultHitOptions(),
	}
}

// Session is the explicit handle tying one scene, its history, and its
// controller together. It is passed through the interaction layer; there
// is no package-level "current session".
type Session struct {
	Scene      *state.Scene
	History    *state.History
	Controller *Controller

	CanvasWidth  float64
	CanvasHeight float64
}

func NewSession(cfg Config) *Session {
	def := DefaultConfig()
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.Hit == (HitOptions{}) {
		cfg.Hit = def.Hit
	}
	scene := state.NewScene()
	history := state.NewHistory(cfg.HistoryCapacity)
	return &Session{
		Scene:        scene,
		History:      history,
		Controller:   NewController(scene, history, cfg.Hit),
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
	}
}

// Snapshot captures the serializable scene view for external consumers.
func (s *Session) Snapshot() state.Snapshot {
	return state.TakeSnapshot(s.Scene.Elements(), s.CanvasWidth, s.CanvasHeight)
}
