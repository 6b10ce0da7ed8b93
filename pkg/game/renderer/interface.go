package renderer

import (
	"darkoffice/pkg/game/state"
)

// Renderer defines the interface for presentation backends.
// Implementations include the Ebiten window and the tcell terminal.
type Renderer interface {
	// Init opens the window or terminal.
	Init() error

	// Run owns the frame loop until the player quits or the host closes
	// the backend. Run returns nil on a normal quit.
	Run(g *state.Game) error

	// Close releases whatever Init acquired. Safe to call twice.
	Close()

	// Name identifies the backend in logs.
	Name() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
