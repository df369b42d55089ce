// Package renderer defines the rendering backend interface and holds the
// active backend. Backends draw a bird's-eye debug view of the maze; the
// game logic never imports a concrete backend.
package renderer

import (
	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations can include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the map, the power HUD
	// and the message log.
	RenderFrame(g *state.Game)

	// ReadIntent gets the next player intent (blocking for TUI,
	// event-based for GUI).
	ReadIntent() input.Intent
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}
