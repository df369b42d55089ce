// Package ebiten provides an Ebiten-based 2D top-down renderer for
// Darkmaze. Unlike the TUI backend it runs in real time: held keys move
// the player continuously and the power pool drains every frame.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/state"
)

// Logical screen size; the maze view scales to fit inside it.
const (
	screenWidth  = 960
	screenHeight = 720
	hudHeight    = 60
)

// moveSpeed is player movement in world units per second.
const moveSpeed = 6.0

// EbitenRenderer runs the real-time game loop and draws the maze.
type EbitenRenderer struct {
	game *state.Game
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Run takes over the main loop. It returns when the player quits or the
// window is closed.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(gotext.Get("Darkmaze"))

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update handles one frame of input and game logic (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	g := e.game
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
		gameplay.RevealAroundPlayer(g)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		gameplay.ToggleFlashlight(g)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		gameplay.RaiseFlashlightLevel(g)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		gameplay.LowerFlashlightLevel(g)
	}

	dx, dz := moveDelta(dt)
	if dx != 0 || dz != 0 {
		gameplay.Move(g, dx, dz)
	}

	gameplay.Update(g, dt)
	return nil
}

// moveDelta reads the held movement keys and returns this frame's world
// space displacement.
func moveDelta(dt float64) (dx, dz float64) {
	step := moveSpeed * dt

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dz -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dz += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += step
	}
	return dx, dz
}

// Layout returns the logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
