package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/power"
	"darkmaze/pkg/game/state"
)

// ExitRadius is how close the player must be to the exit to finish.
const ExitRadius = 1.5

// Move attempts a world-space move, sliding along walls axis by axis so a
// diagonal into a corner still makes progress along the open axis.
func Move(g *state.Game, dx, dz float64) {
	pos := g.Player

	if !g.Maze.IsWall(pos.X+dx, pos.Z) {
		pos.X += dx
	}
	if !g.Maze.IsWall(pos.X, pos.Z+dz) {
		pos.Z += dz
	}

	g.Player = pos
	RevealAroundPlayer(g)

	if !g.Won && g.Maze.CheckAtExit(g.Player, ExitRadius) {
		g.Won = true
		g.AddMessage(gotext.Get("You found the exit!"))
	}
}

// RevealAroundPlayer marks every cell in the player's field of view as
// discovered. Sight shrinks with the power state: 4 cells on healthy
// power down to 1 when the pool is empty.
func RevealAroundPlayer(g *state.Game) {
	x, z := g.Maze.WorldToCell(g.Player.X, g.Player.Z)

	for _, cell := range world.CalculateFOV(g.Maze, x, z, sightRadiusFor(g)) {
		g.Discovered.Put(cell)
	}
}

// sightRadiusFor maps the power state to a field-of-view radius in cells.
func sightRadiusFor(g *state.Game) int {
	switch g.Power.State() {
	case power.StateDepleted:
		return 1
	case power.StateCritical:
		return 2
	case power.StateLow:
		return 3
	default:
		return 4
	}
}
