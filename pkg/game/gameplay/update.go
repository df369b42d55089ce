package gameplay

import (
	"darkmaze/pkg/game/state"
)

// Update advances one frame of game time: drains the power pool, applies
// the resulting light visuals and handles any pickups the player is
// standing on. dt is in seconds.
func Update(g *state.Game, dt float64) {
	g.Power.Tick(dt)
	CollectNearby(g)
}
