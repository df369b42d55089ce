// Package gameplay provides core game logic: movement, collection and the
// flashlight. Functions mutate the shared *state.Game; renderers only read.
package gameplay

import (
	"darkmaze/pkg/game/state"
)

// Flashlight level bounds.
const (
	MinFlashlightLevel = 1
	MaxFlashlightLevel = 5
)

// ToggleFlashlight flips the flashlight on or off and pushes the resulting
// drain to the power simulation.
func ToggleFlashlight(g *state.Game) {
	g.FlashlightOn = !g.FlashlightOn
	pushFlashlightRate(g)
}

// SetFlashlightLevel clamps and remembers the brightness level. The level
// is remembered even while the flashlight is off, but the new rate reaches
// the simulation only while it is on; toggling on later pushes it.
func SetFlashlightLevel(g *state.Game, level int) {
	if level < MinFlashlightLevel {
		level = MinFlashlightLevel
	}
	if level > MaxFlashlightLevel {
		level = MaxFlashlightLevel
	}
	g.FlashlightLevel = level

	if g.FlashlightOn {
		pushFlashlightRate(g)
	}
}

// RaiseFlashlightLevel increments the brightness level, clamped at max.
func RaiseFlashlightLevel(g *state.Game) {
	SetFlashlightLevel(g, g.FlashlightLevel+1)
}

// LowerFlashlightLevel decrements the brightness level, clamped at min.
func LowerFlashlightLevel(g *state.Game) {
	SetFlashlightLevel(g, g.FlashlightLevel-1)
}

// FlashlightRate returns the drain in units/sec for the current level.
func FlashlightRate(g *state.Game) float64 {
	return g.Cfg.Power.FlashlightRates[g.FlashlightLevel-1]
}

// pushFlashlightRate tells the simulation what the flashlight drains right
// now: the level's rate while on, zero while off.
func pushFlashlightRate(g *state.Game) {
	rate := 0.0
	if g.FlashlightOn {
		rate = FlashlightRate(g)
	}
	g.Power.SetRate(state.FlashlightID, rate)
}
