// Package power simulates the shared power pool: registered consumers
// drain it over time, collected lootboxes recharge it, and threshold
// states drive dimming and flicker on every registered light.
package power

// State is the discrete power state derived from the pool percentage.
type State int

// Power states. Thresholds are recomputed every tick with no hysteresis
// band, so the state can flap right at a boundary; that matches the
// original tuning and is kept deliberately.
const (
	StateNormal   State = iota // > 40%
	StateLow                   // <= 40%, > 20%
	StateCritical              // <= 20%, > 0
	StateDepleted              // exactly 0
)

// String returns the string representation of a power state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateLow:
		return "Low"
	case StateCritical:
		return "Critical"
	case StateDepleted:
		return "Depleted"
	default:
		return "Unknown"
	}
}

// Threshold percentages for the dim and flicker states.
const (
	lowThreshold      = 40.0
	criticalThreshold = 20.0
)

// stateFor derives the discrete state from a pool percentage.
func stateFor(percentage float64) State {
	switch {
	case percentage <= 0:
		return StateDepleted
	case percentage <= criticalThreshold:
		return StateCritical
	case percentage <= lowThreshold:
		return StateLow
	default:
		return StateNormal
	}
}
