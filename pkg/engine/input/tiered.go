// Package input translates raw device events into high-level game intents.
// The layering (raw event, debounce, bindings, intent) is kept explicit so
// each renderer can feed its own raw codes into the same bindings table.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Flashlight
	ActionToggleFlashlight
	ActionFlashlightUp
	ActionFlashlightDown

	// Meta / UI
	ActionRestart
	ActionToggleMap
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device. Code is a
// device-specific identifier (e.g. "KeyW", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// The underlying libraries (Ebiten, terminal raw mode) already debounce for
// us, but the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Flashlight
	"f": ActionToggleFlashlight,
	"+": ActionFlashlightUp,
	"=": ActionFlashlightUp,
	"-": ActionFlashlightDown,

	// Meta
	"r":      ActionRestart,
	"m":      ActionToggleMap,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input and
// returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionToggleFlashlight:
		return "Toggle Flashlight"
	case ActionFlashlightUp:
		return "Flashlight Brighter"
	case ActionFlashlightDown:
		return "Flashlight Dimmer"
	case ActionRestart:
		return "Restart"
	case ActionToggleMap:
		return "Toggle Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
