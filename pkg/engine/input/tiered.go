package input

import "time"

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Interaction
	ActionInteract // Talk to / inspect what the actor faces (Space, Enter, A button)
	ActionClose    // Close the open modal or text box (Escape, X, B button)

	// Meta
	ActionToggleDebug  // Grid and zone overlay (G)
	ActionDebugMapDump // Write the collision/zone map to a file (F8)
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action

	// Repeat is set when the intent comes from a key that is being held rather
	// than freshly pressed. Held movement keeps walking; only fresh presses
	// are allowed to close dialogs.
	Repeat bool
}

// IsMove reports whether the intent is one of the four movement actions
func (i Intent) IsMove() bool {
	switch i.Action {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast:
		return true
	default:
		return false
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "GamepadDPadUp").
type RawInput struct {
	Device    Device
	Code      string
	Held      bool
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
	Held   bool
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Held:   raw.Held,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows and WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	// Interaction
	"space":     ActionInteract,
	"enter":     ActionInteract,
	"e":         ActionInteract,
	"escape":    ActionClose,
	"x":         ActionClose,
	"backspace": ActionClose,

	// Meta
	"g":  ActionToggleDebug,
	"f8": ActionDebugMapDump,
	"q":  ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_a":          ActionInteract,
	"gamepad_b":          ActionClose,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Repeat: ev.Held}
	}
	return Intent{Action: ActionNone}
}

// Translate runs a raw event through every layer
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionInteract:
		return "Interact"
	case ActionClose:
		return "Close"
	case ActionToggleDebug:
		return "Toggle Debug"
	case ActionDebugMapDump:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
