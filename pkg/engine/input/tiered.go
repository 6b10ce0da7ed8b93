package input

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight

	// Meta / UI
	ActionConfirm // consumed by presentation only
	ActionQuit
	ActionDump // write a frame dump (developer tool)
)

// Intent is the per-frame description of what the player wants to do.
// Directional flags are held-key states, not edges; all of them may be set
// at once.
type Intent struct {
	Forward   bool
	Back      bool
	Left      bool // strafe
	Right     bool // strafe
	TurnLeft  bool
	TurnRight bool

	// YawDelta is the horizontal pointer movement since the previous frame,
	// in pixels. It only turns the player while Dragging is set.
	YawDelta float64
	Dragging bool

	Confirm bool
	Exit    bool
	Dump    bool
}

// Apply sets the flag corresponding to an action.
func (in *Intent) Apply(a Action) {
	switch a {
	case ActionMoveForward:
		in.Forward = true
	case ActionMoveBack:
		in.Back = true
	case ActionStrafeLeft:
		in.Left = true
	case ActionStrafeRight:
		in.Right = true
	case ActionTurnLeft:
		in.TurnLeft = true
	case ActionTurnRight:
		in.TurnRight = true
	case ActionConfirm:
		in.Confirm = true
	case ActionQuit:
		in.Exit = true
	case ActionDump:
		in.Dump = true
	}
}

// IsIdle reports whether the intent asks for no movement or turning.
func (in Intent) IsIdle() bool {
	return !in.Forward && !in.Back && !in.Left && !in.Right &&
		!in.TurnLeft && !in.TurnRight && (!in.Dragging || in.YawDelta == 0)
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "key_w", "arrow_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (WASD, arrows for turning, comma/period as an alternate strafe)
	"key_w":       ActionMoveForward,
	"arrow_up":    ActionMoveForward,
	"key_s":       ActionMoveBack,
	"arrow_down":  ActionMoveBack,
	"key_a":       ActionStrafeLeft,
	",":           ActionStrafeLeft,
	"key_d":       ActionStrafeRight,
	".":           ActionStrafeRight,
	"arrow_left":  ActionTurnLeft,
	"key_q":       ActionTurnLeft,
	"arrow_right": ActionTurnRight,
	"key_e":       ActionTurnRight,

	"enter": ActionConfirm,
	"space": ActionConfirm,

	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"f9": ActionDump,
}

// reserved codes can never be rebound or unbound.
var reserved = map[string]bool{
	"escape": true,
	"ctrl_c": true,
	"enter":  true,
}

// MapToAction applies the current bindings to a raw input.
func MapToAction(ev RawInput) Action {
	if act, ok := bindings[ev.Code]; ok {
		return act
	}
	return ActionNone
}

// IntentFromCodes builds an intent from the set of codes held this frame.
func IntentFromCodes(codes []string) Intent {
	var in Intent
	for _, c := range codes {
		in.Apply(MapToAction(RawInput{Code: c}))
	}
	return in
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionDump:
		return "Dump Frame"
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
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes are left untouched.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// actionKeys names the rebindable actions in configuration files.
var actionKeys = map[string]Action{
	"move_forward": ActionMoveForward,
	"move_back":    ActionMoveBack,
	"strafe_left":  ActionStrafeLeft,
	"strafe_right": ActionStrafeRight,
	"turn_left":    ActionTurnLeft,
	"turn_right":   ActionTurnRight,
	"confirm":      ActionConfirm,
	"quit":         ActionQuit,
	"dump":         ActionDump,
}

// ErrUnknownAction is returned for a binding that names no action.
var ErrUnknownAction = errors.New("unknown action")

// ActionFromKey looks up an action by its configuration key, e.g.
// "strafe_left".
func ActionFromKey(key string) (Action, bool) {
	a, ok := actionKeys[key]
	return a, ok
}

// ApplyBindings rebinds each action key in m to its single code, in key
// order. Nothing is changed if any key is unknown.
func ApplyBindings(m map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		if _, ok := actionKeys[k]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		SetSingleBinding(actionKeys[k], m[k])
	}
	return nil
}
