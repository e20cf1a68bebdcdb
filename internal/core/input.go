package core

// Action represents a semantic game command, abstracted from physical keys.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // Up arrow, W
	ActionMoveDown         // Down arrow, S
	ActionMoveLeft         // Left arrow, A
	ActionMoveRight        // Right arrow, D
	ActionFire             // Space
	ActionConfirm          // Enter, R, pointer release - restart after a round ends
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the facing a movement action maps to.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionMoveUp:
		return North, true
	case ActionMoveDown:
		return South, true
	case ActionMoveLeft:
		return West, true
	case ActionMoveRight:
		return East, true
	default:
		return East, false
	}
}

// MovementActions lists every directional action.
var MovementActions = []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}

// InputEvent is a single press or release of an action.
type InputEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame holds the input events that arrived between two simulation ticks.
// Order matters: a release after a press must be applied after it.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]InputEvent, 0, 4),
	}
}

// Press records a press of the given action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Pressed: true})
}

// Release records a release of the given action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Pressed: false})
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
