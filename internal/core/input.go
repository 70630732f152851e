package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform delivers at most one Action per tick: the latest key seen since
// the previous tick, or ActionNone.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space
	ActionPause          // P
	ActionRestart        // R - restart after game over
	ActionQuit           // F1, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
