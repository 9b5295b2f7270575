package core

// Action represents a semantic input action, abstracted from physical key
// presses. The key mapper produces these; models consume them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - move board cursor up
	ActionDown           // S, Down arrow, j - move board cursor down
	ActionLeft           // A, Left arrow, h - move board cursor left
	ActionRight          // D, Right arrow, l - move board cursor right
	ActionPlace          // Enter, Space - place a piece at the cursor
	ActionPass           // P - skip the current turn
	ActionNewGame        // N - reset to a fresh game
	ActionHistory        // T - open the match history screen
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionPlace:
		return "Place"
	case ActionPass:
		return "Pass"
	case ActionNewGame:
		return "NewGame"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
