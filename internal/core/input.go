package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the controller to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K - move the active cell up
	ActionDown           // Down arrow, S, J - move the active cell down
	ActionLeft           // Left arrow, A, H - move the active cell left
	ActionRight          // Right arrow, D, L - move the active cell right
	ActionConfirm        // Enter, Space - place a marker at the active cell
	ActionQuit           // Ctrl+C always; any key once the game is over
	ActionHelp           // ? - toggle the full help footer
	ActionScreenshot     // Ctrl+S - save the composed canvas to a file
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
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Delta returns the row/column step of a directional action.
// ok is false for non-directional actions.
func (a Action) Delta() (dRow, dCol int, ok bool) {
	switch a {
	case ActionUp:
		return -1, 0, true
	case ActionDown:
		return 1, 0, true
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	}
	return 0, 0, false
}
