package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the runner to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Up, Space, W - avoid bottom obstacles
	ActionDuck           // Down, Ctrl+Down, S - avoid top obstacles
	ActionRestart        // Start a new session after a crash
	ActionQuit           // Q, Ctrl+C - exit
	ActionBack           // B, Escape - back to menu
	ActionHelp           // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action changes the player's stance.
func (a Action) IsMove() bool {
	return a == ActionJump || a == ActionDuck
}
