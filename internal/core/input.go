package core

// Action represents a semantic platform action, abstracted from physical key
// presses. Movement is not an Action: sustained movement intent is carried by
// IntentFrame instead, because terminals deliver key repeats rather than
// press/release pairs.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection (start run, pick skill, submit name)
	ActionBack           // Esc - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/unpause
	ActionSelect1        // 1 - first skill offer
	ActionSelect2        // 2 - second skill offer
	ActionSelect3        // 3 - third skill offer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	default:
		return "Unknown"
	}
}

// IntentFrame is the normalized per-tick movement intent consumed by the
// simulation. The platform aggregates whatever input devices it has (keyboard
// repeat, SSH session keys) into this one signal.
//
// TryingToJump is a one-shot: the simulation calls ConsumeJump once the jump
// has been applied, so a single press never produces two jumps even if the
// player stays grounded across ticks.
type IntentFrame struct {
	MovingLeft   bool
	MovingRight  bool
	TryingToJump bool
}

// ConsumeJump clears the one-shot jump intent.
func (f *IntentFrame) ConsumeJump() {
	f.TryingToJump = false
}

// Idle returns true if no movement intent is active.
func (f IntentFrame) Idle() bool {
	return !f.MovingLeft && !f.MovingRight && !f.TryingToJump
}
