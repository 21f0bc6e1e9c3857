package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapAction translates a key message to a semantic action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	case "1":
		return core.ActionSelect1, false
	case "2":
		return core.ActionSelect2, false
	case "3":
		return core.ActionSelect3, false
	}
	return core.ActionNone, false
}

// Terminals deliver key repeats, not press/release pairs, so a held key
// shows up as a burst of KeyMsg events. A movement key is treated as held
// until its repeat stream has been silent for holdWindow.
const holdWindow = 150 * time.Millisecond

// IntentTracker converts repeat-based key events into sustained movement
// intent for the simulation.
type IntentTracker struct {
	leftUntil  time.Time
	rightUntil time.Time
	jump       bool
}

// Press registers a movement key event. Returns false if the key is not a
// movement key.
func (t *IntentTracker) Press(msg tea.KeyMsg, now time.Time) bool {
	switch msg.String() {
	case "a", "left":
		t.leftUntil = now.Add(holdWindow)
	case "d", "right":
		t.rightUntil = now.Add(holdWindow)
	case "w", "up", " ":
		t.jump = true
	default:
		return false
	}
	return true
}

// Frame builds the per-tick intent snapshot for the simulation.
func (t *IntentTracker) Frame(now time.Time) core.IntentFrame {
	return core.IntentFrame{
		MovingLeft:   now.Before(t.leftUntil),
		MovingRight:  now.Before(t.rightUntil),
		TryingToJump: t.jump,
	}
}

// Sync copies the jump state back after a tick: the simulation clears
// TryingToJump once a jump has been applied, and that consumption has to
// stick across ticks.
func (t *IntentTracker) Sync(f *core.IntentFrame) {
	t.jump = f.TryingToJump
}

// Clear drops all pending intent, used on pause and state transitions.
func (t *IntentTracker) Clear() {
	*t = IntentTracker{}
}
