package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunarbyte/shellstorm/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapActionQuitKeys(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q"} {
		action, isQuit := km.MapAction(keyMsg(key))
		if !isQuit || action != core.ActionQuit {
			t.Errorf("key %q: action=%v quit=%v", key, action, isQuit)
		}
	}

	action, isQuit := km.MapAction(keyMsg("x"))
	if isQuit || action != core.ActionNone {
		t.Errorf("unbound key: action=%v quit=%v", action, isQuit)
	}
}

func TestMapActionSkillSelection(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]core.Action{
		"1": core.ActionSelect1,
		"2": core.ActionSelect2,
		"3": core.ActionSelect3,
		"p": core.ActionPause,
		"r": core.ActionRestart,
	}
	for key, want := range tests {
		if action, _ := km.MapAction(keyMsg(key)); action != want {
			t.Errorf("key %q mapped to %v, want %v", key, action, want)
		}
	}
}

func TestIntentTrackerHoldWindow(t *testing.T) {
	var tr IntentTracker
	now := time.Now()

	if !tr.Press(keyMsg("d"), now) {
		t.Fatal("d should be a movement key")
	}

	// Within the hold window the intent stays active
	frame := tr.Frame(now.Add(holdWindow / 2))
	if !frame.MovingRight {
		t.Error("intent should persist inside the hold window")
	}

	// After the window with no repeat the intent drops
	frame = tr.Frame(now.Add(holdWindow * 2))
	if frame.MovingRight {
		t.Error("intent should expire after the hold window")
	}
}

func TestIntentTrackerJumpConsumption(t *testing.T) {
	var tr IntentTracker
	now := time.Now()

	tr.Press(keyMsg(" "), now)
	frame := tr.Frame(now)
	if !frame.TryingToJump {
		t.Fatal("jump press should set the intent")
	}

	// Simulation consumed the jump; sync must clear the pending flag
	frame.ConsumeJump()
	tr.Sync(&frame)
	if tr.Frame(now).TryingToJump {
		t.Error("consumed jump should not re-fire on the next tick")
	}
}

func TestIntentTrackerClear(t *testing.T) {
	var tr IntentTracker
	now := time.Now()

	tr.Press(keyMsg("a"), now)
	tr.Press(keyMsg(" "), now)
	tr.Clear()

	if !tr.Frame(now).Idle() {
		t.Error("clear should drop all pending intent")
	}
}
