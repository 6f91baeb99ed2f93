package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// holdWindow is how long a movement key counts as held after its last key
// event. Terminals report presses and auto-repeats but never releases.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ": // thrust, fire, serve
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// InputState turns key events into per-frame input. Movement keys stay
// held for holdWindow after each event; every other action fires once.
type InputState struct {
	held    map[core.Action]time.Time // release deadline per movement action
	pressed core.InputFrame
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
	}
}

// Press records a key event at now. Pressing a direction releases the
// opposite one.
func (s *InputState) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.IsMovement() {
		s.pressed.Set(a)
		return
	}
	delete(s.held, opposite(a))
	s.held[a] = now.Add(holdWindow)
}

// Frame returns the input for the frame drawn at now and consumes the
// one-shot presses.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	frame := s.pressed.Clone()
	for a, until := range s.held {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(s.held, a)
		}
	}
	s.pressed.Clear()
	return frame
}

// Reset drops every held and pending action.
func (s *InputState) Reset() {
	clear(s.held)
	s.pressed.Clear()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
