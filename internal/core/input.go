package core

import "strings"

// Action is a semantic input intent. Games read actions, never keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // move up: shooter craft, Pong paddle
	ActionDown           // move down
	ActionLeft           // move left
	ActionRight          // move right
	ActionJump           // primary action: thrust, fire, serve
	ActionConfirm        // menu confirm
	ActionBack           // leave to the menu
	ActionRestart        // new run after game over
	ActionQuit           // exit the program or session
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Jump",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsMovement reports whether the action is one of the four directions.
// Frontends without key-release events keep these held for a short window.
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the set of actions active during one frame.
// The zero value is an empty frame; frames are plain values.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active.
func (f *InputFrame) Set(a Action) {
	if a < actionCount {
		f.bits |= 1 << a
	}
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear removes every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Direction returns the held directions as a unit-axis pair.
// Up is +1 on y, matching world coordinates. Opposite keys cancel out.
func (f InputFrame) Direction() (x, y float32) {
	axis := func(neg, pos Action) float32 {
		var v float32
		if f.Has(neg) {
			v--
		}
		if f.Has(pos) {
			v++
		}
		return v
	}
	return axis(ActionLeft, ActionRight), axis(ActionDown, ActionUp)
}

// String lists the active actions, e.g. "Up+Jump".
func (f InputFrame) String() string {
	var names []string
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
