package sim

import "time"

// Mode is the global game mode. Win and Lose are terminal until the game
// is reset from outside.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeWin
	ModeLose
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeWin:
		return "win"
	case ModeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the mode ends the game.
func (m Mode) Terminal() bool {
	return m == ModeWin || m == ModeLose
}

// DefaultStep is the fixed simulation step, 60 ticks per second.
const DefaultStep = time.Second / 60

// Stepper is a simulation the Loop can drive one fixed step at a time.
type Stepper interface {
	Tick(dt float32)
	Mode() Mode
}

// Loop converts variable frame times into whole fixed steps. Time is kept
// in integer nanoseconds so that the number of ticks depends only on the
// total elapsed time, never on how it was split into frames.
type Loop struct {
	step  time.Duration
	dt    float32
	acc   time.Duration
	ticks uint64
}

// NewLoop creates a loop with the given step. A non-positive step selects
// DefaultStep.
func NewLoop(step time.Duration) *Loop {
	if step <= 0 {
		step = DefaultStep
	}
	return &Loop{step: step, dt: float32(step.Seconds())}
}

// Step returns the fixed step duration.
func (l *Loop) Step() time.Duration {
	return l.step
}

// DT returns the fixed step in seconds, as passed to Tick.
func (l *Loop) DT() float32 {
	return l.dt
}

// Ticks returns the number of steps run since the last Reset.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Pending returns the accumulated time not yet consumed by a step.
func (l *Loop) Pending() time.Duration {
	return l.acc
}

// Reset drops accumulated time and the tick counter.
func (l *Loop) Reset() {
	l.acc = 0
	l.ticks = 0
}

// Advance adds elapsed real time and runs as many fixed steps as fit.
// Once s reports a terminal mode, no further steps run, including the rest
// of the current frame. It returns the number of steps run.
func (l *Loop) Advance(s Stepper, elapsed time.Duration) int {
	if s.Mode().Terminal() {
		return 0
	}
	if elapsed > 0 {
		l.acc += elapsed
	}

	n := 0
	for l.acc >= l.step {
		s.Tick(l.dt)
		l.acc -= l.step
		l.ticks++
		n++
		if s.Mode().Terminal() {
			break
		}
	}
	return n
}
