// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the time one frame may feed the simulation, so a stalled
// terminal does not replay seconds of play at once.
const maxFrame = 250 * time.Millisecond

// TickMsg is sent to draw a frame. It carries the time it fired.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at fps frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures real time between frames.
type frameClock struct {
	last time.Time
}

// Advance returns the time since the previous call, clamped to [0, maxFrame].
// The first call returns zero.
func (c *frameClock) Advance(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return min(max(d, 0), maxFrame)
}

// Reset forgets the previous frame.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
