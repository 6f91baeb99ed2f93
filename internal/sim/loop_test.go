package sim

import (
	"math/rand"
	"testing"
	"time"
)

type countingStepper struct {
	ticks   int
	endAt   int
	endMode Mode
	mode    Mode
	lastDT  float32
}

func (s *countingStepper) Tick(dt float32) {
	s.ticks++
	s.lastDT = dt
	if s.endAt > 0 && s.ticks >= s.endAt {
		s.mode = s.endMode
	}
}

func (s *countingStepper) Mode() Mode { return s.mode }

func TestLoopTickCountIndependentOfChunking(t *testing.T) {
	const k = 600
	total := k * DefaultStep

	chunkings := map[string]func() []time.Duration{
		"single frame": func() []time.Duration {
			return []time.Duration{total}
		},
		"exact steps": func() []time.Duration {
			out := make([]time.Duration, k)
			for i := range out {
				out[i] = DefaultStep
			}
			return out
		},
		"half steps": func() []time.Duration {
			out := make([]time.Duration, 2*k)
			for i := range out {
				out[i] = DefaultStep / 2
			}
			return out
		},
		"random frames": func() []time.Duration {
			rng := rand.New(rand.NewSource(7))
			var out []time.Duration
			left := total
			for left > 0 {
				d := time.Duration(rng.Int63n(int64(50 * time.Millisecond)))
				d = min(d, left)
				out = append(out, d)
				left -= d
			}
			return out
		},
	}

	for name, chunks := range chunkings {
		t.Run(name, func(t *testing.T) {
			l := NewLoop(DefaultStep)
			s := &countingStepper{}
			ran := 0
			for _, d := range chunks() {
				ran += l.Advance(s, d)
			}
			if s.ticks != k || ran != k || l.Ticks() != k {
				t.Errorf("ticks = %d (reported %d, loop %d), expected %d", s.ticks, ran, l.Ticks(), k)
			}
			if l.Pending() != 0 {
				t.Errorf("Pending() = %v, expected 0", l.Pending())
			}
		})
	}
}

func TestLoopCarriesRemainder(t *testing.T) {
	l := NewLoop(10 * time.Millisecond)
	s := &countingStepper{}

	if n := l.Advance(s, 25*time.Millisecond); n != 2 {
		t.Errorf("Advance(25ms) = %d, expected 2", n)
	}
	if l.Pending() != 5*time.Millisecond {
		t.Errorf("Pending() = %v, expected 5ms", l.Pending())
	}
	if n := l.Advance(s, 5*time.Millisecond); n != 1 {
		t.Errorf("Advance(5ms) = %d, expected 1 from the carried remainder", n)
	}
	if s.lastDT != float32(0.01) {
		t.Errorf("dt = %v, expected 0.01", s.lastDT)
	}
	if n := l.Advance(s, -time.Second); n != 0 {
		t.Errorf("Advance(negative) = %d, expected 0", n)
	}
}

func TestLoopFreezesOnTerminalMode(t *testing.T) {
	for _, end := range []Mode{ModeWin, ModeLose} {
		t.Run(end.String(), func(t *testing.T) {
			l := NewLoop(DefaultStep)
			s := &countingStepper{endAt: 3, endMode: end}

			if n := l.Advance(s, 10*DefaultStep); n != 3 {
				t.Errorf("Advance() = %d, expected 3 before the mode turned %v", n, end)
			}
			if n := l.Advance(s, time.Second); n != 0 {
				t.Errorf("Advance() after %v = %d, expected 0", end, n)
			}
			if s.ticks != 3 {
				t.Errorf("ticks = %d, expected 3", s.ticks)
			}

			s.mode = ModePlaying
			l.Reset()
			if l.Ticks() != 0 || l.Pending() != 0 {
				t.Error("Reset() should clear ticks and pending time")
			}
		})
	}
}

func TestNewLoopDefaultsStep(t *testing.T) {
	l := NewLoop(0)
	if l.Step() != DefaultStep {
		t.Errorf("Step() = %v, expected %v", l.Step(), DefaultStep)
	}
}
