package tui

import (
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

func TestANSIIndex(t *testing.T) {
	tests := []struct {
		c        core.Color
		expected int
	}{
		{core.ColorRed, 1},
		{core.ColorWhite, 7},
		{core.ColorBrightRed, 9},
		{core.ColorBrightWhite, 15},
		{core.ColorOrange, 208},
		{core.ColorGray, 245},
	}
	for _, tc := range tests {
		if got := ansiIndex(tc.c); got != tc.expected {
			t.Errorf("ansiIndex(%v) = %d, expected %d", tc.c, got, tc.expected)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "AB", core.ColorRed)
	s.DrawTextColored(2, 0, "CD", core.ColorGreen)
	s.DrawTextColored(1, 1, "▲", core.Color(200)) // unknown colors render plain

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}
