package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// cellStyles holds the foreground style of every core.Color, indexed by color.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.ColorGray+1)
	for c := range styles {
		if c == int(core.ColorDefault) {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(ansiIndex(core.Color(c)))))
	}
	return styles
}()

// ansiIndex returns the 256-color palette entry for c.
func ansiIndex(c core.Color) int {
	switch {
	case c == core.ColorOrange:
		return 208
	case c == core.ColorGray:
		return 245
	case c >= core.ColorBrightRed:
		return int(c) + 1 // bright colors start at 9
	default:
		return int(c)
	}
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells in a row gets one style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
