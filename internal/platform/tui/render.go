package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neontris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("#39ff14"),
	core.ColorYellow:        fg("#ffff33"),
	core.ColorBlue:          fg("#2979ff"),
	core.ColorMagenta:       fg("#ff00ff"),
	core.ColorCyan:          fg("#00ffff"),
	core.ColorBrightRed:     fg("#ff3131"),
	core.ColorBrightYellow:  fg("#faff00"),
	core.ColorBrightMagenta: fg("#ff4fd8").Bold(true),
	core.ColorBrightCyan:    fg("#7df9ff"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("#ff9f1c"),
	core.ColorGray:          fg("240"),
	core.ColorPink:          fg("#ff2e88"),
	core.ColorPurple:        fg("#bc13fe"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
