package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, n := 0, s.Height(); y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
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
