package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jailrun/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// colorStyles is built once from palette.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// styleFor returns the style of c, or the default style for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
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
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
