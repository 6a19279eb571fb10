package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/scratchcat/internal/core"
)

// foreground maps core.Color to ANSI 256 codes for text.
var foreground = map[core.Color]lipgloss.Color{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorWhite:        "15",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "250",
	core.ColorBlack:        "16",
	core.ColorSlate:        "60",
}

// background maps core.Color to darker tints so text stays readable.
var background = map[core.Color]lipgloss.Color{
	core.ColorRed:    "88",
	core.ColorOrange: "166",
	core.ColorBlack:  "16",
	core.ColorSlate:  "236",
	core.ColorGray:   "240",
}

// styleFor returns the style for a cell colour on the screen background.
// Colours missing from the tables fall back to the terminal default.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := foreground[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := background[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := s.Background()
	styles := make(map[core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[color]
			if !ok {
				style = styleFor(color, bg)
				styles[color] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
