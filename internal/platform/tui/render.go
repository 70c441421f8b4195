package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ansiColors holds the terminal color for each core.Color, by value.
var ansiColors = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiColors))
	for i, code := range ansiColors {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

// styleFor returns the style of a color; unknown colors render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is written as runs of same-colored cells, and trailing
// unstyled blanks are dropped.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y of s to sb.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	end := s.Width()
	for end > 0 {
		c := s.GetCell(end-1, y)
		if c.Rune != ' ' || c.Color != core.ColorDefault {
			break
		}
		end--
	}

	run := make([]rune, 0, end)
	for x := 0; x < end; {
		color := s.GetCell(x, y).Color
		run = run[:0]
		for ; x < end; x++ {
			c := s.GetCell(x, y)
			if c.Color != color {
				break
			}
			run = append(run, c.Rune)
		}
		if color == core.ColorDefault {
			sb.WriteString(string(run))
			continue
		}
		sb.WriteString(styleFor(color).Render(string(run)))
	}
}
