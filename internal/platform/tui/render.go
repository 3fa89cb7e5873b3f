package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/maze-heist/internal/core"
)

// colorStyles maps the semantic palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorFloor:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorExitLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorExitOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGhost:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Faint(true),
	core.ColorFrozen:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorPursuerSlow: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorPursuerFast: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorCollectible: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorTrigger:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorAccent:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
