package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// Catppuccin Mocha
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorRed      lipgloss.Color = "#f38ba8"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorPink     lipgloss.Color = "#f5c2e7"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(colorYellow)
	helpStyle   = lipgloss.NewStyle().Foreground(colorOverlay1).MarginTop(1)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(1, 3)

	tileBase = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true).MarginRight(1)
	keyBase  = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).MarginRight(1)
)

// markColor is the UI side of the letter → colour mapping; the engine only
// knows marks.
func markColor(m game.Mark) (bg, fg lipgloss.Color) {
	switch m {
	case game.MarkHit:
		return colorGreen, colorBase
	case game.MarkPresent:
		return colorYellow, colorBase
	case game.MarkMiss:
		return colorRed, colorBase
	}
	return colorSurface0, colorText
}

func tileStyle(m game.Mark) lipgloss.Style {
	bg, fg := markColor(m)
	return tileBase.Background(bg).Foreground(fg)
}

func keyStyle(m game.Mark) lipgloss.Style {
	bg, fg := markColor(m)
	return keyBase.Background(bg).Foreground(fg)
}
