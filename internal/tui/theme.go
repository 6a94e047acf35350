package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tablekeep/internal/store"
)

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorMuted   = colorOverlay1
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	focusLabelStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	statusOKStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusWarnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	statusErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	modalStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(colorText).Background(colorSurface1)
	activeButton     = buttonStyle.Foreground(lipgloss.Color("#1e1e2e")).Background(colorFocus).Bold(true)
	optionStyle      = lipgloss.NewStyle().Foreground(colorText)
	activeOption     = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)

// statusColor maps a task status to its accent.
func statusColor(s store.Status) lipgloss.Color {
	switch s {
	case store.StatusDone:
		return colorGreen
	case store.StatusInProgress:
		return colorPeach
	default:
		return colorBlue
	}
}
