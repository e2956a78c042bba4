package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from a Theme.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	line     lipgloss.Style
	grid     lipgloss.Style
	axis     lipgloss.Style
	note     lipgloss.Style
	status   lipgloss.Style
	paused   lipgloss.Style
	help     lipgloss.Style
	frame    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		subtitle: lipgloss.NewStyle().Foreground(t.Accent),
		line:     lipgloss.NewStyle().Foreground(t.Line),
		grid:     lipgloss.NewStyle().Foreground(t.Grid),
		axis:     lipgloss.NewStyle().Foreground(t.Muted),
		note:     lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
		status:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		help:     lipgloss.NewStyle().Foreground(t.Grid).MarginTop(1),
		frame:    lipgloss.NewStyle().Padding(1, 2),
	}
}

// ProgressBar renders how many slots have been revealed.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}
