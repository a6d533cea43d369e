package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	bar       lipgloss.Style
	highlight lipgloss.Style
	done      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	err       lipgloss.Style
	panel     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		label:     lipgloss.NewStyle().Foreground(t.Muted),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		bar:       lipgloss.NewStyle().Foreground(t.Bar),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(t.Highlight),
		done:      lipgloss.NewStyle().Foreground(t.Done),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Done),
		paused:    lipgloss.NewStyle().Bold(true).Foreground(t.Paused),
		err:       lipgloss.NewStyle().Foreground(t.Error),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// SpeedBar draws level in [1, 100] as a slider of the given width.
func SpeedBar(level, width int) string {
	filled := level * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
