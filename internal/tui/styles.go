package tui

import "github.com/charmbracelet/lipgloss"

// styles are bound to one lipgloss renderer so colour support follows the
// writer they print to.
type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	help    lipgloss.Style
	warning lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		app:     r.NewStyle().Padding(0, 1),
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true),
		value:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#87D7FF"}),
		help:    r.NewStyle().Faint(true),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
	}
}
