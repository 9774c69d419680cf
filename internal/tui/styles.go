package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
	label    lipgloss.Style
	help     lipgloss.Style
}

// newStyles returns the interface styles. Without color only layout is kept.
func newStyles(color bool) styles {
	s := styles{
		title:    lipgloss.NewStyle(),
		selected: lipgloss.NewStyle(),
		done:     lipgloss.NewStyle(),
		status:   lipgloss.NewStyle(),
		err:      lipgloss.NewStyle(),
		label:    lipgloss.NewStyle().Width(13),
		help:     lipgloss.NewStyle(),
	}
	if !color {
		return s
	}

	s.title = s.title.Bold(true).Foreground(lipgloss.Color("62"))
	s.selected = s.selected.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	s.done = s.done.Foreground(lipgloss.Color("241"))
	s.status = s.status.Foreground(lipgloss.Color("42"))
	s.err = s.err.Foreground(lipgloss.Color("196"))
	s.label = s.label.Foreground(lipgloss.Color("241"))
	s.help = s.help.Foreground(lipgloss.Color("241"))
	return s
}
