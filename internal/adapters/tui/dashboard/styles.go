package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	sidebar   lipgloss.Style
	item      lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	pane      lipgloss.Style
	help      lipgloss.Style
	warning   lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		sidebar:   lipgloss.NewStyle().PaddingRight(2).Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("238")),
		item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		pane:      lipgloss.NewStyle().PaddingLeft(2),
		help:      lipgloss.NewStyle().Faint(true).MarginTop(1),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}
