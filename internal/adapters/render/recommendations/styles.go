package recommendations

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	card         lipgloss.Style
	itemTitle    lipgloss.Style
	description  lipgloss.Style
	actionHeader lipgloss.Style
	actionItem   lipgloss.Style
	meta         lipgloss.Style
	badgeDanger  lipgloss.Style
	badgeInfo    lipgloss.Style
	badgeWarning lipgloss.Style
	notice       lipgloss.Style
	hint         lipgloss.Style
	warning      lipgloss.Style
	metricKey    lipgloss.Style
	metricValue  lipgloss.Style
	comment      lipgloss.Style
}

func newStyles() styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("231"))

	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:         lipgloss.NewStyle().MarginTop(1).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true),
		itemTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		description:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		actionHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		actionItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:         lipgloss.NewStyle().Faint(true),
		badgeDanger:  badge.Background(lipgloss.Color("160")),
		badgeInfo:    badge.Background(lipgloss.Color("31")),
		badgeWarning: badge.Background(lipgloss.Color("172")).Foreground(lipgloss.Color("16")),
		notice:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		hint:         lipgloss.NewStyle().Faint(true),
		warning:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		metricKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		metricValue:  lipgloss.NewStyle().Bold(true),
		comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// borderColor matches the card edge to the priority badge.
func (s styles) borderColor(badge lipgloss.Style) lipgloss.Style {
	return s.card.BorderForeground(badge.GetBackground())
}
