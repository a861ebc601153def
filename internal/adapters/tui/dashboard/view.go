package dashboard

import (
	"fmt"
	"strings"

	"github.com/bnema/evaldash/internal/adapters/render/recommendations"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.loadErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.warning.Render("Unable to load sections"),
			"Error: "+m.loadErr.Error(),
			m.styles.help.Render(m.help.ShortHelpView([]key.Binding{m.keys.Quit})),
		)
	}

	if len(m.sections) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.title.Render("Evaluation dashboard"),
			m.styles.empty.Render("No sections available. Import an export with `evaldash sections import <file>`."),
			m.styles.help.Render(m.help.ShortHelpView([]key.Binding{m.keys.Quit})),
		)
	}

	m.content.SetContent(m.paneContent())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.sidebar.Width(m.sidebarWidth()).Render(m.sidebarView()),
		m.styles.pane.Render(lipgloss.JoinVertical(lipgloss.Left, m.tabsView(), m.content.View())),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Evaluation dashboard"),
		body,
		m.styles.help.Render(m.help.View(m.keys)),
	)
}

func (m *Model) sidebarView() string {
	lines := make([]string, 0, len(m.sections))
	for i, section := range m.sections {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		style := m.styles.item
		switch {
		case i == m.selected:
			style = m.styles.selected
		case i == m.cursor:
			style = m.styles.cursor
		}
		lines = append(lines, style.Render(marker+section.DisplayName()))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) tabsView() string {
	labels := []struct {
		tab   tab
		label string
	}{
		{tab: tabEvaluation, label: "1 Evaluation"},
		{tab: tabRecommendations, label: "2 Recommendations"},
	}

	parts := make([]string, 0, len(labels))
	for _, entry := range labels {
		style := m.styles.tab
		if entry.tab == m.tab {
			style = m.styles.activeTab
		}
		parts = append(parts, style.Render(entry.label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) paneContent() string {
	section, ok := m.current()
	if !ok {
		return m.styles.empty.Render("Select a section.")
	}

	if m.tab == tabEvaluation {
		return recommendations.RenderEvaluation(section)
	}

	switch m.state {
	case recLoading:
		return fmt.Sprintf("%s %s", m.spinner.View(), recommendations.RenderLoading(m.loadingFor))
	case recFailed:
		return recommendations.RenderError(m.recErr)
	case recReady:
		return recommendations.Items(m.items)
	default:
		return ""
	}
}

func (m *Model) sidebarWidth() int {
	width := 20
	for _, section := range m.sections {
		width = max(width, lipgloss.Width(section.DisplayName())+2)
	}
	return width
}
