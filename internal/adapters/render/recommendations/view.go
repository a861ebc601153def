package recommendations

import (
	"fmt"
	"strings"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderItems(items []domain.RecommendationItem, s styles) string {
	if len(items) == 0 {
		return renderEmpty(s)
	}

	cards := make([]string, 0, len(items))
	for i, item := range items {
		cards = append(cards, renderItem(i, item, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderItem(index int, item domain.RecommendationItem, s styles) string {
	priority := item.DisplayPriority()
	badge := badgeStyle(priority, s)

	heading := s.itemTitle.Render(item.DisplayTitle(index))
	if !priority.IsNormal() {
		heading = lipgloss.JoinHorizontal(lipgloss.Top, heading, " ", badge.Render(strings.ToUpper(string(priority))))
	}

	lines := []string{heading}
	if description := item.DisplayDescription(); description != "" {
		lines = append(lines, s.description.Render(description))
	}

	if len(item.ActionItems) > 0 {
		lines = append(lines, s.actionHeader.Render("Action Items:"))
		for _, action := range item.ActionItems {
			lines = append(lines, s.actionItem.Render("  • "+action))
		}
	}

	if item.EstimatedImpact != "" {
		lines = append(lines, s.meta.Render("Estimated Impact: "+item.EstimatedImpact))
	}
	if item.Reason != "" {
		lines = append(lines, s.meta.Render("Reason: "+item.Reason))
	}

	return s.borderColor(badge).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func badgeStyle(priority domain.Priority, s styles) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return s.badgeDanger
	case domain.PriorityLow:
		return s.badgeInfo
	default:
		return s.badgeWarning
	}
}

func renderEmpty(s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.notice.Render("No recommendations available"),
		s.hint.Render("Recommendations will be generated once evaluation data is available."),
	)
}

func renderLoading(section domain.Section, s styles) string {
	code := section.APICode()
	title := fmt.Sprintf("Generating AI-powered teaching strategies for %s...", code)
	hint := "Analyzing evaluation data to provide personalized recommendations"
	if section.Kind == domain.SectionKindPeer {
		title = fmt.Sprintf("Generating AI-powered professional development strategies for %s...", code)
		hint = "Analyzing peer evaluation data to provide personalized professional development recommendations"
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.notice.Render(title), s.hint.Render(hint))
}

func renderError(err error, s styles) string {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.warning.Render("Unable to generate recommendations"),
		s.description.Render("Error: "+message),
		s.hint.Render("Please try again later or contact support."),
	)
}

func renderEvaluation(section domain.Section, s styles) string {
	lines := []string{
		s.title.Render(section.DisplayName()),
	}

	data := section.Data
	if !data.HasData {
		lines = append(lines, s.hint.Render("No data available for this section"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		metric("Total", fmt.Sprintf("%.2f%%", data.TotalPercentage), s),
		metric("Evaluations", fmt.Sprintf("%d", data.Evaluations()), s),
	)

	for i, score := range data.CategoryScores {
		lines = append(lines, metric(fmt.Sprintf("Category %c", 'A'+rune(i%26)), fmt.Sprintf("%.2f", score), s))
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"comments: %d positive, %d negative, %d mixed",
		len(data.PositiveComments), len(data.NegativeComments), len(data.MixedComments),
	)))
	for _, group := range []struct {
		label    string
		comments []string
	}{
		{label: "+", comments: data.PositiveComments},
		{label: "-", comments: data.NegativeComments},
		{label: "~", comments: data.MixedComments},
	} {
		for _, comment := range group.comments {
			lines = append(lines, s.comment.Render(fmt.Sprintf("  %s %s", group.label, comment)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func metric(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.metricKey.Render(key+": "), s.metricValue.Render(value))
}
