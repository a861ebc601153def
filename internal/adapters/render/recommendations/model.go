package recommendations

import (
	"errors"
	"io"

	"github.com/bnema/evaldash/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	items  []domain.RecommendationItem
	styles styles
	output string
}

func newModel(items []domain.RecommendationItem) model {
	return model{
		items:  items,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderItems(m.items, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out items the way the CLI prints them. An empty list renders
// the "No recommendations available" notice.
func Render(items []domain.RecommendationItem) (string, error) {
	p := tea.NewProgram(
		newModel(items),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Items is Render without the program loop, for callers that already run one.
func Items(items []domain.RecommendationItem) string {
	return renderItems(items, newStyles())
}

func RenderLoading(section domain.Section) string {
	return renderLoading(section, newStyles())
}

func RenderError(err error) string {
	return renderError(err, newStyles())
}

func RenderEvaluation(section domain.Section) string {
	return renderEvaluation(section, newStyles())
}
