package cmd

import (
	"context"
	"fmt"
	"io"

	recrender "github.com/bnema/evaldash/internal/adapters/render/recommendations"
	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// recommendation is the outcome the coordinator delivered for one issue.
type recommendation struct {
	items []domain.RecommendationItem
	err   error
}

type recommendSettledMsg struct{}

// recommendProgress shows the loading panel for an issued recommendations
// request until the coordinator has settled it.
type recommendProgress struct {
	spinner spinner.Model
	section domain.Section
	token   coordinator.Token
	coord   *coordinator.Coordinator[[]domain.RecommendationItem]
	faint   lipgloss.Style
	settled bool
}

func newRecommendProgress(section domain.Section, token coordinator.Token, coord *coordinator.Coordinator[[]domain.RecommendationItem]) recommendProgress {
	return recommendProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		section: section,
		token:   token,
		coord:   coord,
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

func (m recommendProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		m.coord.Wait()
		return recommendSettledMsg{}
	})
}

func (m recommendProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case recommendSettledMsg:
		m.settled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m recommendProgress) View() string {
	if m.settled {
		return ""
	}

	status := fmt.Sprintf("request #%d pending", m.token)
	if !m.coord.IsCurrent(m.token) {
		status = fmt.Sprintf("request #%d superseded", m.token)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.spinner.View()+" "+recrender.RenderLoading(m.section),
		m.faint.Render(status),
	)
}

// issueRecommendation starts a recommendations load for section through coord.
// The returned outcome is filled once coord.Wait returns.
func issueRecommendation(ctx context.Context, app *app, coord *coordinator.Coordinator[[]domain.RecommendationItem], section domain.Section) (coordinator.Token, *recommendation, error) {
	outcome := &recommendation{}
	token, err := coord.Issue(ctx, coordinator.Async(func(ctx context.Context) ([]domain.RecommendationItem, error) {
		return app.service.Recommend(ctx, section)
	}), coordinator.Callbacks[[]domain.RecommendationItem]{
		OnSuccess: func(items []domain.RecommendationItem) { outcome.items = items },
		OnFailure: func(err error) { outcome.err = err },
	})
	if err != nil {
		return token, nil, err
	}

	return token, outcome, nil
}

// waitWithProgress renders the loading panel on output until coord settles.
func waitWithProgress(ctx context.Context, output io.Writer, section domain.Section, token coordinator.Token, coord *coordinator.Coordinator[[]domain.RecommendationItem]) error {
	p := tea.NewProgram(
		newRecommendProgress(section, token, coord),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(recommendProgress); !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	coord.Wait()
	return nil
}
