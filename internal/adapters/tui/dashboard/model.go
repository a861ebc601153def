// Package dashboard is the interactive section browser. Switching sections
// issues a recommendations load through a latest-wins coordinator so only the
// most recent selection ever reaches the screen.
package dashboard

import (
	"context"
	"errors"

	"github.com/bnema/evaldash/internal/application"
	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const eventBuffer = 16

// Loader is the slice of the application service the dashboard needs.
type Loader interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	Recommend(ctx context.Context, section domain.Section) ([]domain.RecommendationItem, error)
}

type tab int

const (
	tabEvaluation tab = iota
	tabRecommendations
)

type recState int

const (
	recIdle recState = iota
	recLoading
	recReady
	recFailed
)

type sectionsLoadedMsg struct {
	sections []domain.Section
	err      error
}

type recommendationsMsg struct {
	token coordinator.Token
	items []domain.RecommendationItem
}

type recommendationsFailedMsg struct {
	token coordinator.Token
	err   error
}

type Model struct {
	ctx    context.Context
	loader Loader
	coord  *coordinator.Coordinator[[]domain.RecommendationItem]
	events chan tea.Msg
	logger *zap.Logger

	sections []domain.Section
	cursor   int
	selected int
	loadErr  error

	tab        tab
	state      recState
	loadingFor domain.Section
	items      []domain.RecommendationItem
	recErr     error

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	content viewport.Model
	styles  styles
	width   int
	height  int
}

func NewModel(ctx context.Context, loader Loader, coord *coordinator.Coordinator[[]domain.RecommendationItem], logger *zap.Logger) *Model {
	if coord == nil {
		coord = coordinator.New[[]domain.RecommendationItem]()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return &Model{
		ctx:      ctx,
		loader:   loader,
		coord:    coord,
		events:   make(chan tea.Msg, eventBuffer),
		logger:   logger,
		selected: -1,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  s,
		content:  viewport.New(80, 20),
		styles:   newStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadSections(), m.spinner.Tick, m.listen())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sectionsLoadedMsg:
		return m, m.handleSections(msg)
	case recommendationsMsg:
		if m.coord.IsCurrent(msg.token) {
			m.state = recReady
			m.items = msg.items
			m.recErr = nil
		}
		return m, m.listen()
	case recommendationsFailedMsg:
		if m.coord.IsCurrent(msg.token) {
			m.state = recFailed
			m.items = nil
			m.recErr = msg.err
		}
		return m, m.listen()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleSections(msg sectionsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.loadErr = msg.err
		return nil
	}

	m.sections = msg.sections
	m.loadErr = nil
	def, ok := application.DefaultSection(m.sections)
	if !ok {
		return nil
	}
	for i, section := range m.sections {
		if section.ID == def.ID {
			m.cursor = i
			break
		}
	}

	return m.selectSection(m.cursor)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectSection(m.cursor)
	case key.Matches(msg, m.keys.Switch):
		if m.tab == tabEvaluation {
			m.tab = tabRecommendations
		} else {
			m.tab = tabEvaluation
		}
	case key.Matches(msg, m.keys.EvalTab):
		m.tab = tabEvaluation
	case key.Matches(msg, m.keys.RecTab):
		m.tab = tabRecommendations
	case key.Matches(msg, m.keys.Reload):
		if m.selected >= 0 {
			return m.selectSection(m.selected)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return cmd
	}

	return nil
}

// selectSection issues a recommendations load for the section at index. Any
// load still in flight for an earlier selection is superseded.
func (m *Model) selectSection(index int) tea.Cmd {
	if index < 0 || index >= len(m.sections) {
		return nil
	}

	m.selected = index
	section := m.sections[index]

	var token coordinator.Token
	_, err := m.coord.Issue(m.ctx, coordinator.Async(func(ctx context.Context) ([]domain.RecommendationItem, error) {
		return m.loader.Recommend(ctx, section)
	}), coordinator.Callbacks[[]domain.RecommendationItem]{
		OnStart: func(t coordinator.Token) {
			token = t
			m.state = recLoading
			m.loadingFor = section
			m.items = nil
			m.recErr = nil
		},
		OnSuccess: func(items []domain.RecommendationItem) {
			m.send(recommendationsMsg{token: token, items: items})
		},
		OnFailure: func(err error) {
			m.send(recommendationsFailedMsg{token: token, err: err})
		},
	})
	if err != nil {
		m.state = recFailed
		m.recErr = err
		return nil
	}

	m.logger.Debug("section selected", zap.String("section", string(section.ID)), zap.Uint64("token", uint64(token)))
	return m.spinner.Tick
}

// send runs on a coordinator goroutine and must not touch model state.
func (m *Model) send(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.ctx.Done():
	}
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) loadSections() tea.Cmd {
	return func() tea.Msg {
		sections, err := m.loader.ListSections(m.ctx)
		return sectionsLoadedMsg{sections: sections, err: err}
	}
}

func (m *Model) resize() {
	sidebarWidth := m.sidebarWidth()
	m.content.Width = max(20, m.width-sidebarWidth-4)
	m.content.Height = max(5, m.height-4)
	m.help.Width = m.width
}

func (m *Model) current() (domain.Section, bool) {
	if m.selected < 0 || m.selected >= len(m.sections) {
		return domain.Section{}, false
	}
	return m.sections[m.selected], true
}

var errNoLoader = errors.New("dashboard loader is nil")
