package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	Coordinator *coordinator.Coordinator[[]domain.RecommendationItem]
	Logger      *zap.Logger
	Input       io.Reader
	Output      io.Writer
	AltScreen   bool
}

// Run blocks until the user quits. Outstanding loads are waited for before
// returning so their callbacks never outlive the program.
func Run(ctx context.Context, loader Loader, opts Options) error {
	if loader == nil {
		return errNoLoader
	}

	runCtx, cancel := context.WithCancel(ctx)
	m := NewModel(runCtx, loader, opts.Coordinator, opts.Logger)

	programOpts := []tea.ProgramOption{tea.WithContext(runCtx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(m, programOpts...).Run()
	cancel()
	m.coord.Wait()

	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
