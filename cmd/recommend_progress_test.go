package cmd

import (
	"context"
	"testing"

	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendProgressShowsLoadingPanelAndTokenState(t *testing.T) {
	t.Parallel()

	coord := coordinator.New[[]domain.RecommendationItem]()
	release := make(chan coordinator.Result[[]domain.RecommendationItem], 2)
	op := func(context.Context) (<-chan coordinator.Result[[]domain.RecommendationItem], error) {
		return release, nil
	}
	peer := domain.Section{ID: domain.PeerSectionID, Kind: domain.SectionKindPeer}

	token, err := coord.Issue(context.Background(), op, coordinator.Callbacks[[]domain.RecommendationItem]{})
	require.NoError(t, err)

	m := newRecommendProgress(peer, token, coord)
	view := m.View()
	assert.Contains(t, view, "Generating AI-powered professional development strategies for Peer Evaluation...")
	assert.Contains(t, view, "request #1 pending")

	_, err = coord.Issue(context.Background(), op, coordinator.Callbacks[[]domain.RecommendationItem]{})
	require.NoError(t, err)
	assert.Contains(t, m.View(), "request #1 superseded")

	release <- coordinator.Result[[]domain.RecommendationItem]{}
	release <- coordinator.Result[[]domain.RecommendationItem]{}
	coord.Wait()

	next, cmd := m.Update(recommendSettledMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
