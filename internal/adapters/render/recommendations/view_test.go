package recommendations

import (
	"errors"
	"strings"
	"testing"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFullItem(t *testing.T) {
	output, err := Render([]domain.RecommendationItem{{
		Title:           "Vary lecture pacing",
		Description:     "Students report the pace is uneven.",
		Priority:        domain.PriorityHigh,
		ActionItems:     []string{"Pause after each topic", "Post slides early"},
		EstimatedImpact: "Better retention",
		Reason:          "Negative comments mention speed",
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "Vary lecture pacing")
	assert.Contains(t, output, "HIGH")
	assert.Contains(t, output, "Students report the pace is uneven.")
	assert.Contains(t, output, "Action Items:")
	assert.Contains(t, output, "• Pause after each topic")
	assert.Contains(t, output, "• Post slides early")
	assert.Contains(t, output, "Estimated Impact: Better retention")
	assert.Contains(t, output, "Reason: Negative comments mention speed")
}

func TestRenderItemWithAllFieldsMissingUsesDefaults(t *testing.T) {
	output, err := Render([]domain.RecommendationItem{{}})

	require.NoError(t, err)
	assert.Contains(t, output, "Recommendation 1")
	assert.NotContains(t, output, "NORMAL")
	assert.NotContains(t, output, "Action Items:")
	assert.NotContains(t, output, "Estimated Impact")
	assert.NotContains(t, output, "Reason:")
}

func TestRenderNumbersUntitledItemsByPosition(t *testing.T) {
	output, err := Render([]domain.RecommendationItem{
		{Title: "First"},
		{Content: "falls back to content", Priority: domain.PriorityLow},
		{Priority: domain.Priority("Urgent")},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "First")
	assert.Contains(t, output, "Recommendation 2")
	assert.Contains(t, output, "falls back to content")
	assert.Contains(t, output, "LOW")
	assert.Contains(t, output, "Recommendation 3")
	assert.Contains(t, output, "URGENT")
	assert.NotContains(t, output, "Recommendation 1")
}

func TestRenderEmptyList(t *testing.T) {
	output, err := Render([]domain.RecommendationItem{})

	require.NoError(t, err)
	assert.Contains(t, output, "No recommendations available")
	assert.Contains(t, output, "Recommendations will be generated once evaluation data is available.")
	assert.Equal(t, output, Items(nil))
}

func TestRenderLoadingPerEvaluationType(t *testing.T) {
	t.Parallel()

	student := RenderLoading(domain.Section{ID: "12", Kind: domain.SectionKindClass, Code: "BSIT-3A"})
	assert.Contains(t, student, "Generating AI-powered teaching strategies for BSIT-3A...")
	assert.Contains(t, student, "Analyzing evaluation data to provide personalized recommendations")

	peer := RenderLoading(domain.Section{ID: "peer", Kind: domain.SectionKindPeer})
	assert.Contains(t, peer, "Generating AI-powered professional development strategies for Peer Evaluation...")
	assert.Contains(t, peer, "Analyzing peer evaluation data")
}

func TestRenderErrorShowsMessage(t *testing.T) {
	t.Parallel()

	output := RenderError(errors.New("HTTP 500: Internal Server Error"))
	assert.Contains(t, output, "Unable to generate recommendations")
	assert.Contains(t, output, "Error: HTTP 500: Internal Server Error")
	assert.Contains(t, output, "Please try again later or contact support.")
}

func TestRenderEvaluation(t *testing.T) {
	t.Parallel()

	output := RenderEvaluation(domain.Section{
		ID:   "12",
		Kind: domain.SectionKindClass,
		Code: "BSIT-3A",
		Data: domain.SectionData{
			HasData:          true,
			TotalPercentage:  87.456,
			EvaluationCount:  12,
			CategoryScores:   []float64{4.5, 3},
			PositiveComments: []string{"engaging"},
			NegativeComments: []string{"fast", "loud"},
		},
	})

	assert.Contains(t, output, "BSIT-3A")
	assert.Contains(t, output, "Total: 87.46%")
	assert.Contains(t, output, "Evaluations: 12")
	assert.Contains(t, output, "Category A: 4.50")
	assert.Contains(t, output, "Category B: 3.00")
	assert.Contains(t, output, "comments: 1 positive, 2 negative, 0 mixed")
	assert.Contains(t, output, "+ engaging")
	assert.Contains(t, output, "- loud")
}

func TestRenderEvaluationWithoutData(t *testing.T) {
	t.Parallel()

	output := RenderEvaluation(domain.Section{ID: "overall", Kind: domain.SectionKindOverall})
	assert.Contains(t, output, "Overall Results")
	assert.Contains(t, output, "No data available for this section")
	assert.False(t, strings.Contains(output, "Total:"))
}
