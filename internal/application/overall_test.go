package application

import (
	"testing"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallWeightsByEvaluationCount(t *testing.T) {
	t.Parallel()

	overall := Overall(sampleDashboard().Sections)

	require.True(t, overall.HasData)
	// 30 evaluations at 80% and 10 at 60%.
	assert.InDelta(t, 75.0, overall.TotalPercentage, 1e-9)
	require.Len(t, overall.CategoryScores, 3)
	assert.InDelta(t, 3.5, overall.CategoryScores[0], 1e-9)
	assert.InDelta(t, 3.5, overall.CategoryScores[1], 1e-9)
	assert.InDelta(t, 1.0, overall.CategoryScores[2], 1e-9)
	assert.Equal(t, 40, overall.EvaluationCount)
	assert.Equal(t, []string{"clear lectures"}, overall.PositiveComments)
	assert.Equal(t, []string{"too fast"}, overall.NegativeComments)
	assert.Equal(t, []string{}, overall.MixedComments)
}

func TestOverallPlainMeanWithoutCounts(t *testing.T) {
	t.Parallel()

	overall := Overall([]domain.ClassSection{
		{ID: "1", Data: domain.SectionData{HasData: true, TotalPercentage: 50}},
		{ID: "2", Data: domain.SectionData{HasData: true, TotalPercentage: 100}},
	})

	assert.InDelta(t, 75.0, overall.TotalPercentage, 1e-9)
	assert.Equal(t, 0, overall.EvaluationCount)
	assert.Nil(t, overall.CategoryScores)
}

func TestOverallWithoutDataHasNoData(t *testing.T) {
	t.Parallel()

	assert.False(t, Overall(nil).HasData)
	assert.False(t, Overall([]domain.ClassSection{{ID: "1"}}).HasData)
}
