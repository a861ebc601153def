package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionNamingPerKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		section     Section
		wantDisplay string
		wantCode    string
		wantType    EvaluationType
		wantOverall bool
	}{
		{
			name:        "overall",
			section:     Section{ID: OverallSectionID, Kind: SectionKindOverall},
			wantDisplay: "Overall Results",
			wantCode:    "Overall",
			wantType:    EvaluationTypeStudent,
			wantOverall: true,
		},
		{
			name:        "peer",
			section:     Section{ID: PeerSectionID, Kind: SectionKindPeer},
			wantDisplay: "Peer Evaluation Results",
			wantCode:    "Peer Evaluation",
			wantType:    EvaluationTypePeer,
		},
		{
			name:        "irregular",
			section:     Section{ID: IrregularSectionID, Kind: SectionKindIrregular},
			wantDisplay: "Irregular Student Evaluations",
			wantCode:    "Irregular",
			wantType:    EvaluationTypeStudent,
		},
		{
			name:        "class with display",
			section:     Section{ID: "12", Kind: SectionKindClass, Code: "BSIT-3A", Display: "BSIT-3A (Mon/Wed)"},
			wantDisplay: "BSIT-3A (Mon/Wed)",
			wantCode:    "BSIT-3A",
			wantType:    EvaluationTypeStudent,
		},
		{
			name:        "class without display",
			section:     Section{ID: "12", Kind: SectionKindClass, Code: "BSIT-3A"},
			wantDisplay: "BSIT-3A",
			wantCode:    "BSIT-3A",
			wantType:    EvaluationTypeStudent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantDisplay, tc.section.DisplayName())
			assert.Equal(t, tc.wantCode, tc.section.APICode())
			assert.Equal(t, tc.wantType, tc.section.EvaluationType())
			assert.Equal(t, tc.wantOverall, tc.section.IsOverall())
		})
	}
}

func TestKindForID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SectionKindOverall, KindForID("overall"))
	assert.Equal(t, SectionKindPeer, KindForID("peer"))
	assert.Equal(t, SectionKindIrregular, KindForID("irregular"))
	assert.Equal(t, SectionKindClass, KindForID("7"))
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PriorityHigh, ParsePriority("High"))
	assert.Equal(t, PriorityLow, ParsePriority(" low "))
	assert.Equal(t, PriorityNormal, ParsePriority("Medium"))
	assert.Equal(t, PriorityNormal, ParsePriority(""))
	assert.Equal(t, Priority("Urgent"), ParsePriority("Urgent"))
	assert.False(t, Priority("Urgent").IsNormal())
}

func TestRecommendationItemDefaults(t *testing.T) {
	t.Parallel()

	var item RecommendationItem
	assert.Equal(t, "Recommendation 1", item.DisplayTitle(0))
	assert.Equal(t, "Recommendation 4", item.DisplayTitle(3))
	assert.Equal(t, PriorityNormal, item.DisplayPriority())
	assert.Empty(t, item.DisplayDescription())

	item.Content = "from content"
	assert.Equal(t, "from content", item.DisplayDescription())
	item.Description = "from description"
	assert.Equal(t, "from description", item.DisplayDescription())
}

func TestSectionDataEvaluationsFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, SectionData{EvaluationCount: 12, TotalEvaluations: 40}.Evaluations())
	assert.Equal(t, 40, SectionData{TotalEvaluations: 40}.Evaluations())
	assert.Equal(t, 0, SectionData{}.Evaluations())
}
