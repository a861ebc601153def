package domain

// SectionData is the evaluation summary of one selectable section.
type SectionData struct {
	HasData          bool
	TotalPercentage  float64
	EvaluationCount  int
	TotalEvaluations int
	CategoryScores   []float64
	PositiveComments []string
	NegativeComments []string
	MixedComments    []string
}

// Evaluations prefers EvaluationCount and falls back to TotalEvaluations.
func (d SectionData) Evaluations() int {
	if d.EvaluationCount > 0 {
		return d.EvaluationCount
	}
	return d.TotalEvaluations
}

// Dashboard is the exported snapshot the selector is built from.
type Dashboard struct {
	Sections  []ClassSection
	Overall   *SectionData
	Peer      *SectionData
	Irregular *SectionData
}

func (d Dashboard) Empty() bool {
	return len(d.Sections) == 0 && d.Overall == nil && d.Peer == nil && d.Irregular == nil
}
