package application

import "github.com/bnema/evaldash/internal/domain"

// Overall aggregates every class section that has data. Percentages and
// category scores are weighted by evaluation count, or plainly averaged when
// no section reports a count.
func Overall(sections []domain.ClassSection) domain.SectionData {
	withData := make([]domain.SectionData, 0, len(sections))
	for _, section := range sections {
		if section.Data.HasData {
			withData = append(withData, section.Data)
		}
	}
	if len(withData) == 0 {
		return domain.SectionData{}
	}

	totalWeight := 0
	for _, data := range withData {
		totalWeight += data.Evaluations()
	}
	weight := func(data domain.SectionData) float64 {
		if totalWeight == 0 {
			return 1
		}
		return float64(data.Evaluations())
	}

	overall := domain.SectionData{
		HasData:          true,
		PositiveComments: []string{},
		NegativeComments: []string{},
		MixedComments:    []string{},
	}

	var percentSum, percentWeight float64
	scoreSums := []float64{}
	scoreWeights := []float64{}
	for _, data := range withData {
		w := weight(data)
		percentSum += data.TotalPercentage * w
		percentWeight += w

		for i, score := range data.CategoryScores {
			if i >= len(scoreSums) {
				scoreSums = append(scoreSums, 0)
				scoreWeights = append(scoreWeights, 0)
			}
			scoreSums[i] += score * w
			scoreWeights[i] += w
		}

		overall.EvaluationCount += data.Evaluations()
		overall.TotalEvaluations += data.TotalEvaluations
		overall.PositiveComments = append(overall.PositiveComments, data.PositiveComments...)
		overall.NegativeComments = append(overall.NegativeComments, data.NegativeComments...)
		overall.MixedComments = append(overall.MixedComments, data.MixedComments...)
	}

	if percentWeight > 0 {
		overall.TotalPercentage = percentSum / percentWeight
	}
	if len(scoreSums) > 0 {
		overall.CategoryScores = make([]float64, len(scoreSums))
		for i := range scoreSums {
			if scoreWeights[i] > 0 {
				overall.CategoryScores[i] = scoreSums[i] / scoreWeights[i]
			}
		}
	}

	return overall
}
