package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int                  `toml:"version"`
	Overall   *sectionDataSchema   `toml:"overall,omitempty"`
	Peer      *sectionDataSchema   `toml:"peer,omitempty"`
	Irregular *sectionDataSchema   `toml:"irregular,omitempty"`
	Sections  []classSectionSchema `toml:"sections"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported dashboard schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type classSectionSchema struct {
	ID      string            `toml:"id"`
	Code    string            `toml:"code"`
	Display string            `toml:"display,omitempty"`
	Data    sectionDataSchema `toml:"data"`
}

type sectionDataSchema struct {
	HasData          bool      `toml:"has_data"`
	TotalPercentage  float64   `toml:"total_percentage"`
	EvaluationCount  int       `toml:"evaluation_count,omitempty"`
	TotalEvaluations int       `toml:"total_evaluations,omitempty"`
	CategoryScores   []float64 `toml:"category_scores,omitempty"`
	PositiveComments []string  `toml:"positive_comments,omitempty"`
	NegativeComments []string  `toml:"negative_comments,omitempty"`
	MixedComments    []string  `toml:"mixed_comments,omitempty"`
}
