package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/bnema/evaldash/internal/ports"
)

var ErrNoRecommendationSource = errors.New("recommendation source is not configured")

type Service struct {
	repo   ports.SectionRepository
	source ports.RecommendationSource
	clock  ports.Clock
}

func NewService(repo ports.SectionRepository, source ports.RecommendationSource, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:   repo,
		source: source,
		clock:  clock,
	}
}

// ListSections returns the selectable sections in display order: overall,
// peer, irregular, then class sections as stored.
func (s *Service) ListSections(ctx context.Context) ([]domain.Section, error) {
	dashboard, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return sectionsFromDashboard(dashboard), nil
}

func (s *Service) ResolveSection(ctx context.Context, id domain.SectionID) (domain.Section, error) {
	sections, err := s.ListSections(ctx)
	if err != nil {
		return domain.Section{}, err
	}

	for _, section := range sections {
		if section.ID == id {
			return section, nil
		}
	}

	return domain.Section{}, fmt.Errorf("%w: %q", domain.ErrSectionNotFound, id)
}

// DefaultSection picks overall when present, otherwise the first section.
func DefaultSection(sections []domain.Section) (domain.Section, bool) {
	if len(sections) == 0 {
		return domain.Section{}, false
	}
	for _, section := range sections {
		if section.IsOverall() {
			return section, true
		}
	}

	return sections[0], true
}

func (s *Service) BuildRequest(section domain.Section) ports.RecommendationRequest {
	return ports.RecommendationRequest{
		SectionCode:    section.APICode(),
		IsOverall:      section.IsOverall(),
		EvaluationType: section.EvaluationType(),
		Data:           section.Data,
		Timestamp:      s.clock.Now().UnixMilli(),
	}
}

func (s *Service) Recommend(ctx context.Context, section domain.Section) ([]domain.RecommendationItem, error) {
	if s.source == nil {
		return nil, ErrNoRecommendationSource
	}

	items, err := s.source.Fetch(ctx, s.BuildRequest(section))
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations for %s: %w", section.APICode(), err)
	}

	return items, nil
}

func sectionsFromDashboard(dashboard domain.Dashboard) []domain.Section {
	sections := make([]domain.Section, 0, len(dashboard.Sections)+3)

	switch {
	case dashboard.Overall != nil:
		sections = append(sections, specialSection(domain.OverallSectionID, *dashboard.Overall))
	case len(dashboard.Sections) > 0:
		sections = append(sections, specialSection(domain.OverallSectionID, Overall(dashboard.Sections)))
	}
	if dashboard.Peer != nil {
		sections = append(sections, specialSection(domain.PeerSectionID, *dashboard.Peer))
	}
	if dashboard.Irregular != nil {
		sections = append(sections, specialSection(domain.IrregularSectionID, *dashboard.Irregular))
	}

	for _, class := range dashboard.Sections {
		sections = append(sections, domain.Section{
			ID:      class.ID,
			Kind:    domain.SectionKindClass,
			Code:    class.Code,
			Display: class.Display,
			Data:    class.Data,
		})
	}

	return sections
}

func specialSection(id domain.SectionID, data domain.SectionData) domain.Section {
	section := domain.Section{ID: id, Kind: domain.KindForID(id), Data: data}
	section.Code = section.APICode()
	return section
}
