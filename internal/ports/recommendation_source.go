package ports

import (
	"context"

	"github.com/bnema/evaldash/internal/domain"
)

// RecommendationRequest is the payload sent to the recommendations endpoint.
type RecommendationRequest struct {
	SectionCode    string
	IsOverall      bool
	EvaluationType domain.EvaluationType
	Data           domain.SectionData
	Timestamp      int64
}

type RecommendationSource interface {
	Fetch(ctx context.Context, req RecommendationRequest) ([]domain.RecommendationItem, error)
}
