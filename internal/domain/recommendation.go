package domain

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// ParsePriority is case-insensitive. "medium" and empty map to normal; any
// other label is kept verbatim.
func ParsePriority(raw string) Priority {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	case "", "normal", "medium":
		return PriorityNormal
	default:
		return Priority(trimmed)
	}
}

func (p Priority) IsNormal() bool {
	return p == "" || p == PriorityNormal
}

// RecommendationItem is one entry of the recommendations payload. Every field
// is optional.
type RecommendationItem struct {
	Title           string
	Description     string
	Content         string
	Priority        Priority
	ActionItems     []string
	EstimatedImpact string
	Reason          string
}

// DisplayTitle falls back to "Recommendation N" using the 1-based position.
func (r RecommendationItem) DisplayTitle(index int) string {
	if title := strings.TrimSpace(r.Title); title != "" {
		return title
	}
	return fmt.Sprintf("Recommendation %d", index+1)
}

func (r RecommendationItem) DisplayDescription() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Content
}

func (r RecommendationItem) DisplayPriority() Priority {
	if r.Priority == "" {
		return PriorityNormal
	}
	return r.Priority
}
