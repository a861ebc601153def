package domain

import "strings"

type SectionID string

type SectionKind string

const (
	SectionKindOverall   SectionKind = "overall"
	SectionKindPeer      SectionKind = "peer"
	SectionKindIrregular SectionKind = "irregular"
	SectionKindClass     SectionKind = "section"
)

// Reserved section ids used by the dashboard selector.
const (
	OverallSectionID   SectionID = "overall"
	PeerSectionID      SectionID = "peer"
	IrregularSectionID SectionID = "irregular"
)

type EvaluationType string

const (
	EvaluationTypeStudent EvaluationType = "student"
	EvaluationTypePeer    EvaluationType = "peer"
)

// ClassSection maps a selector id to the class section code the evaluation
// data is keyed by.
type ClassSection struct {
	ID      SectionID
	Code    string
	Display string
	Data    SectionData
}

// Section is a resolved selection: what the user picked plus the data behind it.
type Section struct {
	ID      SectionID
	Kind    SectionKind
	Code    string
	Display string
	Data    SectionData
}

func KindForID(id SectionID) SectionKind {
	switch id {
	case OverallSectionID:
		return SectionKindOverall
	case PeerSectionID:
		return SectionKindPeer
	case IrregularSectionID:
		return SectionKindIrregular
	default:
		return SectionKindClass
	}
}

func (s Section) DisplayName() string {
	switch s.Kind {
	case SectionKindOverall:
		return "Overall Results"
	case SectionKindPeer:
		return "Peer Evaluation Results"
	case SectionKindIrregular:
		return "Irregular Student Evaluations"
	}

	if display := strings.TrimSpace(s.Display); display != "" {
		return display
	}
	if s.Code != "" {
		return s.Code
	}
	return string(s.ID)
}

// APICode is the section_code sent to the recommendations endpoint.
func (s Section) APICode() string {
	switch s.Kind {
	case SectionKindOverall:
		return "Overall"
	case SectionKindPeer:
		return "Peer Evaluation"
	case SectionKindIrregular:
		return "Irregular"
	default:
		return s.Code
	}
}

func (s Section) IsOverall() bool {
	return s.Kind == SectionKindOverall
}

func (s Section) EvaluationType() EvaluationType {
	if s.Kind == SectionKindPeer {
		return EvaluationTypePeer
	}
	return EvaluationTypeStudent
}
