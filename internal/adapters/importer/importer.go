// Package importer loads a JSON export of the evaluation dashboard, validates
// it against an embedded JSON Schema and stores it as the current snapshot.
package importer

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/bnema/evaldash/internal/ports"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

const maxExportBytes = 8 << 20

//go:embed schema.json
var exportSchema []byte

var (
	ErrInvalidExport  = errors.New("invalid dashboard export")
	ErrExportTooLarge = errors.New("dashboard export too large")
)

type sectionDataDoc struct {
	HasData          bool      `json:"has_data"`
	TotalPercentage  float64   `json:"total_percentage"`
	EvaluationCount  int       `json:"evaluation_count"`
	TotalEvaluations int       `json:"total_evaluations"`
	CategoryScores   []float64 `json:"category_scores"`
	PositiveComments []string  `json:"positive_comments"`
	NegativeComments []string  `json:"negative_comments"`
	MixedComments    []string  `json:"mixed_comments"`
}

type exportDoc struct {
	SectionMap      map[string]string         `json:"section_map"`
	SectionScores   map[string]sectionDataDoc `json:"section_scores"`
	SectionLabels   map[string]string         `json:"section_labels"`
	Overall         *sectionDataDoc           `json:"overall"`
	PeerScores      *sectionDataDoc           `json:"peer_scores"`
	IrregularScores *sectionDataDoc           `json:"irregular_scores"`
}

type Importer struct {
	repo   ports.SectionRepository
	logger *zap.Logger
}

func New(repo ports.SectionRepository, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Importer{repo: repo, logger: logger}
}

func (i *Importer) ImportFile(ctx context.Context, path string) (domain.Dashboard, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("open export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return i.Import(ctx, file)
}

// Import replaces the stored snapshot with the export read from r.
func (i *Importer) Import(ctx context.Context, r io.Reader) (domain.Dashboard, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxExportBytes+1))
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("read export: %w", err)
	}
	if len(data) > maxExportBytes {
		return domain.Dashboard{}, fmt.Errorf("%w: exceeds %d bytes", ErrExportTooLarge, maxExportBytes)
	}

	dashboard, err := Parse(data)
	if err != nil {
		return domain.Dashboard{}, err
	}

	if err := i.repo.Save(ctx, dashboard); err != nil {
		return domain.Dashboard{}, fmt.Errorf("save imported dashboard: %w", err)
	}

	i.logger.Info("dashboard imported",
		zap.Int("sections", len(dashboard.Sections)),
		zap.Bool("peer", dashboard.Peer != nil),
		zap.Bool("irregular", dashboard.Irregular != nil),
	)

	return dashboard, nil
}

// Parse validates data and converts it without storing anything.
func Parse(data []byte) (domain.Dashboard, error) {
	if err := validate(data); err != nil {
		return domain.Dashboard{}, err
	}

	var doc exportDoc
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return domain.Dashboard{}, fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}

	return toDashboard(doc)
}

func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(exportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidExport, strings.Join(errs, "; "))
	}

	return nil
}

func toDashboard(doc exportDoc) (domain.Dashboard, error) {
	dashboard := domain.Dashboard{
		Overall:   toSectionDataPtr(doc.Overall),
		Peer:      toSectionDataPtr(doc.PeerScores),
		Irregular: toSectionDataPtr(doc.IrregularScores),
	}

	ids := make([]string, 0, len(doc.SectionMap))
	for id := range doc.SectionMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return lessID(ids[a], ids[b]) })

	for _, id := range ids {
		if reserved(domain.SectionID(id)) {
			return domain.Dashboard{}, fmt.Errorf("%w: section id %q is reserved", ErrInvalidExport, id)
		}

		code := doc.SectionMap[id]
		section := domain.ClassSection{
			ID:      domain.SectionID(id),
			Code:    code,
			Display: doc.SectionLabels[id],
		}
		if scores, ok := doc.SectionScores[code]; ok {
			section.Data = toSectionData(scores)
		}
		dashboard.Sections = append(dashboard.Sections, section)
	}

	return dashboard, nil
}

func toSectionData(doc sectionDataDoc) domain.SectionData {
	return domain.SectionData{
		HasData:          doc.HasData,
		TotalPercentage:  doc.TotalPercentage,
		EvaluationCount:  doc.EvaluationCount,
		TotalEvaluations: doc.TotalEvaluations,
		CategoryScores:   doc.CategoryScores,
		PositiveComments: doc.PositiveComments,
		NegativeComments: doc.NegativeComments,
		MixedComments:    doc.MixedComments,
	}
}

func toSectionDataPtr(doc *sectionDataDoc) *domain.SectionData {
	if doc == nil {
		return nil
	}
	data := toSectionData(*doc)
	return &data
}

func reserved(id domain.SectionID) bool {
	return domain.KindForID(id) != domain.SectionKindClass
}

// lessID orders numeric ids numerically and puts them before other ids.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
