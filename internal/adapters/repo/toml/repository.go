package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/bnema/evaldash/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	dataPathKey     = "data.path"
	dataFileMode    = 0o600
	dataDirMode     = 0o700
	dataConfigDir   = ".evaldash"
	dataConfigFile  = "dashboard.toml"
	tempFilePattern = ".dashboard-*.toml.tmp"
)

// Repository stores the dashboard snapshot in a single TOML file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SectionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(dataPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, dataConfigDir, dataConfigFile)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Load returns an empty dashboard when the file does not exist yet.
func (r *Repository) Load(ctx context.Context) (domain.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dashboard{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Dashboard{}, err
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, dashboard domain.Dashboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(toSchema(dashboard))
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read dashboard file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode dashboard file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), dataDirMode); err != nil {
		return fmt.Errorf("create dashboard directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode dashboard file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp dashboard file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write temp dashboard file: %w", err), tempFile.Close())
	}
	if err := tempFile.Chmod(dataFileMode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp dashboard file: %w", err), tempFile.Close())
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp dashboard file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace dashboard file: %w", err)
	}
	cleanup = false

	if err := os.Chmod(r.path, dataFileMode); err != nil {
		return fmt.Errorf("chmod dashboard file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve dashboard path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(dashboard domain.Dashboard) fileSchema {
	file := fileSchema{
		Version:   currentSchemaVersion,
		Overall:   toDataSchemaPtr(dashboard.Overall),
		Peer:      toDataSchemaPtr(dashboard.Peer),
		Irregular: toDataSchemaPtr(dashboard.Irregular),
		Sections:  make([]classSectionSchema, 0, len(dashboard.Sections)),
	}

	for _, section := range dashboard.Sections {
		file.Sections = append(file.Sections, classSectionSchema{
			ID:      string(section.ID),
			Code:    section.Code,
			Display: section.Display,
			Data:    toDataSchema(section.Data),
		})
	}

	return file
}

func fromSchema(file fileSchema) domain.Dashboard {
	dashboard := domain.Dashboard{
		Overall:   fromDataSchemaPtr(file.Overall),
		Peer:      fromDataSchemaPtr(file.Peer),
		Irregular: fromDataSchemaPtr(file.Irregular),
	}

	if len(file.Sections) > 0 {
		dashboard.Sections = make([]domain.ClassSection, 0, len(file.Sections))
	}
	for _, section := range file.Sections {
		code := section.Code
		if code == "" {
			code = section.ID
		}
		dashboard.Sections = append(dashboard.Sections, domain.ClassSection{
			ID:      domain.SectionID(section.ID),
			Code:    code,
			Display: section.Display,
			Data:    fromDataSchema(section.Data),
		})
	}

	return dashboard
}

func toDataSchema(data domain.SectionData) sectionDataSchema {
	return sectionDataSchema{
		HasData:          data.HasData,
		TotalPercentage:  data.TotalPercentage,
		EvaluationCount:  data.EvaluationCount,
		TotalEvaluations: data.TotalEvaluations,
		CategoryScores:   data.CategoryScores,
		PositiveComments: data.PositiveComments,
		NegativeComments: data.NegativeComments,
		MixedComments:    data.MixedComments,
	}
}

func fromDataSchema(data sectionDataSchema) domain.SectionData {
	return domain.SectionData{
		HasData:          data.HasData,
		TotalPercentage:  data.TotalPercentage,
		EvaluationCount:  data.EvaluationCount,
		TotalEvaluations: data.TotalEvaluations,
		CategoryScores:   data.CategoryScores,
		PositiveComments: data.PositiveComments,
		NegativeComments: data.NegativeComments,
		MixedComments:    data.MixedComments,
	}
}

func toDataSchemaPtr(data *domain.SectionData) *sectionDataSchema {
	if data == nil {
		return nil
	}
	encoded := toDataSchema(*data)
	return &encoded
}

func fromDataSchemaPtr(data *sectionDataSchema) *domain.SectionData {
	if data == nil {
		return nil
	}
	decoded := fromDataSchema(*data)
	return &decoded
}
