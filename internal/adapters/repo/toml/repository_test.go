package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/evaldash/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("data.path", path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "dashboard.toml"))

	dashboard := domain.Dashboard{
		Sections: []domain.ClassSection{
			{
				ID:      "12",
				Code:    "BSIT-3A",
				Display: "BSIT-3A (Mon/Wed)",
				Data: domain.SectionData{
					HasData:          true,
					TotalPercentage:  87.25,
					EvaluationCount:  31,
					CategoryScores:   []float64{4.1, 3.9, 4.4},
					PositiveComments: []string{"well prepared"},
					MixedComments:    []string{"good but fast"},
				},
			},
			{ID: "13", Code: "BSIT-3B"},
		},
		Peer:      &domain.SectionData{HasData: true, TotalPercentage: 92, TotalEvaluations: 5},
		Irregular: &domain.SectionData{},
	}

	require.NoError(t, repo.Save(context.Background(), dashboard))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard, got)
}

func TestRepositoryMissingFileLoadsEmptyDashboard(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "dashboard.toml"))

	dashboard, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, dashboard.Empty())
}

func TestRepositoryHandWrittenSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"[overall]",
		"has_data = true",
		"total_percentage = 70.5",
		"",
		"[[sections]]",
		`id = "21"`,
		"",
		"[sections.data]",
		"has_data = true",
		"total_evaluations = 9",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, path)

	dashboard, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dashboard.Overall)
	assert.InDelta(t, 70.5, dashboard.Overall.TotalPercentage, 1e-9)
	require.Len(t, dashboard.Sections, 1)
	assert.Equal(t, "21", dashboard.Sections[0].Code)
	assert.Equal(t, 9, dashboard.Sections[0].Data.Evaluations())
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Dashboard{
		Sections: []domain.ClassSection{{ID: "1", Code: "A"}},
	}))

	path := filepath.Join(homeDir, ".evaldash", "dashboard.toml")
	assert.Equal(t, path, repo.Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("sections = ["), 0o600))

	_, err := newTestRepository(t, path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode dashboard file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "dashboard.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Dashboard{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesLeaveValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Dashboard{
				Sections: []domain.ClassSection{{ID: domain.SectionID(prefix + strconv.Itoa(i)), Code: prefix}},
			})
		}
	}
	go write(repoA, "a")
	go write(repoB, "b")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	dashboard, err := repoA.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, dashboard.Sections, 1)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.Dashboard{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n"), 0o600))

	_, err := newTestRepository(t, path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported dashboard schema version")
}
