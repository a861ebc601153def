package dashboard

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunQuitsOnKeyAndWaitsForLoads(t *testing.T) {
	loader := newFakeLoader(overallSection)
	coord := coordinator.New[[]domain.RecommendationItem]()

	err := Run(context.Background(), loader, Options{
		Coordinator: coord,
		Logger:      zaptest.NewLogger(t),
		Input:       strings.NewReader("q"),
		Output:      io.Discard,
	})
	require.NoError(t, err)

	// The pending overall load is cancelled with the program context.
	coord.Wait()
}

func TestRunRequiresLoader(t *testing.T) {
	err := Run(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, errNoLoader)
}
