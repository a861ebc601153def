package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatorCollectorsTrackLifecycle(t *testing.T) {
	t.Parallel()

	collectors := NewCoordinatorCollectors(prometheus.NewRegistry(), "recommendations")

	collectors.ObserveIssued()
	collectors.ObserveIssued()
	collectors.ObserveIssued()
	collectors.ObserveDiscarded()
	collectors.ObserveDelivered(OutcomeFailure)

	assert.Equal(t, 3.0, testutil.ToFloat64(collectors.Issued))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Discarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Delivered.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(collectors.Delivered.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.InFlight))
}

func TestStartFailureIsNotCountedAsSuperseded(t *testing.T) {
	t.Parallel()

	collectors := NewCoordinatorCollectors(prometheus.NewRegistry(), "cli")

	collectors.ObserveIssued()
	collectors.ObserveStartFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.StartFailed))
	assert.Equal(t, 0.0, testutil.ToFloat64(collectors.Discarded))
	assert.Equal(t, 0.0, testutil.ToFloat64(collectors.InFlight))
}

func TestNilCollectorsAreNoOps(t *testing.T) {
	t.Parallel()

	var collectors *CoordinatorCollectors
	assert.NotPanics(t, func() {
		collectors.ObserveIssued()
		collectors.ObserveDelivered(OutcomeSuccess)
		collectors.ObserveDiscarded()
		collectors.ObserveStartFailed()
	})
}

func TestWriteTextfileIncludesSurfaceLabel(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collectors := NewCoordinatorCollectors(registry, "dashboard")
	collectors.ObserveIssued()

	path := filepath.Join(t.TempDir(), "evaldash.prom")
	require.NoError(t, WriteTextfile(path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `evaldash_requests_issued_total{surface="dashboard"} 1`)
}
