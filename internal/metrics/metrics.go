package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// CoordinatorCollectors tracks latest-wins request traffic for one UI surface.
type CoordinatorCollectors struct {
	Issued      prometheus.Counter
	Delivered   *prometheus.CounterVec
	Discarded   prometheus.Counter
	StartFailed prometheus.Counter
	InFlight    prometheus.Gauge
}

// NewCoordinatorCollectors builds the collectors for surface and registers them on reg.
// A nil reg returns unregistered collectors.
func NewCoordinatorCollectors(reg prometheus.Registerer, surface string) *CoordinatorCollectors {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"surface": surface}

	return &CoordinatorCollectors{
		Issued: factory.NewCounter(prometheus.CounterOpts{
			Name:        "evaldash_requests_issued_total",
			Help:        "Total number of requests issued through the coordinator",
			ConstLabels: labels,
		}),
		Delivered: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "evaldash_requests_delivered_total",
			Help:        "Total number of current requests whose outcome reached the caller",
			ConstLabels: labels,
		}, []string{"outcome"}),
		Discarded: factory.NewCounter(prometheus.CounterOpts{
			Name:        "evaldash_requests_superseded_total",
			Help:        "Total number of settled requests dropped because a newer request was issued",
			ConstLabels: labels,
		}),
		StartFailed: factory.NewCounter(prometheus.CounterOpts{
			Name:        "evaldash_requests_start_failed_total",
			Help:        "Total number of requests whose operation could not be started",
			ConstLabels: labels,
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "evaldash_requests_in_flight",
			Help:        "Number of issued requests that have not settled yet",
			ConstLabels: labels,
		}),
	}
}

func (c *CoordinatorCollectors) ObserveIssued() {
	if c == nil {
		return
	}
	c.Issued.Inc()
	c.InFlight.Inc()
}

func (c *CoordinatorCollectors) ObserveDelivered(outcome string) {
	if c == nil {
		return
	}
	c.InFlight.Dec()
	c.Delivered.WithLabelValues(outcome).Inc()
}

func (c *CoordinatorCollectors) ObserveDiscarded() {
	if c == nil {
		return
	}
	c.InFlight.Dec()
	c.Discarded.Inc()
}

// ObserveStartFailed records an issued request whose operation never started.
// It is neither delivered nor superseded.
func (c *CoordinatorCollectors) ObserveStartFailed() {
	if c == nil {
		return
	}
	c.InFlight.Dec()
	c.StartFailed.Inc()
}

// WriteTextfile dumps everything gathered by g in the node exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
