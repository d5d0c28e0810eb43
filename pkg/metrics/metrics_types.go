package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the simulation engine
type Registry struct {
	// Simulation metrics
	SimulationsTotal   *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	StageDuration      *prometheus.HistogramVec

	// Path search metrics
	PathsFound    prometheus.Histogram
	PathLimitHits prometheus.Counter
	ShortCircuits prometheus.Counter

	// Graph metrics
	GraphNodesTotal     prometheus.Gauge
	GraphEdgesTotal     prometheus.Gauge
	NetsTotal           prometheus.Gauge
	SwitchesClosedTotal prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

// NewRegistry creates a new metrics registry with all metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initSimulationMetrics()
	r.initGraphMetrics()
	return r
}

// Default returns the global metrics registry
func Default() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// PrometheusRegistry exposes the underlying registry for scrape handlers
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
