package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_simulations_total",
			Help: "Total number of simulation runs",
		},
		[]string{"status"},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "circuit_simulation_duration_seconds",
			Help:    "Full simulation run duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "circuit_simulation_stage_duration_seconds",
			Help:    "Per-stage simulation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"stage"},
	)

	r.PathsFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "circuit_paths_found",
			Help:    "Number of complete current paths found per simulation",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		},
	)

	r.PathLimitHits = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "circuit_path_limit_hits_total",
			Help: "Simulations whose path enumeration hit the configured ceiling",
		},
	)

	r.ShortCircuits = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "circuit_short_circuits_total",
			Help: "Short circuits detected across all simulations",
		},
	)
}
