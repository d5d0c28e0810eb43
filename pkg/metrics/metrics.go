package metrics

import (
	"time"
)

// RecordSimulation records one simulation run with its outcome and duration
func (r *Registry) RecordSimulation(status string, duration time.Duration, pathCount int) {
	r.SimulationsTotal.WithLabelValues(status).Inc()
	r.SimulationDuration.Observe(duration.Seconds())
	r.PathsFound.Observe(float64(pathCount))
}

// RecordStage records the duration of one pipeline stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordShortCircuits adds detected short circuits to the running total
func (r *Registry) RecordShortCircuits(count int) {
	if count > 0 {
		r.ShortCircuits.Add(float64(count))
	}
}

// RecordPathLimitHit marks a simulation whose enumeration was truncated
func (r *Registry) RecordPathLimitHit() {
	r.PathLimitHits.Inc()
}

// UpdateGraphMetrics publishes the size of the simulated circuit
func (r *Registry) UpdateGraphMetrics(nodes, edges, nets, switchesClosed int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.NetsTotal.Set(float64(nets))
	r.SwitchesClosedTotal.Set(float64(switchesClosed))
}
