package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "circuit_graph_nodes",
			Help: "Nodes in the most recently simulated circuit graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "circuit_graph_edges",
			Help: "Directed edges in the most recently simulated circuit graph",
		},
	)

	r.NetsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "circuit_nets",
			Help: "Galvanic groups in the most recently simulated schematic",
		},
	)

	r.SwitchesClosedTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "circuit_switches_closed",
			Help: "Closed switches in the most recent simulation",
		},
	)
}
