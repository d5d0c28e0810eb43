package switches

import (
	"github.com/dd0wney/cluso-circuit/pkg/circuit"
)

// Apply clones the graph and resolves the conductance of every switched
// edge from the given states. The caller's graph is never mutated. Switched
// edges without a matching state stay non-conductive.
func Apply(graph *circuit.Graph, states StateMap) *circuit.Graph {
	if graph == nil {
		return nil
	}

	applied := graph.Clone()
	for _, edges := range applied.Edges {
		for _, edge := range edges {
			if !edge.IsSwitch {
				continue
			}
			if state, ok := states[edge.SwitchComponentID]; ok {
				edge.Conductance = !state.IsOpen
			}
		}
	}
	return applied
}
