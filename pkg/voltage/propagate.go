package voltage

import (
	"sort"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
)

// Propagate assigns a voltage to every node and returns the node→voltage
// map. All nodes start at 0V, power nodes take their source voltage, and
// every node on a complete non-short path takes the highest path voltage
// that reaches it. Converging supplies merge optimistically (ideal sources,
// no resistive solve). The graph's node values are updated in place.
func Propagate(graph *circuit.Graph, allPaths []*paths.CurrentPath) map[string]float64 {
	voltages := make(map[string]float64)
	if graph == nil {
		return voltages
	}

	for id, node := range graph.Nodes {
		node.Voltage = 0
		voltages[id] = 0
	}
	for _, id := range graph.PowerNodes {
		if node, ok := graph.Nodes[id]; ok {
			node.Voltage = node.SourceVoltage
			voltages[id] = node.SourceVoltage
		}
	}

	for _, path := range allPaths {
		if path == nil || !path.IsComplete || path.IsShortCircuit {
			continue
		}
		for _, nodeID := range path.Nodes {
			if path.Voltage > voltages[nodeID] {
				voltages[nodeID] = path.Voltage
				if node, ok := graph.Nodes[nodeID]; ok {
					node.Voltage = path.Voltage
				}
			}
		}
	}

	return voltages
}

// PoweredComponents reports which components carry current: a component is
// powered when it sits on at least one complete non-short path and at least
// one of its ports carries a voltage above zero. Power sources and grounds
// are never reported. The result is sorted.
func PoweredComponents(graph *circuit.Graph, allPaths []*paths.CurrentPath, voltages map[string]float64) []string {
	if graph == nil {
		return nil
	}

	onPath := make(map[string]bool)
	for _, path := range allPaths {
		if path == nil || !path.IsComplete || path.IsShortCircuit {
			continue
		}
		for _, nodeID := range path.Nodes {
			if node, ok := graph.Nodes[nodeID]; ok {
				onPath[node.ComponentID] = true
			}
		}
	}

	powered := make(map[string]bool)
	for _, node := range graph.Nodes {
		if node.Type == circuit.NodePower || node.Type == circuit.NodeGround {
			continue
		}
		if onPath[node.ComponentID] && voltages[node.ID] > 0 {
			powered[node.ComponentID] = true
		}
	}

	result := make([]string, 0, len(powered))
	for id := range powered {
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}

// ShortCircuit is one reported power-to-ground path with no load on it.
type ShortCircuit struct {
	Path        *paths.CurrentPath
	PowerSource string
	Voltage     float64
}

// ShortCircuits filters the complete short paths into a report list.
func ShortCircuits(allPaths []*paths.CurrentPath) []*ShortCircuit {
	shorts := make([]*ShortCircuit, 0)
	for _, path := range allPaths {
		if path == nil || !path.IsComplete || !path.IsShortCircuit {
			continue
		}
		shorts = append(shorts, &ShortCircuit{
			Path:        path,
			PowerSource: path.PowerSource,
			Voltage:     path.Voltage,
		})
	}
	return shorts
}
