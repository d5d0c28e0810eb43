package paths

import (
	"container/list"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
)

// searchEntry is one frontier position in the breadth-first enumeration.
// Each entry owns its path-so-far and visited set, so parallel branches
// never interfere with each other.
type searchEntry struct {
	nodeID  string
	nodes   []string
	wireIDs []string
	visited map[string]bool
	hasLoad bool
}

// FindPaths enumerates every conductive path from one power node to any
// ground node. Exploration never revisits a node within a path, never
// continues past a ground node, and never exceeds opts.MaxPathLength nodes.
func FindPaths(graph *circuit.Graph, powerNodeID string, opts Options) []*CurrentPath {
	if graph == nil {
		return nil
	}
	power, ok := graph.Nodes[powerNodeID]
	if !ok || power.Type != circuit.NodePower {
		return nil
	}
	if opts.MaxPathLength <= 0 {
		opts.MaxPathLength = DefaultMaxPathLength
	}

	found := make([]*CurrentPath, 0)

	queue := list.New()
	queue.PushBack(&searchEntry{
		nodeID:  powerNodeID,
		nodes:   []string{powerNodeID},
		visited: map[string]bool{powerNodeID: true},
	})

	for queue.Len() > 0 {
		entry := queue.Remove(queue.Front()).(*searchEntry)

		if len(entry.nodes) >= opts.MaxPathLength {
			continue
		}

		for _, edge := range graph.EdgesFrom(entry.nodeID) {
			if !edge.Conductance {
				continue
			}
			next, ok := graph.Nodes[edge.To]
			if !ok || entry.visited[edge.To] {
				continue
			}

			nextNodes := append(append([]string(nil), entry.nodes...), edge.To)
			nextWires := append([]string(nil), entry.wireIDs...)
			if edge.WireID != "" {
				nextWires = append(nextWires, edge.WireID)
			}
			hasLoad := entry.hasLoad || next.Type == circuit.NodeLoad

			if next.Type == circuit.NodeGround {
				found = append(found, &CurrentPath{
					Nodes:          nextNodes,
					WireIDs:        nextWires,
					PowerSource:    powerNodeID,
					Voltage:        power.SourceVoltage,
					IsComplete:     true,
					IsShortCircuit: !opts.DisableShortCircuitDetection && !hasLoad,
				})
				if opts.MaxPaths > 0 && len(found) >= opts.MaxPaths {
					return found
				}
				// Ground terminates this branch.
				continue
			}

			nextVisited := make(map[string]bool, len(entry.visited)+1)
			for id := range entry.visited {
				nextVisited[id] = true
			}
			nextVisited[edge.To] = true

			queue.PushBack(&searchEntry{
				nodeID:  edge.To,
				nodes:   nextNodes,
				wireIDs: nextWires,
				visited: nextVisited,
				hasLoad: hasLoad,
			})
		}
	}

	return found
}

// FindAllPaths runs the enumeration from every power node and concatenates
// the results. Disjoint paths to the same or different grounds are all kept;
// opts.MaxPaths, when set, bounds the combined total.
func FindAllPaths(graph *circuit.Graph, opts Options) []*CurrentPath {
	if graph == nil {
		return nil
	}

	all := make([]*CurrentPath, 0)
	for _, powerNodeID := range graph.PowerNodes {
		remaining := opts
		if opts.MaxPaths > 0 {
			remaining.MaxPaths = opts.MaxPaths - len(all)
			if remaining.MaxPaths <= 0 {
				break
			}
		}
		all = append(all, FindPaths(graph, powerNodeID, remaining)...)
	}
	return all
}
