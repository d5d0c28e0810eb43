package paths

// DefaultMaxPathLength bounds how many nodes a single path may visit. It is
// the only safeguard against runaway enumeration on densely meshed graphs.
const DefaultMaxPathLength = 100

// Options configures path enumeration.
type Options struct {
	// MaxPathLength caps the node count of any single path.
	MaxPathLength int
	// MaxPaths caps how many complete paths one enumeration may emit.
	// 0 means unlimited, which matches the historical behavior; densely
	// parallel wiring can grow the path set combinatorially.
	MaxPaths int
	// DisableShortCircuitDetection turns off flagging of complete paths
	// that reach ground without crossing a load. The zero value keeps
	// detection on.
	DisableShortCircuitDetection bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxPathLength: DefaultMaxPathLength,
	}
}

// CurrentPath is one conductive route from a power node to a ground node.
type CurrentPath struct {
	// Nodes is the ordered node-id sequence, power first, ground last.
	// A path never repeats a node.
	Nodes []string
	// WireIDs lists the schematic wires the path crossed, in traversal order.
	WireIDs []string
	// PowerSource is the power node the enumeration started from.
	PowerSource string
	// Voltage is the source voltage of the originating power node.
	Voltage float64
	// IsComplete reports that the path reached a ground node.
	IsComplete bool
	// IsShortCircuit reports a complete path that crossed no load.
	IsShortCircuit bool
}

// ContainsNode reports whether the path visits the given node.
func (p *CurrentPath) ContainsNode(nodeID string) bool {
	for _, id := range p.Nodes {
		if id == nodeID {
			return true
		}
	}
	return false
}

// ContainsWire reports whether the path crosses the given wire.
func (p *CurrentPath) ContainsWire(wireID string) bool {
	for _, id := range p.WireIDs {
		if id == wireID {
			return true
		}
	}
	return false
}
