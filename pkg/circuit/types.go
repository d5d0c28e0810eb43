package circuit

import (
	"fmt"
	"sort"
)

// NodeType classifies what role a port node plays in the circuit.
type NodeType string

const (
	NodePower    NodeType = "power"
	NodeGround   NodeType = "ground"
	NodeSwitch   NodeType = "switch"
	NodeLoad     NodeType = "load"
	NodeJunction NodeType = "junction"
	NodeInput    NodeType = "input"
)

// Node is one component port lifted into the circuit graph.
type Node struct {
	ID          string // componentID:portID, unique across the graph
	ComponentID string
	PortID      string
	Type        NodeType

	// SourceVoltage is the supply level for power nodes, zero otherwise.
	SourceVoltage float64

	// Voltage is assigned by propagation. Zero until a simulation runs.
	Voltage float64
}

// Edge is one direction of a conductive connection between two nodes.
// Edges always exist in matching forward/reverse pairs.
type Edge struct {
	From string
	To   string

	// WireID tags edges created from schematic wires; internal component
	// edges leave it empty.
	WireID string

	// Conductance is the single source of truth for whether current can
	// cross this edge right now.
	Conductance bool

	// IsSwitch marks internal edges of switch components, whose conductance
	// is resolved from switch state rather than fixed at build time.
	IsSwitch          bool
	SwitchComponentID string
}

// Graph is the per-port node graph built from a schematic. Stored as
// directed adjacency lists, logically undirected through the edge pairs.
type Graph struct {
	Nodes map[string]*Node
	Edges map[string][]*Edge // keyed by Edge.From

	PowerNodes  []string
	GroundNodes []string
	SwitchNodes []string
	LoadNodes   []string
}

// NewGraph returns an empty graph with all maps initialized.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]*Node),
		Edges: make(map[string][]*Edge),
	}
}

// NodeID builds the global node id for a component port.
func NodeID(componentID, portID string) string {
	return fmt.Sprintf("%s:%s", componentID, portID)
}

// AddNode inserts a node and records it in the matching classification list.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, exists := g.Nodes[n.ID]; exists {
		return &GraphError{Op: "AddNode", Entity: "node", ID: n.ID, Cause: ErrDuplicateNode}
	}
	g.Nodes[n.ID] = n

	switch n.Type {
	case NodePower:
		g.PowerNodes = append(g.PowerNodes, n.ID)
	case NodeGround:
		g.GroundNodes = append(g.GroundNodes, n.ID)
	case NodeSwitch:
		g.SwitchNodes = append(g.SwitchNodes, n.ID)
	case NodeLoad:
		g.LoadNodes = append(g.LoadNodes, n.ID)
	}
	return nil
}

// AddEdgePair inserts the forward edge and its mirror in one step.
func (g *Graph) AddEdgePair(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if _, ok := g.Nodes[e.From]; !ok {
		return &GraphError{Op: "AddEdgePair", Entity: "node", ID: e.From, Cause: ErrNodeNotFound}
	}
	if _, ok := g.Nodes[e.To]; !ok {
		return &GraphError{Op: "AddEdgePair", Entity: "node", ID: e.To, Cause: ErrNodeNotFound}
	}

	reverse := *e
	reverse.From, reverse.To = e.To, e.From

	g.Edges[e.From] = append(g.Edges[e.From], e)
	g.Edges[reverse.From] = append(g.Edges[reverse.From], &reverse)
	return nil
}

// EdgesFrom returns the outgoing adjacency list of a node (nil when none).
func (g *Graph) EdgesFrom(nodeID string) []*Edge {
	return g.Edges[nodeID]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, list := range g.Edges {
		total += len(list)
	}
	return total
}

// SortedNodeIDs returns all node ids in lexical order, for deterministic
// iteration where map order would leak into results.
func (g *Graph) SortedNodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
