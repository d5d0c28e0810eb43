package circuit

import (
	"github.com/dd0wney/cluso-circuit/pkg/logging"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

// Component types with a fixed classification. Anything else is inferred
// per port from its direction.
const (
	TypePower24V  = "power_24v"
	TypePower12V  = "power_12v"
	TypeGround    = "gnd"
	TypePLCOutput = "plc_out"
	TypePLCInput  = "plc_in"
	TypeButton    = "button"
	TypeLED       = "led"
	TypeScope     = "scope"
)

// Builder turns a schematic into a circuit graph.
type Builder struct {
	logger logging.Logger
}

// NewBuilder creates a graph builder. A nil logger disables logging.
func NewBuilder(logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Builder{logger: logger}
}

// BuildGraph constructs the per-port node graph for a schematic. Wires with
// unresolvable endpoints are dropped, not reported: the graph is simply
// smaller. Junction endpoints belong to net computation, not to the graph.
func (b *Builder) BuildGraph(components []*schematic.Component, wires []*schematic.Wire, _ []*schematic.Junction) *Graph {
	g := NewGraph()

	for _, comp := range components {
		if comp == nil {
			continue
		}
		b.addComponentNodes(g, comp)
	}
	for _, comp := range components {
		if comp == nil {
			continue
		}
		b.addInternalEdges(g, comp)
	}
	for _, wire := range wires {
		if wire == nil {
			continue
		}
		b.addWireEdge(g, wire)
	}

	b.logger.Debug("circuit graph built",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("power_nodes", len(g.PowerNodes)),
		logging.Int("ground_nodes", len(g.GroundNodes)))
	return g
}

// addComponentNodes creates one node per port.
func (b *Builder) addComponentNodes(g *Graph, comp *schematic.Component) {
	nodeType, sourceVoltage := classify(comp)

	for i := range comp.Ports {
		port := &comp.Ports[i]
		perPortType := nodeType
		if perPortType == "" {
			// Unknown component type: infer from the port itself.
			if port.Direction == schematic.DirectionInput {
				perPortType = NodeInput
			} else {
				perPortType = NodeLoad
			}
		}

		node := &Node{
			ID:          NodeID(comp.ID, port.ID),
			ComponentID: comp.ID,
			PortID:      port.ID,
			Type:        perPortType,
		}
		if perPortType == NodePower {
			node.SourceVoltage = sourceVoltage
		}
		if err := g.AddNode(node); err != nil {
			b.logger.Warn("skipping duplicate node",
				logging.ComponentID(comp.ID),
				logging.String("port_id", port.ID),
				logging.Error(err))
		}
	}
}

// classify maps a component type to a node type. The empty node type means
// "infer per port". Power components fall back to the conventional level for
// their type when no explicit voltage is set.
func classify(comp *schematic.Component) (NodeType, float64) {
	switch comp.Type {
	case TypePower24V:
		return NodePower, sourceLevel(comp, 24)
	case TypePower12V:
		return NodePower, sourceLevel(comp, 12)
	case TypeGround:
		return NodeGround, 0
	case TypePLCOutput, TypeButton:
		return NodeSwitch, 0
	case TypeLED, TypeScope:
		return NodeLoad, 0
	case TypePLCInput:
		return NodeInput, 0
	default:
		return "", 0
	}
}

func sourceLevel(comp *schematic.Component, fallback float64) float64 {
	if comp.Voltage > 0 {
		return comp.Voltage
	}
	return fallback
}

// addInternalEdges wires a component's own ports together. Switch components
// get a single switched edge pair whose conductance stays false until switch
// states are applied; everything else conducts unconditionally.
func (b *Builder) addInternalEdges(g *Graph, comp *schematic.Component) {
	if len(comp.Ports) < 2 {
		return
	}

	nodeType, _ := classify(comp)
	if nodeType == NodeSwitch {
		in, out := switchTerminals(comp)
		if in == nil || out == nil {
			return
		}
		g.AddEdgePair(&Edge{
			From:              NodeID(comp.ID, in.ID),
			To:                NodeID(comp.ID, out.ID),
			Conductance:       false,
			IsSwitch:          true,
			SwitchComponentID: comp.ID,
		})
		return
	}

	for i := range comp.Ports {
		for j := i + 1; j < len(comp.Ports); j++ {
			a, c := &comp.Ports[i], &comp.Ports[j]
			if !portsConduct(a.Direction, c.Direction) {
				continue
			}
			g.AddEdgePair(&Edge{
				From:        NodeID(comp.ID, a.ID),
				To:          NodeID(comp.ID, c.ID),
				Conductance: true,
			})
		}
	}
}

// switchTerminals picks the input and output terminal of a switch component.
// Bidirectional ports can serve either side, but never both.
func switchTerminals(comp *schematic.Component) (in, out *schematic.Port) {
	for i := range comp.Ports {
		p := &comp.Ports[i]
		switch {
		case in == nil && (p.Direction == schematic.DirectionInput || p.Direction == schematic.DirectionBidirectional):
			in = p
		case out == nil && (p.Direction == schematic.DirectionOutput || p.Direction == schematic.DirectionBidirectional):
			out = p
		}
	}
	return in, out
}

// portsConduct reports whether an internal edge belongs between two port
// directions: one side must be able to take current in, the other out.
func portsConduct(a, b schematic.PortDirection) bool {
	inA := a == schematic.DirectionInput || a == schematic.DirectionBidirectional
	outA := a == schematic.DirectionOutput || a == schematic.DirectionBidirectional
	inB := b == schematic.DirectionInput || b == schematic.DirectionBidirectional
	outB := b == schematic.DirectionOutput || b == schematic.DirectionBidirectional
	return (inA && outB) || (outA && inB)
}

// addWireEdge resolves a wire into a graph edge pair. Only port-to-port
// wires become edges; anything that doesn't resolve is dropped.
func (b *Builder) addWireEdge(g *Graph, wire *schematic.Wire) {
	if !wire.From.IsPort() || !wire.To.IsPort() {
		return
	}
	fromID := NodeID(wire.From.ComponentID, wire.From.PortID)
	toID := NodeID(wire.To.ComponentID, wire.To.PortID)

	if _, ok := g.Nodes[fromID]; !ok {
		b.logger.Debug("dropping wire with unresolved endpoint",
			logging.WireID(wire.ID), logging.String("endpoint", fromID))
		return
	}
	if _, ok := g.Nodes[toID]; !ok {
		b.logger.Debug("dropping wire with unresolved endpoint",
			logging.WireID(wire.ID), logging.String("endpoint", toID))
		return
	}

	g.AddEdgePair(&Edge{
		From:        fromID,
		To:          toID,
		WireID:      wire.ID,
		Conductance: true,
	})
}
