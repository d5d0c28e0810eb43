package voltage

import (
	"testing"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

func comp(id, compType string, ports ...schematic.Port) *schematic.Component {
	return &schematic.Component{ID: id, Type: compType, Ports: ports}
}

func inPort(id string) schematic.Port {
	return schematic.Port{ID: id, Direction: schematic.DirectionInput}
}

func outPort(id string) schematic.Port {
	return schematic.Port{ID: id, Direction: schematic.DirectionOutput}
}

func portWire(id, fromComp, fromPort, toComp, toPort string) *schematic.Wire {
	return &schematic.Wire{
		ID:   id,
		From: schematic.Endpoint{ComponentID: fromComp, PortID: fromPort},
		To:   schematic.Endpoint{ComponentID: toComp, PortID: toPort},
	}
}

// loadCircuit is power -> led -> ground with all edges conductive.
func loadCircuit(t *testing.T) *circuit.Graph {
	t.Helper()
	components := []*schematic.Component{
		comp("pwr", circuit.TypePower24V, outPort("p")),
		comp("led1", circuit.TypeLED, inPort("in"), outPort("out")),
		comp("g", circuit.TypeGround, inPort("p")),
	}
	wires := []*schematic.Wire{
		portWire("w1", "pwr", "p", "led1", "in"),
		portWire("w2", "led1", "out", "g", "p"),
	}
	return circuit.NewBuilder(nil).BuildGraph(components, wires, nil)
}

// TestPropagate_CompletePathCarriesSourceVoltage checks every path node gets the supply level
func TestPropagate_CompletePathCarriesSourceVoltage(t *testing.T) {
	g := loadCircuit(t)
	found := paths.FindAllPaths(g, paths.DefaultOptions())
	if len(found) != 1 {
		t.Fatalf("expected 1 path, got %d", len(found))
	}

	voltages := Propagate(g, found)

	for _, nodeID := range found[0].Nodes {
		if voltages[nodeID] != 24 {
			t.Errorf("node %s voltage = %v, want 24", nodeID, voltages[nodeID])
		}
		if g.Nodes[nodeID].Voltage != 24 {
			t.Errorf("node %s in-graph voltage = %v, want 24", nodeID, g.Nodes[nodeID].Voltage)
		}
	}
}

// TestPropagate_NoPathLeavesZero checks unpowered nodes stay at zero
func TestPropagate_NoPathLeavesZero(t *testing.T) {
	g := loadCircuit(t)

	voltages := Propagate(g, nil)

	if voltages["led1:in"] != 0 || voltages["led1:out"] != 0 {
		t.Errorf("load nodes must stay at 0V without a path: %v", voltages)
	}
	if voltages["pwr:p"] != 24 {
		t.Errorf("power node must carry its source voltage, got %v", voltages["pwr:p"])
	}
}

// TestPropagate_ConvergingSuppliesTakeMax checks the optimistic max merge
func TestPropagate_ConvergingSuppliesTakeMax(t *testing.T) {
	components := []*schematic.Component{
		comp("p24", circuit.TypePower24V, outPort("p")),
		comp("p12", circuit.TypePower12V, outPort("p")),
		comp("led1", circuit.TypeLED, inPort("in"), outPort("out")),
		comp("g", circuit.TypeGround, inPort("p")),
	}
	wires := []*schematic.Wire{
		portWire("w1", "p24", "p", "led1", "in"),
		portWire("w2", "p12", "p", "led1", "in"),
		portWire("w3", "led1", "out", "g", "p"),
	}
	g := circuit.NewBuilder(nil).BuildGraph(components, wires, nil)

	found := paths.FindAllPaths(g, paths.DefaultOptions())
	voltages := Propagate(g, found)

	if voltages["led1:in"] != 24 {
		t.Errorf("converging node voltage = %v, want max supply 24", voltages["led1:in"])
	}
}

// TestPropagate_ShortPathsAssignNothing checks short circuits don't propagate voltage
func TestPropagate_ShortPathsAssignNothing(t *testing.T) {
	components := []*schematic.Component{
		comp("pwr", circuit.TypePower24V, outPort("p")),
		comp("g", circuit.TypeGround, inPort("p")),
	}
	wires := []*schematic.Wire{portWire("w1", "pwr", "p", "g", "p")}
	g := circuit.NewBuilder(nil).BuildGraph(components, wires, nil)

	found := paths.FindAllPaths(g, paths.DefaultOptions())
	voltages := Propagate(g, found)

	if voltages["g:p"] != 0 {
		t.Errorf("ground node on a short path must stay 0V, got %v", voltages["g:p"])
	}
}

// TestPoweredComponents_RequiresPathAndVoltage checks both powered conditions
func TestPoweredComponents_RequiresPathAndVoltage(t *testing.T) {
	g := loadCircuit(t)
	found := paths.FindAllPaths(g, paths.DefaultOptions())
	voltages := Propagate(g, found)

	powered := PoweredComponents(g, found, voltages)
	if len(powered) != 1 || powered[0] != "led1" {
		t.Errorf("powered = %v, want [led1]", powered)
	}
}

// TestPoweredComponents_NoPathsMeansNothingPowered checks the empty case
func TestPoweredComponents_NoPathsMeansNothingPowered(t *testing.T) {
	g := loadCircuit(t)
	voltages := Propagate(g, nil)

	if powered := PoweredComponents(g, nil, voltages); len(powered) != 0 {
		t.Errorf("powered = %v, want none", powered)
	}
}

// TestShortCircuits_FiltersCompleteShortPaths checks the report shape
func TestShortCircuits_FiltersCompleteShortPaths(t *testing.T) {
	short := &paths.CurrentPath{
		Nodes:          []string{"pwr:p", "g:p"},
		PowerSource:    "pwr:p",
		Voltage:        24,
		IsComplete:     true,
		IsShortCircuit: true,
	}
	healthy := &paths.CurrentPath{IsComplete: true}

	shorts := ShortCircuits([]*paths.CurrentPath{short, healthy})
	if len(shorts) != 1 {
		t.Fatalf("expected 1 short report, got %d", len(shorts))
	}
	if shorts[0].PowerSource != "pwr:p" || shorts[0].Voltage != 24 {
		t.Errorf("short report wrong: %+v", shorts[0])
	}
}
