package nets

import (
	"reflect"
	"testing"

	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

func netComponent(id string, portIDs ...string) *schematic.Component {
	c := &schematic.Component{ID: id, Type: "led"}
	for _, pid := range portIDs {
		c.Ports = append(c.Ports, schematic.Port{ID: pid, Direction: schematic.DirectionBidirectional})
	}
	return c
}

// TestBuild_PortJunctionPortChain matches the canonical three-endpoint net
func TestBuild_PortJunctionPortChain(t *testing.T) {
	components := []*schematic.Component{
		netComponent("A", "1"),
		netComponent("C", "1"),
	}
	junctions := []*schematic.Junction{{ID: "B"}}
	wires := []*schematic.Wire{
		{ID: "w1", From: schematic.Endpoint{ComponentID: "A", PortID: "1"}, To: schematic.Endpoint{JunctionID: "B"}},
		{ID: "w2", From: schematic.Endpoint{JunctionID: "B"}, To: schematic.Endpoint{ComponentID: "C", PortID: "1"}},
	}

	result := Build(components, junctions, wires)
	if len(result) != 1 {
		t.Fatalf("expected exactly 1 net, got %d", len(result))
	}

	want := []string{"junction:B", "port:A:1", "port:C:1"}
	if !reflect.DeepEqual(result[0].Members, want) {
		t.Errorf("net members = %v, want %v", result[0].Members, want)
	}
}

// TestBuild_SingletonsDropped checks isolated endpoints produce no nets
func TestBuild_SingletonsDropped(t *testing.T) {
	components := []*schematic.Component{netComponent("A", "1", "2")}
	junctions := []*schematic.Junction{{ID: "J"}}

	if result := Build(components, junctions, nil); len(result) != 0 {
		t.Errorf("unwired schematic produced %d nets, want 0", len(result))
	}
}

// TestBuild_InvalidWireEndpointsSkipped checks dangling wires don't union anything
func TestBuild_InvalidWireEndpointsSkipped(t *testing.T) {
	components := []*schematic.Component{
		netComponent("A", "1"),
		netComponent("B", "1"),
	}
	wires := []*schematic.Wire{
		{ID: "w1", From: schematic.Endpoint{ComponentID: "A", PortID: "1"}, To: schematic.Endpoint{ComponentID: "ghost", PortID: "1"}},
		{ID: "w2", From: schematic.Endpoint{ComponentID: "A", PortID: "7"}, To: schematic.Endpoint{ComponentID: "B", PortID: "1"}},
		{ID: "w3", From: schematic.Endpoint{JunctionID: "nope"}, To: schematic.Endpoint{ComponentID: "B", PortID: "1"}},
	}

	if result := Build(components, nil, wires); len(result) != 0 {
		t.Errorf("invalid wires produced %d nets, want 0", len(result))
	}
}

// TestBuild_IgnoresSwitchState checks nets reflect wiring only: a schematic
// net exists whether or not any switch on it conducts.
func TestBuild_IgnoresSwitchState(t *testing.T) {
	components := []*schematic.Component{
		netComponent("pwr", "p"),
		{ID: "q1", Type: "plc_out", Ports: []schematic.Port{
			{ID: "in", Direction: schematic.DirectionInput},
			{ID: "out", Direction: schematic.DirectionOutput},
		}},
	}
	wires := []*schematic.Wire{
		{ID: "w1", From: schematic.Endpoint{ComponentID: "pwr", PortID: "p"}, To: schematic.Endpoint{ComponentID: "q1", PortID: "in"}},
	}

	result := Build(components, nil, wires)
	if len(result) != 1 {
		t.Fatalf("expected 1 net, got %d", len(result))
	}
	want := []string{"port:pwr:p", "port:q1:in"}
	if !reflect.DeepEqual(result[0].Members, want) {
		t.Errorf("net members = %v, want %v", result[0].Members, want)
	}
}

// TestBuild_TwoSeparateNets checks unconnected groups stay distinct
func TestBuild_TwoSeparateNets(t *testing.T) {
	components := []*schematic.Component{
		netComponent("A", "1"),
		netComponent("B", "1"),
		netComponent("C", "1"),
		netComponent("D", "1"),
	}
	wires := []*schematic.Wire{
		{ID: "w1", From: schematic.Endpoint{ComponentID: "A", PortID: "1"}, To: schematic.Endpoint{ComponentID: "B", PortID: "1"}},
		{ID: "w2", From: schematic.Endpoint{ComponentID: "C", PortID: "1"}, To: schematic.Endpoint{ComponentID: "D", PortID: "1"}},
	}

	result := Build(components, nil, wires)
	if len(result) != 2 {
		t.Fatalf("expected 2 nets, got %d", len(result))
	}
	for _, net := range result {
		if len(net.Members) != 2 {
			t.Errorf("net %s has %d members, want 2", net.ID, len(net.Members))
		}
	}
}
