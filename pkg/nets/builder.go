package nets

import (
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

// Net is one galvanic group: the maximal set of endpoints connected by
// wires, regardless of any switch state.
type Net struct {
	// ID is the union-find representative key of the group.
	ID string
	// Members holds the endpoint keys, sorted. Always two or more.
	Members []string
}

// PortKey is the net-membership key for a component port.
func PortKey(componentID, portID string) string {
	return fmt.Sprintf("port:%s:%s", componentID, portID)
}

// JunctionKey is the net-membership key for a junction.
func JunctionKey(junctionID string) string {
	return fmt.Sprintf("junction:%s", junctionID)
}

// Build computes the nets of a schematic. Every known port and junction is
// registered first so isolated endpoints exist as singletons; wires whose
// endpoints don't resolve are skipped; only groups of two or more endpoints
// become nets. Conductance plays no part here: nets reflect physical wiring.
func Build(components []*schematic.Component, junctions []*schematic.Junction, wires []*schematic.Wire) []*Net {
	uf := NewUnionFind()

	ports := make(map[string]map[string]bool)
	for _, comp := range components {
		if comp == nil {
			continue
		}
		ports[comp.ID] = make(map[string]bool, len(comp.Ports))
		for _, port := range comp.Ports {
			ports[comp.ID][port.ID] = true
			uf.Find(PortKey(comp.ID, port.ID))
		}
	}

	junctionIDs := make(map[string]bool, len(junctions))
	for _, j := range junctions {
		if j == nil {
			continue
		}
		junctionIDs[j.ID] = true
		uf.Find(JunctionKey(j.ID))
	}

	for _, wire := range wires {
		if wire == nil {
			continue
		}
		fromKey, ok := endpointKey(wire.From, ports, junctionIDs)
		if !ok {
			continue
		}
		toKey, ok := endpointKey(wire.To, ports, junctionIDs)
		if !ok {
			continue
		}
		uf.Union(fromKey, toKey)
	}

	result := make([]*Net, 0)
	for root, members := range uf.Groups() {
		if len(members) < 2 {
			continue
		}
		sort.Strings(members)
		result = append(result, &Net{ID: root, Members: members})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// endpointKey validates a wire endpoint against the known schematic and
// returns its membership key.
func endpointKey(ep schematic.Endpoint, ports map[string]map[string]bool, junctions map[string]bool) (string, bool) {
	if ep.IsJunction() {
		if !junctions[ep.JunctionID] {
			return "", false
		}
		return JunctionKey(ep.JunctionID), true
	}
	if ep.IsPort() {
		if compPorts, ok := ports[ep.ComponentID]; ok && compPorts[ep.PortID] {
			return PortKey(ep.ComponentID, ep.PortID), true
		}
	}
	return "", false
}
