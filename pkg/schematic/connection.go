package schematic

import "fmt"

// ConnectionCheck is the synchronous verdict on a proposed wire. Invalid
// connections never enter a schematic, so graph construction can assume
// wires were screened here (or tolerate the ones that weren't).
type ConnectionCheck struct {
	Valid  bool
	Reason string
}

func invalid(format string, args ...any) ConnectionCheck {
	return ConnectionCheck{Valid: false, Reason: fmt.Sprintf(format, args...)}
}

// CheckConnection validates a proposed wire between two endpoints against
// the current schematic. It never returns an error; the verdict is the result.
func CheckConnection(from, to Endpoint, components []*Component, junctions []*Junction, wires []*Wire) ConnectionCheck {
	if !from.IsPort() && !from.IsJunction() {
		return invalid("source endpoint references neither a port nor a junction")
	}
	if !to.IsPort() && !to.IsJunction() {
		return invalid("target endpoint references neither a port nor a junction")
	}

	if sameEndpoint(from, to) {
		return invalid("cannot connect an endpoint to itself")
	}
	if from.IsPort() && to.IsPort() && from.ComponentID == to.ComponentID {
		return invalid("cannot connect two ports of component %s", from.ComponentID)
	}

	fromPort, check := resolveEndpoint(from, components, junctions)
	if !check.Valid {
		return check
	}
	toPort, check := resolveEndpoint(to, components, junctions)
	if !check.Valid {
		return check
	}

	// Junction endpoints resolve to a nil port and are direction-agnostic.
	if fromPort != nil && toPort != nil {
		if fromPort.Direction == toPort.Direction && fromPort.Direction != DirectionBidirectional {
			return invalid("incompatible port directions: %s to %s", fromPort.Direction, toPort.Direction)
		}
	}

	for _, w := range wires {
		if w == nil {
			continue
		}
		if (sameEndpoint(w.From, from) && sameEndpoint(w.To, to)) ||
			(sameEndpoint(w.From, to) && sameEndpoint(w.To, from)) {
			return invalid("duplicate of wire %s", w.ID)
		}
	}

	return ConnectionCheck{Valid: true}
}

// resolveEndpoint confirms the endpoint's target exists. For port endpoints
// it returns the port; for junction endpoints it returns nil with a valid check.
func resolveEndpoint(ep Endpoint, components []*Component, junctions []*Junction) (*Port, ConnectionCheck) {
	if ep.IsJunction() {
		for _, j := range junctions {
			if j != nil && j.ID == ep.JunctionID {
				return nil, ConnectionCheck{Valid: true}
			}
		}
		return nil, invalid("junction %s not found", ep.JunctionID)
	}

	for _, c := range components {
		if c == nil || c.ID != ep.ComponentID {
			continue
		}
		if p := c.Port(ep.PortID); p != nil {
			return p, ConnectionCheck{Valid: true}
		}
		return nil, invalid("component %s has no port %s", ep.ComponentID, ep.PortID)
	}
	return nil, invalid("component %s not found", ep.ComponentID)
}

func sameEndpoint(a, b Endpoint) bool {
	return a.ComponentID == b.ComponentID && a.PortID == b.PortID && a.JunctionID == b.JunctionID
}
