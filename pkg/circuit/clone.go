package circuit

// Clone performs a full value copy of the graph: nodes, edges and
// classification lists. Mutating the copy (switch application, voltage
// assignment) never touches the original.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}

	clone := NewGraph()

	for id, node := range g.Nodes {
		copied := *node
		clone.Nodes[id] = &copied
	}
	for from, list := range g.Edges {
		copiedList := make([]*Edge, len(list))
		for i, edge := range list {
			copied := *edge
			copiedList[i] = &copied
		}
		clone.Edges[from] = copiedList
	}

	clone.PowerNodes = append([]string(nil), g.PowerNodes...)
	clone.GroundNodes = append([]string(nil), g.GroundNodes...)
	clone.SwitchNodes = append([]string(nil), g.SwitchNodes...)
	clone.LoadNodes = append([]string(nil), g.LoadNodes...)

	return clone
}
