package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

func main() {
	rungs := flag.Int("rungs", 12, "Number of parallel load rungs between the rails")
	runs := flag.Int("runs", 100, "Number of search repetitions")
	maxPathLength := flag.Int("max-path-length", paths.DefaultMaxPathLength, "Path length bound")
	maxPaths := flag.Int("max-paths", 0, "Path count ceiling (0 = unlimited)")
	flag.Parse()

	fmt.Printf("⚡ Cluso Circuit - Path Enumeration Benchmark\n")
	fmt.Printf("=============================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Rungs: %d\n", *rungs)
	fmt.Printf("  Runs: %d\n", *runs)
	fmt.Printf("  Max path length: %d\n", *maxPathLength)
	fmt.Printf("  Max paths: %d\n\n", *maxPaths)

	components, wires := ladderPanel(*rungs)

	fmt.Printf("📐 Building graph from %d components and %d wires...\n", len(components), len(wires))
	start := time.Now()
	graph := circuit.NewBuilder(nil).BuildGraph(components, wires, nil)
	fmt.Printf("✅ Built %d nodes and %d edges in %v\n\n",
		graph.NodeCount(), graph.EdgeCount(), time.Since(start))

	opts := paths.Options{
		MaxPathLength: *maxPathLength,
		MaxPaths:      *maxPaths,
	}

	fmt.Printf("🔍 Enumerating power-to-ground paths...\n")
	var found []*paths.CurrentPath
	start = time.Now()
	for i := 0; i < *runs; i++ {
		found = paths.FindAllPaths(graph, opts)
	}
	total := time.Since(start)

	firstRung := 0
	for _, p := range found {
		if p.ContainsNode("load0:in") {
			firstRung++
		}
	}

	perRun := total / time.Duration(*runs)
	fmt.Printf("✅ %d runs in %v\n", *runs, total)
	fmt.Printf("  Paths per run: %d\n", len(found))
	fmt.Printf("  Paths through the first rung: %d\n", firstRung)
	fmt.Printf("  Latency per run: %v\n", perRun)
	if perRun > 0 {
		fmt.Printf("  Throughput: %.0f runs/sec\n", float64(time.Second)/float64(perRun))
	}
}

// ladderPanel builds one power rail and one ground rail joined by parallel
// load rungs. Every rung is a separate power-to-ground route, so path count
// scales linearly with rung count while node fan-out stresses the search.
func ladderPanel(rungs int) ([]*schematic.Component, []*schematic.Wire) {
	components := []*schematic.Component{
		{
			ID:    "pwr",
			Type:  circuit.TypePower24V,
			Ports: []schematic.Port{{ID: "p", Direction: schematic.DirectionOutput}},
		},
		{
			ID:    "g",
			Type:  circuit.TypeGround,
			Ports: []schematic.Port{{ID: "p", Direction: schematic.DirectionInput}},
		},
	}
	var wires []*schematic.Wire

	for i := 0; i < rungs; i++ {
		loadID := fmt.Sprintf("load%d", i)
		components = append(components, &schematic.Component{
			ID:   loadID,
			Type: circuit.TypeLED,
			Ports: []schematic.Port{
				{ID: "in", Direction: schematic.DirectionInput},
				{ID: "out", Direction: schematic.DirectionOutput},
			},
		})
		wires = append(wires,
			&schematic.Wire{
				ID:   fmt.Sprintf("w%d-up", i),
				From: schematic.Endpoint{ComponentID: "pwr", PortID: "p"},
				To:   schematic.Endpoint{ComponentID: loadID, PortID: "in"},
			},
			&schematic.Wire{
				ID:   fmt.Sprintf("w%d-down", i),
				From: schematic.Endpoint{ComponentID: loadID, PortID: "out"},
				To:   schematic.Endpoint{ComponentID: "g", PortID: "p"},
			},
		)
	}
	return components, wires
}
