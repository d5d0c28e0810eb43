package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/logging"
	"github.com/dd0wney/cluso-circuit/pkg/metrics"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
	"github.com/dd0wney/cluso-circuit/pkg/sim"
	"github.com/dd0wney/cluso-circuit/pkg/validation"
)

// Scenario is a complete simulation input loaded from a YAML file.
type Scenario struct {
	Name       string                 `yaml:"name"`
	Components []*schematic.Component `yaml:"components"`
	Wires      []*schematic.Wire      `yaml:"wires"`
	Junctions  []*schematic.Junction  `yaml:"junctions"`
	Runtime    schematic.RuntimeState `yaml:"runtime"`
	Options    sim.Options            `yaml:"options"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "Path to a YAML scenario file (empty runs the built-in demo)")
	hz := flag.Int("hz", 0, "Tick rate for continuous simulation (0 runs once)")
	ticks := flag.Int("ticks", 10, "Number of ticks to run in continuous mode")
	maxPathLength := flag.Int("max-path-length", 0, "Override the path length bound (0 keeps the scenario value)")
	flag.Parse()

	fmt.Printf("⚡ Cluso Circuit - Topological Simulation\n")
	fmt.Printf("=========================================\n\n")

	scenario := builtinScenario()
	if *scenarioPath != "" {
		loaded, err := loadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		scenario = loaded
	}
	if *maxPathLength > 0 {
		scenario.Options.MaxPathLength = *maxPathLength
	}
	if scenario.Options.MaxPathLength <= 0 {
		scenario.Options.MaxPathLength = paths.DefaultMaxPathLength
	}
	if err := scenario.Options.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	fmt.Printf("Scenario: %s\n", scenario.Name)
	fmt.Printf("  Components: %d\n", len(scenario.Components))
	fmt.Printf("  Wires: %d\n", len(scenario.Wires))
	fmt.Printf("  Junctions: %d\n\n", len(scenario.Junctions))

	if err := checkScenario(scenario); err != nil {
		log.Fatalf("Scenario check failed: %v", err)
	}
	fmt.Printf("✅ Scenario checks passed\n\n")

	logger := logging.NewDefaultLogger()
	simulator := sim.NewSimulator(logger, metrics.Default())

	if *hz <= 0 {
		runOnce(simulator, scenario)
		return
	}

	fmt.Printf("🔁 Running at %d Hz for %d ticks...\n\n", *hz, *ticks)
	interval := time.Second / time.Duration(*hz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < *ticks; i++ {
		<-ticker.C
		result := simulator.Simulate(
			scenario.Components, scenario.Wires, scenario.Junctions,
			&scenario.Runtime, scenario.Options,
		)
		status := "ok"
		if !result.Success {
			status = "error: " + result.Error
		}
		fmt.Printf("  tick %2d  paths=%d  powered=%d  shorts=%d  %v  [%s]\n",
			i+1, len(result.CurrentPaths), len(result.PoweredComponents),
			len(result.ShortCircuits), result.Elapsed.Round(time.Microsecond), status)
	}
}

// runOnce executes a single simulation and prints the full result.
func runOnce(simulator *sim.Simulator, scenario *Scenario) {
	fmt.Printf("▶️  Running simulation...\n")
	result := simulator.Simulate(
		scenario.Components, scenario.Wires, scenario.Junctions,
		&scenario.Runtime, scenario.Options,
	)
	if !result.Success {
		log.Fatalf("Simulation failed: %s", result.Error)
	}
	fmt.Printf("✅ Completed in %v (run %s)\n\n", result.Elapsed.Round(time.Microsecond), result.RunID)

	fmt.Printf("Switch states:\n")
	switchIDs := make([]string, 0, len(result.SwitchStates))
	for id := range result.SwitchStates {
		switchIDs = append(switchIDs, id)
	}
	sort.Strings(switchIDs)
	for _, id := range switchIDs {
		state := result.SwitchStates[id]
		position := "closed"
		if state.IsOpen {
			position = "open"
		}
		fmt.Printf("  %s: %s (source: %s)\n", id, position, state.Source)
	}

	fmt.Printf("\nCurrent paths: %d\n", len(result.CurrentPaths))
	for i, path := range result.CurrentPaths {
		marker := "🟢"
		if path.IsShortCircuit {
			marker = "🔴 SHORT"
		}
		fmt.Printf("  %s path %d: %d nodes, %.1fV from %s\n",
			marker, i+1, len(path.Nodes), path.Voltage, path.PowerSource)
	}

	fmt.Printf("\nPowered components: %v\n", result.PoweredComponents)
	fmt.Printf("Powered wires: %v\n", result.PoweredWires)

	fmt.Printf("\nLive nodes:\n")
	for _, nodeID := range result.Graph.SortedNodeIDs() {
		if v := result.NodeVoltages[nodeID]; v > 0 {
			fmt.Printf("  %s: %.1fV\n", nodeID, v)
		}
	}

	if len(result.ShortCircuits) > 0 {
		fmt.Printf("\n⚠️  Short circuits detected: %d\n", len(result.ShortCircuits))
		for _, short := range result.ShortCircuits {
			fmt.Printf("  %.1fV from %s through %d nodes\n",
				short.Voltage, short.PowerSource, len(short.Path.Nodes))
		}
	}

	fmt.Printf("\nNets: %d\n", len(result.Nets))
	for _, net := range result.Nets {
		fmt.Printf("  %s: %v\n", net.ID, net.Members)
	}
}

// checkScenario validates components and wires before simulating. The engine
// itself tolerates malformed input, but a CLI user wants the reasons up front.
func checkScenario(scenario *Scenario) error {
	for _, comp := range scenario.Components {
		if comp == nil {
			continue
		}
		if err := validation.ValidateComponentInput(validation.ComponentInputFrom(comp)); err != nil {
			return fmt.Errorf("component %s: %w", comp.ID, err)
		}
	}
	var checked []*schematic.Wire
	for _, wire := range scenario.Wires {
		if wire == nil {
			continue
		}
		check := schematic.CheckConnection(wire.From, wire.To, scenario.Components, scenario.Junctions, checked)
		if !check.Valid {
			return fmt.Errorf("wire %s: %s", wire.ID, check.Reason)
		}
		checked = append(checked, wire)
	}
	return nil
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if scenario.Name == "" {
		scenario.Name = path
	}
	return &scenario, nil
}

// builtinScenario is a start/stop relay branch with the start button pressed.
func builtinScenario() *Scenario {
	return &Scenario{
		Name: "built-in start/stop demo",
		Components: []*schematic.Component{
			{
				ID:    "pwr",
				Type:  circuit.TypePower24V,
				Ports: []schematic.Port{{ID: "p", Direction: schematic.DirectionOutput}},
			},
			{
				ID:            "stop",
				Type:          circuit.TypeButton,
				ContactConfig: "1b",
				Ports: []schematic.Port{
					{ID: "in", Direction: schematic.DirectionInput},
					{ID: "out", Direction: schematic.DirectionOutput},
				},
			},
			{
				ID:            "start",
				Type:          circuit.TypeButton,
				ContactConfig: "1a",
				Ports: []schematic.Port{
					{ID: "in", Direction: schematic.DirectionInput},
					{ID: "out", Direction: schematic.DirectionOutput},
				},
			},
			{
				ID:   "lamp",
				Type: circuit.TypeLED,
				Ports: []schematic.Port{
					{ID: "in", Direction: schematic.DirectionInput},
					{ID: "out", Direction: schematic.DirectionOutput},
				},
			},
			{
				ID:    "g",
				Type:  circuit.TypeGround,
				Ports: []schematic.Port{{ID: "p", Direction: schematic.DirectionInput}},
			},
		},
		Wires: []*schematic.Wire{
			wire("w1", "pwr", "p", "stop", "in"),
			wire("w2", "stop", "out", "start", "in"),
			wire("w3", "start", "out", "lamp", "in"),
			wire("w4", "lamp", "out", "g", "p"),
		},
		Runtime: schematic.RuntimeState{
			ButtonStates: map[string]bool{"start": true},
		},
		Options: sim.DefaultOptions(),
	}
}

func wire(id, fromComp, fromPort, toComp, toPort string) *schematic.Wire {
	return &schematic.Wire{
		ID:   id,
		From: schematic.Endpoint{ComponentID: fromComp, PortID: fromPort},
		To:   schematic.Endpoint{ComponentID: toComp, PortID: toPort},
	}
}
