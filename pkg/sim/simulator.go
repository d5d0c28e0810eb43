package sim

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/logging"
	"github.com/dd0wney/cluso-circuit/pkg/metrics"
	"github.com/dd0wney/cluso-circuit/pkg/nets"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
	"github.com/dd0wney/cluso-circuit/pkg/switches"
	"github.com/dd0wney/cluso-circuit/pkg/voltage"
)

// Simulator runs the full simulation pipeline over a schematic snapshot.
// It holds no state between calls; repeated calls with identical inputs
// produce structurally identical results.
type Simulator struct {
	logger  logging.Logger
	metrics *metrics.Registry
	builder *circuit.Builder
}

// NewSimulator creates a simulator. A nil logger disables logging; a nil
// registry disables metrics.
func NewSimulator(logger logging.Logger, registry *metrics.Registry) *Simulator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Simulator{
		logger:  logger,
		metrics: registry,
		builder: circuit.NewBuilder(logger),
	}
}

// Simulate executes one tick: graph build, switch evaluation and
// application, path enumeration, voltage propagation, powered-set and
// direction computation, short-circuit detection, and net computation.
// It never panics; any failure inside the pipeline is converted into a
// Result with Success false and every collection empty.
func (s *Simulator) Simulate(
	components []*schematic.Component,
	wires []*schematic.Wire,
	junctions []*schematic.Junction,
	rt *schematic.RuntimeState,
	opts Options,
) (result *Result) {
	runID := uuid.NewString()
	started := time.Now()
	log := s.logger.With(logging.RunID(runID))
	op := logging.StartTimer(log, "simulation pipeline")

	defer func() {
		if r := recover(); r != nil {
			result = emptyResult(runID)
			result.Elapsed = time.Since(started)
			result.Error = fmt.Sprintf("simulation failed: %v", r)
			op.EndError(fmt.Errorf("panic: %v", r))
			if s.metrics != nil {
				s.metrics.RecordSimulation("error", result.Elapsed, 0)
			}
		}
	}()

	opts = opts.normalized()
	result = emptyResult(runID)

	graph := s.stageGraph(log, components, wires, junctions)
	states := s.stageSwitches(log, components, rt)
	applied := s.stageApply(log, graph, states)
	allPaths := s.stagePaths(log, applied, opts)
	voltages := voltage.Propagate(applied, allPaths)
	powered := voltage.PoweredComponents(applied, allPaths, voltages)
	poweredWires, directions := wireFlow(applied, allPaths)
	shorts := voltage.ShortCircuits(allPaths)
	netList := nets.Build(components, junctions, wires)

	result.NodeVoltages = voltages
	result.CurrentPaths = allPaths
	result.PoweredComponents = powered
	result.PoweredWires = poweredWires
	result.WireDirections = directions
	result.ShortCircuits = shorts
	result.SwitchStates = states
	result.Nets = netList
	result.Graph = applied
	result.Elapsed = time.Since(started)
	result.Success = true
	op.End()

	if s.metrics != nil {
		s.metrics.RecordSimulation("success", result.Elapsed, len(allPaths))
		s.metrics.RecordShortCircuits(len(shorts))
		if opts.MaxPaths > 0 && len(allPaths) >= opts.MaxPaths {
			s.metrics.RecordPathLimitHit()
		}
		closed := 0
		for _, st := range states {
			if !st.IsOpen {
				closed++
			}
		}
		s.metrics.UpdateGraphMetrics(applied.NodeCount(), applied.EdgeCount(), len(netList), closed)
	}

	log.Info("simulation complete",
		logging.PathCount(len(allPaths)),
		logging.Int("powered_components", len(powered)),
		logging.Int("short_circuits", len(shorts)),
		logging.Latency(result.Elapsed))
	return result
}

func (s *Simulator) stageGraph(log logging.Logger, components []*schematic.Component, wires []*schematic.Wire, junctions []*schematic.Junction) *circuit.Graph {
	defer s.recordStage(log, "build_graph", time.Now())
	return s.builder.BuildGraph(components, wires, junctions)
}

func (s *Simulator) stageSwitches(log logging.Logger, components []*schematic.Component, rt *schematic.RuntimeState) switches.StateMap {
	defer s.recordStage(log, "evaluate_switches", time.Now())
	return switches.Evaluate(components, rt)
}

func (s *Simulator) stageApply(log logging.Logger, graph *circuit.Graph, states switches.StateMap) *circuit.Graph {
	defer s.recordStage(log, "apply_switches", time.Now())
	return switches.Apply(graph, states)
}

func (s *Simulator) stagePaths(log logging.Logger, graph *circuit.Graph, opts Options) []*paths.CurrentPath {
	defer s.recordStage(log, "find_paths", time.Now())
	return paths.FindAllPaths(graph, opts.pathOptions())
}

func (s *Simulator) recordStage(log logging.Logger, stage string, started time.Time) {
	elapsed := time.Since(started)
	log.Debug("stage complete", logging.String("stage", stage), logging.Latency(elapsed))
	if s.metrics != nil {
		s.metrics.RecordStage(stage, elapsed)
	}
}

// wireFlow derives the powered-wire set and the per-wire current direction
// from the complete non-short paths. The powered set comes straight from
// each path's own crossed-wire list; directions follow the first traversal
// of each wire, which runs power-to-ground by construction. Matching edges
// against the path's wire list keeps parallel wires between the same port
// pair distinct.
func wireFlow(graph *circuit.Graph, allPaths []*paths.CurrentPath) ([]string, map[string]WireDirection) {
	directions := make(map[string]WireDirection)
	poweredSet := make(map[string]bool)

	for _, path := range allPaths {
		if path == nil || !path.IsComplete || path.IsShortCircuit {
			continue
		}
		for _, wireID := range path.WireIDs {
			poweredSet[wireID] = true
		}
		for i := 0; i+1 < len(path.Nodes); i++ {
			from, to := path.Nodes[i], path.Nodes[i+1]
			for _, edge := range graph.EdgesFrom(from) {
				if edge.To != to || edge.WireID == "" || !path.ContainsWire(edge.WireID) {
					continue
				}
				if _, seen := directions[edge.WireID]; !seen {
					directions[edge.WireID] = WireDirection{From: from, To: to}
				}
			}
		}
	}

	powered := make([]string, 0, len(poweredSet))
	for wireID := range poweredSet {
		powered = append(powered, wireID)
	}
	sort.Strings(powered)
	return powered, directions
}
