package sim

import (
	"time"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/nets"
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/switches"
	"github.com/dd0wney/cluso-circuit/pkg/voltage"
)

// WireDirection is the current direction through a wire, as node ids in
// power-to-ground order.
type WireDirection struct {
	From string
	To   string
}

// Result is the complete outcome of one simulation call. Callers must check
// Success before trusting any other field.
type Result struct {
	RunID string

	NodeVoltages      map[string]float64
	CurrentPaths      []*paths.CurrentPath
	PoweredComponents []string
	PoweredWires      []string
	WireDirections    map[string]WireDirection
	ShortCircuits     []*voltage.ShortCircuit
	SwitchStates      switches.StateMap
	Nets              []*nets.Net
	Graph             *circuit.Graph

	Elapsed time.Duration
	Success bool
	Error   string
}

// emptyResult returns a result with every collection initialized and empty,
// used both as the base of a successful run and as the failure shape.
func emptyResult(runID string) *Result {
	return &Result{
		RunID:             runID,
		NodeVoltages:      make(map[string]float64),
		CurrentPaths:      make([]*paths.CurrentPath, 0),
		PoweredComponents: make([]string, 0),
		PoweredWires:      make([]string, 0),
		WireDirections:    make(map[string]WireDirection),
		ShortCircuits:     make([]*voltage.ShortCircuit, 0),
		SwitchStates:      make(switches.StateMap),
		Nets:              make([]*nets.Net, 0),
	}
}
