package switches

import (
	"testing"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

func plcOut(id, address string, normallyOpen, inverted bool) *schematic.Component {
	return &schematic.Component{
		ID:           id,
		Type:         circuit.TypePLCOutput,
		Address:      address,
		NormallyOpen: normallyOpen,
		Inverted:     inverted,
		Ports: []schematic.Port{
			{ID: "in", Direction: schematic.DirectionInput},
			{ID: "out", Direction: schematic.DirectionOutput},
		},
	}
}

func button(id, contactConfig string, pressed bool) *schematic.Component {
	return &schematic.Component{
		ID:            id,
		Type:          circuit.TypeButton,
		ContactConfig: contactConfig,
		Pressed:       pressed,
		Ports: []schematic.Port{
			{ID: "in", Direction: schematic.DirectionInput},
			{ID: "out", Direction: schematic.DirectionOutput},
		},
	}
}

// TestEvaluate_NormallyOpenContactMatrix checks the NO/NC transform
func TestEvaluate_NormallyOpenContactMatrix(t *testing.T) {
	cases := []struct {
		name         string
		normallyOpen bool
		energized    bool
		wantOpen     bool
	}{
		{"NO de-energized stays open", true, false, true},
		{"NO energized closes", true, true, false},
		{"NC de-energized stays closed", false, false, false},
		{"NC energized opens", false, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comp := plcOut("q1", "3", tc.normallyOpen, false)
			rt := &schematic.RuntimeState{PLCOutputs: map[string]bool{"3": tc.energized}}

			states := Evaluate([]*schematic.Component{comp}, rt)
			state, ok := states["q1"]
			if !ok {
				t.Fatal("q1 missing from state map")
			}
			if state.IsOpen != tc.wantOpen {
				t.Errorf("IsOpen = %v, want %v", state.IsOpen, tc.wantOpen)
			}
			if state.IsEnergized != tc.energized {
				t.Errorf("IsEnergized = %v, want %v", state.IsEnergized, tc.energized)
			}
			if state.Source != SourcePLC {
				t.Errorf("Source = %s, want %s", state.Source, SourcePLC)
			}
		})
	}
}

// TestEvaluate_InvertedCoil checks the inverted flag XORs the coil value
func TestEvaluate_InvertedCoil(t *testing.T) {
	comp := plcOut("q1", "3", true, true)
	rt := &schematic.RuntimeState{PLCOutputs: map[string]bool{"3": false}}

	state := Evaluate([]*schematic.Component{comp}, rt)["q1"]
	if !state.IsEnergized {
		t.Error("inverted coil with raw false must be energized")
	}
	if state.IsOpen {
		t.Error("NO switch with inverted-false coil must be closed")
	}
}

// TestEvaluate_MissingCoilDefaultsFalse checks absent addresses read de-energized
func TestEvaluate_MissingCoilDefaultsFalse(t *testing.T) {
	comp := plcOut("q1", "7", true, false)
	state := Evaluate([]*schematic.Component{comp}, &schematic.RuntimeState{})["q1"]
	if state.IsEnergized {
		t.Error("missing coil address must read false")
	}
	if !state.IsOpen {
		t.Error("NO switch with missing coil must stay open")
	}
}

// TestEvaluate_ManualOverridePrecedence checks overrides beat PLC and button sources
func TestEvaluate_ManualOverridePrecedence(t *testing.T) {
	q := plcOut("q1", "3", true, false)
	b := button("b1", "1a", false)
	rt := &schematic.RuntimeState{
		PLCOutputs:      map[string]bool{"3": false},
		ButtonStates:    map[string]bool{"b1": false},
		ManualOverrides: map[string]bool{"q1": true, "b1": true},
	}

	states := Evaluate([]*schematic.Component{q, b}, rt)

	for _, id := range []string{"q1", "b1"} {
		state := states[id]
		if state.Source != SourceManual {
			t.Errorf("%s: Source = %s, want %s", id, state.Source, SourceManual)
		}
		if !state.IsEnergized {
			t.Errorf("%s: override true must energize", id)
		}
		if state.IsOpen {
			t.Errorf("%s: NO contact with forced energized must close", id)
		}
	}
}

// TestEvaluate_ButtonContactConfig checks Form A detection and the pressed fallback
func TestEvaluate_ButtonContactConfig(t *testing.T) {
	cases := []struct {
		name     string
		config   string
		pressed  bool
		wantNO   bool
		wantOpen bool
	}{
		{"form A pressed closes", "1a", true, true, false},
		{"form A released opens", "1a", false, true, true},
		{"form B pressed opens", "1b", true, false, true},
		{"form B released closes", "1b", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comp := button("b1", tc.config, false)
			rt := &schematic.RuntimeState{ButtonStates: map[string]bool{"b1": tc.pressed}}

			state := Evaluate([]*schematic.Component{comp}, rt)["b1"]
			if state.IsNormallyOpen != tc.wantNO {
				t.Errorf("IsNormallyOpen = %v, want %v", state.IsNormallyOpen, tc.wantNO)
			}
			if state.IsOpen != tc.wantOpen {
				t.Errorf("IsOpen = %v, want %v", state.IsOpen, tc.wantOpen)
			}
		})
	}
}

// TestEvaluate_ButtonStaticPressedFallback checks the block's own flag when no live state exists
func TestEvaluate_ButtonStaticPressedFallback(t *testing.T) {
	comp := button("b1", "1a", true)
	state := Evaluate([]*schematic.Component{comp}, &schematic.RuntimeState{})["b1"]
	if !state.IsEnergized {
		t.Error("static pressed flag must energize when no live state exists")
	}
}

// TestEvaluate_NonSwitchComponentsIgnored checks only switch-like blocks appear
func TestEvaluate_NonSwitchComponentsIgnored(t *testing.T) {
	led := &schematic.Component{ID: "led1", Type: circuit.TypeLED}
	states := Evaluate([]*schematic.Component{led}, &schematic.RuntimeState{})
	if len(states) != 0 {
		t.Errorf("non-switch component produced states: %v", states)
	}
}

// TestEvaluate_NilRuntimeState checks nil runtime input is tolerated
func TestEvaluate_NilRuntimeState(t *testing.T) {
	comp := plcOut("q1", "3", true, false)
	states := Evaluate([]*schematic.Component{comp}, nil)
	if !states["q1"].IsOpen {
		t.Error("NO switch with nil runtime must stay open")
	}
}

// TestNormalizeAddress covers the digit extraction rules
func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3", "3"},
		{"017", "017"},
		{"Q0.3", "03"},
		{"out-12", "12"},
		{"coil", "coil"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAddress(tc.in); got != tc.want {
			t.Errorf("NormalizeAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
