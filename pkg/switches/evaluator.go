package switches

import (
	"strings"
	"unicode"

	"github.com/dd0wney/cluso-circuit/pkg/circuit"
	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

// rule derives the energized value of a switch from one input source.
// Rules run in precedence order; the first that applies wins.
type rule func(comp *schematic.Component, rt *schematic.RuntimeState) (energized bool, source Source, ok bool)

// precedence is the authoritative resolution order: a manual override beats
// the PLC coil or button input, which beats the de-energized default.
var precedence = []rule{
	manualOverrideRule,
	liveInputRule,
	defaultRule,
}

// Evaluate computes the open/closed state of every switch-like component.
func Evaluate(components []*schematic.Component, rt *schematic.RuntimeState) StateMap {
	if rt == nil {
		rt = &schematic.RuntimeState{}
	}

	states := make(StateMap)
	for _, comp := range components {
		if comp == nil || !isSwitchComponent(comp) {
			continue
		}

		normallyOpen := contactForm(comp)

		var energized bool
		var source Source
		for _, r := range precedence {
			if e, s, ok := r(comp, rt); ok {
				energized, source = e, s
				break
			}
		}

		states[comp.ID] = State{
			ComponentID:    comp.ID,
			IsOpen:         contactIsOpen(normallyOpen, energized),
			Source:         source,
			IsNormallyOpen: normallyOpen,
			IsEnergized:    energized,
		}
	}
	return states
}

func isSwitchComponent(comp *schematic.Component) bool {
	return comp.Type == circuit.TypePLCOutput || comp.Type == circuit.TypeButton
}

// contactIsOpen applies the NO/NC transform: a normally-open contact closes
// while energized, a normally-closed contact opens while energized.
func contactIsOpen(normallyOpen, energized bool) bool {
	if normallyOpen {
		return !energized
	}
	return energized
}

// contactForm determines whether a component's contact is normally open.
// PLC outputs declare it directly; buttons encode it in the contact config
// string, where a Form A ('a') contact is NO and anything else is NC.
func contactForm(comp *schematic.Component) bool {
	if comp.Type == circuit.TypeButton {
		return strings.Contains(strings.ToLower(comp.ContactConfig), "a")
	}
	return comp.NormallyOpen
}

func manualOverrideRule(comp *schematic.Component, rt *schematic.RuntimeState) (bool, Source, bool) {
	if forced, ok := rt.ManualOverrides[comp.ID]; ok {
		return forced, SourceManual, true
	}
	return false, "", false
}

func liveInputRule(comp *schematic.Component, rt *schematic.RuntimeState) (bool, Source, bool) {
	switch comp.Type {
	case circuit.TypePLCOutput:
		coil := rt.PLCOutputs[NormalizeAddress(comp.Address)]
		if comp.Inverted {
			coil = !coil
		}
		return coil, SourcePLC, true
	case circuit.TypeButton:
		if pressed, ok := rt.ButtonStates[comp.ID]; ok {
			return pressed, SourceButton, true
		}
		return comp.Pressed, SourceButton, true
	}
	return false, "", false
}

func defaultRule(*schematic.Component, *schematic.RuntimeState) (bool, Source, bool) {
	return false, SourceRelay, true
}

// NormalizeAddress reduces a coil address to its digit form for lookup.
// An all-digit address passes through unchanged; otherwise the digits are
// extracted ("Q0.3" becomes "03"). An address with no digits is kept as-is.
func NormalizeAddress(address string) string {
	allDigits := address != ""
	for _, r := range address {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return address
	}

	var digits strings.Builder
	for _, r := range address {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return address
	}
	return digits.String()
}
