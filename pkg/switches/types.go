package switches

// Source identifies where a switch's energized value came from.
type Source string

const (
	SourcePLC    Source = "plc"
	SourceButton Source = "button"
	SourceRelay  Source = "relay"
	SourceManual Source = "manual"
)

// State is the resolved condition of one switch component for a tick.
type State struct {
	ComponentID string
	// IsOpen is the authoritative derived value: an open switch does not conduct.
	IsOpen bool
	Source Source
	// IsNormallyOpen records the contact form the derivation used.
	IsNormallyOpen bool
	// IsEnergized is the raw value before the NO/NC transform.
	IsEnergized bool
}

// StateMap maps a switch component id to its resolved state.
type StateMap map[string]State
