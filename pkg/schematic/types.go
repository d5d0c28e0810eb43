package schematic

// PortDirection describes which way current is expected to enter or leave a port.
type PortDirection string

const (
	DirectionInput         PortDirection = "input"
	DirectionOutput        PortDirection = "output"
	DirectionBidirectional PortDirection = "bidirectional"
)

// Position is a schematic coordinate, carried through for the owning
// application's benefit. The engine never interprets it.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Port is a connection point on a component.
type Port struct {
	ID        string        `yaml:"id"`
	Direction PortDirection `yaml:"direction"`
	Position  Position      `yaml:"position"`
}

// Component is one electrical block on the schematic. Type-specific fields
// are flat; blocks ignore the ones that don't apply to them.
type Component struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"`
	Ports []Port `yaml:"ports"`

	// Power source blocks
	Voltage float64 `yaml:"voltage,omitempty"`

	// PLC output blocks
	Address      string `yaml:"address,omitempty"`
	NormallyOpen bool   `yaml:"normallyOpen,omitempty"`
	Inverted     bool   `yaml:"inverted,omitempty"`

	// Button blocks
	ContactConfig string `yaml:"contactConfig,omitempty"`
	Pressed       bool   `yaml:"pressed,omitempty"`
}

// Port returns the port with the given id, or nil.
func (c *Component) Port(portID string) *Port {
	for i := range c.Ports {
		if c.Ports[i].ID == portID {
			return &c.Ports[i]
		}
	}
	return nil
}

// Endpoint is one end of a wire: either a component port or a junction.
type Endpoint struct {
	ComponentID string `yaml:"componentId,omitempty"`
	PortID      string `yaml:"portId,omitempty"`
	JunctionID  string `yaml:"junctionId,omitempty"`
}

// IsPort reports whether the endpoint references a component port.
func (e Endpoint) IsPort() bool {
	return e.ComponentID != "" && e.PortID != ""
}

// IsJunction reports whether the endpoint references a junction.
func (e Endpoint) IsJunction() bool {
	return e.JunctionID != ""
}

// Wire connects two endpoints.
type Wire struct {
	ID   string   `yaml:"id"`
	From Endpoint `yaml:"from"`
	To   Endpoint `yaml:"to"`
}

// Junction is a free connection point wires can meet at.
type Junction struct {
	ID       string   `yaml:"id"`
	Position Position `yaml:"position"`
}

// RuntimeState is the caller-supplied snapshot of live inputs for one
// simulation tick. The engine only reads it.
type RuntimeState struct {
	// PLCOutputs maps a normalized coil address to its energized state.
	PLCOutputs map[string]bool `yaml:"plcOutputs"`
	// ButtonStates maps a button component id to its pressed state.
	ButtonStates map[string]bool `yaml:"buttonStates"`
	// ManualOverrides maps a component id to a forced energized value.
	// An override beats every other source.
	ManualOverrides map[string]bool `yaml:"manualOverrides"`
}
