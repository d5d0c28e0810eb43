package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-circuit/pkg/schematic"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxIDLength     = 100
	MaxTypeLength   = 50
	MaxPortsPerComp = 32

	idPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)
)

func init() {
	validate = validator.New()
}

// ComponentInput mirrors schematic.Component with validation tags for
// callers that accept schematics from outside the process.
type ComponentInput struct {
	ID    string      `json:"id" validate:"required,max=100"`
	Type  string      `json:"type" validate:"required,max=50"`
	Ports []PortInput `json:"ports" validate:"required,min=1,max=32,dive"`
}

// PortInput carries the validated fields of a port.
type PortInput struct {
	ID        string `json:"id" validate:"required,max=100"`
	Direction string `json:"direction" validate:"required,oneof=input output bidirectional"`
}

// WireInput carries the validated fields of a wire.
type WireInput struct {
	ID   string        `json:"id" validate:"required,max=100"`
	From EndpointInput `json:"from"`
	To   EndpointInput `json:"to"`
}

// EndpointInput is one validated wire endpoint.
type EndpointInput struct {
	ComponentID string `json:"componentId" validate:"omitempty,max=100"`
	PortID      string `json:"portId" validate:"omitempty,max=100"`
	JunctionID  string `json:"junctionId" validate:"omitempty,max=100"`
}

// ValidateComponentInput validates an externally supplied component.
func ValidateComponentInput(req *ComponentInput) error {
	if req == nil {
		return errors.New("component input cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if err := ValidateID(req.ID); err != nil {
		return fmt.Errorf("ID: %w", err)
	}
	seen := make(map[string]bool, len(req.Ports))
	for _, port := range req.Ports {
		if err := ValidateID(port.ID); err != nil {
			return fmt.Errorf("Ports: %w", err)
		}
		if seen[port.ID] {
			return fmt.Errorf("Ports: duplicate port id '%s'", port.ID)
		}
		seen[port.ID] = true
	}
	return nil
}

// ValidateWireInput validates an externally supplied wire.
func ValidateWireInput(req *WireInput) error {
	if req == nil {
		return errors.New("wire input cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if err := validateEndpoint("From", req.From); err != nil {
		return err
	}
	return validateEndpoint("To", req.To)
}

func validateEndpoint(field string, ep EndpointInput) error {
	isPort := ep.ComponentID != "" && ep.PortID != ""
	isJunction := ep.JunctionID != ""
	if isPort == isJunction {
		return fmt.Errorf("%s: endpoint must reference either a component port or a junction", field)
	}
	return nil
}

// ValidateID validates a schematic identifier.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("id '%s' exceeds maximum length of %d characters", id, MaxIDLength)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("id '%s' contains invalid characters", id)
	}
	return nil
}

// ComponentInputFrom converts a schematic component for validation.
func ComponentInputFrom(comp *schematic.Component) *ComponentInput {
	if comp == nil {
		return nil
	}
	in := &ComponentInput{ID: comp.ID, Type: comp.Type}
	for _, p := range comp.Ports {
		in.Ports = append(in.Ports, PortInput{ID: p.ID, Direction: string(p.Direction)})
	}
	return in
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
