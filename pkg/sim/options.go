package sim

import (
	"github.com/dd0wney/cluso-circuit/pkg/paths"
	"github.com/dd0wney/cluso-circuit/pkg/validation"
)

// Options configures one simulation call. The zero value behaves like
// DefaultOptions after normalization: short-circuit detection stays on
// unless explicitly disabled.
type Options struct {
	// MaxPathLength caps the node count of any single current path.
	MaxPathLength int `yaml:"maxPathLength"`
	// MaxPaths caps the total number of enumerated paths. 0 keeps the
	// historical unlimited behavior.
	MaxPaths int `yaml:"maxPaths"`
	// DisableShortCircuitDetection turns off flagging of load-free
	// power-to-ground paths.
	DisableShortCircuitDetection bool `yaml:"disableShortCircuitDetection"`
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxPathLength: paths.DefaultMaxPathLength,
	}
}

// Validate checks option ranges for callers that accept them from outside.
func (o Options) Validate() error {
	return validation.NewConfigValidator("SimOptions").
		Positive("MaxPathLength", o.MaxPathLength).
		NonNegative("MaxPaths", o.MaxPaths).
		Validate()
}

// normalized fills zero values with defaults; the simulator never fails on
// out-of-range options, it repairs them.
func (o Options) normalized() Options {
	if o.MaxPathLength <= 0 {
		o.MaxPathLength = paths.DefaultMaxPathLength
	}
	if o.MaxPaths < 0 {
		o.MaxPaths = 0
	}
	return o
}

func (o Options) pathOptions() paths.Options {
	return paths.Options{
		MaxPathLength:                o.MaxPathLength,
		MaxPaths:                     o.MaxPaths,
		DisableShortCircuitDetection: o.DisableShortCircuitDetection,
	}
}
