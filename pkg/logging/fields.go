package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers

func ComponentID(id string) Field {
	return String("component_id", id)
}

func WireID(id string) Field {
	return String("wire_id", id)
}

func CircuitNode(id string) Field {
	return String("node_id", id)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func PathCount(n int) Field {
	return Int("path_count", n)
}

func Voltage(v float64) Field {
	return Float64("voltage", v)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
