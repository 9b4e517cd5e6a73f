package types

import (
	"fmt"
	"time"

	"github.com/utilkit/utilkit/pkg/ensure"
)

// Coercible descriptors for the value types in this package, for use with
// the ensure checker. Each accepts an existing instance as-is and otherwise
// attempts a fallible construction from the raw value.
var (
	// ColorType coerces "#rgb"/"#rrggbb"/"#rrggbbaa" strings into Color.
	ColorType = ensure.NewCoercible("Color",
		func(v any) bool {
			_, ok := v.(Color)
			return ok
		},
		func(v any) (any, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("cannot construct a color from %v", v)
			}
			return ParseColor(s)
		},
	)

	// VectorType coerces "x,y" strings and {x, y} maps into Vector.
	VectorType = ensure.NewCoercible("Vector",
		func(v any) bool {
			_, ok := v.(Vector)
			return ok
		},
		coerceVector,
	)

	// DurationType coerces ISO-8601 strings, time.Duration values and
	// numeric milliseconds into Duration. Null constructs the zero duration.
	DurationType = ensure.NewCoercible("Duration",
		func(v any) bool {
			_, ok := v.(Duration)
			return ok
		},
		coerceDuration,
	)
)

func coerceVector(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return ParseVector(val)
	case map[string]any:
		x, okX := asFloat(val["x"])
		y, okY := asFloat(val["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("vector map %v must have numeric x and y", val)
		}
		return Vector{X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("cannot construct a vector from %v", v)
	}
}

func coerceDuration(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return Duration(0), nil
	case string:
		return ParseDuration(val)
	case time.Duration:
		return Duration(val), nil
	case float64:
		return Duration(time.Duration(val) * time.Millisecond), nil
	case int:
		return Duration(time.Duration(val) * time.Millisecond), nil
	case int64:
		return Duration(time.Duration(val) * time.Millisecond), nil
	default:
		return nil, fmt.Errorf("cannot construct a duration from %v", v)
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
