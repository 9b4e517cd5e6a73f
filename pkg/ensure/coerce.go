package ensure

import (
	"fmt"
	"time"
)

// Coercible is a descriptor that attempts a fallible construction of the
// target type from a raw value. A value that already satisfies accepts is
// taken as-is; otherwise construct is invoked, and a construction error is
// reported as a validation failure. Construction from nil is allowed to
// succeed with a constructor-defined default.
type Coercible struct {
	name      string
	accepts   func(any) bool
	construct func(any) (any, error)
}

// NewCoercible creates a coercible-constructor descriptor. The name appears
// verbatim in error messages ("must be a valid {name}").
func NewCoercible(name string, accepts func(any) bool, construct func(any) (any, error)) *Coercible {
	if name == "" {
		panic("ensure: coercible name must not be empty")
	}
	if accepts == nil || construct == nil {
		panic("ensure: coercible " + name + " requires accepts and construct functions")
	}
	return &Coercible{name: name, accepts: accepts, construct: construct}
}

// Name returns the descriptor's type name.
func (c *Coercible) Name() string { return c.name }

// timeLayouts are tried in order when coercing a string into a time.Time.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time coerces values into time.Time. Strings are parsed against common
// ISO-8601 layouts, numbers are taken as milliseconds since the Unix epoch,
// and nil constructs the epoch itself.
var Time = NewCoercible("Time",
	func(v any) bool {
		_, ok := v.(time.Time)
		return ok
	},
	coerceTime,
)

func coerceTime(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return time.Unix(0, 0).UTC(), nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("cannot parse %q as a time", val)
	case float64:
		return time.UnixMilli(int64(val)).UTC(), nil
	case float32:
		return time.UnixMilli(int64(val)).UTC(), nil
	case int:
		return time.UnixMilli(int64(val)).UTC(), nil
	case int64:
		return time.UnixMilli(val).UTC(), nil
	default:
		return nil, fmt.Errorf("cannot construct a time from %v", v)
	}
}
