package ensure

import (
	"fmt"
	"reflect"
)

type options struct {
	name string
}

// Option configures how a value is reported in error messages.
type Option func(*options)

// WithName sets the qualified name used in error messages. The default is
// "value".
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func newOptions(opts []Option) options {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Unreachable returns an assertion error for code paths that must never
// execute. It signals a programming defect, never a validation failure.
func Unreachable(message ...string) error {
	msg := "Unreachable code executed."
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &AssertionError{Message: msg}
}

// That returns value unchanged when the predicate holds, and an assertion
// error otherwise. It performs no type inspection.
func That[T any](value T, predicate func(T) bool, message ...string) (T, error) {
	if predicate(value) {
		return value, nil
	}

	msg := "Expected predicate is not true."
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	var zero T
	return zero, &AssertionError{Message: msg}
}

// Anything returns value unless it is null or undefined, in which case the
// error names which of the two it was.
func Anything(value any, opts ...Option) (any, error) {
	o := newOptions(opts)
	switch KindOf(value) {
	case KindUndefined:
		return nil, validationErrorf("The %s is required, but it was undefined.", o.name)
	case KindNull:
		return nil, validationErrorf("The %s is required, but it was null.", o.name)
	default:
		return value, nil
	}
}

// NonEmpty fails when value is a string, array or plain object with zero
// length or zero keys; the message embeds the JSON form of the empty value.
// Non-collection values pass through unchanged, they are never "empty".
func NonEmpty(value any, opts ...Option) (any, error) {
	o := newOptions(opts)

	empty := false
	switch KindOf(value) {
	case KindString:
		empty = len(value.(string)) == 0
	case KindArray:
		empty = reflect.ValueOf(value).Len() == 0
	case KindObject:
		if m, ok := value.(map[string]any); ok {
			empty = len(m) == 0
		}
	}

	if empty {
		return nil, validationErrorf("The %s must not be empty, but it was %s.", o.name, rawJSON(value))
	}
	return value, nil
}

// Type validates value against the descriptor and returns the possibly
// coerced result. Struct descriptors coerce matched fields of the input map
// in place.
func Type(value any, descriptor Descriptor, opts ...Option) (any, error) {
	o := newOptions(opts)
	return check(value, descriptor, o.name)
}

// ItemType validates that value is an array and that every element matches
// the item descriptor, using "{name}.{index}" as the per-element name. The
// first failing element aborts the check. A []any input is rewritten in place
// and returned with its identity preserved; other slice kinds are validated
// element by element and returned as a new, coerced []any.
func ItemType(value any, item Descriptor, opts ...Option) ([]any, error) {
	o := newOptions(opts)
	if _, err := check(value, KindArray, o.name); err != nil {
		return nil, err
	}

	if items, ok := value.([]any); ok {
		for i, element := range items {
			result, err := check(element, item, fmt.Sprintf("%s.%d", o.name, i))
			if err != nil {
				return nil, err
			}
			items[i] = result
		}
		return items, nil
	}

	rv := reflect.ValueOf(value)
	items := make([]any, rv.Len())
	for i := range items {
		result, err := check(rv.Index(i).Interface(), item, fmt.Sprintf("%s.%d", o.name, i))
		if err != nil {
			return nil, err
		}
		items[i] = result
	}
	return items, nil
}

// Arguments validates a positional-argument list against descriptors, in
// order. More arguments than descriptors is an error. Fewer is not: missing
// trailing arguments are checked as undefined, so a descriptor must allow
// undefined to make its argument optional. Matched arguments are rewritten in
// place to their coerced values. Display names default to "argument #N"
// (1-based) unless overridden by names.
func Arguments(args []any, descriptors []Descriptor, names ...string) error {
	if len(args) > len(descriptors) {
		return validationErrorf("Too many arguments: expected %d, but got %d.",
			len(descriptors), len(args))
	}

	for i, descriptor := range descriptors {
		var value any = Undefined
		if i < len(args) {
			value = args[i]
		}

		name := fmt.Sprintf("argument #%d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}

		result, err := check(value, descriptor, name)
		if err != nil {
			return err
		}
		if i < len(args) {
			args[i] = result
		}
	}
	return nil
}
