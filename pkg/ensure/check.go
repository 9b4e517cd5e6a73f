package ensure

import (
	"encoding/json"
	"fmt"
)

// defaultName qualifies top-level values in error messages.
const defaultName = "value"

// check validates value against the descriptor and returns the possibly
// coerced value or a validation error. Dispatch is driven by the descriptor
// variant: primitive kind, enum, coercible constructor, union, then struct.
func check(value any, descriptor Descriptor, name string) (any, error) {
	switch t := descriptor.(type) {
	case Kind:
		return checkKind(value, t, name)
	case *Enum:
		return checkEnum(value, t, name)
	case *Coercible:
		return checkCoercible(value, t, name)
	case Union:
		return checkUnion(value, t, name)
	case *Struct:
		return checkStruct(value, t, name)
	default:
		// The Descriptor interface is sealed; a variant outside the switch
		// is an implementation defect, not a validation failure.
		return nil, Unreachable(fmt.Sprintf("unknown descriptor %T", descriptor))
	}
}

func checkKind(value any, kind Kind, name string) (any, error) {
	if KindOf(value) == kind {
		return value, nil
	}
	return nil, validationErrorf("The %s must be %s, but it was %s.",
		name, Describe(kind, WithArticles()), describeValue(value))
}

func checkEnum(value any, enum *Enum, name string) (any, error) {
	if m, ok := value.(*Member); ok && m.enum == enum {
		return m, nil
	}

	switch KindOf(value) {
	case KindNull, KindUndefined:
		// fall through to the failure message
	default:
		if m, ok := enum.ValueOf(fmt.Sprint(value)); ok {
			return m, nil
		}
	}

	return nil, validationErrorf("The %s must be %s, but it was %s.",
		name, Describe(enum, WithArticles()), describeValue(value))
}

func checkCoercible(value any, c *Coercible, name string) (any, error) {
	if c.accepts(value) {
		return value, nil
	}

	coerced, err := c.construct(value)
	if err != nil {
		kind := KindOf(value)
		suffix := ""
		if kind != KindNull && kind != KindUndefined {
			suffix = ": " + rawJSON(value)
		}
		return nil, validationErrorf("The %s must be a valid %s, but it was %s%s.",
			name, c.name, describeValue(value), suffix)
	}
	return coerced, nil
}

func checkUnion(value any, union Union, name string) (any, error) {
	for _, member := range union {
		if result, err := check(value, member, name); err == nil {
			return result, nil
		}
	}
	return nil, validationErrorf("The %s must be %s, but it was %s.",
		name, Describe(union, WithArticles()), describeValue(value))
}

func checkStruct(value any, s *Struct, name string) (any, error) {
	object, ok := value.(map[string]any)
	if !ok || object == nil {
		return nil, validationErrorf("The %s must be %s, but it was %s.",
			name, Describe(KindObject, WithArticles()), describeValue(value))
	}

	for _, field := range s.fields {
		fieldValue, present := object[field.Name]
		if !present {
			fieldValue = Undefined
		}

		result, err := check(fieldValue, field.Type, name+"."+field.Name)
		if err != nil {
			return nil, err
		}

		// An absent field whose descriptor allows undefined stays absent.
		if _, isUndefined := result.(undefined); isUndefined && !present {
			continue
		}
		object[field.Name] = result
	}
	return object, nil
}

func describeValue(value any) string {
	return Describe(KindOf(value), WithArticles())
}

// rawJSON renders the raw value for inclusion in a coercion failure message.
func rawJSON(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}
