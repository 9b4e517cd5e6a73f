package ensure

import (
	"math"
	"math/big"
	"reflect"
)

// Kind is the runtime classification of a value at check time. Exactly one
// Kind applies to any value. Arrays are classified KindArray even though they
// are also objects, and NaN is kept apart from KindNumber so that error
// messages can call it out by name.
type Kind string

const (
	KindUndefined Kind = "undefined"
	KindNull      Kind = "null"
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindNaN       Kind = "NaN"
	KindBigInt    Kind = "bigint"
	KindString    Kind = "string"
	KindFunction  Kind = "function"
	KindObject    Kind = "object"
	KindArray     Kind = "array"
)

// undefined is the type of the Undefined sentinel.
type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a value that is absent altogether, as opposed to an
// explicit null. The checker produces it for missing struct fields and for
// missing trailing arguments, and callers can pass it to mean "not provided".
var Undefined undefined

// KindOf classifies an arbitrary value. The classification is computed fresh
// on every call, is deterministic, and is total: every value maps to exactly
// one Kind.
func KindOf(v any) Kind {
	switch val := v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case bool:
		return KindBoolean
	case string:
		return KindString
	case float64:
		if math.IsNaN(val) {
			return KindNaN
		}
		return KindNumber
	case float32:
		if math.IsNaN(float64(val)) {
			return KindNaN
		}
		return KindNumber
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return KindNumber
	case *big.Int:
		if val == nil {
			return KindNull
		}
		return KindBigInt
	case big.Int:
		return KindBigInt
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunction
	case reflect.Map:
		if rv.IsNil() {
			return KindNull
		}
		return KindObject
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	default:
		return KindObject
	}
}
