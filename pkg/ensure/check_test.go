package ensure_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilkit/utilkit/pkg/ensure"
)

func TestType_Primitives(t *testing.T) {
	t.Run("matches values by runtime kind", func(t *testing.T) {
		v, err := ensure.Type("John", ensure.KindString)
		require.NoError(t, err)
		assert.Equal(t, "John", v)

		v, err = ensure.Type(42, ensure.KindNumber)
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = ensure.Type(true, ensure.KindBoolean)
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("undefined and null are distinct descriptors", func(t *testing.T) {
		v, err := ensure.Type(ensure.Undefined, ensure.KindUndefined)
		require.NoError(t, err)
		assert.Equal(t, ensure.Undefined, v)

		v, err = ensure.Type(nil, ensure.KindNull)
		require.NoError(t, err)
		assert.Nil(t, v)

		_, err = ensure.Type(nil, ensure.KindUndefined)
		require.Error(t, err)
		assert.Equal(t, "The value must be undefined, but it was null.", err.Error())
	})

	t.Run("reports mismatches with articles", func(t *testing.T) {
		_, err := ensure.Type(42, ensure.KindString)
		require.Error(t, err)
		assert.Equal(t, "The value must be a string, but it was a number.", err.Error())

		_, err = ensure.Type("John", ensure.KindObject)
		require.Error(t, err)
		assert.Equal(t, "The value must be an object, but it was a string.", err.Error())
	})

	t.Run("distinguishes NaN from number", func(t *testing.T) {
		_, err := ensure.Type(math.NaN(), ensure.KindNumber)
		require.Error(t, err)
		assert.Equal(t, "The value must be a number, but it was NaN.", err.Error())
	})

	t.Run("uses the provided name", func(t *testing.T) {
		_, err := ensure.Type(42, ensure.KindString, ensure.WithName("User.login"))
		require.Error(t, err)
		assert.Equal(t, "The User.login must be a string, but it was a number.", err.Error())
	})

	t.Run("failures are validation errors", func(t *testing.T) {
		_, err := ensure.Type(42, ensure.KindString)
		assert.True(t, ensure.IsValidationError(err))
		assert.False(t, ensure.IsAssertionError(err))
	})
}

func TestType_Enums(t *testing.T) {
	yesNo := ensure.NewEnum("YesNo", "Yes", "No")

	t.Run("accepts an existing constant by identity", func(t *testing.T) {
		no := yesNo.MustValueOf("No")
		v, err := ensure.Type(no, yesNo)
		require.NoError(t, err)
		assert.Same(t, no, v)
	})

	t.Run("coerces names case-insensitively", func(t *testing.T) {
		v, err := ensure.Type("no", yesNo)
		require.NoError(t, err)
		assert.Same(t, yesNo.MustValueOf("No"), v)
	})

	t.Run("rejects unknown constants", func(t *testing.T) {
		_, err := ensure.Type("no-enum-constant", yesNo)
		require.Error(t, err)
		assert.Equal(t, "The value must be a YesNo, but it was a string.", err.Error())
	})

	t.Run("rejects null and undefined", func(t *testing.T) {
		_, err := ensure.Type(nil, yesNo)
		require.Error(t, err)
		assert.Equal(t, "The value must be a YesNo, but it was null.", err.Error())

		_, err = ensure.Type(ensure.Undefined, yesNo)
		require.Error(t, err)
		assert.Equal(t, "The value must be a YesNo, but it was undefined.", err.Error())
	})
}

func TestType_Coercibles(t *testing.T) {
	t.Run("accepts an existing instance as-is", func(t *testing.T) {
		now := time.Now()
		v, err := ensure.Type(now, ensure.Time)
		require.NoError(t, err)
		assert.Equal(t, now, v)
	})

	t.Run("constructs from a string", func(t *testing.T) {
		v, err := ensure.Type("2024-08-23T20:01", ensure.Time)
		require.NoError(t, err)

		want, perr := time.Parse("2006-01-02T15:04", "2024-08-23T20:01")
		require.NoError(t, perr)
		assert.Equal(t, want, v)
	})

	t.Run("constructs the epoch from null", func(t *testing.T) {
		v, err := ensure.Type(nil, ensure.Time)
		require.NoError(t, err)
		assert.Equal(t, time.Unix(0, 0).UTC(), v)
	})

	t.Run("constructs from epoch milliseconds", func(t *testing.T) {
		v, err := ensure.Type(1724443260000, ensure.Time)
		require.NoError(t, err)
		assert.Equal(t, time.UnixMilli(1724443260000).UTC(), v)
	})

	t.Run("reports the raw value on construction failure", func(t *testing.T) {
		_, err := ensure.Type("no-date", ensure.Time)
		require.Error(t, err)
		assert.Equal(t, `The value must be a valid Time, but it was a string: "no-date".`, err.Error())
	})

	t.Run("omits the raw value for undefined", func(t *testing.T) {
		_, err := ensure.Type(ensure.Undefined, ensure.Time)
		require.Error(t, err)
		assert.Equal(t, "The value must be a valid Time, but it was undefined.", err.Error())
	})
}

func TestType_Unions(t *testing.T) {
	stringOrNumber := ensure.Union{ensure.KindString, ensure.KindNumber}

	t.Run("first matching member wins", func(t *testing.T) {
		v, err := ensure.Type("John", stringOrNumber)
		require.NoError(t, err)
		assert.Equal(t, "John", v)

		v, err = ensure.Type(42, stringOrNumber)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("returns the coerced value of the matching member", func(t *testing.T) {
		v, err := ensure.Type("2024-08-23T20:01", ensure.Union{ensure.KindNumber, ensure.Time})
		require.NoError(t, err)
		assert.IsType(t, time.Time{}, v)
	})

	t.Run("joins all alternatives when none match", func(t *testing.T) {
		_, err := ensure.Type(true, stringOrNumber)
		require.Error(t, err)
		assert.Equal(t, "The value must be a string or a number, but it was a boolean.", err.Error())

		_, err = ensure.Type(true, ensure.Union{ensure.KindString, ensure.KindNumber, ensure.KindUndefined})
		require.Error(t, err)
		assert.Equal(t, "The value must be a string, a number, or undefined, but it was a boolean.", err.Error())
	})
}

func TestType_Structs(t *testing.T) {
	userShape := func() *ensure.Struct {
		return ensure.Shape(
			ensure.Field{Name: "login", Type: ensure.KindString},
			ensure.Field{Name: "age", Type: ensure.Union{ensure.KindNumber, ensure.KindUndefined}},
			ensure.Field{Name: "createdAt", Type: ensure.Time},
		)
	}

	t.Run("checks every field and coerces in place", func(t *testing.T) {
		user := map[string]any{
			"login":     "john",
			"age":       37,
			"createdAt": "2024-08-23T20:01",
		}

		v, err := ensure.Type(user, userShape(), ensure.WithName("User"))
		require.NoError(t, err)
		assert.Equal(t, user, v, "the input map itself is returned")
		assert.IsType(t, time.Time{}, user["createdAt"], "coercion rewrites the field in place")
	})

	t.Run("missing fields classify as undefined", func(t *testing.T) {
		user := map[string]any{
			"login":     "john",
			"createdAt": "2024-08-23T20:01",
		}

		_, err := ensure.Type(user, userShape(), ensure.WithName("User"))
		require.NoError(t, err)
		_, present := user["age"]
		assert.False(t, present, "an absent optional field stays absent")
	})

	t.Run("qualifies failing fields with a dotted path", func(t *testing.T) {
		user := map[string]any{
			"login":     42,
			"createdAt": "2024-08-23T20:01",
		}

		_, err := ensure.Type(user, userShape(), ensure.WithName("User"))
		require.Error(t, err)
		assert.Equal(t, "The User.login must be a string, but it was a number.", err.Error())
	})

	t.Run("rejects non-objects with the object message", func(t *testing.T) {
		_, err := ensure.Type("john", userShape(), ensure.WithName("User"))
		require.Error(t, err)
		assert.Equal(t, "The User must be an object, but it was a string.", err.Error())

		_, err = ensure.Type(nil, userShape(), ensure.WithName("User"))
		require.Error(t, err)
		assert.Equal(t, "The User must be an object, but it was null.", err.Error())
	})

	t.Run("nested shapes qualify the full path", func(t *testing.T) {
		shape := ensure.Shape(
			ensure.Field{Name: "address", Type: ensure.Shape(
				ensure.Field{Name: "city", Type: ensure.KindString},
			)},
		)

		_, err := ensure.Type(map[string]any{
			"address": map[string]any{"city": 42},
		}, shape, ensure.WithName("User"))
		require.Error(t, err)
		assert.Equal(t, "The User.address.city must be a string, but it was a number.", err.Error())
	})

	t.Run("is idempotent on already-coerced input", func(t *testing.T) {
		user := map[string]any{
			"login":     "john",
			"age":       37,
			"createdAt": "2024-08-23T20:01",
		}

		once, err := ensure.Type(user, userShape())
		require.NoError(t, err)
		twice, err := ensure.Type(once, userShape())
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
