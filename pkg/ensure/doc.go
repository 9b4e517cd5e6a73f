// Package ensure provides a runtime structural type checker for dynamic
// values such as decoded JSON: primitives, enum-like constant sets,
// constructor-based coercion (for example parsing a date string into a
// time.Time), union types, and nested object shapes. Failures carry
// human-readable messages with correct grammar (a/an article selection,
// "a, b, or c" joining) and dotted path names for nested fields.
//
// # Architecture
//
// Validation is driven by descriptors, a closed set of variants:
//
//   - Kind       – a primitive runtime tag (string, number, array, ...)
//   - *Enum      – a closed set of named constants with ordinals
//   - *Coercible – a fallible constructor that coerces raw values
//   - Union      – ordered alternatives, first match wins
//   - *Struct    – an ordered mapping from field name to descriptor
//
// KindOf classifies any value into exactly one runtime tag; the checker
// compares tags for primitives and recurses for unions and structs. The
// package is stateless: every check is a single synchronous evaluation whose
// only side effect is the documented in-place coercion of matched struct
// fields and array elements.
//
// # Usage
//
//	user, err := ensure.Type(raw, ensure.Shape(
//		ensure.Field{Name: "login", Type: ensure.KindString},
//		ensure.Field{Name: "age", Type: ensure.Union{ensure.KindNumber, ensure.KindUndefined}},
//		ensure.Field{Name: "createdAt", Type: ensure.Time},
//	), ensure.WithName("User"))
//	if err != nil {
//		// err.Error() == `The User.age must be a number or undefined, but it was a string.`
//	}
//
// # Error Handling
//
// Shape mismatches on external data produce *ValidationError; failed
// predicates and unreachable code paths produce *AssertionError. Both carry a
// single formatted message and can be detected with errors.As or the
// IsValidationError and IsAssertionError helpers. Checks never log, retry, or
// swallow failures, and a struct or array check aborts at the first failing
// field with no further fields evaluated.
package ensure
