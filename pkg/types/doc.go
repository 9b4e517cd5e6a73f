// Package types provides small, self-contained value types — Color, Vector,
// and an ISO-8601 Duration — together with coercible descriptors that plug
// them into the ensure checker, so raw strings and maps validate directly
// into canonical instances.
package types
