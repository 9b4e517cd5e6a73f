package health

import "errors"

var (
	// ErrInvalidCheck is returned when a check is registered without a name or function.
	ErrInvalidCheck = errors.New("health check requires a name and a function")

	// ErrDuplicateCheck is returned when a check name is registered twice.
	ErrDuplicateCheck = errors.New("health check name already registered")
)
