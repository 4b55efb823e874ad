package bmi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMeasurement is returned when weight or height is missing,
	// non-numeric or not positive.
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrImplausibleHeight is returned when height exceeds MaxHeightCm.
	// Usually a unit-entry mistake (meters or inches instead of centimeters).
	ErrImplausibleHeight = errors.New("implausible height")
	// ErrComputation is returned when a formula produces a non-finite value.
	ErrComputation = errors.New("computation failed")
)

// ValidationError describes which field failed validation. It unwraps to
// ErrInvalidMeasurement or ErrImplausibleHeight.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Err, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
