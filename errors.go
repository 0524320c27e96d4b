package validcall

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use errors.Is to check.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("callable not found")
)

// SetupError reports a malformed declared signature at wrap time: a reserved
// overflow field name used as a parameter, a duplicate name, a repeated
// variadic kind, or parameters declared out of kind order. It is raised once,
// before any call is possible.
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string {
	return "invalid callable signature: " + e.Reason
}

// ValidationError reports arguments rejected by the model before the wrapped
// callable is invoked. Fields lists unknown names first, sorted, then every
// other offending field in schema declaration order.
type ValidationError struct {
	Callable string
	Fields   []FieldError
	Err      error // wrapped sentinel for errors.Is (ErrValidation)
}

// FieldError is one field's validation failure.
type FieldError struct {
	Field  string
	Reason string
	Err    error // underlying cause, if any
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Callable, strings.Join(parts, "; "))
}

// Unwrap supports errors.Is on wrapped chains (e.g. errors.Is(err, ErrValidation)).
func (e *ValidationError) Unwrap() error { return e.Err }

// BindingError reports a keyword argument that names a positional-only
// parameter. The calling convention for that combination is deliberately left
// undefined, so such calls are rejected rather than silently coerced to one
// interpretation or the other.
type BindingError struct {
	Callable string
	Param    string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("positional-only parameter %q supplied by keyword in call to %s", e.Param, e.Callable)
}

// IsSetupError returns true if err is or wraps a SetupError.
func IsSetupError(err error) bool {
	var se *SetupError
	return errors.As(err, &se)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsBindingError returns true if err is or wraps a BindingError.
func IsBindingError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}
