package model

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel kind for every schema constraint violation.
var ErrValidation = errors.New("shaft validation failed")

// ValidationError reports the first field of a candidate record that violates
// a schema constraint.
type ValidationError struct {
	Field  string
	Reason string
	Value  any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string, value any) error {
	return &ValidationError{Field: field, Reason: reason, Value: value}
}
