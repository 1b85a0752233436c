package source

import (
	"errors"
	"fmt"
)

// Sentinel kinds for source structure errors.
var (
	ErrEmptyTable        = errors.New("table has no header row")
	ErrMissingColumn     = errors.New("required column missing")
	ErrUnsupportedFormat = errors.New("unsupported source format")
)

// StructureError means a whole source table cannot be processed.
type StructureError struct {
	Source string
	Column string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("source %s: %v: %q", e.Source, e.Err, e.Column)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }
