package normalize

import (
	"errors"
	"fmt"
)

// Sentinel kinds for row normalization failures.
var (
	ErrMissingWeight   = errors.New("missing weight")
	ErrUnparseableFlex = errors.New("cannot normalize flex")
)

// RowError reports why one spec-sheet row was rejected. Err is ErrMissingWeight,
// ErrUnparseableFlex or a *model.ValidationError.
type RowError struct {
	Index int
	Field string
	Model string
	Err   error
}

func (e *RowError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("row %d: %s: %v", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d (%s): %s: %v", e.Index, e.Model, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
