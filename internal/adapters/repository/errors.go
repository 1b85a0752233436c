package repository

import (
	"errors"
	"fmt"
)

// ErrStoreCorrupt is the sentinel kind for a persisted catalog that cannot be
// decoded or holds a record that no longer validates.
var ErrStoreCorrupt = errors.New("store corrupt")

// ErrNotArray reports a catalog document whose top level is not a JSON array.
var ErrNotArray = errors.New("catalog is not a json array")

// CorruptionError locates a corrupt catalog. Index is the zero-based record
// position, or -1 when the document itself is malformed.
type CorruptionError struct {
	Path  string
	Index int
	Err   error
}

func (e *CorruptionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("store %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("store %s: record %d: %v", e.Path, e.Index, e.Err)
}

// Unwrap exposes both ErrStoreCorrupt and the underlying cause.
func (e *CorruptionError) Unwrap() []error { return []error{ErrStoreCorrupt, e.Err} }
