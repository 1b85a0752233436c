package service

import (
	"errors"

	"github.com/okian/shaftdb/internal/domain/types"
)

// Sentinel kinds for service errors.
var (
	// ErrStoreUninitialized means no catalog has been built yet; it is distinct
	// from a built catalog with no matching records.
	ErrStoreUninitialized = types.ErrStoreUninitialized
	ErrNoSources          = errors.New("no source could be read")
)
