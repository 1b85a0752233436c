package types

import "errors"

// ErrStoreUninitialized is returned by catalog readers before any catalog
// has been built.
var ErrStoreUninitialized = errors.New("store uninitialized")
