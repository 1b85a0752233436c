// Package repository persists the normalized shaft catalog.
package repository

import (
	"context"

	"github.com/okian/shaftdb/internal/domain/model"
)

// Store provides whole-catalog persistence. The catalog is written once per
// ingestion run and read by the query service.
type Store interface {
	// Save replaces the persisted catalog with specs, keeping their order.
	Save(ctx context.Context, specs []model.ShaftSpec) error

	// Load returns every persisted record, re-validated. A store that was
	// never written loads as an empty catalog.
	Load(ctx context.Context) ([]model.ShaftSpec, error)

	// Read is Load plus whether a catalog existed at the moment it was read.
	Read(ctx context.Context) (Catalog, error)

	// Initialized reports whether a catalog has ever been saved.
	Initialized() (bool, error)
}

// Catalog is one read of the store. Initialized is false when no catalog had
// been saved at read time; Specs is then empty.
type Catalog struct {
	Specs       []model.ShaftSpec
	Initialized bool
}
