// Package dedupe drops records whose identity was already seen.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/shaftdb/internal/domain/model"
)

// Deduper records seen keys so each identity is kept once.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	Size() int64
}

type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates an unbounded in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	cfg := newConfig(opts)
	return &inMemoryDeduper{seen: make(map[string]struct{}, cfg.capacity)}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	d.size.Add(1)
	return false
}

// Size returns the number of distinct keys recorded.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// Unique keeps the first record of every identity, preserving input order.
// Identity is the display name unless WithKey says otherwise. The dropped
// records are returned in the order they were encountered.
func Unique(ctx context.Context, specs []model.ShaftSpec, opts ...Option) (kept, dropped []model.ShaftSpec) {
	cfg := newConfig(opts)
	d := NewInMemoryDeduper(WithCapacity(len(specs)))
	kept = make([]model.ShaftSpec, 0, len(specs))
	for _, s := range specs {
		if d.SeenAndRecord(ctx, cfg.key(s)) {
			dropped = append(dropped, s)
			continue
		}
		kept = append(kept, s)
	}
	return kept, dropped
}
