// Package service provides the catalog query service behind the HTTP API and
// the builder that produces the catalog from raw spec sheets.
package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/shaftdb/internal/adapters/repository"
	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/query"
	"github.com/okian/shaftdb/internal/domain/types"
	"github.com/okian/shaftdb/pkg/logger"
	"github.com/okian/shaftdb/pkg/metrics"
)

// snapshot is an immutable view of the loaded catalog.
type snapshot struct {
	records     []model.ShaftSpec
	initialized bool
	loadedAt    time.Time
}

// Service answers catalog queries from an in-memory snapshot. Reload swaps
// the snapshot atomically; readers never see a partial catalog.
type Service struct {
	store  repository.Store
	logger logger.Logger

	reloadMu sync.Mutex
	snap     atomic.Pointer[snapshot]
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service reading from store. Call Start or Reload before
// serving queries.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Start loads the first snapshot.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info(ctx, "starting catalog service...")
	return s.Reload(ctx)
}

// Reload re-reads the store and publishes a new snapshot. On failure the
// previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	cat, err := s.store.Read(ctx)
	if err != nil {
		return s.reloadFailed(ctx, err)
	}
	records, initialized := cat.Specs, cat.Initialized

	next := &snapshot{records: records, initialized: initialized, loadedAt: time.Now()}
	s.snap.Store(next)
	metrics.UpdateStoreRecords(len(records))
	metrics.RecordReload(metrics.OutcomeOK)
	s.logger.Info(ctx, "catalog loaded",
		logger.Int("records", len(records)),
		logger.Bool("initialized", initialized))
	return nil
}

func (s *Service) reloadFailed(ctx context.Context, err error) error {
	metrics.RecordReload(metrics.OutcomeFailed)
	metrics.RecordError("store", "load")
	s.logger.Error(ctx, "catalog reload failed", logger.Error(err))
	return fmt.Errorf("reload catalog: %w", err)
}

func (s *Service) current() ([]model.ShaftSpec, error) {
	snap := s.snap.Load()
	if snap == nil || !snap.initialized {
		return nil, ErrStoreUninitialized
	}
	return snap.records, nil
}

// Status reports the published snapshot.
func (s *Service) Status() types.Status {
	snap := s.snap.Load()
	if snap == nil {
		return types.Status{}
	}
	return types.Status{Initialized: snap.initialized, Records: len(snap.records), LoadedAt: snap.loadedAt}
}

// LoadAll returns every record in catalog order.
func (s *Service) LoadAll(_ context.Context) ([]model.ShaftSpec, error) {
	records, err := s.current()
	if err != nil {
		return nil, err
	}
	return slices.Clone(records), nil
}

// Filter returns the records matching p.
func (s *Service) Filter(_ context.Context, p query.Predicates) ([]model.ShaftSpec, error) {
	records, err := s.current()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, p), nil
}

// Search returns records whose manufacturer or model contains q.
func (s *Service) Search(_ context.Context, q string) ([]model.ShaftSpec, error) {
	records, err := s.current()
	if err != nil {
		return nil, err
	}
	return query.Search(records, q), nil
}

// Compare builds a comparison of the named shafts. Names with no record are
// returned as missing.
func (s *Service) Compare(_ context.Context, names []string) (types.Comparison, []string, error) {
	records, err := s.current()
	if err != nil {
		return types.Comparison{}, nil, err
	}
	found, missing := query.ByDisplayName(records, names)
	return query.Compare(found), missing, nil
}

// WeightProgression returns one model line ordered by flex.
func (s *Service) WeightProgression(_ context.Context, manufacturer, modelName string) ([]model.ShaftSpec, error) {
	records, err := s.current()
	if err != nil {
		return nil, err
	}
	return query.WeightProgression(records, manufacturer, modelName), nil
}

// Manufacturers lists the distinct manufacturers, sorted.
func (s *Service) Manufacturers(_ context.Context) ([]string, error) {
	records, err := s.current()
	if err != nil {
		return nil, err
	}
	return query.Manufacturers(records), nil
}

// Stats summarizes the catalog.
func (s *Service) Stats(_ context.Context) (types.Stats, error) {
	records, err := s.current()
	if err != nil {
		return types.Stats{}, err
	}
	return query.Summarize(records), nil
}
