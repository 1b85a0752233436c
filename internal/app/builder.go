package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okian/shaftdb/internal/adapters/repository"
	"github.com/okian/shaftdb/internal/adapters/source"
	"github.com/okian/shaftdb/internal/domain/dedupe"
	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/normalize"
	"github.com/okian/shaftdb/pkg/logger"
	"github.com/okian/shaftdb/pkg/metrics"
)

// SourceReport summarizes one source file of an ingestion run.
type SourceReport struct {
	Path       string
	Tables     int
	Rows       int
	Normalized int
	Failures   []*normalize.RowError
}

// SourceError records a source, or one sheet of it, that could not be used.
type SourceError struct {
	Path string
	Err  error
}

func (e SourceError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

// IngestReport is the outcome of Builder.Build.
type IngestReport struct {
	RunID        string
	StartedAt    time.Time
	Duration     time.Duration
	Sources      []SourceReport
	SourceErrors []SourceError
	// Normalized counts records before deduplication.
	Normalized int
	Failed     int
	Duplicates int
	// Specs is the deduplicated catalog in build order.
	Specs []model.ShaftSpec
	Saved bool
}

// Builder turns raw spec sheets into a persisted catalog.
type Builder struct {
	store      repository.Store
	logger     logger.Logger
	sampleSize int
	dryRun     bool
}

// BuilderOption applies a configuration option to the Builder.
type BuilderOption func(*Builder)

// WithBuilderLogger sets the builder logger.
func WithBuilderLogger(l logger.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithFailureSampleSize sets how many row failures each batch summary lists.
func WithFailureSampleSize(n int) BuilderOption {
	return func(b *Builder) {
		if n >= 0 {
			b.sampleSize = n
		}
	}
}

// WithDryRun builds the catalog without saving it.
func WithDryRun(dryRun bool) BuilderOption {
	return func(b *Builder) {
		b.dryRun = dryRun
	}
}

// NewBuilder creates a builder that saves into store.
func NewBuilder(store repository.Store, opts ...BuilderOption) *Builder {
	b := &Builder{store: store, sampleSize: 5}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logger.Get()
	}
	return b
}

// Build reads paths in order, normalizes every manufacturer and club-type
// group, keeps the first record per display name and saves the result. A
// source that cannot be read is recorded in the report and skipped. Build
// fails with ErrNoSources when no source was usable; a cancelled context
// aborts the run before anything is saved.
func (b *Builder) Build(ctx context.Context, paths []string) (*IngestReport, error) {
	rep := &IngestReport{RunID: uuid.NewString(), StartedAt: time.Now()}
	log := b.logger.Named("ingest")
	log.Info(ctx, "starting ingestion", logger.String("run_id", rep.RunID), logger.Int("sources", len(paths)))

	var all []model.ShaftSpec
	usable := 0
	for _, path := range paths {
		sr, specs, ok, err := b.buildSource(ctx, path, rep)
		if err != nil {
			return rep, err
		}
		if ok {
			usable++
			rep.Sources = append(rep.Sources, sr)
			all = append(all, specs...)
		}
	}
	if usable == 0 {
		metrics.RecordError("ingest", "no_sources")
		return rep, ErrNoSources
	}

	kept, dropped := dedupe.Unique(ctx, all)
	rep.Specs = kept
	rep.Duplicates = len(dropped)
	metrics.RecordDuplicates(len(dropped))
	log.Info(ctx, "deduplicated catalog",
		logger.Int("normalized", len(all)),
		logger.Int("unique", len(kept)),
		logger.Int("duplicates", len(dropped)))

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if !b.dryRun {
		if err := b.store.Save(ctx, kept); err != nil {
			metrics.RecordError("store", "save")
			return rep, fmt.Errorf("save catalog: %w", err)
		}
		rep.Saved = true
	}

	rep.Duration = time.Since(rep.StartedAt)
	metrics.RecordIngestDuration(float64(rep.Duration.Milliseconds()))
	log.Info(ctx, "ingestion finished",
		logger.String("run_id", rep.RunID),
		logger.Int("records", len(kept)),
		logger.Int("failed", rep.Failed),
		logger.Bool("saved", rep.Saved))
	return rep, nil
}

// buildSource normalizes every table of one file. ok is false when the file
// yielded no usable table.
func (b *Builder) buildSource(ctx context.Context, path string, rep *IngestReport) (SourceReport, []model.ShaftSpec, bool, error) {
	sr := SourceReport{Path: path}
	tables, err := source.ReadFile(path)
	if err != nil {
		b.sourceFailed(ctx, rep, path, err)
		metrics.RecordSourceRead(metrics.OutcomeFailed)
		return sr, nil, false, nil
	}

	var specs []model.ShaftSpec
	for _, t := range tables {
		groups, err := normalize.GroupRows(t)
		if err != nil {
			b.sourceFailed(ctx, rep, t.Name, err)
			continue
		}
		sr.Tables++
		sr.Rows += len(t.Rows)
		for _, g := range groups {
			res, err := normalize.Batch(ctx, g,
				normalize.WithLogger(b.logger),
				normalize.WithFailureSampleSize(b.sampleSize))
			if err != nil {
				return sr, nil, false, err
			}
			specs = append(specs, res.Specs...)
			sr.Failures = append(sr.Failures, res.Failures...)
		}
	}
	if sr.Tables == 0 {
		metrics.RecordSourceRead(metrics.OutcomeFailed)
		return sr, nil, false, nil
	}

	sr.Normalized = len(specs)
	rep.Normalized += len(specs)
	rep.Failed += len(sr.Failures)
	metrics.RecordSourceRead(metrics.OutcomeOK)
	return sr, specs, true, nil
}

func (b *Builder) sourceFailed(ctx context.Context, rep *IngestReport, path string, err error) {
	rep.SourceErrors = append(rep.SourceErrors, SourceError{Path: path, Err: err})
	metrics.RecordError("ingest", "source")
	b.logger.Warn(ctx, "skipping source", logger.String("path", path), logger.Error(err))
}
