package normalize

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/pkg/logger"
	"github.com/okian/shaftdb/pkg/metrics"
)

// BatchResult holds the records a group produced and the rows it rejected.
type BatchResult struct {
	Group    Group
	Specs    []model.ShaftSpec
	Failures []*RowError
}

// Batch normalizes every row of g independently; a rejected row never stops
// the rest. The context is checked between rows and its error is the only one
// Batch returns.
func Batch(ctx context.Context, g Group, opts ...Option) (BatchResult, error) {
	cfg := batchConfig{sampleSize: defaultFailureSampleSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Get()
	}

	unmapped := func(field, raw string) {
		metrics.RecordUnmappedValue(field)
		cfg.logger.Debug(ctx, "dropping unrecognized value",
			logger.String("manufacturer", g.Manufacturer),
			logger.String("field", field),
			logger.String("value", raw))
	}

	res := BatchResult{Group: g, Specs: make([]model.ShaftSpec, 0, len(g.Rows))}
	for _, r := range g.Rows {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("normalize %s: %w", g.Manufacturer, err)
		}
		spec, err := normalizeRow(r.Index, r, g.Manufacturer, g.ClubType, unmapped)
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				rowErr = &RowError{Index: r.Index, Err: err}
			}
			res.Failures = append(res.Failures, rowErr)
			metrics.RecordRowFailure(rowErr.Field)
			continue
		}
		res.Specs = append(res.Specs, spec)
		metrics.RecordRowNormalized()
	}

	summarize(ctx, cfg, res)
	return res, nil
}

func summarize(ctx context.Context, cfg batchConfig, res BatchResult) {
	g := res.Group
	if n := len(res.Failures); n > 0 {
		sample := res.Failures
		if len(sample) > cfg.sampleSize {
			sample = sample[:cfg.sampleSize]
		}
		reasons := make([]string, len(sample))
		for i, f := range sample {
			reasons[i] = f.Error()
		}
		cfg.logger.Warn(ctx, "rows failed normalization",
			logger.String("sheet", g.Source),
			logger.String("manufacturer", g.Manufacturer),
			logger.Int("failed", n),
			logger.Any("reasons", reasons),
			logger.Int("more", n-len(sample)))
	}
	cfg.logger.Info(ctx, "normalized shafts",
		logger.String("sheet", g.Source),
		logger.String("manufacturer", g.Manufacturer),
		logger.String("club_type", string(g.ClubType)),
		logger.Int("count", len(res.Specs)))
}
