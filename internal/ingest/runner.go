package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/okian/shaftdb/internal/adapters/export"
	"github.com/okian/shaftdb/internal/adapters/repository"
	"github.com/okian/shaftdb/internal/adapters/source"
	service "github.com/okian/shaftdb/internal/app"
	"github.com/okian/shaftdb/pkg/logger"
)

// Run builds the catalog described by config and prints a summary to
// config.Out. It fails only when no source was usable or when the catalog or
// export could not be written.
func Run(ctx context.Context, config *Config) (*service.IngestReport, error) {
	log := logger.Get().Named("ingest")

	paths := config.Paths
	if len(paths) == 0 {
		found, err := source.Discover(config.RawDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", service.ErrNoSources, err)
		}
		paths = found
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no csv or xlsx files in %s", service.ErrNoSources, config.RawDir)
	}

	store := repository.NewFileStore(config.StorePath, repository.WithLogger(log))
	builder := service.NewBuilder(store,
		service.WithBuilderLogger(log),
		service.WithFailureSampleSize(config.SampleSize),
		service.WithDryRun(config.DryRun))

	rep, err := builder.Build(ctx, paths)
	if rep != nil && config.Out != nil {
		PrintSummary(config.Out, rep, config.SampleSize, store.Path())
	}
	if err != nil {
		return rep, err
	}

	if config.XLSXPath != "" {
		if err := export.SaveCatalog(config.XLSXPath, rep.Specs); err != nil {
			return rep, fmt.Errorf("export catalog: %w", err)
		}
		log.Info(ctx, "exported catalog", logger.String("path", config.XLSXPath), logger.Int("records", len(rep.Specs)))
	}
	return rep, nil
}

// PrintSummary writes a human-readable account of rep.
func PrintSummary(w io.Writer, rep *service.IngestReport, sampleSize int, storePath string) {
	for _, sr := range rep.Sources {
		fmt.Fprintf(w, "\n%s\n", filepath.Base(sr.Path))
		fmt.Fprintf(w, "  rows: %d  normalized: %d  failed: %d\n", sr.Rows, sr.Normalized, len(sr.Failures))
		for i, f := range sr.Failures {
			if i == sampleSize {
				fmt.Fprintf(w, "    ... and %d more\n", len(sr.Failures)-sampleSize)
				break
			}
			fmt.Fprintf(w, "    %v\n", f)
		}
	}
	for _, se := range rep.SourceErrors {
		fmt.Fprintf(w, "\nskipped %v\n", se)
	}

	fmt.Fprintf(w, "\n%s\n", "==================================================")
	fmt.Fprintf(w, "Total shafts normalized: %d\n", rep.Normalized)
	fmt.Fprintf(w, "Unique shafts after dedup: %d\n", len(rep.Specs))
	switch {
	case rep.Saved:
		fmt.Fprintf(w, "Saved %d shafts to %s\n", len(rep.Specs), storePath)
	case len(rep.Specs) > 0 || rep.Normalized > 0:
		fmt.Fprintf(w, "Dry run: %s not written\n", storePath)
	}
}
