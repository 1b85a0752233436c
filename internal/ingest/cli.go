package ingest

import (
	"fmt"
	"os"

	"github.com/okian/shaftdb/pkg/logger"
)

// SetupLogging initializes the global logger for the command.
func SetupLogging(format, level string) error {
	if err := logger.Init(logger.WithFormat(format), logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the ingest command.
func ShowHelp() {
	os.Stdout.WriteString(`Shaft Catalog Ingest
====================

Normalizes manufacturer spec sheets (CSV or XLSX) into the shaft catalog.

Usage:
  go run ./cmd/ingest [options] [file ...]

Options:
  -raw-dir string
        Directory of spec sheets, used when no files are given (default from config)
  -store string
        Catalog file to write (default from config)
  -xlsx string
        Also export the built catalog to this workbook
  -dry-run
        Build and report without writing the catalog
  -help
        Show this help message

Configuration is read from SHAFTDB_CONFIG (YAML), SHAFTDB_* variables and .env.

Exit status is non-zero only when no source could be read or the catalog
could not be written.
`)
}
