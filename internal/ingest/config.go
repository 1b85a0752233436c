// Package ingest runs one catalog build from the command line: it discovers
// spec sheets, builds and saves the catalog, optionally exports it and prints
// a per-source summary.
package ingest

import "io"

// Config holds the settings of one ingest run.
type Config struct {
	RawDir     string   // Directory scanned when Paths is empty
	Paths      []string // Explicit source files, read in the given order
	StorePath  string   // Catalog file to write
	XLSXPath   string   // Optional spreadsheet export of the built catalog
	DryRun     bool     // Build without saving the catalog
	SampleSize int      // Row failures listed per source in the summary
	Out        io.Writer
}
