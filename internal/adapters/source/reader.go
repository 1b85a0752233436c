package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadFile loads every table held by the file at path. The format is chosen by
// extension: .csv yields one table, .xlsx/.xlsm yield one per worksheet.
func ReadFile(path string) ([]*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, &StructureError{Source: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".csv":
		t, err := ReadCSV(path, f)
		if err != nil {
			return nil, err
		}
		return []*Table{t}, nil
	default:
		return ReadXLSX(path, f)
	}
}

// Supported reports whether ReadFile understands the file extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Discover lists the supported source files directly under dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		if Supported(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
