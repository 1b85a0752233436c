// Package source reads manufacturer spec sheets into header-keyed tables.
package source

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Well-known column names after header normalization.
const (
	ColManufacturer = "manufacturer"
	ColClubType     = "club_type"
)

// Table is one rectangular sheet with a header row. Column names are
// normalized with NormalizeHeader; rows keep their position in the sheet
// (blank lines excluded) as Row.Index.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row

	index map[string]int
}

// Row is one data line of a Table.
type Row struct {
	Index int

	cells []string
	index map[string]int
}

// NewTable builds a table from a raw header and data records. Records that are
// entirely blank are skipped. Duplicate header names resolve to the first column.
func NewTable(name string, header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, &StructureError{Source: name, Err: ErrEmptyTable}
	}

	t := &Table{
		Name:    name,
		Columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, h := range header {
		col := NormalizeHeader(h)
		t.Columns[i] = col
		if _, dup := t.index[col]; !dup && col != "" {
			t.index[col] = i
		}
	}
	if len(t.index) == 0 {
		return nil, &StructureError{Source: name, Err: ErrEmptyTable}
	}

	for _, rec := range records {
		if blank(rec) {
			continue
		}
		cells := make([]string, len(rec))
		for i, c := range rec {
			cells[i] = norm.NFKC.String(c)
		}
		t.Rows = append(t.Rows, Row{Index: len(t.Rows), cells: cells, index: t.index})
	}
	return t, nil
}

// HasColumn reports whether the table carries the named (normalized) column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require returns a *StructureError wrapping ErrMissingColumn for the first
// named column the table does not carry.
func (t *Table) Require(names ...string) error {
	for _, n := range names {
		if !t.HasColumn(n) {
			return &StructureError{Source: t.Name, Column: n, Err: ErrMissingColumn}
		}
	}
	return nil
}

// Get returns the trimmed cell under col. A missing column, a short record and
// a blank cell are all reported as absent.
func (r Row) Get(col string) (string, bool) {
	i, ok := r.index[col]
	if !ok || i >= len(r.cells) {
		return "", false
	}
	v := strings.TrimSpace(r.cells[i])
	if v == "" {
		return "", false
	}
	return v, true
}

// First probes aliases in order and returns the first present value.
func (r Row) First(aliases ...string) (string, bool) {
	for _, a := range aliases {
		if v, ok := r.Get(a); ok {
			return v, true
		}
	}
	return "", false
}

// Lookup returns the trimmed cell of the first alias the row's header carries,
// blank or not. ok is false only when no alias names a column.
func (r Row) Lookup(aliases ...string) (string, bool) {
	for _, a := range aliases {
		i, ok := r.index[a]
		if !ok {
			continue
		}
		if i >= len(r.cells) {
			return "", true
		}
		return strings.TrimSpace(r.cells[i]), true
	}
	return "", false
}

// NewRow builds a standalone row from a column->value map. It is meant for
// callers that do not read from a sheet, such as tests.
func NewRow(index int, values map[string]string) Row {
	r := Row{Index: index, index: make(map[string]int, len(values))}
	for k, v := range values {
		r.index[NormalizeHeader(k)] = len(r.cells)
		r.cells = append(r.cells, v)
	}
	return r
}

// NormalizeHeader folds a column title to its lookup key: Unicode NFKC,
// byte-order marks removed, trimmed, lower-cased, spaces replaced with
// underscores.
func NormalizeHeader(h string) string {
	h = norm.NFKC.String(h)
	h = strings.ReplaceAll(h, "\ufeff", "")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
