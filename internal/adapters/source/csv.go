package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

const utf8BOM = "\xef\xbb\xbf"

// ReadCSV parses one comma-separated sheet. The first record is the header.
// Ragged records are accepted; missing trailing cells read as absent.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &StructureError{Source: name, Err: ErrEmptyTable}
		}
		return nil, fmt.Errorf("read csv header %s: %w", name, err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", name, err)
		}
		records = append(records, rec)
	}
	return NewTable(name, header, records)
}
