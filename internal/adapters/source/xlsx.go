package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses every non-empty worksheet of a workbook into its own table,
// in workbook order. The first non-blank row of a sheet is its header. Sheet
// tables are named "{name}#{sheet}".
func ReadXLSX(name string, r io.Reader) ([]*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", name, err)
	}
	defer f.Close()

	var tables []*Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s#%s: %w", name, sheet, err)
		}
		for len(rows) > 0 && blank(rows[0]) {
			rows = rows[1:]
		}
		if len(rows) == 0 {
			continue
		}
		t, err := NewTable(name+"#"+sheet, rows[0], rows[1:])
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, &StructureError{Source: name, Err: ErrEmptyTable}
	}
	return tables, nil
}
