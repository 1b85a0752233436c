// Package export writes the built catalog to a spreadsheet.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the catalog.
const SheetName = "Shafts"

var headers = []string{
	model.FieldManufacturer, model.FieldModel, model.FieldGeneration, model.FieldClubType,
	model.FieldFlex, model.FieldWeight, model.FieldLength, model.FieldTorque,
	model.FieldLaunch, model.FieldSpin, model.FieldButtDiameter, model.FieldTipDiameter,
	model.FieldTipStiff, model.FieldKickpoint, model.FieldMaterial, model.FieldMSRP,
}

// WriteCatalog writes specs as one worksheet, one record per row, with the
// store field names as the header. Absent values are empty cells.
func WriteCatalog(w io.Writer, specs []model.ShaftSpec) error {
	f, err := build(specs)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveCatalog writes the catalog workbook to path, creating parent
// directories as needed.
func SaveCatalog(path string, specs []model.ShaftSpec) error {
	f, err := build(specs)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func build(specs []model.ShaftSpec) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, s := range specs {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(SheetName, cell, value)
		}

		set(1, s.Manufacturer())
		set(2, s.Model())
		set(3, str(s.Generation()))
		set(4, string(s.ClubType()))
		set(5, string(s.Flex()))
		set(6, s.WeightGrams())
		set(7, num(s.LengthInches()))
		set(8, num(s.TorqueDegrees()))
		set(9, profile(s.Launch()))
		set(10, profile(s.Spin()))
		set(11, num(s.ButtDiameterInches()))
		set(12, num(s.TipDiameterInches()))
		set(13, tip(s.TipStiff()))
		set(14, profile(s.Kickpoint()))
		set(15, s.Material())
		set(16, num(s.MSRPUSD()))
	}
	return f, nil
}

func str(v string, ok bool) string {
	if !ok {
		return ""
	}
	return v
}

func profile(v model.Profile, ok bool) string { return str(string(v), ok) }

func tip(v model.TipStiffness, ok bool) string { return str(string(v), ok) }

func num(v float64, ok bool) any {
	if !ok {
		return ""
	}
	return v
}
