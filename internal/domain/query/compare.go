package query

import (
	"fmt"
	"strconv"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Comparison row labels, in display order.
const (
	LabelManufacturer = "Manufacturer"
	LabelModel        = "Model"
	LabelClubType     = "Club Type"
	LabelFlex         = "Flex"
	LabelWeight       = "Weight (g)"
	LabelLength       = "Length (in)"
	LabelTorque       = "Torque (°)"
	LabelLaunch       = "Launch"
	LabelSpin         = "Spin"
	LabelKickpoint    = "Kickpoint"
	LabelTipStiffness = "Tip Stiffness"
	LabelTipDiameter  = "Tip (in)"
	LabelButtDiameter = "Butt (in)"
	LabelMaterial     = "Material"
	LabelMSRP         = "MSRP"
)

type attribute struct {
	label string
	value func(model.ShaftSpec) string
}

var attributes = []attribute{
	{LabelManufacturer, model.ShaftSpec.Manufacturer},
	{LabelModel, model.ShaftSpec.Model},
	{LabelClubType, func(s model.ShaftSpec) string { return string(s.ClubType()) }},
	{LabelFlex, func(s model.ShaftSpec) string { return string(s.Flex()) }},
	{LabelWeight, func(s model.ShaftSpec) string { return number(s.WeightGrams(), true) }},
	{LabelLength, func(s model.ShaftSpec) string { return number(s.LengthInches()) }},
	{LabelTorque, func(s model.ShaftSpec) string { return number(s.TorqueDegrees()) }},
	{LabelLaunch, optional(model.ShaftSpec.Launch)},
	{LabelSpin, optional(model.ShaftSpec.Spin)},
	{LabelKickpoint, optional(model.ShaftSpec.Kickpoint)},
	{LabelTipStiffness, optional(model.ShaftSpec.TipStiff)},
	{LabelTipDiameter, func(s model.ShaftSpec) string { return number(s.TipDiameterInches()) }},
	{LabelButtDiameter, func(s model.ShaftSpec) string { return number(s.ButtDiameterInches()) }},
	{LabelMaterial, model.ShaftSpec.Material},
	{LabelMSRP, func(s model.ShaftSpec) string {
		if v, ok := s.MSRPUSD(); ok {
			return fmt.Sprintf("$%.0f", v)
		}
		return types.NotAvailable
	}},
}

// Rows whose values are title-cased for display.
var titled = map[string]bool{LabelClubType: true, LabelMaterial: true}

// Compare builds the side-by-side view of records: one column per record,
// headed by its display name, and one row per attribute. Absent values read
// "N/A".
func Compare(records []model.ShaftSpec) types.Comparison {
	if len(records) == 0 {
		return types.Comparison{}
	}
	c := types.Comparison{
		Columns: make([]string, len(records)),
		Rows:    make([]types.ComparisonRow, len(attributes)),
	}
	for i, r := range records {
		c.Columns[i] = r.DisplayName()
	}
	caser := cases.Title(language.English)
	for i, a := range attributes {
		values := make([]string, len(records))
		for j, r := range records {
			values[j] = a.value(r)
			if titled[a.label] {
				values[j] = caser.String(values[j])
			}
		}
		c.Rows[i] = types.ComparisonRow{Label: a.label, Values: values}
	}
	return c
}

func number(v float64, ok bool) string {
	if !ok {
		return types.NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optional[T ~string](get func(model.ShaftSpec) (T, bool)) func(model.ShaftSpec) string {
	return func(s model.ShaftSpec) string {
		if v, ok := get(s); ok {
			return string(v)
		}
		return types.NotAvailable
	}
}
