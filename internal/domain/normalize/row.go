package normalize

import (
	"errors"
	"strings"

	"github.com/okian/shaftdb/internal/adapters/source"
	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/pkg/metrics"
)

// Column aliases probed in order. Flex and weight take the first column the
// sheet carries, even when its cell is blank; the others take the first
// non-blank cell.
var (
	modelColumns        = []string{"model", "shaft", "name", "product"}
	generationColumns   = []string{"generation", "gen", "version"}
	flexColumns         = []string{"flex", "stiffness"}
	weightColumns       = []string{"weight", "weight_grams", "wt"}
	lengthColumns       = []string{"length", "length_inches", "raw_length"}
	torqueColumns       = []string{"torque", "torque_degrees"}
	launchColumns       = []string{"launch", "launch_profile"}
	spinColumns         = []string{"spin", "spin_profile"}
	kickpointColumns    = []string{"kickpoint", "kick_point", "bend_point"}
	tipStiffColumns     = []string{"tip_stiff", "tip_stiffness", "tip"}
	buttDiameterColumns = []string{"butt_diameter", "butt"}
	tipDiameterColumns  = []string{"tip_diameter", "tip_dia"}
	materialColumns     = []string{"material"}
	msrpColumns         = []string{"msrp", "msrp_usd", "price"}
)

// Defaults for cells a sheet leaves out.
const (
	DefaultModel = "Unknown"
	DefaultFlex  = "S"
)

// unmappedFunc observes an optional cell that was present but matched nothing.
type unmappedFunc func(field, raw string)

func recordUnmapped(field, _ string) { metrics.RecordUnmappedValue(field) }

// Row converts one spec-sheet row into a validated record for the given
// manufacturer and club type. Unrecognized optional values are dropped.
// Failures are returned as *RowError.
func Row(index int, r source.Row, manufacturer string, clubType model.ClubType) (model.ShaftSpec, error) {
	return normalizeRow(index, r, manufacturer, clubType, recordUnmapped)
}

func normalizeRow(index int, r source.Row, manufacturer string, clubType model.ClubType, unmapped unmappedFunc) (model.ShaftSpec, error) {
	name := DefaultModel
	if v, ok := r.First(modelColumns...); ok {
		name = v
	}
	fail := func(field string, err error) (model.ShaftSpec, error) {
		return model.ShaftSpec{}, &RowError{Index: index, Field: field, Model: name, Err: err}
	}

	f := model.Fields{
		Manufacturer: manufacturer,
		Model:        name,
		ClubType:     clubType,
		Material:     model.DefaultMaterial,
	}
	if v, ok := r.First(generationColumns...); ok {
		f.Generation = &v
	}

	flexRaw := DefaultFlex
	if v, ok := r.Lookup(flexColumns...); ok {
		flexRaw = v
	}
	flex, err := Flex(flexRaw)
	if err != nil {
		return fail(model.FieldFlex, err)
	}
	f.Flex = flex

	weightRaw, _ := r.Lookup(weightColumns...)
	weight, ok := Float(weightRaw)
	if !ok {
		return fail(model.FieldWeight, ErrMissingWeight)
	}
	f.WeightGrams = weight

	f.LengthInches = optFloat(r, lengthColumns, model.FieldLength, unmapped)
	f.TorqueDegrees = optFloat(r, torqueColumns, model.FieldTorque, unmapped)
	f.ButtDiameterInches = optFloat(r, buttDiameterColumns, model.FieldButtDiameter, unmapped)
	f.TipDiameterInches = optFloat(r, tipDiameterColumns, model.FieldTipDiameter, unmapped)
	f.MSRPUSD = optFloat(r, msrpColumns, model.FieldMSRP, unmapped)

	f.Launch = optLabel(r, launchColumns, model.FieldLaunch, Launch, unmapped)
	f.Spin = optLabel(r, spinColumns, model.FieldSpin, Spin, unmapped)
	f.Kickpoint = optLabel(r, kickpointColumns, model.FieldKickpoint, Kickpoint, unmapped)
	f.TipStiff = optLabel(r, tipStiffColumns, model.FieldTipStiff, TipStiffness, unmapped)

	if v, ok := r.First(materialColumns...); ok {
		f.Material = strings.ToLower(v)
	}

	spec, err := model.New(f)
	if err != nil {
		field := ""
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			field = ve.Field
		}
		return fail(field, err)
	}
	return spec, nil
}

func optFloat(r source.Row, cols []string, field string, unmapped unmappedFunc) *float64 {
	raw, ok := r.First(cols...)
	if !ok {
		return nil
	}
	v, ok := Float(raw)
	if !ok {
		unmapped(field, raw)
		return nil
	}
	return &v
}

func optLabel[V any](r source.Row, cols []string, field string, parse func(string) (V, bool), unmapped unmappedFunc) *V {
	raw, ok := r.First(cols...)
	if !ok {
		return nil
	}
	v, ok := parse(raw)
	if !ok {
		unmapped(field, raw)
		return nil
	}
	return &v
}
