package model

import (
	"encoding/json"
	"math"
	"strings"
)

// Field names as they appear in the persisted store and in validation errors.
const (
	FieldManufacturer = "manufacturer"
	FieldModel        = "model"
	FieldGeneration   = "generation"
	FieldClubType     = "club_type"
	FieldFlex         = "flex"
	FieldWeight       = "weight_grams"
	FieldLength       = "length_inches"
	FieldTorque       = "torque_degrees"
	FieldLaunch       = "launch"
	FieldSpin         = "spin"
	FieldButtDiameter = "butt_diameter_inches"
	FieldTipDiameter  = "tip_diameter_inches"
	FieldTipStiff     = "tip_stiff"
	FieldKickpoint    = "kickpoint"
	FieldMaterial     = "material"
	FieldMSRP         = "msrp_usd"
)

// Schema bounds.
const (
	maxWeightGrams  = 300
	maxLengthInches = 60
	maxTorque       = 15

	// DefaultMaterial is used when a record does not name its material.
	DefaultMaterial = "graphite"
)

// Fields is an unvalidated shaft record. It is the input to New and the shape
// of one object in the persisted store; nil pointers are absent values.
type Fields struct {
	Manufacturer       string        `json:"manufacturer"`
	Model              string        `json:"model"`
	Generation         *string       `json:"generation"`
	ClubType           ClubType      `json:"club_type"`
	Flex               Flex          `json:"flex"`
	WeightGrams        float64       `json:"weight_grams"`
	LengthInches       *float64      `json:"length_inches"`
	TorqueDegrees      *float64      `json:"torque_degrees"`
	Launch             *Profile      `json:"launch"`
	Spin               *Profile      `json:"spin"`
	ButtDiameterInches *float64      `json:"butt_diameter_inches"`
	TipDiameterInches  *float64      `json:"tip_diameter_inches"`
	TipStiff           *TipStiffness `json:"tip_stiff"`
	Kickpoint          *Profile      `json:"kickpoint"`
	Material           string        `json:"material"`
	MSRPUSD            *float64      `json:"msrp_usd"`
}

// ShaftSpec is a validated, immutable shaft record. The zero value is not a
// valid record; obtain one through New.
type ShaftSpec struct {
	f Fields
}

// New validates f and returns the resulting record. Manufacturer, model and
// generation are trimmed; an empty material becomes DefaultMaterial. The
// first violated constraint is returned as a *ValidationError.
func New(f Fields) (ShaftSpec, error) {
	f = f.clone()
	f.Manufacturer = strings.TrimSpace(f.Manufacturer)
	f.Model = strings.TrimSpace(f.Model)
	if f.Generation != nil {
		g := strings.TrimSpace(*f.Generation)
		if g == "" {
			f.Generation = nil
		} else {
			f.Generation = &g
		}
	}
	if strings.TrimSpace(f.Material) == "" {
		f.Material = DefaultMaterial
	}

	if err := f.validate(); err != nil {
		return ShaftSpec{}, err
	}
	return ShaftSpec{f: f}, nil
}

func (f Fields) validate() error {
	switch {
	case f.Manufacturer == "":
		return invalid(FieldManufacturer, "must not be empty", nil)
	case f.Model == "":
		return invalid(FieldModel, "must not be empty", nil)
	case !f.ClubType.Valid():
		return invalid(FieldClubType, "unknown club type", string(f.ClubType))
	case !f.Flex.Valid():
		return invalid(FieldFlex, "unknown flex", string(f.Flex))
	}

	if !finite(f.WeightGrams) || f.WeightGrams <= 0 || f.WeightGrams >= maxWeightGrams {
		return invalid(FieldWeight, "must be > 0 and < 300", f.WeightGrams)
	}
	if v := f.LengthInches; v != nil && (!finite(*v) || *v <= 0 || *v >= maxLengthInches) {
		return invalid(FieldLength, "must be > 0 and < 60", *v)
	}
	if v := f.TorqueDegrees; v != nil && (!finite(*v) || *v < 0 || *v >= maxTorque) {
		return invalid(FieldTorque, "must be >= 0 and < 15", *v)
	}
	if v := f.ButtDiameterInches; v != nil && !finite(*v) {
		return invalid(FieldButtDiameter, "must be a finite number", *v)
	}
	if v := f.TipDiameterInches; v != nil && !finite(*v) {
		return invalid(FieldTipDiameter, "must be a finite number", *v)
	}
	if v := f.MSRPUSD; v != nil && (!finite(*v) || *v < 0) {
		return invalid(FieldMSRP, "must be >= 0", *v)
	}

	if v := f.Launch; v != nil && !v.Valid() {
		return invalid(FieldLaunch, "unknown profile", string(*v))
	}
	if v := f.Spin; v != nil && !v.Valid() {
		return invalid(FieldSpin, "unknown profile", string(*v))
	}
	if v := f.Kickpoint; v != nil && !v.Valid() {
		return invalid(FieldKickpoint, "unknown profile", string(*v))
	}
	if v := f.TipStiff; v != nil && !v.Valid() {
		return invalid(FieldTipStiff, "unknown tip stiffness", string(*v))
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// clone copies every pointer so the result shares no memory with f.
func (f Fields) clone() Fields {
	out := f
	out.Generation = clonePtr(f.Generation)
	out.LengthInches = clonePtr(f.LengthInches)
	out.TorqueDegrees = clonePtr(f.TorqueDegrees)
	out.Launch = clonePtr(f.Launch)
	out.Spin = clonePtr(f.Spin)
	out.ButtDiameterInches = clonePtr(f.ButtDiameterInches)
	out.TipDiameterInches = clonePtr(f.TipDiameterInches)
	out.TipStiff = clonePtr(f.TipStiff)
	out.Kickpoint = clonePtr(f.Kickpoint)
	out.MSRPUSD = clonePtr(f.MSRPUSD)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Fields returns a copy of the record's data.
func (s ShaftSpec) Fields() Fields { return s.f.clone() }

// Manufacturer returns the trimmed OEM name.
func (s ShaftSpec) Manufacturer() string { return s.f.Manufacturer }

// Model returns the trimmed product line name.
func (s ShaftSpec) Model() string { return s.f.Model }

// Generation returns the generation or version label, if any.
func (s ShaftSpec) Generation() (string, bool) { return deref(s.f.Generation) }

// ClubType returns the intended club type.
func (s ShaftSpec) ClubType() ClubType { return s.f.ClubType }

// Flex returns the flex rating.
func (s ShaftSpec) Flex() Flex { return s.f.Flex }

// FlexOrder returns the rank of the flex rating, used for sorting.
func (s ShaftSpec) FlexOrder() int { return s.f.Flex.Order() }

// WeightGrams returns the shaft weight.
func (s ShaftSpec) WeightGrams() float64 { return s.f.WeightGrams }

// LengthInches returns the uncut length.
func (s ShaftSpec) LengthInches() (float64, bool) { return deref(s.f.LengthInches) }

// TorqueDegrees returns the torque rating.
func (s ShaftSpec) TorqueDegrees() (float64, bool) { return deref(s.f.TorqueDegrees) }

// Launch returns the launch profile.
func (s ShaftSpec) Launch() (Profile, bool) { return deref(s.f.Launch) }

// Spin returns the spin profile.
func (s ShaftSpec) Spin() (Profile, bool) { return deref(s.f.Spin) }

// Kickpoint returns the kickpoint location.
func (s ShaftSpec) Kickpoint() (Profile, bool) { return deref(s.f.Kickpoint) }

// TipStiff returns the tip stiffness.
func (s ShaftSpec) TipStiff() (TipStiffness, bool) { return deref(s.f.TipStiff) }

// ButtDiameterInches returns the butt diameter.
func (s ShaftSpec) ButtDiameterInches() (float64, bool) { return deref(s.f.ButtDiameterInches) }

// TipDiameterInches returns the tip diameter.
func (s ShaftSpec) TipDiameterInches() (float64, bool) { return deref(s.f.TipDiameterInches) }

// Material returns the lower-cased shaft material.
func (s ShaftSpec) Material() string { return s.f.Material }

// MSRPUSD returns the list price in US dollars.
func (s ShaftSpec) MSRPUSD() (float64, bool) { return deref(s.f.MSRPUSD) }

// DisplayName is the human-readable identity of the record and the key used to
// collapse duplicates: "{manufacturer} {model}[ {generation}] {flex}".
func (s ShaftSpec) DisplayName() string {
	var b strings.Builder
	b.WriteString(s.f.Manufacturer)
	b.WriteByte(' ')
	b.WriteString(s.f.Model)
	if s.f.Generation != nil {
		b.WriteByte(' ')
		b.WriteString(*s.f.Generation)
	}
	b.WriteByte(' ')
	b.WriteString(string(s.f.Flex))
	return b.String()
}

// MarshalJSON encodes the record with the persisted field set and key order.
func (s ShaftSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.f)
}
