// Package query answers read-only questions over a loaded shaft catalog.
// Every function leaves its input slice untouched and keeps record order
// unless it documents a sort.
package query

import (
	"slices"

	"github.com/okian/shaftdb/internal/domain/model"
)

// Predicates narrows a catalog. Empty sets and nil bounds place no
// constraint; bounds are inclusive. Torque, price and profile constraints
// reject records that lack the attribute.
type Predicates struct {
	Manufacturers []string
	ClubTypes     []model.ClubType
	Flexes        []model.Flex
	WeightMin     *float64
	WeightMax     *float64
	TorqueMin     *float64
	TorqueMax     *float64
	Launch        []model.Profile
	Spin          []model.Profile
	PriceMax      *float64
}

// Filter returns the records matching every predicate. The result is never nil.
func Filter(records []model.ShaftSpec, p Predicates) []model.ShaftSpec {
	out := make([]model.ShaftSpec, 0, len(records))
	for _, r := range records {
		if p.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether a single record satisfies p.
func (p Predicates) Match(r model.ShaftSpec) bool {
	if !in(p.Manufacturers, r.Manufacturer()) ||
		!in(p.ClubTypes, r.ClubType()) ||
		!in(p.Flexes, r.Flex()) {
		return false
	}

	w := r.WeightGrams()
	if p.WeightMin != nil && w < *p.WeightMin {
		return false
	}
	if p.WeightMax != nil && w > *p.WeightMax {
		return false
	}

	if p.TorqueMin != nil || p.TorqueMax != nil {
		tq, ok := r.TorqueDegrees()
		if !ok || !within(tq, p.TorqueMin, p.TorqueMax) {
			return false
		}
	}
	if p.PriceMax != nil {
		price, ok := r.MSRPUSD()
		if !ok || price > *p.PriceMax {
			return false
		}
	}

	if len(p.Launch) > 0 {
		v, ok := r.Launch()
		if !ok || !slices.Contains(p.Launch, v) {
			return false
		}
	}
	if len(p.Spin) > 0 {
		v, ok := r.Spin()
		if !ok || !slices.Contains(p.Spin, v) {
			return false
		}
	}
	return true
}

func in[T comparable](set []T, v T) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

func within(v float64, lo, hi *float64) bool {
	return (lo == nil || v >= *lo) && (hi == nil || v <= *hi)
}
