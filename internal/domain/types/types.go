// Package types contains read-model shapes shared by the query layer, the
// HTTP API and the spreadsheet export.
package types

import "time"

// NotAvailable is shown in a comparison cell for an absent value.
const NotAvailable = "N/A"

// Comparison is a side-by-side view of several shafts: one column per
// shaft (its display name) and one row per labelled attribute.
type Comparison struct {
	Columns []string        `json:"columns"`
	Rows    []ComparisonRow `json:"rows"`
}

// ComparisonRow is one attribute across every compared shaft. Values align
// with Comparison.Columns.
type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Empty reports whether the comparison has no shafts.
func (c Comparison) Empty() bool { return len(c.Columns) == 0 }

// Stats summarizes a catalog. An empty catalog carries only TotalShafts.
type Stats struct {
	TotalShafts      int            `json:"total_shafts"`
	Manufacturers    int            `json:"manufacturers,omitempty"`
	Models           int            `json:"models,omitempty"`
	ClubTypes        map[string]int `json:"club_types,omitempty"`
	FlexDistribution map[string]int `json:"flex_distribution,omitempty"`
	WeightRange      *WeightRange   `json:"weight_range,omitempty"`
}

// WeightRange is the spread of shaft weights in grams. Mean is rounded to
// one decimal place.
type WeightRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Status describes the catalog snapshot a reader currently serves.
type Status struct {
	Initialized bool      `json:"initialized"`
	Records     int       `json:"records"`
	LoadedAt    time.Time `json:"loaded_at"`
}
