package query_test

import (
	"sync"
	"testing"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/query"
	"github.com/okian/shaftdb/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func f64(v float64) *float64 { return &v }

func prof(p model.Profile) *model.Profile { return &p }

func shaft(f model.Fields) model.ShaftSpec {
	if f.ClubType == "" {
		f.ClubType = model.ClubWoods
	}
	if f.Flex == "" {
		f.Flex = model.FlexStiff
	}
	s, err := model.New(f)
	So(err, ShouldBeNil)
	return s
}

func weights(records []model.ShaftSpec) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.WeightGrams()
	}
	return out
}

func catalog() []model.ShaftSpec {
	return []model.ShaftSpec{
		shaft(model.Fields{Manufacturer: "Fujikura", Model: "Ventus", Flex: model.FlexXStiff, WeightGrams: 75,
			TorqueDegrees: f64(3.0), Launch: prof(model.ProfileLow), MSRPUSD: f64(350)}),
		shaft(model.Fields{Manufacturer: "Fujikura", Model: "Ventus", Flex: model.FlexRegular, WeightGrams: 55,
			TorqueDegrees: f64(4.5), Launch: prof(model.ProfileMid)}),
		shaft(model.Fields{Manufacturer: "Mitsubishi", Model: "Tensei", Flex: model.FlexStiff, WeightGrams: 62,
			Spin: prof(model.ProfileLow), MSRPUSD: f64(300)}),
		shaft(model.Fields{Manufacturer: "KBS", Model: "Tour", ClubType: model.ClubIron, WeightGrams: 67,
			TorqueDegrees: f64(1.9), Material: "steel", MSRPUSD: f64(40)}),
		shaft(model.Fields{Manufacturer: "Fujikura", Model: "Ventus", Flex: model.FlexStiff, WeightGrams: 65}),
	}
}

func TestFilter(t *testing.T) {
	Convey("Given a catalog", t, func() {
		records := catalog()

		Convey("When filtering by an inclusive weight window", func() {
			got := query.Filter(records, query.Predicates{WeightMin: f64(60), WeightMax: f64(70)})
			So(weights(got), ShouldResemble, []float64{62, 67, 65})
		})

		Convey("When filtering a 55/62/67/75 set to 60..70", func() {
			sub := []model.ShaftSpec{records[1], records[2], records[3], records[0]}
			got := query.Filter(sub, query.Predicates{WeightMin: f64(60), WeightMax: f64(70)})
			So(weights(got), ShouldResemble, []float64{62, 67})
		})

		Convey("When bounds sit exactly on a weight", func() {
			got := query.Filter(records, query.Predicates{WeightMin: f64(62), WeightMax: f64(62)})
			So(weights(got), ShouldResemble, []float64{62})
		})

		Convey("When filtering by set membership", func() {
			got := query.Filter(records, query.Predicates{
				Manufacturers: []string{"Fujikura", "KBS"},
				Flexes:        []model.Flex{model.FlexStiff},
			})
			So(weights(got), ShouldResemble, []float64{67, 65})

			got = query.Filter(records, query.Predicates{ClubTypes: []model.ClubType{model.ClubIron}})
			So(weights(got), ShouldResemble, []float64{67})
		})

		Convey("When a torque bound is given", func() {
			got := query.Filter(records, query.Predicates{TorqueMax: f64(3.0)})
			So(weights(got), ShouldResemble, []float64{75, 67})

			got = query.Filter(records, query.Predicates{TorqueMin: f64(2)})
			So(weights(got), ShouldResemble, []float64{75, 55})
		})

		Convey("When profiles are required", func() {
			got := query.Filter(records, query.Predicates{Launch: []model.Profile{model.ProfileLow, model.ProfileMid}})
			So(weights(got), ShouldResemble, []float64{75, 55})

			got = query.Filter(records, query.Predicates{Spin: []model.Profile{model.ProfileLow}})
			So(weights(got), ShouldResemble, []float64{62})
		})

		Convey("When a price ceiling is given", func() {
			got := query.Filter(records, query.Predicates{PriceMax: f64(300)})
			So(weights(got), ShouldResemble, []float64{62, 67})
		})

		Convey("When nothing matches", func() {
			got := query.Filter(records, query.Predicates{Manufacturers: []string{"True Temper"}})
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("When no predicate is set", func() {
			So(len(query.Filter(records, query.Predicates{})), ShouldEqual, len(records))
		})
	})
}

func TestWeightProgression(t *testing.T) {
	Convey("Given one model line in several flexes", t, func() {
		got := query.WeightProgression(catalog(), "Fujikura", "Ventus")

		Convey("Then it should be ordered by flex", func() {
			So(len(got), ShouldEqual, 3)
			So(got[0].Flex(), ShouldEqual, model.FlexRegular)
			So(got[1].Flex(), ShouldEqual, model.FlexStiff)
			So(got[2].Flex(), ShouldEqual, model.FlexXStiff)
		})

		Convey("Then an unknown model should give an empty line", func() {
			So(query.WeightProgression(catalog(), "Fujikura", "Speeder"), ShouldBeEmpty)
		})
	})
}

func TestSearchAndManufacturers(t *testing.T) {
	Convey("Given a catalog", t, func() {
		records := catalog()

		So(weights(query.Search(records, "VENT")), ShouldResemble, []float64{75, 55, 65})
		So(weights(query.Search(records, "kbs")), ShouldResemble, []float64{67})
		So(query.Search(records, "zzz"), ShouldBeEmpty)
		So(query.Manufacturers(records), ShouldResemble, []string{"Fujikura", "KBS", "Mitsubishi"})
		So(query.Manufacturers(nil), ShouldBeEmpty)
	})
}

func TestByDisplayName(t *testing.T) {
	Convey("Given requested display names", t, func() {
		found, missing := query.ByDisplayName(catalog(), []string{"KBS Tour Stiff", "Nope", "Fujikura Ventus Regular"})

		So(len(found), ShouldEqual, 2)
		So(found[0].Manufacturer(), ShouldEqual, "KBS")
		So(found[1].Flex(), ShouldEqual, model.FlexRegular)
		So(missing, ShouldResemble, []string{"Nope"})
	})
}

func TestCompare(t *testing.T) {
	Convey("Given two shafts", t, func() {
		records := catalog()
		c := query.Compare([]model.ShaftSpec{records[0], records[3]})

		row := func(label string) []string {
			for _, r := range c.Rows {
				if r.Label == label {
					return r.Values
				}
			}
			return nil
		}

		Convey("Then columns should be display names", func() {
			So(c.Columns, ShouldResemble, []string{"Fujikura Ventus X-Stiff", "KBS Tour Stiff"})
			So(c.Rows[0].Label, ShouldEqual, query.LabelManufacturer)
			So(c.Rows[len(c.Rows)-1].Label, ShouldEqual, query.LabelMSRP)
		})

		Convey("Then values should be formatted with N/A for absent ones", func() {
			So(row(query.LabelClubType), ShouldResemble, []string{"Woods", "Iron"})
			So(row(query.LabelWeight), ShouldResemble, []string{"75", "67"})
			So(row(query.LabelTorque), ShouldResemble, []string{"3", "1.9"})
			So(row(query.LabelLaunch), ShouldResemble, []string{"Low", types.NotAvailable})
			So(row(query.LabelLength), ShouldResemble, []string{types.NotAvailable, types.NotAvailable})
			So(row(query.LabelMaterial), ShouldResemble, []string{"Graphite", "Steel"})
			So(row(query.LabelMSRP), ShouldResemble, []string{"$350", "$40"})
		})
	})

	Convey("Given no shafts", t, func() {
		So(query.Compare(nil).Empty(), ShouldBeTrue)
	})

	Convey("Given comparisons built concurrently", t, func() {
		records := catalog()
		results := make([]types.Comparison, 8)
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = query.Compare(records)
			}(i)
		}
		wg.Wait()

		Convey("Then every call should title-case the same way", func() {
			want := query.Compare(records)
			for _, got := range results {
				So(got, ShouldResemble, want)
			}
			for _, r := range want.Rows {
				if r.Label == query.LabelMaterial {
					So(r.Values[3], ShouldEqual, "Steel")
				}
			}
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a catalog", t, func() {
		s := query.Summarize(catalog())

		So(s.TotalShafts, ShouldEqual, 5)
		So(s.Manufacturers, ShouldEqual, 3)
		So(s.Models, ShouldEqual, 3)
		So(s.ClubTypes, ShouldResemble, map[string]int{"woods": 4, "iron": 1})
		So(s.FlexDistribution, ShouldResemble, map[string]int{"X-Stiff": 1, "Regular": 1, "Stiff": 3})
		So(*s.WeightRange, ShouldResemble, types.WeightRange{Min: 55, Max: 75, Mean: 64.8})
	})

	Convey("Given an empty catalog", t, func() {
		So(query.Summarize(nil), ShouldResemble, types.Stats{})
	})
}

func TestPage(t *testing.T) {
	Convey("Given a catalog", t, func() {
		records := catalog()

		So(weights(query.Page(records, 0, 2)), ShouldResemble, []float64{75, 55})
		So(weights(query.Page(records, 4, 10)), ShouldResemble, []float64{65})
		So(query.Page(records, 5, 10), ShouldBeEmpty)
		So(len(query.Page(records, -3, 0)), ShouldEqual, 5)
	})
}
