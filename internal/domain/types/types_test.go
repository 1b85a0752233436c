package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/shaftdb/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComparison(t *testing.T) {
	Convey("Given a comparison", t, func() {
		Convey("When it has no columns", func() {
			So(types.Comparison{}.Empty(), ShouldBeTrue)
		})

		Convey("When it has shafts", func() {
			c := types.Comparison{
				Columns: []string{"KBS Tour Stiff"},
				Rows:    []types.ComparisonRow{{Label: "Launch", Values: []string{types.NotAvailable}}},
			}
			So(c.Empty(), ShouldBeFalse)

			b, err := json.Marshal(c)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"columns":["KBS Tour Stiff"],"rows":[{"label":"Launch","values":["N/A"]}]}`)
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Given stats for an empty catalog", t, func() {
		b, err := json.Marshal(types.Stats{})

		Convey("Then only the total should be encoded", func() {
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"total_shafts":0}`)
		})
	})

	Convey("Given stats for a populated catalog", t, func() {
		s := types.Stats{
			TotalShafts:      2,
			Manufacturers:    1,
			Models:           1,
			ClubTypes:        map[string]int{"woods": 2},
			FlexDistribution: map[string]int{"Stiff": 1, "X-Stiff": 1},
			WeightRange:      &types.WeightRange{Min: 60, Max: 70, Mean: 65},
		}
		b, err := json.Marshal(s)

		So(err, ShouldBeNil)
		So(string(b), ShouldContainSubstring, `"weight_range":{"min":60,"max":70,"mean":65}`)
		So(string(b), ShouldContainSubstring, `"flex_distribution":{"Stiff":1,"X-Stiff":1}`)
	})
}
