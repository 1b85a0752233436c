package export_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/okian/shaftdb/internal/adapters/export"
	"github.com/okian/shaftdb/internal/adapters/source"
	"github.com/okian/shaftdb/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func f64(v float64) *float64 { return &v }

func catalog() []model.ShaftSpec {
	launch := model.ProfileLow
	a, err := model.New(model.Fields{
		Manufacturer: "Fujikura", Model: "Ventus", ClubType: model.ClubWoods,
		Flex: model.FlexStiff, WeightGrams: 65, TorqueDegrees: f64(3.2), Launch: &launch,
	})
	So(err, ShouldBeNil)
	b, err := model.New(model.Fields{
		Manufacturer: "KBS", Model: "Tour", ClubType: model.ClubIron,
		Flex: model.FlexRegular, WeightGrams: 115.5, MSRPUSD: f64(40),
	})
	So(err, ShouldBeNil)
	return []model.ShaftSpec{a, b}
}

func TestWriteCatalog(t *testing.T) {
	Convey("Given a built catalog", t, func() {
		specs := catalog()

		Convey("When it is written as a workbook", func() {
			buf := bytes.NewBuffer(nil)
			So(export.WriteCatalog(buf, specs), ShouldBeNil)

			Convey("Then the source reader should read it back", func() {
				tables, err := source.ReadXLSX("catalog.xlsx", bytes.NewReader(buf.Bytes()))
				So(err, ShouldBeNil)
				So(len(tables), ShouldEqual, 1)
				So(tables[0].Name, ShouldEqual, "catalog.xlsx#"+export.SheetName)
				So(tables[0].HasColumn(model.FieldWeight), ShouldBeTrue)
				So(len(tables[0].Rows), ShouldEqual, 2)

				row := tables[0].Rows[0]
				v, _ := row.Get(model.FieldManufacturer)
				So(v, ShouldEqual, "Fujikura")
				v, _ = row.Get(model.FieldLaunch)
				So(v, ShouldEqual, "Low")
				_, ok := row.Get(model.FieldMSRP)
				So(ok, ShouldBeFalse)

				v, _ = tables[0].Rows[1].Get(model.FieldWeight)
				So(v, ShouldEqual, "115.5")
			})
		})

		Convey("When it is saved to a nested path", func() {
			path := filepath.Join(t.TempDir(), "out", "catalog.xlsx")
			So(export.SaveCatalog(path, specs), ShouldBeNil)

			tables, err := source.ReadFile(path)
			So(err, ShouldBeNil)
			So(len(tables[0].Rows), ShouldEqual, 2)
		})
	})

	Convey("Given an empty catalog", t, func() {
		buf := bytes.NewBuffer(nil)
		So(export.WriteCatalog(buf, nil), ShouldBeNil)
		tables, err := source.ReadXLSX("empty.xlsx", bytes.NewReader(buf.Bytes()))
		So(err, ShouldBeNil)
		So(tables[0].Rows, ShouldBeEmpty)
	})
}
