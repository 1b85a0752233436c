package normalize_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okian/shaftdb/internal/adapters/source"
	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/normalize"
	"github.com/okian/shaftdb/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func mustTable(csv string) *source.Table {
	t, err := source.ReadCSV("sheet.csv", strings.NewReader(csv))
	So(err, ShouldBeNil)
	return t
}

func TestGroupRows(t *testing.T) {
	Convey("Given a sheet with club types", t, func() {
		table := mustTable("manufacturer,model,weight,club_type\n" +
			"Project X,HZRDUS,60,woods\n" +
			"KBS,Tour,120,Iron\n" +
			"KBS,Hi-Rev,125,wedge\n" +
			"KBS,Tour V,110, iron \n" +
			"KBS,C-Taper,95,driver\n")

		groups, err := normalize.GroupRows(table)

		Convey("Then manufacturers should be sorted and labels kept in first-seen order", func() {
			So(err, ShouldBeNil)
			So(len(groups), ShouldEqual, 4)
			So(groups[0].Manufacturer, ShouldEqual, "KBS")
			So(groups[0].Label, ShouldEqual, "iron")
			So(groups[0].ClubType, ShouldEqual, model.ClubIron)
			So(len(groups[0].Rows), ShouldEqual, 2)
			So(groups[0].Rows[0].Index, ShouldEqual, 1)
			So(groups[0].Rows[1].Index, ShouldEqual, 3)
			So(groups[1].ClubType, ShouldEqual, model.ClubWedge)
			So(groups[2].Label, ShouldEqual, "driver")
			So(groups[2].ClubType, ShouldEqual, model.ClubWoods)
			So(groups[3].Manufacturer, ShouldEqual, "Project X")
			So(groups[3].Source, ShouldEqual, "sheet.csv")
		})
	})

	Convey("Given a sheet without a club_type column", t, func() {
		table := mustTable("manufacturer,model,weight\nB,One,60\nA,Two,70\nB,Three,80\n")
		groups, err := normalize.GroupRows(table)

		So(err, ShouldBeNil)
		So(len(groups), ShouldEqual, 2)
		So(groups[0].Manufacturer, ShouldEqual, "A")
		So(groups[1].ClubType, ShouldEqual, model.ClubWoods)
		So(len(groups[1].Rows), ShouldEqual, 2)
	})

	Convey("Given a sheet without a manufacturer column", t, func() {
		table := mustTable("model,weight\nA,60\n")
		_, err := normalize.GroupRows(table)
		So(errors.Is(err, source.ErrMissingColumn), ShouldBeTrue)
	})
}

func TestBatch(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Convey("Given a group with good and bad rows", t, func() {
		table := mustTable("manufacturer,model,flex,weight\n" +
			"Fujikura,Ventus,S,65\n" +
			"Fujikura,Broken,S,\n" +
			",Orphan,S,60\n" +
			"Fujikura,Ventus,X,75\n" +
			"Fujikura,Weird,banana,70\n")
		groups, err := normalize.GroupRows(table)
		So(err, ShouldBeNil)
		So(len(groups), ShouldEqual, 2)

		Convey("When the blank-manufacturer group is normalized", func() {
			res, err := normalize.Batch(context.Background(), groups[0])

			Convey("Then its rows should be reported, not dropped", func() {
				So(err, ShouldBeNil)
				So(groups[0].Manufacturer, ShouldEqual, "")
				So(res.Specs, ShouldBeEmpty)
				So(len(res.Failures), ShouldEqual, 1)
				So(res.Failures[0].Field, ShouldEqual, model.FieldManufacturer)
			})
		})

		Convey("When the manufacturer group is normalized", func() {
			res, err := normalize.Batch(context.Background(), groups[1], normalize.WithFailureSampleSize(1))

			Convey("Then failures should not abort the batch", func() {
				So(err, ShouldBeNil)
				So(len(res.Specs), ShouldEqual, 2)
				So(res.Specs[0].Flex(), ShouldEqual, model.FlexStiff)
				So(res.Specs[1].Flex(), ShouldEqual, model.FlexXStiff)
				So(len(res.Failures), ShouldEqual, 2)
				So(errors.Is(res.Failures[0], normalize.ErrMissingWeight), ShouldBeTrue)
				So(res.Failures[0].Index, ShouldEqual, 1)
				So(errors.Is(res.Failures[1], normalize.ErrUnparseableFlex), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := normalize.Batch(ctx, groups[1], normalize.WithLogger(logger.Get()))
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
