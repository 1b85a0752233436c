package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/shaftdb/internal/adapters/repository"
	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func f64(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func sample() []model.ShaftSpec {
	low := model.ProfileLow
	firm := model.TipFirm
	a, err := model.New(model.Fields{
		Manufacturer: "Fujikura", Model: "Ventus", Generation: str("Blue TR"),
		ClubType: model.ClubWoods, Flex: model.FlexXStiff, WeightGrams: 75,
		LengthInches: f64(46), TorqueDegrees: f64(2.9), Launch: &low, TipStiff: &firm,
		MSRPUSD: f64(350),
	})
	So(err, ShouldBeNil)
	b, err := model.New(model.Fields{
		Manufacturer: "KBS", Model: "Tour", ClubType: model.ClubIron,
		Flex: model.FlexStiff, WeightGrams: 120, Material: "steel",
	})
	So(err, ShouldBeNil)
	return []model.ShaftSpec{a, b}
}

func TestFileStore(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	ctx := context.Background()

	Convey("Given a store in a fresh directory", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "processed", "shaft_database.json")
		store := repository.NewFileStore(path)

		Convey("When nothing was ever saved", func() {
			ok, err := store.Initialized()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)

			specs, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(specs, ShouldNotBeNil)
			So(specs, ShouldBeEmpty)

			cat, err := store.Read(ctx)
			So(err, ShouldBeNil)
			So(cat.Initialized, ShouldBeFalse)
			So(cat.Specs, ShouldBeEmpty)
		})

		Convey("When a catalog is saved and loaded back", func() {
			in := sample()
			So(store.Save(ctx, in), ShouldBeNil)
			out, err := store.Load(ctx)

			Convey("Then order and fields should survive", func() {
				So(err, ShouldBeNil)
				So(len(out), ShouldEqual, 2)
				So(out[0].Fields(), ShouldResemble, in[0].Fields())
				So(out[1].Fields(), ShouldResemble, in[1].Fields())
				So(out[0].DisplayName(), ShouldEqual, "Fujikura Ventus Blue TR X-Stiff")

				ok, err := store.Initialized()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)

				cat, err := store.Read(ctx)
				So(err, ShouldBeNil)
				So(cat.Initialized, ShouldBeTrue)
				So(len(cat.Specs), ShouldEqual, 2)
			})

			Convey("Then the file should be indented JSON in field order", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				text := string(data)
				So(text, ShouldStartWith, "[\n  {\n    \"manufacturer\": \"Fujikura\",\n    \"model\": \"Ventus\",")
				So(strings.Index(text, `"msrp_usd"`), ShouldBeGreaterThan, strings.Index(text, `"material"`))
				So(text, ShouldContainSubstring, `"launch": null`)
			})

			Convey("Then no temporary files should remain", func() {
				entries, err := os.ReadDir(filepath.Dir(path))
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 1)
			})

			Convey("Then a second save should replace the first", func() {
				So(store.Save(ctx, in[1:]), ShouldBeNil)
				out, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(len(out), ShouldEqual, 1)
				So(out[0].Manufacturer(), ShouldEqual, "KBS")
			})
		})

		Convey("When an empty catalog is saved", func() {
			So(store.Save(ctx, nil), ShouldBeNil)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(strings.TrimSpace(string(data)), ShouldEqual, "[]")

			ok, _ := store.Initialized()
			So(ok, ShouldBeTrue)
			specs, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(specs, ShouldBeEmpty)
		})
	})

	Convey("Given a corrupt catalog file", t, func() {
		path := filepath.Join(t.TempDir(), "db.json")
		store := repository.NewFileStore(path)

		Convey("When the document is not JSON", func() {
			So(os.WriteFile(path, []byte("{not json"), 0o600), ShouldBeNil)
			_, err := store.Load(ctx)

			So(errors.Is(err, repository.ErrStoreCorrupt), ShouldBeTrue)
			var cerr *repository.CorruptionError
			So(errors.As(err, &cerr), ShouldBeTrue)
			So(cerr.Index, ShouldEqual, -1)
		})

		Convey("When the document is JSON null", func() {
			So(os.WriteFile(path, []byte("null\n"), 0o600), ShouldBeNil)
			_, err := store.Load(ctx)

			So(errors.Is(err, repository.ErrStoreCorrupt), ShouldBeTrue)
			So(errors.Is(err, repository.ErrNotArray), ShouldBeTrue)
			var cerr *repository.CorruptionError
			So(errors.As(err, &cerr), ShouldBeTrue)
			So(cerr.Index, ShouldEqual, -1)
		})

		Convey("When a record fails validation", func() {
			doc := `[{"manufacturer":"A","model":"B","club_type":"woods","flex":"Stiff","weight_grams":60,"material":"graphite"},
			        {"manufacturer":"A","model":"C","club_type":"woods","flex":"Stiff","weight_grams":0,"material":"graphite"}]`
			So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)
			_, err := store.Load(ctx)

			So(errors.Is(err, repository.ErrStoreCorrupt), ShouldBeTrue)
			So(errors.Is(err, model.ErrValidation), ShouldBeTrue)
			var cerr *repository.CorruptionError
			So(errors.As(err, &cerr), ShouldBeTrue)
			So(cerr.Index, ShouldEqual, 1)
			So(cerr.Error(), ShouldContainSubstring, "record 1")
		})

		Convey("When a record has a non-canonical flex", func() {
			doc := `[{"manufacturer":"A","model":"B","club_type":"woods","flex":"S","weight_grams":60}]`
			So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)
			_, err := store.Load(ctx)
			So(errors.Is(err, repository.ErrStoreCorrupt), ShouldBeTrue)
		})
	})

	Convey("Given a cancelled context", t, func() {
		c, cancel := context.WithCancel(ctx)
		cancel()
		store := repository.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
		So(errors.Is(store.Save(c, sample()), context.Canceled), ShouldBeTrue)
		_, err := store.Load(c)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
