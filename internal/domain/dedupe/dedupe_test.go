package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/shaftdb/internal/domain/dedupe"
	"github.com/okian/shaftdb/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func spec(manufacturer, name string, flex model.Flex, weight float64) model.ShaftSpec {
	s, err := model.New(model.Fields{
		Manufacturer: manufacturer,
		Model:        name,
		ClubType:     model.ClubWoods,
		Flex:         flex,
		WeightGrams:  weight,
	})
	So(err, ShouldBeNil)
	return s
}

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(8))
		So(d.Size(), ShouldEqual, 0)

		Convey("When a key is new", func() {
			seen := d.SeenAndRecord(context.Background(), "Fujikura Ventus Stiff")

			Convey("Then it should return false and record the key", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a key was already seen", func() {
			d.SeenAndRecord(context.Background(), "Fujikura Ventus Stiff")
			seen := d.SeenAndRecord(context.Background(), "Fujikura Ventus Stiff")

			Convey("Then it should return true without growing", func() {
				So(seen, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When keys differ only by case", func() {
			So(d.SeenAndRecord(context.Background(), "KBS Tour Stiff"), ShouldBeFalse)
			So(d.SeenAndRecord(context.Background(), "kbs tour stiff"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})
	})
}

func TestDedupeConcurrency(t *testing.T) {
	Convey("Given a deduper with concurrent access", t, func() {
		d := dedupe.NewInMemoryDeduper()
		const numGoroutines = 10
		const keysPerGoroutine = 100

		Convey("When goroutines record overlapping keys", func() {
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < keysPerGoroutine; j++ {
						d.SeenAndRecord(context.Background(), fmt.Sprintf("key-%d", j))
					}
				}()
			}
			wg.Wait()

			Convey("Then every key should be recorded once", func() {
				So(d.Size(), ShouldEqual, int64(keysPerGoroutine))
			})
		})
	})
}

func TestUnique(t *testing.T) {
	Convey("Given records with repeated display names", t, func() {
		first := spec("Fujikura", "Ventus", model.FlexStiff, 65)
		other := spec("Fujikura", "Ventus", model.FlexXStiff, 75)
		again := spec("Fujikura", "Ventus", model.FlexStiff, 70)
		kbs := spec("KBS", "Tour", model.FlexStiff, 120)

		kept, dropped := dedupe.Unique(context.Background(), []model.ShaftSpec{first, other, again, kbs})

		Convey("Then the first occurrence should win and order be kept", func() {
			So(len(kept), ShouldEqual, 3)
			So(kept[0].WeightGrams(), ShouldEqual, 65)
			So(kept[1].Flex(), ShouldEqual, model.FlexXStiff)
			So(kept[2].Manufacturer(), ShouldEqual, "KBS")
			So(len(dropped), ShouldEqual, 1)
			So(dropped[0].WeightGrams(), ShouldEqual, 70)
		})

		Convey("Then a custom key should change identity", func() {
			byManufacturer := func(s model.ShaftSpec) string { return s.Manufacturer() }
			kept, dropped := dedupe.Unique(context.Background(), []model.ShaftSpec{first, other, kbs}, dedupe.WithKey(byManufacturer))
			So(len(kept), ShouldEqual, 2)
			So(len(dropped), ShouldEqual, 1)
		})
	})

	Convey("Given no records", t, func() {
		kept, dropped := dedupe.Unique(context.Background(), nil)
		So(kept, ShouldBeEmpty)
		So(dropped, ShouldBeEmpty)
	})
}
