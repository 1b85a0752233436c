package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/shaftdb/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.StorePath, convey.ShouldEqual, "data/processed/shaft_database.json")
			convey.So(cfg.RawDir, convey.ShouldEqual, "data/raw")
			convey.So(cfg.FailureSampleSize, convey.ShouldEqual, 5)
			convey.So(cfg.DefaultPageLimit, convey.ShouldEqual, 50)
			convey.So(cfg.MaxPageLimit, convey.ShouldEqual, 500)
			convey.So(cfg.RequestTimeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with unusable settings", t, func() {
		cases := []func(*config.Config){
			func(c *config.Config) { c.Addr = "" },
			func(c *config.Config) { c.StorePath = "" },
			func(c *config.Config) { c.LogFormat = "xml" },
			func(c *config.Config) { c.FailureSampleSize = -1 },
			func(c *config.Config) { c.DefaultPageLimit = 0 },
			func(c *config.Config) { c.MaxPageLimit = 10; c.DefaultPageLimit = 20 },
			func(c *config.Config) { c.MaxCompare = 0 },
			func(c *config.Config) { c.RequestTimeoutMS = 0 },
		}

		convey.Convey("Then each should fail with ErrInvalidConfig", func() {
			for _, mutate := range cases {
				cfg := config.New()
				mutate(cfg)
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})
	})
}
