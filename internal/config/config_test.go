package config_test

import (
	"testing"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":3000")
			convey.So(cfg.FetchTimeout(), convey.ShouldEqual, 20*time.Second)
			convey.So(cfg.RequestDelay(), convey.ShouldEqual, time.Second)
			convey.So(cfg.CacheTTL(), convey.ShouldEqual, 5*time.Minute)
			convey.So(cfg.RefreshInterval(), convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.MaxTimelineDays, convey.ShouldEqual, 19)
			convey.So(cfg.StandingsPages, convey.ShouldResemble, []string{"2026_Winter_Olympics_medal_table"})
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the opening date parses as UTC midnight", func() {
			start, err := cfg.Start()
			convey.So(err, convey.ShouldBeNil)
			convey.So(start, convey.ShouldEqual, time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC))
		})
	})
}
