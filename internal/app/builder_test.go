package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/ryanmarc/olympic-dashboard/internal/app"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	medalTablePage = service.DefaultStandingsPage
	winnersList    = service.DefaultFallbackPage
	norwayDetail   = "Norway_at_the_2026_Winter_Olympics"
	germanyDetail  = "Germany_at_the_2026_Winter_Olympics"
	italyDetail    = "Italy_at_the_2026_Winter_Olympics"
)

func TestBuilder_Build(t *testing.T) {
	Convey("Given a medal table and country pages", t, func() {
		fetcher, j := newFake(map[string]string{
			medalTablePage: standingsPage,
			norwayDetail:   norwayPage,
			germanyDetail:  germanyPage,
		})
		var progress []types.Progress
		b := service.NewBuilder(fetcher,
			service.WithSequencer(pacedBy(j)),
			service.WithBuilderClock(fixedClock),
			service.WithIDGenerator(func() string { return "build-1" }),
		)

		Convey("When a report is built", func() {
			report, err := b.Build(context.Background(), func(p types.Progress) {
				progress = append(progress, p)
			})
			So(err, ShouldBeNil)
			So(report, ShouldNotBeNil)

			Convey("Then countries are fetched in rank order with pauses between them", func() {
				So(j.Steps(), ShouldResemble, []string{
					"fetch:" + medalTablePage,
					"fetch:" + norwayDetail,
					"sleep",
					"fetch:" + germanyDetail,
					"sleep",
					"fetch:" + italyDetail,
				})
			})

			Convey("Then standings are ordered and ranked with ties sharing a rank", func() {
				So(len(report.Countries), ShouldEqual, 3)
				codes := []string{report.Countries[0].Code, report.Countries[1].Code, report.Countries[2].Code}
				So(codes, ShouldResemble, []string{"NOR", "GER", "ITA"})
				ranks := []int{report.Countries[0].Rank, report.Countries[1].Rank, report.Countries[2].Rank}
				So(ranks, ShouldResemble, []int{1, 2, 2})
				So(report.TotalMedals, ShouldEqual, 6)
			})

			Convey("Then records follow country order and a failed country adds nothing", func() {
				So(len(report.Athletes), ShouldEqual, 3)
				first := report.Athletes[0]
				So(first.ID, ShouldEqual, "biathlon-women's-sprint-gold")
				So(first.Name, ShouldEqual, "Jane Doe")
				So(first.Country, ShouldEqual, "Norway")
				So(first.CountryCode, ShouldEqual, "NOR")
				So(first.Date, ShouldEqual, "2026-02-10")
				So(report.Athletes[1].Medal, ShouldEqual, model.Bronze)
				So(report.Athletes[2].Sport, ShouldEqual, "Luge")
				So(report.Athletes[2].CountryCode, ShouldEqual, "GER")
				for _, r := range report.Athletes {
					So(r.CountryCode, ShouldNotEqual, "ITA")
				}
			})

			Convey("Then sports are sorted by total with consistent tallies", func() {
				So(len(report.Sports), ShouldEqual, 2)
				So(report.Sports[0].Name, ShouldEqual, "Biathlon")
				So(report.Sports[0].Total, ShouldEqual, 2)
				So(report.Sports[0].Gold+report.Sports[0].Silver+report.Sports[0].Bronze, ShouldEqual, 2)
				So(len(report.Sports[0].Events), ShouldEqual, 2)
				So(report.Sports[1].Name, ShouldEqual, "Luge")
			})

			Convey("Then highlights are order based slices", func() {
				So(len(report.TopPerformers), ShouldEqual, 2)
				So(report.TopPerformers[0].Event, ShouldEqual, "Women's sprint")
				So(report.TopPerformers[1].Event, ShouldEqual, "Men's singles")
				So(len(report.RecentMedals), ShouldEqual, 3)
			})

			Convey("Then the metadata describes a live build", func() {
				So(report.IsLive, ShouldBeTrue)
				So(report.BuildID, ShouldEqual, "build-1")
				So(report.DataSource, ShouldEqual, model.DataSourceLive)
				So(report.GameDay, ShouldEqual, 8)
				So(report.GameStatus, ShouldEqual, "Day 8 - Games in Progress")
				So(report.LastUpdated, ShouldEqual, fixedClock())
			})

			Convey("Then the timeline never passes the total", func() {
				tl := report.DailyProgression
				So(len(tl), ShouldEqual, 8)
				So(tl[0].Date, ShouldEqual, "2026-02-04")
				So(tl[len(tl)-1].CumulativeTotal, ShouldEqual, 6)
			})

			Convey("Then progress is reported in fetch order", func() {
				So(len(progress), ShouldEqual, 4)
				So(progress[0].Phase, ShouldEqual, types.PhaseStandings)
				So(progress[1].Message, ShouldEqual, "Fetching Norway...")
				So(progress[1].Current, ShouldEqual, 1)
				So(progress[1].Total, ShouldEqual, 3)
				So(progress[3].Message, ShouldEqual, "Fetching Italy...")
			})

			Convey("Then country details resolve from the report", func() {
				detail, ok := model.ResolveCountry(report, "nor")
				So(ok, ShouldBeTrue)
				So(len(detail.Athletes), ShouldEqual, 2)
				So(len(detail.MedalsBySport["Biathlon"]), ShouldEqual, 2)
				So(len(detail.MedalsByDay), ShouldEqual, 8)
			})
		})

		Convey("When no progress sink is given", func() {
			report, err := b.Build(context.Background(), nil)
			So(err, ShouldBeNil)
			So(len(report.Countries), ShouldEqual, 3)
		})

		Convey("When the context is cancelled during the country phase", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			fetcher.onFetch = func(page string) {
				if page == norwayDetail {
					cancel()
				}
			}
			report, err := b.Build(ctx, nil)

			Convey("Then the build stops without a report", func() {
				So(report, ShouldBeNil)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(j.Steps(), ShouldNotContain, "fetch:"+germanyDetail)
			})
		})
	})

	Convey("Given a standings page without a medal table", t, func() {
		Convey("When the winners list has medals", func() {
			fetcher, j := newFake(map[string]string{
				medalTablePage: noTablesPage,
				winnersList:    winnersPage,
			})
			b := service.NewBuilder(fetcher,
				service.WithSequencer(pacedBy(j)),
				service.WithBuilderClock(fixedClock),
			)
			report, err := b.Build(context.Background(), nil)

			Convey("Then standings are rebuilt from the list", func() {
				So(err, ShouldBeNil)
				So(len(report.Countries), ShouldEqual, 2)
				So(report.Countries[0].Code, ShouldEqual, "AUT")
				So(report.Countries[0].Gold, ShouldEqual, 1)
				So(report.Countries[1].Code, ShouldEqual, "SUI")
				So(report.Countries[1].Total, ShouldEqual, 2)
				So(report.TotalMedals, ShouldEqual, 3)
				So(j.Steps()[:2], ShouldResemble, []string{"fetch:" + medalTablePage, "fetch:" + winnersList})
			})

			Convey("Then every country is still visited", func() {
				So(j.Steps(), ShouldContain, "fetch:Austria_at_the_2026_Winter_Olympics")
				So(j.Steps(), ShouldContain, "fetch:Switzerland_at_the_2026_Winter_Olympics")
				So(len(report.Athletes), ShouldEqual, 0)
				So(report.Athletes, ShouldNotBeNil)
			})
		})

		Convey("When the winners list is empty too", func() {
			fetcher, j := newFake(map[string]string{
				medalTablePage: noTablesPage,
				winnersList:    noTablesPage,
			})
			b := service.NewBuilder(fetcher, service.WithSequencer(pacedBy(j)))
			report, err := b.Build(context.Background(), nil)

			Convey("Then the report is unavailable", func() {
				So(report, ShouldBeNil)
				So(errors.Is(err, service.ErrReportUnavailable), ShouldBeTrue)
				So(j.Steps(), ShouldResemble, []string{"fetch:" + medalTablePage, "fetch:" + winnersList})
			})
		})

		Convey("When every page fails to fetch", func() {
			fetcher, j := newFake(map[string]string{})
			b := service.NewBuilder(fetcher, service.WithSequencer(pacedBy(j)))
			_, err := b.Build(context.Background(), nil)
			So(errors.Is(err, service.ErrReportUnavailable), ShouldBeTrue)
		})

		Convey("When the fallback is disabled", func() {
			fetcher, j := newFake(map[string]string{medalTablePage: noTablesPage})
			b := service.NewBuilder(fetcher,
				service.WithSequencer(pacedBy(j)),
				service.WithFallbackPage(""),
			)
			_, err := b.Build(context.Background(), nil)
			So(errors.Is(err, service.ErrReportUnavailable), ShouldBeTrue)
			So(j.Steps(), ShouldResemble, []string{"fetch:" + medalTablePage})
		})
	})

	Convey("Given several standings pages", t, func() {
		fetcher, j := newFake(map[string]string{
			"Second_table": standingsPage,
			norwayDetail:   norwayPage,
			germanyDetail:  germanyPage,
		})
		b := service.NewBuilder(fetcher,
			service.WithSequencer(pacedBy(j)),
			service.WithStandingsPages("First_table", "Second_table"),
			service.WithTopPerformers(1),
			service.WithRecentMedals(2),
		)
		report, err := b.Build(context.Background(), nil)

		Convey("Then they are tried in order until one yields standings", func() {
			So(err, ShouldBeNil)
			So(j.Steps()[:2], ShouldResemble, []string{"fetch:First_table", "fetch:Second_table"})
			So(j.Steps(), ShouldNotContain, "fetch:"+winnersList)
		})

		Convey("Then highlight sizes follow the options", func() {
			So(len(report.Athletes), ShouldEqual, 3)
			So(len(report.TopPerformers), ShouldEqual, 1)
			So(len(report.RecentMedals), ShouldEqual, 2)
		})
	})

	Convey("Given a builder", t, func() {
		b := service.NewBuilder(nil, service.WithEdition("2030_Winter_Olympics"))

		Convey("Country pages use the edition suffix", func() {
			s := model.CountryStanding{Page: "United_States"}
			So(b.CountryPage(s), ShouldEqual, "United_States_at_the_2030_Winter_Olympics")
		})
	})
}
