// Package service assembles the medal report from fetched pages and serves
// it to the HTTP layer through a cached snapshot.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/worker"
	"github.com/ryanmarc/olympic-dashboard/internal/adapters/wiki"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/extract"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/progression"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/ranking"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/registry"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
	"github.com/ryanmarc/olympic-dashboard/pkg/metrics"
)

// Default build configuration.
const (
	DefaultEdition          = "2026_Winter_Olympics"
	DefaultStandingsPage    = "2026_Winter_Olympics_medal_table"
	DefaultFallbackPage     = "List_of_2026_Winter_Olympics_medal_winners"
	DefaultGamesStart       = "2026-02-04"
	DefaultTopPerformers    = 10
	DefaultRecentMedals     = 20
	countryPageInfix        = "_at_the_"
	dateLayout              = "2006-01-02"
	gameStatusInProgressFmt = "Day %d - Games in Progress"
)

// Page kinds, used as metric labels.
const (
	kindStandings = "standings"
	kindFallback  = "fallback"
	kindCountry   = "country"
)

// Builder runs one full extraction pass: standings, then every country's
// detail page in rank order, then the derived report sections.
type Builder struct {
	fetcher    wiki.Fetcher
	registry   *registry.Registry
	heuristics extract.Heuristics
	sequencer  *worker.Sequencer
	delay      time.Duration

	standingsPages []string
	fallbackPage   string
	edition        string
	gamesStart     time.Time
	maxDays        int
	topPerformers  int
	recentMedals   int

	now    func() time.Time
	newID  func() string
	logger logger.Logger
}

// NewBuilder creates a builder reading pages through fetcher.
func NewBuilder(fetcher wiki.Fetcher, opts ...BuilderOption) *Builder {
	start, _ := progression.ParseStart(DefaultGamesStart)
	b := &Builder{
		fetcher:        fetcher,
		registry:       registry.Default(),
		heuristics:     extract.DefaultHeuristics(),
		delay:          worker.DefaultDelay,
		standingsPages: []string{DefaultStandingsPage},
		fallbackPage:   DefaultFallbackPage,
		edition:        DefaultEdition,
		gamesStart:     start,
		maxDays:        progression.DefaultMaxDays,
		topPerformers:  DefaultTopPerformers,
		recentMedals:   DefaultRecentMedals,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logger.Get().Named("builder")
	}
	if b.sequencer == nil {
		b.sequencer = worker.NewSequencer(
			worker.WithDelay(b.delay),
			worker.WithSequencerLogger(b.logger),
		)
	}
	return b
}

// CountryPage returns the participation page identifier for a country.
func (b *Builder) CountryPage(s model.CountryStanding) string {
	return s.Page + countryPageInfix + b.edition
}

// Build fetches and assembles a report. It returns ErrReportUnavailable when
// neither the standings pages nor the fallback list yield a standing. A
// country whose page cannot be fetched contributes no records.
func (b *Builder) Build(ctx context.Context, onProgress types.ProgressFunc) (*model.Report, error) {
	const op = "app.builder.build"

	started := time.Now()
	notify := func(p types.Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	notify(types.StandingsProgress())
	standings := b.standings(ctx)
	if err := ctx.Err(); err != nil {
		metrics.RecordBuild("cancelled", time.Since(started).Seconds())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(standings) == 0 {
		metrics.RecordBuild("unavailable", time.Since(started).Seconds())
		metrics.RecordErrorByComponent("builder", "unavailable")
		b.logger.Error(ctx, "no standings found on any page")
		return nil, fmt.Errorf("%s: %w", op, ErrReportUnavailable)
	}

	ordered := ranking.Order(standings)
	metrics.UpdateStandingsCountries(len(ordered))
	b.logger.Info(ctx, "standings extracted", logger.Int("countries", len(ordered)))

	now := b.now()
	acc := newAccumulator(now.UTC().Format(dateLayout))
	total := len(ordered)
	_, err := b.sequencer.Run(ctx, total, func(ctx context.Context, i int) {
		country := ordered[i]
		notify(types.CountryProgress(country.Name, i+1, total))
		doc, ok := b.fetch(ctx, kindCountry, b.CountryPage(country))
		if !ok {
			return
		}
		acc.add(country, extract.CountryMedals(doc, country, b.heuristics))
	})
	if err != nil {
		metrics.RecordBuild("cancelled", time.Since(started).Seconds())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	totalMedals := 0
	for _, s := range ordered {
		totalMedals += s.Total
	}
	timeline, day := progression.Synthesize(b.gamesStart, now, totalMedals, b.maxDays)

	report := &model.Report{
		LastUpdated:      now,
		BuildID:          b.newID(),
		IsLive:           true,
		DataSource:       model.DataSourceLive,
		GameStatus:       fmt.Sprintf(gameStatusInProgressFmt, day),
		GameDay:          day,
		TotalMedals:      totalMedals,
		Countries:        ordered,
		Athletes:         acc.records,
		Sports:           acc.sportsByTotal(),
		DailyProgression: timeline,
		TopPerformers:    firstGold(acc.records, b.topPerformers),
		RecentMedals:     firstN(acc.records, b.recentMedals),
	}

	metrics.UpdateMedalRecords(len(report.Athletes))
	metrics.RecordBuild("ok", time.Since(started).Seconds())
	b.logger.Info(ctx, "report built",
		logger.String("buildId", report.BuildID),
		logger.Int("countries", len(report.Countries)),
		logger.Int("totalMedals", report.TotalMedals),
		logger.Int("records", len(report.Athletes)),
		logger.Int("sports", len(report.Sports)),
		logger.Duration("took", time.Since(started)),
	)
	return report, nil
}

// standings tries each configured standings page in order and falls back to
// the medal winners list.
func (b *Builder) standings(ctx context.Context) []model.CountryStanding {
	for _, page := range b.standingsPages {
		if ctx.Err() != nil {
			return nil
		}
		doc, ok := b.fetch(ctx, kindStandings, page)
		if !ok {
			continue
		}
		if found := extract.Standings(doc, b.registry); len(found) > 0 {
			return found
		}
		b.logger.Warn(ctx, "no medal table on page", logger.String("page", page))
	}

	if ctx.Err() != nil || b.fallbackPage == "" {
		return nil
	}
	doc, ok := b.fetch(ctx, kindFallback, b.fallbackPage)
	if !ok {
		return nil
	}
	byCode := extract.FromEventList(doc, b.registry, b.edition)
	b.logger.Info(ctx, "standings rebuilt from medal winners list",
		logger.Int("countries", len(byCode)),
	)
	return fallbackOrder(byCode)
}

// fallbackOrder flattens fallback tallies deterministically by code before
// the medal ordering is applied.
func fallbackOrder(byCode map[string]model.CountryStanding) []model.CountryStanding {
	out := make([]model.CountryStanding, 0, len(byCode))
	for _, s := range byCode {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (b *Builder) fetch(ctx context.Context, kind, page string) (*goquery.Document, bool) {
	start := time.Now()
	doc, err := b.fetcher.Fetch(ctx, page)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.RecordPageFetch(kind, "error", latency)
		metrics.RecordErrorByComponent("builder", kind+"_fetch")
		b.logger.Warn(ctx, "page fetch failed",
			logger.String("kind", kind),
			logger.String("page", page),
			logger.Error(err),
		)
		return nil, false
	}
	metrics.RecordPageFetch(kind, "ok", latency)
	return doc, true
}
