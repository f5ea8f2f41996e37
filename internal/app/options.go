package service

import (
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/worker"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/extract"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/registry"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// BuilderOption applies a configuration option to the Builder.
type BuilderOption func(*Builder)

// WithRegistry replaces the default country registry.
func WithRegistry(reg *registry.Registry) BuilderOption {
	return func(b *Builder) {
		if reg != nil {
			b.registry = reg
		}
	}
}

// WithHeuristics replaces the default recognition tables.
func WithHeuristics(h extract.Heuristics) BuilderOption {
	return func(b *Builder) {
		b.heuristics = h
	}
}

// WithSequencer sets the sequencer that paces country fetches.
func WithSequencer(seq *worker.Sequencer) BuilderOption {
	return func(b *Builder) {
		if seq != nil {
			b.sequencer = seq
		}
	}
}

// WithRequestDelay sets the pause between country fetches. It is ignored
// when WithSequencer is also given.
func WithRequestDelay(d time.Duration) BuilderOption {
	return func(b *Builder) {
		if d >= 0 {
			b.delay = d
		}
	}
}

// WithStandingsPages sets the pages tried, in order, for the medal table.
func WithStandingsPages(pages ...string) BuilderOption {
	return func(b *Builder) {
		if len(pages) > 0 {
			b.standingsPages = pages
		}
	}
}

// WithFallbackPage sets the medal winners list used when no standings page
// yields a table. An empty page disables the fallback.
func WithFallbackPage(page string) BuilderOption {
	return func(b *Builder) {
		b.fallbackPage = page
	}
}

// WithEdition sets the games edition suffix of participation pages.
func WithEdition(edition string) BuilderOption {
	return func(b *Builder) {
		if edition != "" {
			b.edition = edition
		}
	}
}

// WithGamesStart sets the opening date the timeline counts from.
func WithGamesStart(start time.Time) BuilderOption {
	return func(b *Builder) {
		if !start.IsZero() {
			b.gamesStart = start
		}
	}
}

// WithMaxTimelineDays caps the number of timeline entries.
func WithMaxTimelineDays(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxDays = n
		}
	}
}

// WithTopPerformers sets how many gold records are highlighted.
func WithTopPerformers(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.topPerformers = n
		}
	}
}

// WithRecentMedals sets how many records the recent list carries.
func WithRecentMedals(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.recentMedals = n
		}
	}
}

// WithBuilderClock replaces time.Now for report timestamps.
func WithBuilderClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator replaces the build ID generator.
func WithIDGenerator(gen func() string) BuilderOption {
	return func(b *Builder) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithBuilderLogger sets a custom logger for the builder.
func WithBuilderLogger(l logger.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCacheTTL sets how long a built report is served before a rebuild.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithRefreshInterval enables a periodic background rebuild. Zero disables it.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.refreshInterval = d
		}
	}
}

// WithProgressQueueSize sets the capacity of the progress feed.
func WithProgressQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithClock replaces time.Now for snapshot ages.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
