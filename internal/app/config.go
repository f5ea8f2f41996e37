package service

import (
	"fmt"

	"github.com/ryanmarc/olympic-dashboard/internal/config"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// BuilderOptions maps a loaded configuration onto builder options.
func BuilderOptions(cfg *config.Config, l logger.Logger) ([]BuilderOption, error) {
	const op = "app.builder_options"

	start, err := cfg.Start()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := []BuilderOption{
		WithRequestDelay(cfg.RequestDelay()),
		WithStandingsPages(cfg.StandingsPages...),
		WithFallbackPage(cfg.FallbackPage),
		WithEdition(cfg.Edition),
		WithGamesStart(start),
		WithMaxTimelineDays(cfg.MaxTimelineDays),
		WithTopPerformers(cfg.TopPerformers),
		WithRecentMedals(cfg.RecentMedals),
	}
	if l != nil {
		opts = append(opts, WithBuilderLogger(l.Named("builder")))
	}
	return opts, nil
}

// ServiceOptions maps a loaded configuration onto service options.
func ServiceOptions(cfg *config.Config, l logger.Logger) []Option {
	opts := []Option{
		WithCacheTTL(cfg.CacheTTL()),
		WithRefreshInterval(cfg.RefreshInterval()),
		WithProgressQueueSize(cfg.ProgressQueueSize),
	}
	if l != nil {
		opts = append(opts, WithLogger(l))
	}
	return opts
}
