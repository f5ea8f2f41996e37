// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Durations are configured in milliseconds and read through accessors.
// - New returns the defaults; Load layers a YAML file and env vars on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/progression"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":3000".
	Addr string `koanf:"addr"`

	// APIURL is the MediaWiki API endpoint pages are fetched from.
	APIURL string `koanf:"api_url"`

	// UserAgent identifies the scraper to the upstream wiki.
	UserAgent string `koanf:"user_agent"`

	// FetchTimeoutMS bounds a single page fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// RequestDelayMS is the pause between country page fetches.
	RequestDelayMS int `koanf:"request_delay_ms"`

	// CacheTTLMS is how long a built report is served before a rebuild.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// RefreshIntervalMS enables a periodic background rebuild; 0 disables it.
	RefreshIntervalMS int `koanf:"refresh_interval_ms"`

	// GamesStart is the opening date (YYYY-MM-DD) the timeline counts from.
	GamesStart string `koanf:"games_start"`

	// MaxTimelineDays caps the synthetic timeline.
	MaxTimelineDays int `koanf:"max_timeline_days"`

	// TopPerformers and RecentMedals size the report highlights.
	TopPerformers int `koanf:"top_performers"`
	RecentMedals  int `koanf:"recent_medals"`

	// StandingsPages are tried in order for the medal table.
	StandingsPages []string `koanf:"standings_pages"`

	// FallbackPage is the medal winners list; empty disables the fallback.
	FallbackPage string `koanf:"fallback_page"`

	// Edition is the suffix of participation pages, e.g. 2026_Winter_Olympics.
	Edition string `koanf:"edition"`

	// ProgressQueueSize bounds the build progress feed.
	ProgressQueueSize int `koanf:"progress_queue_size"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":3000",
		APIURL:            "https://en.wikipedia.org/w/api.php",
		UserAgent:         "OlympicsMedalDashboard/1.0 (Educational Project; respects robots.txt)",
		FetchTimeoutMS:    20_000,
		RequestDelayMS:    1_000,
		CacheTTLMS:        300_000,
		RefreshIntervalMS: 0,
		GamesStart:        "2026-02-04",
		MaxTimelineDays:   progression.DefaultMaxDays,
		TopPerformers:     10,
		RecentMedals:      20,
		StandingsPages:    []string{"2026_Winter_Olympics_medal_table"},
		FallbackPage:      "List_of_2026_Winter_Olympics_medal_winners",
		Edition:           "2026_Winter_Olympics",
		ProgressQueueSize: 64,
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration { return ms(c.FetchTimeoutMS) }

// RequestDelay returns RequestDelayMS as a duration.
func (c *Config) RequestDelay() time.Duration { return ms(c.RequestDelayMS) }

// CacheTTL returns CacheTTLMS as a duration.
func (c *Config) CacheTTL() time.Duration { return ms(c.CacheTTLMS) }

// RefreshInterval returns RefreshIntervalMS as a duration.
func (c *Config) RefreshInterval() time.Duration { return ms(c.RefreshIntervalMS) }

// Start parses GamesStart.
func (c *Config) Start() (time.Time, error) {
	return progression.ParseStart(c.GamesStart)
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
