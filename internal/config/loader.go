package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment names read by Load.
const (
	EnvPrefix     = "MEDALS_"
	EnvConfigPath = "MEDALS_CONFIG"
)

// listKeys are the settings read from the environment as comma-separated lists.
var listKeys = map[string]struct{}{ //nolint:gochecknoglobals // fixed key set
	"standings_pages": {},
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MEDALS_CONFIG is set
//  3. env (prefix MEDALS_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrLoadConfig, path, err)
		}
	}

	// MEDALS_CACHE_TTL_MS -> cache_ttl_ms. Underscores are kept to match
	// the flat koanf tags; MEDALS_CONFIG itself is not a key. List keys
	// take comma-separated values.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, any) {
		if s == EnvConfigPath {
			return "", nil
		}
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if _, ok := listKeys[key]; ok {
			return key, splitList(v)
		}
		return key, v
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.APIURL == "":
		return fmt.Errorf("%w: api_url must not be empty", ErrInvalidConfig)
	case c.Edition == "":
		return fmt.Errorf("%w: edition must not be empty", ErrInvalidConfig)
	case len(c.StandingsPages) == 0:
		return fmt.Errorf("%w: standings_pages must not be empty", ErrInvalidConfig)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.RequestDelayMS < 0:
		return fmt.Errorf("%w: request_delay_ms must not be negative", ErrInvalidConfig)
	case c.CacheTTLMS <= 0:
		return fmt.Errorf("%w: cache_ttl_ms must be positive", ErrInvalidConfig)
	case c.RefreshIntervalMS < 0:
		return fmt.Errorf("%w: refresh_interval_ms must not be negative", ErrInvalidConfig)
	case c.MaxTimelineDays <= 0, c.TopPerformers <= 0, c.RecentMedals <= 0, c.ProgressQueueSize <= 0:
		return fmt.Errorf("%w: sizes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Start(); err != nil {
		return fmt.Errorf("%w: games_start: %w", ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
