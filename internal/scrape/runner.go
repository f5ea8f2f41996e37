// Package scrape runs a single report build outside the HTTP service and
// writes the result as JSON.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Builder produces a report.
type Builder interface {
	Build(ctx context.Context, onProgress types.ProgressFunc) (*model.Report, error)
}

// Run builds one report, verifies it and writes it to cfg.Output or stdout.
func Run(ctx context.Context, cfg *Config, builder Builder, stdout io.Writer) (*Stats, error) {
	const op = "scrape.run"

	if builder == nil {
		return nil, ErrNilBuilder
	}
	log := logger.Get().Named("scrape")
	stats := &Stats{StartTime: time.Now()}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.Info(ctx, "building medal report",
		logger.String("output", outputName(cfg)),
		logger.Duration("timeout", cfg.Timeout))

	report, err := builder.Build(ctx, func(p types.Progress) {
		log.Info(ctx, p.Message,
			logger.String("phase", string(p.Phase)),
			logger.Int("current", p.Current),
			logger.Int("total", p.Total))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: build: %w", op, err)
	}

	issues := Verify(report)
	for _, issue := range issues {
		log.Warn(ctx, "report inconsistency", logger.String("issue", issue))
	}

	stats.Countries = len(report.Countries)
	stats.Records = len(report.Athletes)
	stats.Sports = len(report.Sports)
	stats.TotalMedals = report.TotalMedals
	stats.Issues = len(issues)

	if cfg.Strict && len(issues) > 0 {
		return stats, fmt.Errorf("%s: %w: %d issues", op, ErrVerification, len(issues))
	}

	if err := writeReport(ctx, cfg, report, stdout); err != nil {
		return stats, fmt.Errorf("%s: %w", op, err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)
	return stats, nil
}

func outputName(cfg *Config) string {
	if cfg.Output == "" {
		return "stdout"
	}
	return cfg.Output
}

// writeReport encodes report to cfg.Output, creating parent directories, or
// to stdout when no file is set.
func writeReport(ctx context.Context, cfg *Config, report *model.Report, stdout io.Writer) error {
	if cfg.Output == "" {
		return encode(stdout, report, cfg.Pretty)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close file", logger.Error(err))
		}
	}()

	if err := encode(file, report, cfg.Pretty); err != nil {
		return err
	}
	logger.Get().Info(ctx, "report saved to file", logger.String("filename", cfg.Output))
	return nil
}

func encode(w io.Writer, report *model.Report, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	log.Info(ctx, "final statistics",
		logger.Int("countries", stats.Countries),
		logger.Int("records", stats.Records),
		logger.Int("sports", stats.Sports),
		logger.Int("totalMedals", stats.TotalMedals),
		logger.Int("issues", stats.Issues),
		logger.String("duration", stats.Duration.String()))
}
