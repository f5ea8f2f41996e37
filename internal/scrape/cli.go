package scrape

import (
	"fmt"
	"io"
	"os"

	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// SetupLogging sends logs to stderr so stdout only carries the report. The
// configured level applies unless verbose forces debug.
func SetupLogging(format, level string, verbose bool) error {
	if err := logger.Init(logger.WithFormat(format), logger.WithWriter(os.Stderr)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		level = "debug"
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the scrape tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Medal Report Scraper
====================

Builds one medal report from Wikipedia and writes it as JSON.
Settings not covered by flags come from MEDALS_* variables or MEDALS_CONFIG.

Usage:
  go run ./cmd/scrape [options]

Options:
  -out string
        Output file (default: stdout)
  -pretty
        Indent the JSON output
  -strict
        Exit non-zero when the report fails verification
  -timeout duration
        Bound on the whole build (default 10m)
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  # Print the report
  go run ./cmd/scrape -pretty

  # Save it without the pause between country pages
  MEDALS_REQUEST_DELAY_MS=0 go run ./cmd/scrape -out reports/medals.json
`)
}
