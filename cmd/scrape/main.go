package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/wiki"
	app "github.com/ryanmarc/olympic-dashboard/internal/app"
	"github.com/ryanmarc/olympic-dashboard/internal/config"
	"github.com/ryanmarc/olympic-dashboard/internal/scrape"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

const defaultTimeout = 10 * time.Minute

func main() {
	os.Exit(run())
}

func run() int {
	var (
		output  = flag.String("out", "", "Output file for the report (default: stdout)")
		pretty  = flag.Bool("pretty", false, "Indent the JSON output")
		strict  = flag.Bool("strict", false, "Exit non-zero when the report fails verification")
		timeout = flag.Duration("timeout", defaultTimeout, "Bound on the whole build")
		verbose = flag.Bool("verbose", false, "Enable debug logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		scrape.ShowHelp(os.Stdout)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := scrape.SetupLogging(cfg.LogFormat, cfg.LogLevel, *verbose); err != nil {
		os.Stderr.WriteString("failed to setup logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	client := wiki.NewClient(
		wiki.WithAPIURL(cfg.APIURL),
		wiki.WithUserAgent(cfg.UserAgent),
		wiki.WithTimeout(cfg.FetchTimeout()),
		wiki.WithLogger(log.Named("wiki")),
	)
	opts, err := app.BuilderOptions(cfg, log)
	if err != nil {
		log.Error(ctx, "invalid configuration", logger.Error(err))
		return 1
	}

	runCfg := &scrape.Config{
		Output:  *output,
		Pretty:  *pretty,
		Strict:  *strict,
		Timeout: *timeout,
	}
	if _, err := scrape.Run(ctx, runCfg, app.NewBuilder(client, opts...), os.Stdout); err != nil {
		log.Error(ctx, "scrape failed", logger.Error(err))
		return 1
	}
	return 0
}
