package scrape

import "time"

// Config holds the settings of one scrape run.
type Config struct {
	Output  string        // report file; empty writes to stdout
	Pretty  bool          // indent the JSON output
	Strict  bool          // fail the run when verification finds issues
	Timeout time.Duration // bound on the whole build
}

// Stats summarises a finished run.
type Stats struct {
	Countries   int
	Records     int
	Sports      int
	TotalMedals int
	Issues      int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}
