package worker

import (
	"time"

	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// Option applies a configuration option to the ProgressConsumer.
type Option func(*ProgressConsumer)

// WithName sets the consumer name used for logging.
func WithName(name string) Option {
	return func(c *ProgressConsumer) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets a custom logger for the consumer.
func WithLogger(l logger.Logger) Option {
	return func(c *ProgressConsumer) {
		if l != nil {
			c.logger = l
		}
	}
}

// SequencerOption applies a configuration option to the Sequencer.
type SequencerOption func(*Sequencer)

// WithDelay sets the pause between tasks. Negative values are ignored.
func WithDelay(d time.Duration) SequencerOption {
	return func(s *Sequencer) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithSleeper replaces the timer used for pauses.
func WithSleeper(sl Sleeper) SequencerOption {
	return func(s *Sequencer) {
		if sl != nil {
			s.sleeper = sl
		}
	}
}

// WithSequencerLogger sets a custom logger for the sequencer.
func WithSequencerLogger(l logger.Logger) SequencerOption {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}
