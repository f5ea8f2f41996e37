// Package worker runs the background pieces of a report build: the paced
// sequencer that walks per-country fetches one at a time, and the consumer
// that drains build progress off the queue.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// DefaultDelay is the pause between consecutive sequenced tasks.
const DefaultDelay = time.Second

// Sleeper waits for d or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f.
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Task is one unit of sequenced work. i is its zero-based position.
type Task func(ctx context.Context, i int)

// Sequencer runs tasks strictly one after another with a fixed pause
// between them. No pause precedes the first task or follows the last.
type Sequencer struct {
	delay   time.Duration
	sleeper Sleeper
	logger  logger.Logger
}

// NewSequencer creates a sequencer with configuration options.
func NewSequencer(opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		delay:   DefaultDelay,
		sleeper: timerSleeper{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("sequencer")
	}
	return s
}

// Delay returns the configured pause between tasks.
func (s *Sequencer) Delay() time.Duration { return s.delay }

// Run executes task for i in [0, n). It stops early when ctx is done and
// returns how many tasks completed along with the context error.
func (s *Sequencer) Run(ctx context.Context, n int, task Task) (int, error) {
	const op = "worker.sequencer.run"

	done := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
				s.logger.Warn(ctx, "sequence interrupted",
					logger.Int("completed", done),
					logger.Int("total", n),
				)
				return done, fmt.Errorf("%s: %w", op, err)
			}
		} else if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		task(ctx, i)
		done++
	}
	return done, nil
}
