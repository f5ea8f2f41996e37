package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
	"github.com/ryanmarc/olympic-dashboard/pkg/metrics"
)

// Source defines how the consumer receives progress notifications.
type Source interface {
	Consume(ctx context.Context) <-chan types.Progress
}

// ProgressConsumer drains progress notifications, logs them, mirrors them
// into metrics and keeps the latest one for status queries.
type ProgressConsumer struct {
	source Source
	name   string
	logger logger.Logger

	latest atomic.Pointer[types.Progress]

	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}
}

// NewProgressConsumer creates a consumer over source.
func NewProgressConsumer(source Source, opts ...Option) *ProgressConsumer {
	c := &ProgressConsumer{
		source:   source,
		name:     "progress",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named(c.name)
	}
	return c
}

// Run consumes until ctx is done, Shutdown is called or the source closes.
func (c *ProgressConsumer) Run(ctx context.Context) {
	defer close(c.done)

	ch := c.source.Consume(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.shutdown:
			return
		case p, ok := <-ch:
			if !ok {
				return
			}
			c.handle(ctx, p)
		}
	}
}

func (c *ProgressConsumer) handle(ctx context.Context, p types.Progress) {
	c.latest.Store(&p)
	if p.Phase == types.PhaseCountries {
		metrics.UpdateBuildProgress(p.Current, p.Total)
	}
	c.logger.Debug(ctx, p.Message,
		logger.String("phase", string(p.Phase)),
		logger.Int("current", p.Current),
		logger.Int("total", p.Total),
	)
}

// Latest returns the most recent notification, if any arrived.
func (c *ProgressConsumer) Latest() (types.Progress, bool) {
	p := c.latest.Load()
	if p == nil {
		return types.Progress{}, false
	}
	return *p, true
}

// Shutdown stops the consumer and waits for Run to return.
func (c *ProgressConsumer) Shutdown(ctx context.Context) error {
	c.shutdownOnce.Do(func() { close(c.shutdown) })

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		c.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
