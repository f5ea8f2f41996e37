package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/queue"
	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/worker"
	"github.com/ryanmarc/olympic-dashboard/internal/adapters/repository"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

const (
	defaultProgressQueueSize = 64
	shutdownTimeout          = 5 * time.Second
)

// ReportBuilder produces a complete report.
type ReportBuilder interface {
	Build(ctx context.Context, onProgress types.ProgressFunc) (*model.Report, error)
}

// Service serves the cached report to the HTTP API and keeps it fresh.
type Service struct {
	mu sync.Mutex

	// Core components
	builder   ReportBuilder
	store     *repository.SnapshotStore
	progress  *queue.InMemoryQueue
	consumer  *worker.ProgressConsumer
	scheduler *gocron.Scheduler

	// Configuration
	ttl             time.Duration
	refreshInterval time.Duration
	queueSize       int
	now             func() time.Time

	// State
	building atomic.Bool
	started  bool
	stopped  bool
	cancel   context.CancelFunc

	logger logger.Logger
}

// New constructs a Service around builder.
func New(builder ReportBuilder, opts ...Option) *Service {
	s := &Service{
		builder:   builder,
		ttl:       repository.DefaultTTL,
		queueSize: defaultProgressQueueSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.store = repository.NewSnapshotStore(
		repository.WithTTL(s.ttl),
		repository.WithClock(s.now),
	)
	s.progress = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.consumer = worker.NewProgressConsumer(s.progress,
		worker.WithLogger(s.logger.Named("progress")),
	)
	return s
}

// Start runs the progress consumer and, when configured, the periodic
// refresh. The first refresh runs immediately.
func (s *Service) Start(ctx context.Context) error {
	const op = "app.service.start"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fmt.Errorf("%s: %w", op, ErrServiceStopped)
	}
	if s.started {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go s.consumer.Run(runCtx)

	if s.refreshInterval > 0 {
		sched := gocron.NewScheduler(time.UTC)
		sched.SingletonModeAll()
		if _, err := sched.Every(s.refreshInterval).Do(s.refresh, runCtx); err != nil {
			cancel()
			return fmt.Errorf("%s: schedule refresh: %w", op, err)
		}
		sched.StartAsync()
		s.scheduler = sched
	}

	s.cancel = cancel
	s.started = true
	s.logger.Info(ctx, "medal service started",
		logger.Duration("cacheTtl", s.ttl),
		logger.Duration("refreshInterval", s.refreshInterval),
		logger.Int("progressQueueSize", s.queueSize),
	)
	return nil
}

// Stop halts background work. A stopped service still serves its last
// snapshot but cannot be started again.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	if !s.started {
		_ = s.progress.Close()
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping medal service...")

	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	s.cancel()

	sctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := s.consumer.Shutdown(sctx); err != nil {
		s.logger.Warn(ctx, "progress consumer did not stop", logger.Error(err))
	}
	_ = s.progress.Close()

	s.started = false
	s.logger.Info(ctx, "medal service stopped")
}

// Report returns the current report, rebuilding it when the snapshot is
// stale. A rebuild started by a request outlives that request.
func (s *Service) Report(ctx context.Context) (*model.Report, error) {
	const op = "app.service.report"

	snap, err := s.store.Load(context.WithoutCancel(ctx), s.build)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, unavailable(err))
	}
	return snap.Report, nil
}

// Country returns one country's detail from the last built report,
// whatever its age, building one only when none exists.
func (s *Service) Country(ctx context.Context, codeOrName string) (model.CountryDetail, error) {
	const op = "app.service.country"

	snap, err := s.store.LoadAny(context.WithoutCancel(ctx), s.build)
	if err != nil {
		return model.CountryDetail{}, fmt.Errorf("%s: %w", op, unavailable(err))
	}
	detail, ok := model.ResolveCountry(snap.Report, codeOrName)
	if !ok {
		return model.CountryDetail{}, fmt.Errorf("%s: %q: %w", op, codeOrName, ErrCountryNotFound)
	}
	return detail, nil
}

// Status reports whether a build is running and its latest progress.
func (s *Service) Status(_ context.Context) types.BuildStatus {
	st := types.BuildStatus{Building: s.building.Load()}
	if p, ok := s.consumer.Latest(); ok {
		st.Progress = &p
	}
	return st
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":           started,
		"building":          s.building.Load(),
		"cacheTtlMs":        s.ttl.Milliseconds(),
		"refreshIntervalMs": s.refreshInterval.Milliseconds(),
		"progressQueued":    s.progress.Len(),
	}
	if snap, ok := s.store.Latest(ctx); ok {
		stats["buildId"] = snap.Report.BuildID
		stats["snapshotAgeMs"] = snap.Age(s.now()).Milliseconds()
		stats["countries"] = len(snap.Report.Countries)
		stats["records"] = len(snap.Report.Athletes)
		stats["totalMedals"] = snap.Report.TotalMedals
	}
	return stats
}

func (s *Service) refresh(ctx context.Context) {
	if _, err := s.store.Refresh(ctx, s.build); err != nil {
		s.logger.Warn(ctx, "scheduled refresh failed", logger.Error(err))
	}
}

func (s *Service) build(ctx context.Context) (*model.Report, error) {
	s.building.Store(true)
	defer s.building.Store(false)

	return s.builder.Build(ctx, func(p types.Progress) {
		s.progress.Publish(ctx, p)
	})
}

func unavailable(err error) error {
	if errors.Is(err, ErrReportUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrReportUnavailable, err)
}
