package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/queue"
	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/worker"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

// recorder logs sleeps and tasks in the order they happen.
type recorder struct {
	mu    sync.Mutex
	steps []string
	slept []time.Duration
}

func (r *recorder) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	r.steps = append(r.steps, "sleep")
	r.slept = append(r.slept, d)
	return nil
}

func (r *recorder) task(name string) worker.Task {
	return func(_ context.Context, i int) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.steps = append(r.steps, name+string(rune('0'+i)))
	}
}

func TestSequencer(t *testing.T) {
	Convey("Given a sequencer with a recording sleeper", t, func() {
		rec := &recorder{}
		seq := worker.NewSequencer(
			worker.WithDelay(300*time.Millisecond),
			worker.WithSleeper(rec),
		)
		So(seq.Delay(), ShouldEqual, 300*time.Millisecond)

		Convey("When three tasks run", func() {
			n, err := seq.Run(context.Background(), 3, rec.task("t"))

			Convey("Then pauses sit strictly between tasks", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)
				So(rec.steps, ShouldResemble, []string{"t0", "sleep", "t1", "sleep", "t2"})
				So(rec.slept, ShouldResemble, []time.Duration{300 * time.Millisecond, 300 * time.Millisecond})
			})
		})

		Convey("When a single task runs", func() {
			n, err := seq.Run(context.Background(), 1, rec.task("t"))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
			So(rec.steps, ShouldResemble, []string{"t0"})
		})

		Convey("When there is nothing to run", func() {
			n, err := seq.Run(context.Background(), 0, rec.task("t"))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
			So(rec.steps, ShouldBeEmpty)
		})

		Convey("When the context is cancelled by the first task", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			n, err := seq.Run(ctx, 3, func(_ context.Context, _ int) { cancel() })

			Convey("Then the sequence stops before the next task", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			n, err := seq.Run(ctx, 2, rec.task("t"))
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(n, ShouldEqual, 0)
			So(rec.steps, ShouldBeEmpty)
		})
	})

	Convey("Given the default timer sleeper", t, func() {
		seq := worker.NewSequencer(worker.WithDelay(5 * time.Millisecond))

		Convey("It waits between tasks", func() {
			start := time.Now()
			n, err := seq.Run(context.Background(), 3, func(context.Context, int) {})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 10*time.Millisecond)
		})
	})
}

func TestProgressConsumer(t *testing.T) {
	Convey("Given a consumer reading a progress queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(8))
		c := worker.NewProgressConsumer(q, worker.WithName("progress-test"))

		_, ok := c.Latest()
		So(ok, ShouldBeFalse)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go c.Run(ctx)

		Convey("When notifications are published", func() {
			So(q.Publish(ctx, types.StandingsProgress()), ShouldBeTrue)
			So(q.Publish(ctx, types.CountryProgress("Norway", 2, 5)), ShouldBeTrue)

			Convey("Then the latest one is kept", func() {
				deadline := time.Now().Add(time.Second)
				var p types.Progress
				for time.Now().Before(deadline) {
					if p, ok = c.Latest(); ok && p.Phase == types.PhaseCountries {
						break
					}
					time.Sleep(time.Millisecond)
				}
				So(p.Message, ShouldEqual, "Fetching Norway...")
				So(p.Current, ShouldEqual, 2)
				So(p.Total, ShouldEqual, 5)
			})
		})

		Convey("When it is shut down", func() {
			sctx, scancel := context.WithTimeout(context.Background(), time.Second)
			defer scancel()
			So(c.Shutdown(sctx), ShouldBeNil)
			So(c.Shutdown(sctx), ShouldBeNil)
		})
	})
}
