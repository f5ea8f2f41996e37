// Package queue is the bounded, non-blocking feed that carries build
// progress from the builder to its consumers.
//
// Publishing never blocks: a full or closed queue drops the notification
// and counts it, because progress is advisory and a build must not stall
// on a slow reader.
package queue

import (
	"context"
	"sync"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/metrics"
)

const defaultCapacity = 64

// Progress represents the payload type flowing through the queue.
type Progress = types.Progress

// Queue provides non-blocking publish and channel-based consume semantics.
type Queue interface {
	// Publish adds a notification. It returns false when it was dropped.
	Publish(ctx context.Context, p Progress) bool

	// Consume returns a channel that receives notifications in publish
	// order. The channel is closed when the queue is closed or ctx ends.
	Consume(ctx context.Context) <-chan Progress

	// Len returns the current number of queued notifications.
	Len() int

	// Close shuts the queue down. Further publishes are dropped.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	items    chan Progress
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(q)
	}
	q.items = make(chan Progress, q.capacity)
	return q
}

// Publish adds a notification without blocking.
func (q *InMemoryQueue) Publish(ctx context.Context, p Progress) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordProgressDropped()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}
	if ctx.Err() != nil {
		metrics.RecordProgressDropped()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	}

	select {
	case q.items <- p:
		metrics.RecordProgressPublished()
		return true
	default:
		metrics.RecordProgressDropped()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Consume returns a channel that receives notifications as they arrive.
func (q *InMemoryQueue) Consume(ctx context.Context) <-chan Progress {
	out := make(chan Progress)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-q.items:
				if !ok {
					return
				}
				select {
				case out <- p:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Len returns the current number of queued notifications.
func (q *InMemoryQueue) Len() int {
	return len(q.items)
}

// Close shuts the queue down. It is safe to call more than once.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.items)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
