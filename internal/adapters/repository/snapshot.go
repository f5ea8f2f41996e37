package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/pkg/metrics"
)

// DefaultTTL is how long a report is served before a rebuild.
const DefaultTTL = 5 * time.Minute

const rebuildKey = "report"

// SnapshotStore is the in-memory Store.
type SnapshotStore struct {
	snapshot atomic.Pointer[Snapshot]
	group    singleflight.Group

	ttl time.Duration
	now func() time.Time
}

var _ Store = (*SnapshotStore)(nil)

// NewSnapshotStore creates an empty store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the configured validity window.
func (s *SnapshotStore) TTL() time.Duration { return s.ttl }

// Fresh returns the snapshot if one exists and is inside the TTL.
func (s *SnapshotStore) Fresh(_ context.Context) (Snapshot, bool) {
	cur := s.snapshot.Load()
	if cur == nil || cur.Age(s.now()) >= s.ttl {
		return Snapshot{}, false
	}
	return *cur, true
}

// Latest returns the last stored snapshot regardless of age.
func (s *SnapshotStore) Latest(_ context.Context) (Snapshot, bool) {
	cur := s.snapshot.Load()
	if cur == nil {
		return Snapshot{}, false
	}
	return *cur, true
}

// Put replaces the snapshot with report.
func (s *SnapshotStore) Put(_ context.Context, report *model.Report) (Snapshot, error) {
	if report == nil {
		return Snapshot{}, ErrNilReport
	}
	snap := &Snapshot{Report: report, BuiltAt: s.now()}
	s.snapshot.Store(snap)
	metrics.UpdateSnapshotLastUnix(snap.BuiltAt.Unix())
	return *snap, nil
}

// Load returns the fresh snapshot or rebuilds it. Concurrent callers that
// miss share one call to build. A failed build leaves the old snapshot in
// place and returns the error.
func (s *SnapshotStore) Load(ctx context.Context, build BuildFunc) (Snapshot, error) {
	if snap, ok := s.Fresh(ctx); ok {
		metrics.RecordSnapshotHit()
		return snap, nil
	}
	metrics.RecordSnapshotMiss()
	return s.rebuild(ctx, build)
}

// LoadAny returns any stored snapshot, building one only when the store
// is empty.
func (s *SnapshotStore) LoadAny(ctx context.Context, build BuildFunc) (Snapshot, error) {
	if snap, ok := s.Latest(ctx); ok {
		metrics.RecordSnapshotHit()
		return snap, nil
	}
	metrics.RecordSnapshotMiss()
	return s.rebuild(ctx, build)
}

// Refresh rebuilds unconditionally, joining a rebuild already in flight.
func (s *SnapshotStore) Refresh(ctx context.Context, build BuildFunc) (Snapshot, error) {
	return s.rebuild(ctx, build)
}

func (s *SnapshotStore) rebuild(ctx context.Context, build BuildFunc) (Snapshot, error) {
	const op = "repository.snapshot.rebuild"

	if build == nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, ErrNilBuild)
	}
	v, err, _ := s.group.Do(rebuildKey, func() (any, error) {
		report, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return s.Put(ctx, report)
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}
	return v.(Snapshot), nil
}
