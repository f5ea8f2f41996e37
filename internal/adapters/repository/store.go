// Package repository holds the current medal report as an immutable
// snapshot with a validity window.
//
// A snapshot is replaced wholesale by an atomic pointer swap, so readers
// never see a report that is still being assembled. Callers that find the
// snapshot stale at the same time share a single rebuild.
package repository

import (
	"context"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// Snapshot is one built report and the time it was stored.
type Snapshot struct {
	Report  *model.Report
	BuiltAt time.Time
}

// Age returns how old the snapshot is at now.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.BuiltAt)
}

// BuildFunc produces a fresh report.
type BuildFunc func(ctx context.Context) (*model.Report, error)

// Store provides access to the current report snapshot.
type Store interface {
	// Fresh returns the snapshot if one exists and is inside the TTL.
	Fresh(ctx context.Context) (Snapshot, bool)

	// Latest returns the last stored snapshot regardless of age.
	Latest(ctx context.Context) (Snapshot, bool)

	// Put replaces the snapshot with report.
	Put(ctx context.Context, report *model.Report) (Snapshot, error)

	// Load returns the fresh snapshot or rebuilds it with build.
	Load(ctx context.Context, build BuildFunc) (Snapshot, error)

	// LoadAny returns any stored snapshot, building one only when empty.
	LoadAny(ctx context.Context, build BuildFunc) (Snapshot, error)
}
