package store

import (
	"context"
	"time"

	"github.com/abhisek/geoquiz/internal/quiz"
)

// Snapshot is a saved quiz position.
type Snapshot struct {
	ID        int
	SessionID string
	Bank      string // bank fingerprint the position belongs to
	Timestamp time.Time
	Data      quiz.Snapshot
}

// SnapshotRepo manages suspended quiz positions.
type SnapshotRepo interface {
	// Save stores a new snapshot and sets its ID.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for the given bank fingerprint,
	// or nil if none exist. An empty fingerprint matches any bank.
	Latest(ctx context.Context, bank string) (*Snapshot, error)

	// List returns up to limit snapshots, newest first. A limit of 0 or less
	// returns all of them.
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}
