package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo with the ent SQL builder.
type snapshotRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	query, args := builder().Insert(snapshotsTable).
		Columns(colSessionID, colBank, colTakenAt, colData).
		Values(snap.SessionID, snap.Bank, snap.Timestamp.UnixMilli(), string(data)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}
	snap.ID = int(id)
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, bank string) (*Snapshot, error) {
	sel := selectSnapshots().Limit(1)
	if bank != "" {
		sel = sel.Where(entsql.EQ(colBank, bank))
	}
	query, args := sel.Query()

	snap, err := scanSnapshot(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return snap, nil
}

func (r *snapshotRepo) List(ctx context.Context, limit int) ([]Snapshot, error) {
	sel := selectSnapshots()
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, *snap)
	}
	return out, rows.Err()
}

// selectSnapshots selects every snapshot column, newest first.
func selectSnapshots() *entsql.Selector {
	return builder().Select(colID, colSessionID, colBank, colTakenAt, colData).
		From(entsql.Table(snapshotsTable)).
		OrderBy(entsql.Desc(colID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var (
		snap    Snapshot
		takenAt int64
		data    string
	)
	if err := row.Scan(&snap.ID, &snap.SessionID, &snap.Bank, &takenAt, &data); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	snap.Timestamp = time.UnixMilli(takenAt)
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the ID threshold: the newest snapshot that falls outside keep.
	query, args := builder().Select(colID).
		From(entsql.Table(snapshotsTable)).
		OrderBy(entsql.Desc(colID)).
		Offset(keep).
		Limit(1).
		Query()

	var threshold int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil // fewer than keep snapshots exist
		}
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	query, args = builder().Delete(snapshotsTable).
		Where(entsql.LTE(colID, threshold)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Clear(ctx context.Context) (int64, error) {
	query, args := builder().Delete(snapshotsTable).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear snapshots: %w", err)
	}
	return res.RowsAffected()
}
