package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/offlinesync/internal/client/storage"
)

// ControlValue returns a run-time counter stored in requestcontrol.
// ok is false when the key was never written.
func (t *Tx) ControlValue(ctx context.Context, key string) (value int64, ok bool, err error) {
	err = t.tx.QueryRowContext(ctx,
		"SELECT controlvalue FROM requestcontrol WHERE controlkey = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read control value %s: %w", key, err)
	}
	return value, true, nil
}

// SetControlValue writes a run-time counter
func (t *Tx) SetControlValue(ctx context.Context, key string, value int64) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO requestcontrol (controlkey, controlvalue) VALUES (?, ?)
		ON CONFLICT(controlkey) DO UPDATE SET controlvalue = excluded.controlvalue
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write control value %s: %w", key, err)
	}
	return nil
}

// StartSyncHistory records the start of a replay pass
func (t *Tx) StartSyncHistory(ctx context.Context, passID string, startedAt time.Time) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO synchistory (passid, status, started) VALUES (?, ?, ?)
	`, passID, string(storage.SyncStatusRunning), startedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to start sync history: %w", err)
	}
	return nil
}

// FinishSyncHistory records the outcome of a replay pass
func (t *Tx) FinishSyncHistory(ctx context.Context, entry *storage.SyncHistoryEntry) error {
	var finished any
	if entry.FinishedAt != nil {
		finished = entry.FinishedAt.UnixMilli()
	}

	result, err := t.tx.ExecContext(ctx, `
		UPDATE synchistory SET status = ?, processed = ?, skipped = ?, detail = ?, finished = ?
		WHERE passid = ?
	`, string(entry.Status), entry.Processed, entry.Skipped, entry.Detail, finished, entry.PassID)
	if err != nil {
		return fmt.Errorf("failed to finish sync history: %w", err)
	}
	return requireAffected(result, fmt.Errorf("sync pass %s not recorded", entry.PassID))
}

// SyncHistory returns the most recent passes, newest first
func (t *Tx) SyncHistory(ctx context.Context, limit int) (entries []*storage.SyncHistoryEntry, err error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, passid, status, processed, skipped, detail, started, finished
		FROM synchistory ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync history: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		entry := &storage.SyncHistoryEntry{}
		var status string
		var detail sql.NullString
		var started int64
		var finished sql.NullInt64
		if err := rows.Scan(&entry.ID, &entry.PassID, &status, &entry.Processed,
			&entry.Skipped, &detail, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan sync history: %w", err)
		}
		entry.Status = storage.SyncStatus(status)
		entry.Detail = detail.String
		entry.StartedAt = time.UnixMilli(started)
		if finished.Valid {
			ft := time.UnixMilli(finished.Int64)
			entry.FinishedAt = &ft
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
