package storage

import "time"

// SyncStatus - итог прохода синхронизации
type SyncStatus string

const (
	SyncStatusRunning  SyncStatus = "running"
	SyncStatusFinished SyncStatus = "finished"
	SyncStatusFailed   SyncStatus = "failed"
)

// SyncHistoryEntry represents one replay pass recorded in synchistory
type SyncHistoryEntry struct {
	StartedAt  time.Time
	FinishedAt *time.Time
	PassID     string
	Status     SyncStatus
	Detail     string
	ID         int64
	Processed  int
	Skipped    int
}
