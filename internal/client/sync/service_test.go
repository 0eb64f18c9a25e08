package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlinesync/internal/client/cache"
	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/config"
	"github.com/iudanet/offlinesync/internal/models"
)

var errOffline = fmt.Errorf("connection refused: %w", models.ErrOffline)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := sqlite.New(context.Background(), ":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// syncSession отвечает синхронно: ответ выбирается по номеру вызова
func syncSession(reachability request.Reachability, respond func(call int, cs *request.ChangeSet) (*request.Result, error)) *request.SessionMock {
	var mu sync.Mutex
	call := 0
	return &request.SessionMock{
		ExecuteChangeRequestFunc: func(ctx context.Context, cs *request.ChangeSet, callback func(*request.Result, error)) {
			mu.Lock()
			n := call
			call++
			mu.Unlock()
			callback(respond(n, cs))
		},
		ReachabilityClassFunc: func() request.Reachability {
			return reachability
		},
		CurrentServerSequenceCounterFunc: func() int64 {
			return 0
		},
	}
}

func alwaysSucceed(int, *request.ChangeSet) (*request.Result, error) {
	return &request.Result{}, nil
}

func newDelegate() *DelegateMock {
	return &DelegateMock{
		RequestFinishedFunc: func(req *request.Request, result *request.Result) {},
		RequestFailedFunc:   func(req *request.Request, err error) {},
		SyncFinishedFunc:    func(result *SyncResult) {},
		SyncFailedFunc:      func(result *SyncResult, err error) {},
	}
}

func newRuntime(t *testing.T, session request.Session, cfg config.Static) *request.Runtime {
	t.Helper()
	if cfg == nil {
		cfg = config.Static{}
	}
	return request.NewRuntime(setupTestStorage(t), cache.NewMemory(), session, nil, cfg, testLogger())
}

func queue(t *testing.T, rt *request.Runtime, req *request.Request) {
	t.Helper()
	d := &request.DelegateMock{
		RequestFinishedFunc:      func(req *request.Request, result *request.Result) {},
		RequestFailedFunc:        func(req *request.Request, err error) {},
		MultiRequestFinishedFunc: func(req *request.Request) {},
	}
	rt.StartRequest(context.Background(), req, models.ModeOffline, d)
	require.Len(t, d.RequestFinishedCalls(), 1)
}

func fieldUpdate(recordID string, value string) *request.Request {
	return request.NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "FI", RecordID: recordID, Mode: models.RecordModeUpdate,
			Fields: []models.FieldChange{{FieldID: 1, NewValue: value}}})
}

func pendingCount(t *testing.T, rt *request.Runtime) int {
	t.Helper()
	var count int
	require.NoError(t, rt.Store().View(context.Background(), func(tx *sqlite.Tx) error {
		var err error
		count, err = tx.CountRequests(context.Background())
		return err
	}))
	return count
}

func history(t *testing.T, rt *request.Runtime) []*storage.SyncHistoryEntry {
	t.Helper()
	var entries []*storage.SyncHistoryEntry
	require.NoError(t, rt.Store().View(context.Background(), func(tx *sqlite.Tx) error {
		var err error
		entries, err = tx.SyncHistory(context.Background(), 10)
		return err
	}))
	return entries
}

func sentRequestNrs(session *request.SessionMock) []int64 {
	var nrs []int64
	for _, call := range session.ExecuteChangeRequestCalls() {
		nrs = append(nrs, call.Cs.RequestNr)
	}
	return nrs
}

func TestSync_EmptyQueue(t *testing.T) {
	session := syncSession(request.ReachabilityWiFi, alwaysSucceed)
	rt := newRuntime(t, session, nil)
	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()

	assert.Equal(t, StateIdle, svc.State())
	assert.True(t, svc.Sync(context.Background(), d))

	require.Len(t, d.SyncFinishedCalls(), 1)
	assert.Equal(t, 0, d.SyncFinishedCalls()[0].Result.Processed)
	assert.Empty(t, session.ExecuteChangeRequestCalls())
	assert.Equal(t, StateFinished, svc.State())
	assert.False(t, svc.IsSyncing())
}

func TestSync_DispatchesInCreationOrder(t *testing.T) {
	ctx := context.Background()
	session := syncSession(request.ReachabilityWiFi, alwaysSucceed)
	rt := newRuntime(t, session, nil)
	for _, id := range []string{"FI1", "FI2", "FI3"} {
		queue(t, rt, fieldUpdate(id, "v"))
	}

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	assert.Equal(t, []int64{1, 2, 3}, sentRequestNrs(session))
	assert.Len(t, d.RequestFinishedCalls(), 3)
	require.Len(t, d.SyncFinishedCalls(), 1)
	assert.Empty(t, d.SyncFailedCalls())

	result := d.SyncFinishedCalls()[0].Result
	assert.Equal(t, 3, result.Processed)
	assert.NotEmpty(t, result.PassID)
	assert.Equal(t, 0, pendingCount(t, rt))

	entries := history(t, rt)
	require.Len(t, entries, 1)
	assert.Equal(t, result.PassID, entries[0].PassID)
	assert.Equal(t, storage.SyncStatusFinished, entries[0].Status)
	assert.Equal(t, 3, entries[0].Processed)
	assert.NotNil(t, entries[0].FinishedAt)
}

func TestSync_OfflineHaltsPass(t *testing.T) {
	ctx := context.Background()
	session := syncSession(request.ReachabilityWiFi, func(call int, cs *request.ChangeSet) (*request.Result, error) {
		if call == 0 {
			return &request.Result{}, nil
		}
		return nil, errOffline
	})
	rt := newRuntime(t, session, nil)
	for _, id := range []string{"FI1", "FI2", "FI3"} {
		queue(t, rt, fieldUpdate(id, "v"))
	}

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	assert.Equal(t, []int64{1, 2}, sentRequestNrs(session))
	require.Len(t, d.SyncFailedCalls(), 1)
	assert.Empty(t, d.SyncFinishedCalls())
	assert.True(t, models.IsOffline(d.SyncFailedCalls()[0].Err))
	assert.Equal(t, 1, d.SyncFailedCalls()[0].Result.Processed)

	assert.Equal(t, 2, pendingCount(t, rt))
	assert.Equal(t, StateFailed, svc.State())
	assert.False(t, svc.IsSyncing())

	entries := history(t, rt)
	require.Len(t, entries, 1)
	assert.Equal(t, storage.SyncStatusFailed, entries[0].Status)
	assert.Contains(t, entries[0].Detail, "connection refused")
}

func TestSync_RejectionAdvances(t *testing.T) {
	ctx := context.Background()
	session := syncSession(request.ReachabilityWiFi, func(call int, cs *request.ChangeSet) (*request.Result, error) {
		if cs.RequestNr == 1 {
			return nil, &models.RequestError{Message: "invalid value", Code: 12}
		}
		return &request.Result{}, nil
	})
	rt := newRuntime(t, session, nil)
	queue(t, rt, fieldUpdate("FI1", "a"))
	queue(t, rt, fieldUpdate("FI2", "b"))

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	assert.Equal(t, []int64{1, 2}, sentRequestNrs(session))
	assert.Len(t, d.RequestFailedCalls(), 1)
	require.Len(t, d.SyncFinishedCalls(), 1)
	result := d.SyncFinishedCalls()[0].Result
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)

	// отклоненный запрос остается с ошибкой и пропускается следующим проходом
	assert.Equal(t, 1, pendingCount(t, rt))
	again := newDelegate()
	require.True(t, svc.Sync(ctx, again))
	require.Len(t, again.SyncFinishedCalls(), 1)
	assert.Equal(t, 1, again.SyncFinishedCalls()[0].Result.Skipped)
	assert.Len(t, session.ExecuteChangeRequestCalls(), 2)
}

func TestSync_SkipsDependentsOfFailedRequest(t *testing.T) {
	ctx := context.Background()
	session := syncSession(request.ReachabilityWiFi, alwaysSucceed)
	rt := newRuntime(t, session, nil)
	queue(t, rt, fieldUpdate("FI1", "a"))
	queue(t, rt, fieldUpdate("FI1", "b"))
	queue(t, rt, fieldUpdate("FI2", "c"))

	require.NoError(t, rt.Store().Update(ctx, func(tx *sqlite.Tx) error {
		return tx.SetRequestError(ctx, 1, &models.RequestError{Message: "locked", Code: 3})
	}))

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	// 1 - с ошибкой, 2 зависит от 1
	assert.Equal(t, []int64{3}, sentRequestNrs(session))
	require.Len(t, d.SyncFinishedCalls(), 1)
	result := d.SyncFinishedCalls()[0].Result
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 2, pendingCount(t, rt))
}

func TestSync_MultiRequestWaitsForChildDependencies(t *testing.T) {
	ctx := context.Background()

	t.Run("child edits record of failed request", func(t *testing.T) {
		session := syncSession(request.ReachabilityWiFi, alwaysSucceed)
		rt := newRuntime(t, session, nil)
		queue(t, rt, fieldUpdate("FI1", "a"))
		queue(t, rt, request.NewMulti(models.ModeOffline, fieldUpdate("FI1", "b")))

		require.NoError(t, rt.Store().Update(ctx, func(tx *sqlite.Tx) error {
			return tx.SetRequestError(ctx, 1, &models.RequestError{Message: "locked", Code: 3})
		}))

		svc := NewService(rt, config.Static{}, testLogger())
		d := newDelegate()
		require.True(t, svc.Sync(ctx, d))

		assert.Empty(t, sentRequestNrs(session))
		require.Len(t, d.SyncFinishedCalls(), 1)
		assert.Equal(t, 2, d.SyncFinishedCalls()[0].Result.Skipped)
		assert.Equal(t, 2, pendingCount(t, rt))
	})

	t.Run("children editing the same record", func(t *testing.T) {
		session := syncSession(request.ReachabilityWiFi, alwaysSucceed)
		rt := newRuntime(t, session, nil)
		queue(t, rt, request.NewMulti(models.ModeOffline,
			fieldUpdate("FI5", "a"),
			fieldUpdate("FI5", "b"),
		))

		svc := NewService(rt, config.Static{}, testLogger())
		d := newDelegate()
		require.True(t, svc.Sync(ctx, d))

		assert.Len(t, sentRequestNrs(session), 2)
		require.Len(t, d.SyncFinishedCalls(), 1)
		assert.Equal(t, 0, d.SyncFinishedCalls()[0].Result.Skipped)
		assert.Equal(t, 0, pendingCount(t, rt))
	})
}

func TestSync_LargeUploadWaitsForWLAN(t *testing.T) {
	ctx := context.Background()
	cfg := config.Static{config.KeyMaxCellularUploadBytes: "4"}

	tests := []struct {
		name         string
		reachability request.Reachability
		wantSent     int
		wantSkipped  int
	}{
		{name: "cellular", reachability: request.ReachabilityCellular, wantSent: 0, wantSkipped: 1},
		{name: "wifi", reachability: request.ReachabilityWiFi, wantSent: 1, wantSkipped: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := syncSession(tt.reachability, alwaysSucceed)
			rt := newRuntime(t, session, cfg)
			queue(t, rt, request.NewDocumentUpload(models.ModeOffline, &models.DocumentUpload{
				InfoArea: "FI",
				RecordID: "FI1",
				FileName: "scan.pdf",
				Data:     []byte("more than four bytes"),
			}))

			svc := NewService(rt, cfg, testLogger())
			d := newDelegate()
			require.True(t, svc.Sync(ctx, d))

			assert.Len(t, session.ExecuteChangeRequestCalls(), tt.wantSent)
			require.Len(t, d.SyncFinishedCalls(), 1)
			assert.Equal(t, tt.wantSkipped, d.SyncFinishedCalls()[0].Result.Skipped)
		})
	}
}

func TestSync_AsyncSessionIsNotReentrant(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var callbacks []func(*request.Result, error)
	session := &request.SessionMock{
		ExecuteChangeRequestFunc: func(ctx context.Context, cs *request.ChangeSet, callback func(*request.Result, error)) {
			mu.Lock()
			defer mu.Unlock()
			callbacks = append(callbacks, callback)
		},
		ReachabilityClassFunc: func() request.Reachability {
			return request.ReachabilityWiFi
		},
		CurrentServerSequenceCounterFunc: func() int64 {
			return 0
		},
	}
	takeCallback := func() func(*request.Result, error) {
		mu.Lock()
		defer mu.Unlock()
		require.NotEmpty(t, callbacks)
		cb := callbacks[0]
		callbacks = callbacks[1:]
		return cb
	}

	rt := newRuntime(t, session, nil)
	queue(t, rt, fieldUpdate("FI1", "a"))
	queue(t, rt, fieldUpdate("FI2", "b"))

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	// первый запрос в полете, второй проход не запускается
	assert.True(t, svc.IsSyncing())
	assert.Equal(t, StateAdvancing, svc.State())
	assert.False(t, svc.Sync(ctx, newDelegate()))
	assert.Len(t, session.ExecuteChangeRequestCalls(), 1)

	takeCallback()(&request.Result{}, nil)
	assert.Len(t, session.ExecuteChangeRequestCalls(), 2)
	assert.Empty(t, d.SyncFinishedCalls())

	takeCallback()(&request.Result{}, nil)
	require.Len(t, d.SyncFinishedCalls(), 1)
	assert.Equal(t, 2, d.SyncFinishedCalls()[0].Result.Processed)
	assert.False(t, svc.IsSyncing())
	assert.Equal(t, 0, pendingCount(t, rt))
}

func TestSync_ResyncFlag(t *testing.T) {
	ctx := context.Background()
	session := syncSession(request.ReachabilityWiFi, func(call int, cs *request.ChangeSet) (*request.Result, error) {
		if cs.RequestNr == 1 {
			return &request.Result{RecordIDs: map[string]string{"new000000010001": "FI500"}}, nil
		}
		return &request.Result{}, nil
	})
	rt := newRuntime(t, session, nil)
	queue(t, rt, request.NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "FI", Mode: models.RecordModeNew,
			Fields: []models.FieldChange{{FieldID: 1, NewValue: "Acme"}}}))
	queue(t, rt, request.NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "KP", RecordID: "KP1", Mode: models.RecordModeUpdate,
			Links: []models.LinkChange{{InfoArea: "FI", RecordID: "new000000010001"}}}))

	svc := NewService(rt, config.Static{}, testLogger())
	d := newDelegate()
	require.True(t, svc.Sync(ctx, d))

	require.Len(t, d.SyncFinishedCalls(), 1)
	result := d.SyncFinishedCalls()[0].Result
	assert.True(t, result.Resync)
	assert.Equal(t, 2, result.Processed)

	calls := session.ExecuteChangeRequestCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "FI500", calls[1].Cs.Records[0].Links[0].RecordID)
}
