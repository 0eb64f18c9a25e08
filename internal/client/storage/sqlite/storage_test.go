package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:", testLogger())
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newEnvelope(s *Storage, process models.ProcessType) *models.Envelope {
	return &models.Envelope{
		ID:             s.NextRequestNr(),
		Kind:           models.Kind{RequestType: models.RequestTypeRecords, ProcessType: process},
		Mode:           models.ModeOffline,
		Title:          "Edit company",
		Timestamp:      time.Now(),
		GroupRequestNr: models.NoGroup,
	}
}

func saveRequestWithRecords(t *testing.T, s *Storage, records ...*models.Record) int64 {
	t.Helper()
	ctx := context.Background()
	env := newEnvelope(s, models.ProcessEditRecord)

	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.SaveRequest(ctx, env, ""); err != nil {
			return err
		}
		for i, rec := range records {
			rec.RecordNr = i + 1
			if err := tx.InsertRecord(ctx, env.ID, rec); err != nil {
				return err
			}
			for _, f := range rec.Fields {
				if err := tx.InsertField(ctx, env.ID, rec.RecordNr, f); err != nil {
					return err
				}
			}
			for _, l := range rec.Links {
				if err := tx.InsertLink(ctx, env.ID, rec.RecordNr, l); err != nil {
					return err
				}
			}
		}
		return nil
	})
	require.NoError(t, err)
	return env.ID
}

func TestNew_CreatesSchema(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tables := []string{
		"requests", "records", "recordfields", "recordlinks",
		"documentuploads", "synchistory", "requestcontrol", "goose_db_version",
	}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}

	for _, m := range columnMigrations {
		exists, err := hasColumn(context.Background(), s.DB(), m.table, m.column)
		require.NoError(t, err)
		assert.True(t, exists, "%s.%s", m.table, m.column)
	}
}

func TestNew_MigratesLegacySchema(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// База предыдущей версии: таблица requests без добавленных позже колонок
	legacy, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		CREATE TABLE requests (
			requestnr INTEGER PRIMARY KEY,
			requesttype TEXT NOT NULL,
			processtype TEXT NOT NULL,
			mode INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			errorstack TEXT,
			errorcode INTEGER,
			serverrequestnr INTEGER,
			followuproot INTEGER,
			title TEXT,
			detail TEXT,
			imagename TEXT,
			translationkey TEXT,
			relatedinfo TEXT,
			payload TEXT,
			timestamp INTEGER NOT NULL
		)
	`)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		INSERT INTO requests (requestnr, requesttype, processtype, timestamp)
		VALUES (41, 'Records', 'EditRecord', 0)
	`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	s, err := New(ctx, dbPath, testLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	var group int64
	err = s.DB().QueryRow("SELECT grouprequestnr FROM requests WHERE requestnr = 41").Scan(&group)
	require.NoError(t, err)
	assert.Equal(t, models.NoGroup, group)

	// Старый запрос читается новым кодом, нумерация продолжается после него
	err = s.View(ctx, func(tx *Tx) error {
		env, _, err := tx.LoadRequest(ctx, 41)
		require.NoError(t, err)
		assert.Equal(t, models.ProcessEditRecord, env.Kind.ProcessType)
		assert.False(t, env.ApplicationRequest)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.NextRequestNr())
}

func TestNew_ReopenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "queue.db")

	s, err := New(ctx, dbPath, testLogger())
	require.NoError(t, err)
	saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate})
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath, testLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, int64(2), s.NextRequestNr())
}

func TestNextRequestNr_SeededFromRecords(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "crash.db")

	s, err := New(ctx, dbPath, testLogger())
	require.NoError(t, err)

	// Имитируем падение посреди записи: строка records без строки requests
	_, err = s.DB().Exec("PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	_, err = s.DB().Exec(`
		INSERT INTO records (requestnr, recordnr, infoareaid, recordid, mode)
		VALUES (17, 1, 'FI', 'FI1', 'Update')
	`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath, testLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, int64(18), s.NextRequestNr())
}

func TestSaveRequest_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	root := int64(7)
	serverNr := int64(99)
	env := newEnvelope(s, models.ProcessEditRecord)
	env.Detail = "Acme"
	env.RelatedInfo = map[string]string{"source": "calendar"}
	env.FollowUpRoot = &root
	env.ServerRequestNr = &serverNr
	env.AppVersion = "1.2.3"
	env.ApplicationRequest = true

	err := s.Update(ctx, func(tx *Tx) error {
		// повтор внутри той же транзакции не создает дубликат
		if err := tx.SaveRequest(ctx, env, `{"k":"v"}`); err != nil {
			return err
		}
		return tx.SaveRequest(ctx, env, `{"k":"v"}`)
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx *Tx) error {
		loaded, payload, err := tx.LoadRequest(ctx, env.ID)
		require.NoError(t, err)
		assert.Equal(t, env.ID, loaded.ID)
		assert.Equal(t, env.Kind, loaded.Kind)
		assert.Equal(t, env.Mode, loaded.Mode)
		assert.Equal(t, env.Title, loaded.Title)
		assert.Equal(t, env.Detail, loaded.Detail)
		assert.Equal(t, env.RelatedInfo, loaded.RelatedInfo)
		assert.Equal(t, root, *loaded.FollowUpRoot)
		assert.Equal(t, serverNr, *loaded.ServerRequestNr)
		assert.Equal(t, "1.2.3", loaded.AppVersion)
		assert.True(t, loaded.ApplicationRequest)
		assert.Equal(t, env.Timestamp.UnixMilli(), loaded.Timestamp.UnixMilli())
		assert.Equal(t, `{"k":"v"}`, payload)
		assert.Nil(t, loaded.Error)
		return nil
	})
	require.NoError(t, err)
}

func TestLoadRequest_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.View(ctx, func(tx *Tx) error {
		_, _, err := tx.LoadRequest(ctx, 12345)
		return err
	})
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)
}

func TestUpdate_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	errWrite := errors.New("write failed")
	env := newEnvelope(s, models.ProcessEditRecord)

	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.SaveRequest(ctx, env, ""); err != nil {
			return err
		}
		for i := 1; i <= 3; i++ {
			rec := &models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate, RecordNr: i}
			if err := tx.InsertRecord(ctx, env.ID, rec); err != nil {
				return err
			}
		}
		return errWrite
	})
	assert.ErrorIs(t, err, errWrite)

	var requests, records int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM requests").Scan(&requests))
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM records").Scan(&records))
	assert.Zero(t, requests)
	assert.Zero(t, records)
}

func TestLoadRecords_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	company := &models.Record{
		InfoArea: "FI",
		RecordID: "new000000010001",
		Mode:     models.RecordModeNew,
		Options:  map[string]string{"template": "default"},
		Fields: []models.FieldChange{
			{FieldID: 2, NewValue: "Vienna"},
			{FieldID: 10001, NewValue: "Acme"},
			{FieldID: 9000, NewValue: "local note", OfflineOnly: true},
		},
	}
	person := &models.Record{
		InfoArea: "KP",
		RecordID: "new000000010002",
		Mode:     models.RecordModeNew,
		Fields:   []models.FieldChange{{FieldID: 3, OldValue: "", NewValue: "Jane"}},
		Links:    []models.LinkChange{{InfoArea: "FI", LinkID: 0, RecordID: "new000000010001"}},
	}
	nr := saveRequestWithRecords(t, s, company, person)

	err := s.View(ctx, func(tx *Tx) error {
		records, err := tx.LoadRecords(ctx, nr)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "FI", records[0].InfoArea)
		assert.Equal(t, company.Options, records[0].Options)
		require.Len(t, records[0].Fields, 3)
		assert.Equal(t, 2, records[0].Fields[0].FieldID)
		assert.False(t, records[0].Fields[1].OfflineOnly)
		assert.True(t, records[0].Fields[2].OfflineOnly)

		assert.Equal(t, person.Links, records[1].Links)
		assert.Equal(t, 2, records[1].RecordNr)
		return nil
	})
	require.NoError(t, err)
}

func TestRemapRecordID_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "new000000010001", Mode: models.RecordModeNew})
	later := saveRequestWithRecords(t, s, &models.Record{
		InfoArea: "KP",
		RecordID: "KP5",
		Mode:     models.RecordModeUpdate,
		Links:    []models.LinkChange{{InfoArea: "FI", RecordID: "new000000010001"}},
	})

	var first, second int64
	err := s.Update(ctx, func(tx *Tx) error {
		var err error
		first, err = tx.RemapRecordID(ctx, "new000000010001", "FI12345")
		if err != nil {
			return err
		}
		second, err = tx.RemapRecordID(ctx, "new000000010001", "FI12345")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), first)
	assert.Zero(t, second)

	err = s.View(ctx, func(tx *Tx) error {
		records, err := tx.LoadRecords(ctx, later)
		require.NoError(t, err)
		assert.Equal(t, "FI12345", records[0].Links[0].RecordID)
		return nil
	})
	require.NoError(t, err)
}

func TestDependencies(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "new000000010001", Mode: models.RecordModeNew})
	b := saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "new000000010001", Mode: models.RecordModeUpdate})
	c := saveRequestWithRecords(t, s, &models.Record{
		InfoArea: "KP", RecordID: "KP1", Mode: models.RecordModeUpdate,
		Links: []models.LinkChange{{InfoArea: "FI", RecordID: "new000000010001"}},
	})
	// Sync-эхо не создает зависимость
	d := saveRequestWithRecords(t, s, &models.Record{InfoArea: "MA", RecordID: "MA1", Mode: models.RecordModeSync})
	e := saveRequestWithRecords(t, s, &models.Record{InfoArea: "MA", RecordID: "MA1", Mode: models.RecordModeUpdate})

	err := s.View(ctx, func(tx *Tx) error {
		deps, err := tx.DependsOn(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, []int64{a}, deps)

		deps, err = tx.DependsOn(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, []int64{a}, deps)

		deps, err = tx.DependsOn(ctx, e)
		require.NoError(t, err)
		assert.Empty(t, deps)

		dependents, err := tx.Dependents(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, []int64{b, c}, dependents)

		dependents, err = tx.Dependents(ctx, d)
		require.NoError(t, err)
		assert.Empty(t, dependents)
		return nil
	})
	require.NoError(t, err)
}

func TestErrors_SetClearCount(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var nrs []int64
	for i := 0; i < 4; i++ {
		nrs = append(nrs, saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate}))
	}

	err := s.Update(ctx, func(tx *Tx) error {
		for _, nr := range nrs[:3] {
			if err := tx.SetRequestError(ctx, nr, &models.RequestError{Message: "rejected", Code: 12, Stack: "trace", BaseCode: 3}); err != nil {
				return err
			}
		}
		return tx.SetRequestError(ctx, nrs[3], models.BlockedError())
	})
	require.NoError(t, err)

	err = s.Update(ctx, func(tx *Tx) error {
		env, _, err := tx.LoadRequest(ctx, nrs[0])
		require.NoError(t, err)
		require.NotNil(t, env.Error)
		assert.Equal(t, "rejected", *env.Error)
		assert.Equal(t, 12, *env.ErrorCode)
		assert.Equal(t, 3, *env.BaseErrorCode)
		assert.Equal(t, "trace", *env.ErrorStack)

		count, err := tx.CountRequestsWithErrors(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		cleared, err := tx.ClearAllErrors(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), cleared)

		count, err = tx.CountRequestsWithErrors(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "blocked sentinel survives")

		return nil
	})
	require.NoError(t, err)

	err = s.Update(ctx, func(tx *Tx) error {
		return tx.SetRequestError(ctx, 999, &models.RequestError{Message: "x"})
	})
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)
}

func TestDeleteRequest_RemovesChildren(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	nr := saveRequestWithRecords(t, s, &models.Record{
		InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate,
		Fields: []models.FieldChange{{FieldID: 1, NewValue: "x"}},
		Links:  []models.LinkChange{{InfoArea: "KP", RecordID: "KP1"}},
	})
	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.SaveDocument(ctx, nr, &models.DocumentUpload{FileName: "a.pdf", Data: []byte("pdf")}); err != nil {
			return err
		}
		return tx.DeleteRequest(ctx, nr)
	})
	require.NoError(t, err)

	for _, table := range []string{"requests", "records", "recordfields", "recordlinks", "documentuploads"} {
		var count int
		require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Zero(t, count, table)
	}
}

func TestDocuments(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	inline := saveRequestWithRecords(t, s)
	backed := saveRequestWithRecords(t, s)

	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.SaveDocument(ctx, inline, &models.DocumentUpload{
			RecordID: "FI1", InfoArea: "FI", FieldID: 4, FileName: "offer.pdf",
			MimeType: "application/pdf", Data: []byte("%PDF"), Size: 4,
		}); err != nil {
			return err
		}
		return tx.SaveDocument(ctx, backed, &models.DocumentUpload{
			FileName: "video.mp4", BlobKey: "request-2", Size: 1 << 30, Data: []byte("ignored"),
		})
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx *Tx) error {
		doc, err := tx.LoadDocument(ctx, inline)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), doc.Data)
		assert.Equal(t, "application/pdf", doc.MimeType)
		assert.False(t, doc.FileBacked())

		doc, err = tx.LoadDocument(ctx, backed)
		require.NoError(t, err)
		assert.True(t, doc.FileBacked())
		assert.Empty(t, doc.Data)

		size, err := tx.DocumentSize(ctx, backed)
		require.NoError(t, err)
		assert.Equal(t, int64(1<<30), size)

		_, err = tx.LoadDocument(ctx, 777)
		assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestControlAndHistory(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.Update(ctx, func(tx *Tx) error {
		_, ok, err := tx.ControlValue(ctx, "nextserverrequestnr")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, tx.SetControlValue(ctx, "nextserverrequestnr", 5))
		require.NoError(t, tx.SetControlValue(ctx, "nextserverrequestnr", 6))
		v, ok, err := tx.ControlValue(ctx, "nextserverrequestnr")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(6), v)

		require.NoError(t, tx.StartSyncHistory(ctx, "pass-1", time.Now()))
		finished := time.Now()
		return tx.FinishSyncHistory(ctx, &storage.SyncHistoryEntry{
			PassID: "pass-1", Status: storage.SyncStatusFinished, Processed: 3, Skipped: 1, FinishedAt: &finished,
		})
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx *Tx) error {
		entries, err := tx.SyncHistory(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, storage.SyncStatusFinished, entries[0].Status)
		assert.Equal(t, 3, entries[0].Processed)
		assert.NotNil(t, entries[0].FinishedAt)
		return nil
	})
	require.NoError(t, err)
}

func TestEmptyAll(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	saveRequestWithRecords(t, s, &models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate})
	require.NoError(t, s.EmptyAll(ctx))

	err := s.View(ctx, func(tx *Tx) error {
		nrs, err := tx.RequestNumbers(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, nrs)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.NextRequestNr())
}

func TestClosedStorage(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	cleanup()

	err := s.Update(context.Background(), func(tx *Tx) error { return nil })
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
