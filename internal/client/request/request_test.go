package request

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/models"
)

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

func TestVariantFor(t *testing.T) {
	tests := []struct {
		name        string
		kind        models.Kind
		wantProcess models.ProcessType
		wantPayload Payload
	}{
		{
			name:        "known process",
			kind:        models.Kind{RequestType: models.RequestTypeRecords, ProcessType: models.ProcessSerialEntry},
			wantProcess: models.ProcessSerialEntry,
			wantPayload: PayloadRecords,
		},
		{
			name:        "generic parameters",
			kind:        models.Kind{RequestType: models.RequestTypeGeneric, ProcessType: models.ProcessGeneric},
			wantProcess: models.ProcessGeneric,
			wantPayload: PayloadParameters,
		},
		{
			name:        "generic records",
			kind:        models.Kind{RequestType: models.RequestTypeRecords, ProcessType: models.ProcessGeneric},
			wantProcess: models.ProcessGeneric,
			wantPayload: PayloadRecords,
		},
		{
			name:        "unknown process with records",
			kind:        models.Kind{RequestType: models.RequestTypeRecords, ProcessType: "Visit"},
			wantProcess: models.ProcessGeneric,
			wantPayload: PayloadRecords,
		},
		{
			name:        "unknown process with document",
			kind:        models.Kind{RequestType: models.RequestTypeDocumentUpload, ProcessType: "Photo"},
			wantProcess: models.ProcessDocumentUpload,
			wantPayload: PayloadDocument,
		},
		{
			name:        "unknown process with children",
			kind:        models.Kind{RequestType: models.RequestTypeMulti, ProcessType: "Wizard"},
			wantProcess: models.ProcessMulti,
			wantPayload: PayloadChildren,
		},
		{
			name:        "unknown everything",
			kind:        models.Kind{RequestType: "Other", ProcessType: "Other"},
			wantProcess: models.ProcessGeneric,
			wantPayload: PayloadParameters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VariantFor(tt.kind)
			require.NotNil(t, v)
			assert.Equal(t, tt.wantProcess, v.Process)
			assert.Equal(t, tt.wantPayload, v.Payload)
		})
	}
}

func TestNewRecordRequest_MergesSameRecord(t *testing.T) {
	req := NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate,
			Fields: []models.FieldChange{{FieldID: 1, OldValue: "a", NewValue: "b"}}},
		&models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate,
			Fields: []models.FieldChange{{FieldID: 1, OldValue: "b", NewValue: "c"}}},
	)

	require.Len(t, req.Records, 1)
	f, ok := req.Records[0].Field(1)
	require.True(t, ok)
	assert.Equal(t, "a", f.OldValue)
	assert.Equal(t, "c", f.NewValue)
	assert.False(t, req.Persisted())
	assert.True(t, req.HasRecords())
	assert.False(t, req.IsMulti())
}

func TestStoreLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	mapper := capture.NewIDMapper()

	t.Run("records with placeholder", func(t *testing.T) {
		req := NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
			&models.Record{InfoArea: "FI", RecordID: "new1", Mode: models.RecordModeNew,
				Fields: []models.FieldChange{{FieldID: 2, NewValue: "Acme"}}},
			&models.Record{InfoArea: "KP", RecordID: "KP1", Mode: models.RecordModeUpdate,
				Links: []models.LinkChange{{InfoArea: "FI", RecordID: "new1"}}},
		)
		req.ID = 10
		req.RelatedInfo = map[string]string{"screen": "company"}

		require.NoError(t, s.Update(ctx, func(tx *sqlite.Tx) error {
			return req.Store(ctx, tx, mapper)
		}))

		var loaded *Request
		require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
			var err error
			loaded, err = Load(ctx, tx, 10)
			return err
		}))

		assert.Equal(t, req.Kind, loaded.Kind)
		assert.Equal(t, models.ModeOffline, loaded.Mode)
		assert.Equal(t, "company", loaded.RelatedInfo["screen"])
		require.Len(t, loaded.Records, 2)
		assert.Equal(t, "new0000000a0001", loaded.Records[0].RecordID)
		assert.Equal(t, "new0000000a0001", loaded.Records[1].Links[0].RecordID)
	})

	t.Run("settings parameters", func(t *testing.T) {
		req := NewSettings(models.ModeOffline, map[string]string{"lang": "de", "currency": "EUR"})
		req.ID = 11

		require.NoError(t, s.Update(ctx, func(tx *sqlite.Tx) error {
			return req.Store(ctx, tx, mapper)
		}))

		var loaded *Request
		require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
			var err error
			loaded, err = Load(ctx, tx, 11)
			return err
		}))
		assert.Equal(t, models.ProcessSettings, loaded.Variant.Process)
		assert.Equal(t, req.Parameters, loaded.Parameters)
	})

	t.Run("document upload", func(t *testing.T) {
		req := NewDocumentUpload(models.ModeOffline, &models.DocumentUpload{
			InfoArea: "FI",
			RecordID: "FI1",
			FileName: "offer.pdf",
			MimeType: "application/pdf",
			Data:     []byte("%PDF-1.4"),
		})
		req.ID = 12

		require.NoError(t, s.Update(ctx, func(tx *sqlite.Tx) error {
			return req.Store(ctx, tx, mapper)
		}))

		var loaded *Request
		require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
			var err error
			loaded, err = Load(ctx, tx, 12)
			return err
		}))
		require.NotNil(t, loaded.Document)
		assert.Equal(t, "offer.pdf", loaded.Document.FileName)
		assert.Equal(t, []byte("%PDF-1.4"), loaded.Document.Data)
		assert.Equal(t, int64(8), loaded.DocumentSize())
	})

	t.Run("missing request", func(t *testing.T) {
		err := s.View(ctx, func(tx *sqlite.Tx) error {
			_, err := Load(ctx, tx, 999)
			return err
		})
		assert.True(t, errors.Is(err, storage.ErrRequestNotFound))
	})
}

func TestStore_MultiRequestChildren(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	child1 := NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate,
			Fields: []models.FieldChange{{FieldID: 1, NewValue: "x"}}})
	child2 := NewSettings(models.ModeOffline, map[string]string{"k": "v"})
	root := NewMulti(models.ModeOffline, child1, child2)
	root.ID, child1.ID, child2.ID = 1, 2, 3

	require.NoError(t, s.Update(ctx, func(tx *sqlite.Tx) error {
		return root.Store(ctx, tx, nil)
	}))

	var loaded *Request
	require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
		var err error
		loaded, err = Load(ctx, tx, 1)
		return err
	}))
	require.True(t, loaded.IsMulti())
	require.Len(t, loaded.Children, 2)
	assert.Equal(t, int64(2), loaded.Children[0].ID)
	require.NotNil(t, loaded.Children[0].FollowUpRoot)
	assert.Equal(t, int64(1), *loaded.Children[0].FollowUpRoot)
	assert.Equal(t, map[string]string{"k": "v"}, loaded.Children[1].Parameters)
	assert.True(t, loaded.HasRecords())

	var topLevel []int64
	require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
		var err error
		topLevel, err = tx.RequestNumbers(ctx, true)
		return err
	}))
	assert.Equal(t, []int64{1}, topLevel)

	// удаление корня удаляет и дочерние запросы
	require.NoError(t, s.Update(ctx, func(tx *sqlite.Tx) error {
		return loaded.Delete(ctx, tx)
	}))
	require.NoError(t, s.View(ctx, func(tx *sqlite.Tx) error {
		count, err := tx.CountRequests(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		return nil
	}))
}

type dependentsMap map[int64][]int64

func (m dependentsMap) Dependents(_ context.Context, nr int64) ([]int64, error) {
	return m[nr], nil
}

func TestDependencyClosure(t *testing.T) {
	ctx := context.Background()

	t.Run("transitive with cycle", func(t *testing.T) {
		q := dependentsMap{1: {3, 2}, 2: {4}, 3: {4}, 4: {1}}

		set, err := DependencyClosure(ctx, q, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 4}, set.Numbers())
		assert.Equal(t, 3, set.Len())
		assert.True(t, set.Contains(4))
		assert.False(t, set.Contains(1))
	})

	t.Run("no dependents", func(t *testing.T) {
		set, err := DependencyClosure(ctx, dependentsMap{}, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
		assert.Empty(t, set.Numbers())
	})

	t.Run("numbers are a copy", func(t *testing.T) {
		set, err := DependencyClosure(ctx, dependentsMap{1: {2}}, 1)
		require.NoError(t, err)
		numbers := set.Numbers()
		numbers[0] = 99
		assert.True(t, set.Contains(2))
	})

	t.Run("query error", func(t *testing.T) {
		_, err := DependencyClosure(ctx, failingQuerier{}, 1)
		assert.Error(t, err)
	})
}

type failingQuerier struct{}

func (failingQuerier) Dependents(context.Context, int64) ([]int64, error) {
	return nil, errors.New("database is locked")
}

func TestExport(t *testing.T) {
	req := NewSettings(models.ModeOffline, map[string]string{"lang": "de", "currency": "EUR"})
	req.ID = 7
	req.SetError(&models.RequestError{Message: "denied", Code: models.ErrorCodeConflict})

	data, err := Export(req)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `nr="7"`)
	assert.Contains(t, out, `processType="Settings"`)
	assert.Contains(t, out, `<parameter name="currency">EUR</parameter>`)
	assert.Contains(t, out, `<parameter name="lang">de</parameter>`)
	assert.Contains(t, out, `code="-4"`)
	assert.Contains(t, out, "denied")
	// параметры отсортированы по имени
	assert.Less(t, strings.Index(out, "currency"), strings.Index(out, "lang"))
}

func TestExport_RecordsAndChildren(t *testing.T) {
	child := NewRecordRequest(models.ProcessEditRecord, models.ModeOffline,
		&models.Record{InfoArea: "FI", RecordID: "FI1", Mode: models.RecordModeUpdate,
			Fields: []models.FieldChange{{FieldID: 3, OldValue: "a", NewValue: "b"}}})
	root := NewMulti(models.ModeOffline, child)
	root.ID, child.ID = 1, 2

	data, err := Export(root)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<children>")
	assert.Contains(t, out, `recordId="FI1"`)
	assert.Contains(t, out, `fieldId="3"`)
	assert.NotContains(t, out, "<error")
}
