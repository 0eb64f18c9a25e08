package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/client/sequence"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/config"
	"github.com/iudanet/offlinesync/internal/models"
)

const defaultInlineDocumentLimit = 256 * 1024

// committer - кэш, который умеет забывать журнал подтвержденного запроса
type committer interface {
	Commit(requestNr int64)
}

type clearer interface {
	Clear()
}

// Runtime выполняет запросы очереди: сохраняет, отправляет и разбирает результат
type Runtime struct {
	store      *sqlite.Storage
	cache      RecordCache
	session    Session
	blobs      storage.BlobStorage
	config     config.Source
	logger     *slog.Logger
	sequence   *sequence.Counter
	mapper     *capture.IDMapper
	cancelled  map[int64]bool
	appVersion string
	mu         sync.Mutex
}

// NewRuntime creates a new request runtime; blobs may be nil
func NewRuntime(
	store *sqlite.Storage,
	cache RecordCache,
	session Session,
	blobs storage.BlobStorage,
	cfg config.Source,
	logger *slog.Logger,
) *Runtime {
	return &Runtime{
		store:     store,
		cache:     cache,
		session:   session,
		blobs:     blobs,
		config:    cfg,
		logger:    logger,
		sequence:  sequence.New(),
		mapper:    capture.NewIDMapper(),
		cancelled: make(map[int64]bool),
	}
}

// SetAppVersion задает версию приложения, которой помечаются новые запросы
func (r *Runtime) SetAppVersion(version string) {
	r.appVersion = version
}

// Store returns the persistent store
func (r *Runtime) Store() *sqlite.Storage {
	return r.store
}

// Session returns the server session
func (r *Runtime) Session() Session {
	return r.session
}

// Mapper returns the temporary-id mapper shared by all requests
func (r *Runtime) Mapper() *capture.IDMapper {
	return r.mapper
}

// Save сохраняет запрос в очередь одной транзакцией, присваивая id новому запросу.
// При ошибке новый запрос остается несохраненным.
func (r *Runtime) Save(ctx context.Context, req *Request) error {
	fresh := !req.Persisted()
	if fresh {
		r.assignIDs(req)
	}

	blobKeys, err := r.storeDocumentBlobs(ctx, req)
	if err != nil {
		if fresh {
			resetIDs(req)
		}
		return err
	}

	err = r.store.Update(ctx, func(tx *sqlite.Tx) error {
		return req.Store(ctx, tx, r.mapper)
	})
	if err != nil {
		r.deleteBlobs(ctx, blobKeys)
		if fresh {
			resetIDs(req)
		}
		return fmt.Errorf("failed to save request: %w", err)
	}

	r.logger.Debug("Request saved", "request_nr", req.ID, "process", req.Kind.ProcessType)
	return nil
}

// Reload перечитывает запрос nr из очереди
func (r *Runtime) Reload(ctx context.Context, nr int64) (*Request, error) {
	var req *Request
	err := r.store.View(ctx, func(tx *sqlite.Tx) error {
		var err error
		req, err = Load(ctx, tx, nr)
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ApplyToCache применяет изменения записей запроса (и дочерних) к кэшу
func (r *Runtime) ApplyToCache(ctx context.Context, req *Request) error {
	var applied []*Request
	for _, q := range req.all() {
		if len(q.Records) == 0 {
			continue
		}
		undo, err := capture.Apply(ctx, r.cache, q.ID, q.Records)
		if err != nil {
			// откатываем уже примененные дочерние запросы
			for i := len(applied) - 1; i >= 0; i-- {
				_ = applied[i].undo.Undo(ctx)
			}
			return err
		}
		q.undo = undo
		applied = append(applied, q)
	}
	return nil
}

// Enqueue сохраняет новый запрос в очередь и применяет его изменения к кэшу.
// Если кэш отказал, запрос удаляется из очереди.
func (r *Runtime) Enqueue(ctx context.Context, req *Request) error {
	if req.Persisted() {
		return fmt.Errorf("request %d is already queued", req.ID)
	}
	return r.saveAndApply(ctx, req)
}

// StartRequest выполняет запрос онлайн в режиме mode.
// Offline сохраняет запрос в очередь без отправки. Откладываемые режимы при
// включенном store_before_request сначала сохраняют запрос и применяют его к кэшу;
// при ошибке связи такой запрос остается в очереди, при отказе сервера откатывается.
func (r *Runtime) StartRequest(ctx context.Context, req *Request, mode models.RequestMode, delegate Delegate) {
	req.Mode = mode
	for _, child := range req.Children {
		child.Mode = mode
	}

	storeFirst := mode == models.ModeOffline ||
		(mode.Deferrable() && (req.IsMulti() || r.config.IsFlagSet(config.KeyStoreBeforeRequest)))

	if storeFirst && !req.Persisted() {
		if err := r.saveAndApply(ctx, req); err != nil {
			delegate.RequestFailed(req, err)
			return
		}
	}

	if mode == models.ModeOffline {
		r.logger.Info("Request queued", "request_nr", req.ID, "mode", mode)
		delegate.RequestFinished(req, &Result{Deferred: true})
		return
	}

	if req.IsMulti() {
		r.startMulti(ctx, req, delegate, true)
		return
	}

	r.execute(ctx, req, func(result *Result, err error) {
		switch {
		case err == nil:
			r.finishOnline(ctx, req, result, delegate)

		case models.IsOffline(err) && mode.Deferrable():
			if !req.Persisted() {
				if saveErr := r.saveAndApply(ctx, req); saveErr != nil {
					delegate.RequestFailed(req, errors.Join(err, saveErr))
					return
				}
			}
			r.logger.Info("Server unreachable, request queued", "request_nr", req.ID)
			delegate.RequestFinished(req, &Result{Deferred: true})

		default:
			if req.Persisted() {
				if undoErr := r.UndoRequest(ctx, req); undoErr != nil {
					err = errors.Join(err, undoErr)
				}
			}
			delegate.RequestFailed(req, err)
		}
	})
}

// StartSync отправляет сохраненный запрос из очереди.
// Без alwaysPerform запрос с ошибкой не отправляется.
func (r *Runtime) StartSync(ctx context.Context, req *Request, delegate Delegate, alwaysPerform bool) {
	if !alwaysPerform && !req.CanSync() {
		delegate.RequestFailed(req, req.StoredError())
		return
	}

	if req.IsMulti() {
		r.startMulti(ctx, req, delegate, false)
		return
	}

	r.execute(ctx, req, func(result *Result, err error) {
		if err != nil {
			if reportErr := r.ReportSyncError(ctx, req, err); reportErr != nil {
				r.logger.Error("Failed to report sync error", "request_nr", req.ID, "error", reportErr)
				err = errors.Join(err, reportErr)
			}
			delegate.RequestFailed(req, err)
			return
		}

		resync, reportErr := r.ReportSuccessfulSync(ctx, req, result)
		if reportErr != nil {
			r.logger.Error("Failed to report successful sync", "request_nr", req.ID, "error", reportErr)
			delegate.RequestFailed(req, reportErr)
			return
		}
		result.Resync = resync
		delegate.RequestFinished(req, result)
	})
}

// CancelUpload отменяет загрузку документа: запрос считается успешно выполненным
func (r *Runtime) CancelUpload(ctx context.Context, nr int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelled[nr] = true
	r.logger.Info("Upload cancelled", "request_nr", nr)
}

// Reset забывает счетчики, соответствия id и кэш, например после EmptyAll
func (r *Runtime) Reset() {
	r.sequence.Reset()
	r.mapper.Clear()
	if c, ok := r.cache.(clearer); ok {
		c.Clear()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = make(map[int64]bool)
}

// execute отправляет один запрос и вызывает callback ровно один раз
func (r *Runtime) execute(ctx context.Context, req *Request, callback func(*Result, error)) {
	if r.takeCancelled(req.ID) {
		callback(&Result{Cancelled: true}, nil)
		return
	}

	if err := r.assignServerRequestNr(ctx, req); err != nil {
		callback(nil, err)
		return
	}

	cs, err := r.changeSet(ctx, req)
	if err != nil {
		callback(nil, err)
		return
	}

	r.logger.Debug("Sending request",
		"request_nr", req.ID,
		"server_request_nr", cs.ServerRequestNr,
		"records", len(cs.Records))

	r.session.ExecuteChangeRequest(ctx, cs, func(result *Result, err error) {
		if r.takeCancelled(req.ID) {
			result, err = &Result{Cancelled: true}, nil
		}
		if err == nil && result == nil {
			result = &Result{}
		}
		callback(result, err)
	})
}

func (r *Runtime) finishOnline(ctx context.Context, req *Request, result *Result, delegate Delegate) {
	if req.Persisted() {
		resync, err := r.ReportSuccessfulSync(ctx, req, result)
		if err != nil {
			delegate.RequestFailed(req, err)
			return
		}
		result.Resync = resync
		delegate.RequestFinished(req, result)
		return
	}

	// запрос не был в очереди: изменения попадают в кэш уже подтвержденными
	records := remapRecords(req.Records, result.RecordIDs)
	if len(records) > 0 {
		if _, err := capture.Apply(ctx, r.cache, req.ID, records); err != nil {
			r.logger.Warn("Failed to apply confirmed changes to cache", "error", err)
		}
		r.commit(req.ID)
	}
	delegate.RequestFinished(req, result)
}

func (r *Runtime) saveAndApply(ctx context.Context, req *Request) error {
	if err := r.Save(ctx, req); err != nil {
		return err
	}
	if err := r.ApplyToCache(ctx, req); err != nil {
		// откатываем запись в очередь
		if delErr := r.store.Update(ctx, func(tx *sqlite.Tx) error {
			return req.Delete(ctx, tx)
		}); delErr != nil {
			return errors.Join(err, delErr)
		}
		resetIDs(req)
		return err
	}
	return nil
}

func (r *Runtime) assignIDs(req *Request) {
	req.ID = r.store.NextRequestNr()
	if req.AppVersion == "" {
		req.AppVersion = r.appVersion
	}
	for _, child := range req.Children {
		r.assignIDs(child)
	}
}

func resetIDs(req *Request) {
	req.ID = -1
	req.FollowUpRoot = nil
	for _, child := range req.Children {
		resetIDs(child)
	}
}

// assignServerRequestNr присваивает серверный номер непосредственно перед отправкой.
// Повторная отправка использует тот же номер, чтобы сервер распознал дубликат.
func (r *Runtime) assignServerRequestNr(ctx context.Context, req *Request) error {
	if req.ServerRequestNr != nil {
		return nil
	}

	serverCounter := r.session.CurrentServerSequenceCounter()
	return r.store.Update(ctx, func(tx *sqlite.Tx) error {
		nr, err := r.sequence.Next(ctx, tx, serverCounter)
		if err != nil {
			return err
		}
		if req.Persisted() {
			if err := tx.SetServerRequestNr(ctx, req.ID, nr); err != nil {
				return err
			}
		}
		req.ServerRequestNr = &nr
		return nil
	})
}

func (r *Runtime) changeSet(ctx context.Context, req *Request) (*ChangeSet, error) {
	cs := &ChangeSet{
		RequestNr:  req.ID,
		Kind:       req.Kind,
		AppVersion: req.AppVersion,
		Parameters: req.Parameters,
		Records:    capture.ServerRecords(req.Records),
	}
	if req.ServerRequestNr != nil {
		cs.ServerRequestNr = *req.ServerRequestNr
	}

	if req.Document != nil {
		doc := *req.Document
		if doc.FileBacked() {
			if r.blobs == nil {
				return nil, fmt.Errorf("document of request %d is file-backed but no blob storage is configured", req.ID)
			}
			data, err := r.blobs.GetBlob(ctx, doc.BlobKey)
			if err != nil {
				return nil, fmt.Errorf("failed to read document of request %d: %w", req.ID, err)
			}
			doc.Data = data
		}
		cs.Document = &doc
	}

	return cs, nil
}

// storeDocumentBlobs выносит крупные документы во внешнее хранилище
func (r *Runtime) storeDocumentBlobs(ctx context.Context, req *Request) ([]string, error) {
	if r.blobs == nil {
		return nil, nil
	}

	limit := config.Int64(r.config, config.KeyInlineDocumentLimit, defaultInlineDocumentLimit)

	var keys []string
	for _, q := range req.all() {
		doc := q.Document
		if doc == nil || doc.FileBacked() || int64(len(doc.Data)) <= limit {
			continue
		}

		key := fmt.Sprintf("request-%d", q.ID)
		if err := r.blobs.PutBlob(ctx, key, doc.Data); err != nil {
			r.deleteBlobs(ctx, keys)
			return nil, fmt.Errorf("failed to store document of request %d: %w", q.ID, err)
		}
		doc.BlobKey = key
		doc.Size = int64(len(doc.Data))
		doc.Data = nil
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *Runtime) deleteBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := r.blobs.DeleteBlob(ctx, key); err != nil {
			r.logger.Warn("Failed to delete document blob", "key", key, "error", err)
		}
	}
}

func (r *Runtime) takeCancelled(nr int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cancelled[nr] {
		return false
	}
	delete(r.cancelled, nr)
	return true
}

func (r *Runtime) commit(requestNr int64) {
	if c, ok := r.cache.(committer); ok {
		c.Commit(requestNr)
	}
}

func remapRecords(records []*models.Record, ids map[string]string) []*models.Record {
	result := make([]*models.Record, 0, len(records))
	for _, rec := range records {
		c := rec.Clone()
		if id, ok := ids[c.RecordID]; ok {
			c.RecordID = id
		}
		for i := range c.Links {
			if id, ok := ids[c.Links[i].RecordID]; ok {
				c.Links[i].RecordID = id
			}
		}
		result = append(result, c)
	}
	return result
}
