// Package offline - единая точка входа приложения в очередь запросов:
// сохранение, синхронизация, счетчики и глобальные флаги.
package offline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	syncsvc "github.com/iudanet/offlinesync/internal/client/sync"
	"github.com/iudanet/offlinesync/internal/config"
	"github.com/iudanet/offlinesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

const noRequest int64 = -1

// ErrRequestHasError - запрос с ошибкой сервера нельзя приостановить,
// сначала ошибку нужно сбросить
var ErrRequestHasError = errors.New("request has an unresolved error")

// Service определяет интерфейс фасада офлайн-очереди
type Service interface {
	// SaveRequest сохраняет новый запрос в очередь и применяет его к кэшу
	SaveRequest(ctx context.Context, req *request.Request) error
	// SaveRecord добавляет изменения записей к запросу nr из очереди
	SaveRecord(ctx context.Context, nr int64, records ...*models.Record) error
	// SaveDocumentUpload заменяет документ запроса загрузки nr
	SaveDocumentUpload(ctx context.Context, nr int64, doc *models.DocumentUpload) error

	StartRequest(ctx context.Context, req *request.Request, mode models.RequestMode, delegate request.Delegate)
	Sync(ctx context.Context, delegate syncsvc.Delegate) bool
	IsSyncing() bool

	NumberOfUncommittedRequests(ctx context.Context) (int, error)
	NumberOfRequestsWithErrors(ctx context.Context) (int, error)
	ClearCachedRequestNumbers()

	SetBlockingRequest(ctx context.Context, nr int64) error
	ClearBlockingRequest(ctx context.Context) error
	BlockingRequest() (int64, bool)
	OnlineRecordRequestsBlocked() bool
	ConnectivityRestored()

	ClearAllErrors(ctx context.Context) (int64, error)
	DeleteRequest(ctx context.Context, nr int64) error
	PendingRequests(ctx context.Context) ([]*request.Request, error)
	ExportRequest(ctx context.Context, nr int64) ([]byte, error)
	SyncHistory(ctx context.Context, limit int) ([]*storage.SyncHistoryEntry, error)
	EmptyAll(ctx context.Context) error
}

// service handles the offline queue on behalf of the application
type service struct {
	runtime   *request.Runtime
	scheduler syncsvc.Service
	blobs     storage.BlobStorage
	config    config.Source
	logger    *slog.Logger

	// кэш счетчиков, -1 - не вычислен
	uncommitted int
	withErrors  int
	// blocking - запрос, припаркованный приложением, noRequest если нет
	blocking int64
	// blockOnlineRecordRequest - сеть недоступна, запросы с записями сразу идут в очередь
	blockOnlineRecordRequest bool
	mu                       sync.Mutex
}

// NewService creates the offline façade; blobs may be nil
func NewService(
	runtime *request.Runtime,
	scheduler syncsvc.Service,
	blobs storage.BlobStorage,
	cfg config.Source,
	logger *slog.Logger,
) Service {
	return &service{
		runtime:     runtime,
		scheduler:   scheduler,
		blobs:       blobs,
		config:      cfg,
		logger:      logger,
		uncommitted: -1,
		withErrors:  -1,
		blocking:    noRequest,
	}
}

// SaveRequest adds a new request to the queue
func (s *service) SaveRequest(ctx context.Context, req *request.Request) error {
	defer s.ClearCachedRequestNumbers()

	if err := s.runtime.Enqueue(ctx, req); err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

// SaveRecord appends record changes to a queued request
func (s *service) SaveRecord(ctx context.Context, nr int64, records ...*models.Record) error {
	defer s.ClearCachedRequestNumbers()

	req, err := s.runtime.Reload(ctx, nr)
	if err != nil {
		return err
	}
	if req.Variant.Payload != request.PayloadRecords {
		return fmt.Errorf("request %d does not carry record changes", nr)
	}

	for _, rec := range records {
		req.AddRecord(rec)
	}
	return s.runtime.Save(ctx, req)
}

// SaveDocumentUpload replaces the document of a queued upload request
func (s *service) SaveDocumentUpload(ctx context.Context, nr int64, doc *models.DocumentUpload) error {
	defer s.ClearCachedRequestNumbers()

	req, err := s.runtime.Reload(ctx, nr)
	if err != nil {
		return err
	}
	if req.Variant.Payload != request.PayloadDocument {
		return fmt.Errorf("request %d is not a document upload", nr)
	}

	if doc.Size == 0 {
		doc.Size = int64(len(doc.Data))
	}
	req.Document = doc
	return s.runtime.Save(ctx, req)
}

// StartRequest выполняет запрос; пока сеть недоступна, запросы с записями
// сразу сохраняются в очередь
func (s *service) StartRequest(ctx context.Context, req *request.Request, mode models.RequestMode, delegate request.Delegate) {
	if mode.Deferrable() && req.HasRecords() && s.OnlineRecordRequestsBlocked() {
		s.logger.Debug("Online record requests blocked, queueing", "process", req.Kind.ProcessType)
		mode = models.ModeOffline
	}

	s.runtime.StartRequest(ctx, req, mode, &requestDelegate{
		service:  s,
		delegate: delegate,
		online:   mode != models.ModeOffline,
	})
}

// Sync запускает проход синхронизации; false, если проход уже идет.
// Если подтвержденные запросы изменили id, от которых зависели другие, проход
// повторяется один раз.
func (s *service) Sync(ctx context.Context, delegate syncsvc.Delegate) bool {
	return s.scheduler.Sync(ctx, &syncDelegate{service: s, delegate: delegate, ctx: ctx})
}

// IsSyncing reports whether a replay pass is in progress
func (s *service) IsSyncing() bool {
	return s.scheduler.IsSyncing()
}

// NumberOfUncommittedRequests returns the number of queued top-level requests
func (s *service) NumberOfUncommittedRequests(ctx context.Context) (int, error) {
	if cached, ok := s.cached(&s.uncommitted); ok {
		return cached, nil
	}

	var count int
	err := s.runtime.Store().View(ctx, func(tx *sqlite.Tx) error {
		var err error
		count, err = tx.CountRequests(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.store(&s.uncommitted, count)
	return count, nil
}

// NumberOfRequestsWithErrors returns the number of requests with a sticky error.
// The blocking request is not counted.
func (s *service) NumberOfRequestsWithErrors(ctx context.Context) (int, error) {
	if cached, ok := s.cached(&s.withErrors); ok {
		return cached, nil
	}

	blocking, hasBlocking := s.BlockingRequest()

	var count int
	err := s.runtime.Store().View(ctx, func(tx *sqlite.Tx) error {
		var err error
		count, err = tx.CountRequestsWithErrors(ctx)
		if err != nil || !hasBlocking {
			return err
		}

		env, _, err := tx.LoadRequest(ctx, blocking)
		if err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				return nil
			}
			return err
		}
		if env.IsBlocked() {
			count--
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.store(&s.withErrors, count)
	return count, nil
}

// ClearCachedRequestNumbers invalidates the cached counters
func (s *service) ClearCachedRequestNumbers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uncommitted = -1
	s.withErrors = -1
}

func (s *service) cached(counter *int) (int, bool) {
	if s.config.IsFlagSet(config.KeyDisableRequestCountCache) {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if *counter < 0 {
		return 0, false
	}
	return *counter, true
}

func (s *service) store(counter *int, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*counter = value
}

// SetBlockingRequest паркует запрос nr: планировщик его пропускает,
// а счетчик ошибок его не учитывает. Прежний блокирующий запрос освобождается.
func (s *service) SetBlockingRequest(ctx context.Context, nr int64) error {
	defer s.ClearCachedRequestNumbers()

	previous, hasPrevious := s.BlockingRequest()

	err := s.runtime.Store().Update(ctx, func(tx *sqlite.Tx) error {
		if hasPrevious && previous != nr {
			if err := tx.ClearRequestError(ctx, previous); err != nil && !errors.Is(err, storage.ErrRequestNotFound) {
				return err
			}
		}
		env, _, err := tx.LoadRequest(ctx, nr)
		if err != nil {
			return err
		}
		if env.HasError() && !env.IsBlocked() {
			return ErrRequestHasError
		}
		return tx.SetRequestError(ctx, nr, models.BlockedError())
	})
	if err != nil {
		return fmt.Errorf("failed to block request %d: %w", nr, err)
	}

	s.mu.Lock()
	s.blocking = nr
	s.mu.Unlock()

	s.logger.Info("Request blocked", "request_nr", nr)
	return nil
}

// ClearBlockingRequest releases the blocking request, if any
func (s *service) ClearBlockingRequest(ctx context.Context) error {
	defer s.ClearCachedRequestNumbers()

	nr, ok := s.BlockingRequest()
	if !ok {
		return nil
	}

	err := s.runtime.Store().Update(ctx, func(tx *sqlite.Tx) error {
		env, _, err := tx.LoadRequest(ctx, nr)
		if err != nil {
			return err
		}
		if !env.IsBlocked() {
			// ошибку сервера снимает только ClearAllErrors или удаление
			return nil
		}
		return tx.ClearRequestError(ctx, nr)
	})
	if err != nil && !errors.Is(err, storage.ErrRequestNotFound) {
		return fmt.Errorf("failed to unblock request %d: %w", nr, err)
	}

	s.mu.Lock()
	s.blocking = noRequest
	s.mu.Unlock()

	s.logger.Info("Request unblocked", "request_nr", nr)
	return nil
}

// BlockingRequest returns the parked request, ok is false if there is none
func (s *service) BlockingRequest() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.blocking, s.blocking != noRequest
}

// OnlineRecordRequestsBlocked reports whether record requests are forced offline
func (s *service) OnlineRecordRequestsBlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.blockOnlineRecordRequest
}

// ConnectivityRestored снимает принудительный офлайн-режим
func (s *service) ConnectivityRestored() {
	s.setOnlineBlocked(false)
}

func (s *service) setOnlineBlocked(blocked bool) {
	s.mu.Lock()
	changed := s.blockOnlineRecordRequest != blocked
	s.blockOnlineRecordRequest = blocked
	s.mu.Unlock()

	if changed {
		s.logger.Info("Online record requests", "blocked", blocked)
	}
}

// ClearAllErrors снимает ошибки со всех запросов, кроме блокирующего
func (s *service) ClearAllErrors(ctx context.Context) (int64, error) {
	defer s.ClearCachedRequestNumbers()

	var cleared int64
	err := s.runtime.Store().Update(ctx, func(tx *sqlite.Tx) error {
		var err error
		cleared, err = tx.ClearAllErrors(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Request errors cleared", "count", cleared)
	return cleared, nil
}

// DeleteRequest удаляет запрос по решению пользователя и откатывает его изменения
func (s *service) DeleteRequest(ctx context.Context, nr int64) error {
	defer s.ClearCachedRequestNumbers()

	if err := s.runtime.Discard(ctx, nr); err != nil {
		return err
	}

	s.mu.Lock()
	if s.blocking == nr {
		s.blocking = noRequest
	}
	s.mu.Unlock()

	return nil
}

// PendingRequests returns the queued top-level requests in replay order
func (s *service) PendingRequests(ctx context.Context) ([]*request.Request, error) {
	var requests []*request.Request
	err := s.runtime.Store().View(ctx, func(tx *sqlite.Tx) error {
		numbers, err := tx.RequestNumbers(ctx, true)
		if err != nil {
			return err
		}
		for _, nr := range numbers {
			req, err := request.Load(ctx, tx, nr)
			if err != nil {
				return err
			}
			requests = append(requests, req)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ExportRequest describes request nr as XML
func (s *service) ExportRequest(ctx context.Context, nr int64) ([]byte, error) {
	req, err := s.runtime.Reload(ctx, nr)
	if err != nil {
		return nil, err
	}
	return request.Export(req)
}

// SyncHistory returns the most recent replay passes, newest first
func (s *service) SyncHistory(ctx context.Context, limit int) ([]*storage.SyncHistoryEntry, error) {
	var entries []*storage.SyncHistoryEntry
	err := s.runtime.Store().View(ctx, func(tx *sqlite.Tx) error {
		var err error
		entries, err = tx.SyncHistory(ctx, limit)
		return err
	})
	return entries, err
}

// EmptyAll удаляет очередь, документы и состояние кэша (полная ресинхронизация, выход)
func (s *service) EmptyAll(ctx context.Context) error {
	defer s.ClearCachedRequestNumbers()

	if s.scheduler.IsSyncing() {
		return fmt.Errorf("cannot empty the queue while sync is running")
	}

	if err := s.runtime.Store().EmptyAll(ctx); err != nil {
		return fmt.Errorf("failed to empty queue: %w", err)
	}
	if s.blobs != nil {
		if err := s.blobs.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear documents: %w", err)
		}
	}
	s.runtime.Reset()

	s.mu.Lock()
	s.blocking = noRequest
	s.blockOnlineRecordRequest = false
	s.mu.Unlock()

	s.logger.Info("Offline queue emptied")
	return nil
}

// requestDelegate обновляет счетчики и флаг офлайна, затем передает итог дальше
type requestDelegate struct {
	service  *service
	delegate request.Delegate
	online   bool
}

func (d *requestDelegate) RequestFinished(req *request.Request, result *request.Result) {
	d.service.ClearCachedRequestNumbers()
	if d.online {
		// Deferred при онлайн-режиме означает, что сервер недоступен
		switch {
		case result != nil && result.Deferred && req.HasRecords():
			d.service.setOnlineBlocked(true)
		case result != nil && !result.Deferred:
			d.service.setOnlineBlocked(false)
		}
	}
	d.delegate.RequestFinished(req, result)
}

func (d *requestDelegate) RequestFailed(req *request.Request, err error) {
	d.service.ClearCachedRequestNumbers()
	if d.online && models.IsOffline(err) && req.HasRecords() {
		d.service.setOnlineBlocked(true)
	}
	d.delegate.RequestFailed(req, err)
}

func (d *requestDelegate) MultiRequestFinished(req *request.Request) {
	d.service.ClearCachedRequestNumbers()
	if d.online {
		d.service.setOnlineBlocked(false)
	}
	d.delegate.MultiRequestFinished(req)
}

// syncDelegate обновляет счетчики и повторяет проход после смены id
type syncDelegate struct {
	service  *service
	delegate syncsvc.Delegate
	ctx      context.Context
	rerun    bool
}

func (d *syncDelegate) RequestFinished(req *request.Request, result *request.Result) {
	d.service.ClearCachedRequestNumbers()
	d.service.setOnlineBlocked(false)
	d.delegate.RequestFinished(req, result)
}

func (d *syncDelegate) RequestFailed(req *request.Request, err error) {
	d.service.ClearCachedRequestNumbers()
	d.delegate.RequestFailed(req, err)
}

func (d *syncDelegate) SyncFinished(result *syncsvc.SyncResult) {
	d.service.ClearCachedRequestNumbers()

	if result.Resync && !d.rerun {
		d.rerun = true
		d.service.logger.Info("Record ids changed, repeating sync", "pass_id", result.PassID)
		if d.service.scheduler.Sync(d.ctx, d) {
			return
		}
	}
	d.delegate.SyncFinished(result)
}

func (d *syncDelegate) SyncFailed(result *syncsvc.SyncResult, err error) {
	d.service.ClearCachedRequestNumbers()
	d.delegate.SyncFailed(result, err)
}
