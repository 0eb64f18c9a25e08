// Package sync воспроизводит очередь запросов на сервере: по одному запросу,
// в порядке создания, пропуская те, что пока нельзя отправить.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/config"
	"github.com/iudanet/offlinesync/internal/models"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out delegate_mock.go . Delegate

const defaultMaxCellularUploadBytes = 5 * 1024 * 1024

// State - состояние прохода синхронизации
type State int

const (
	StateIdle State = iota
	StateRunning
	// StateAdvancing - запрос отправлен, ждем ответа
	StateAdvancing
	// StateBlocked - очередной запрос пропущен
	StateBlocked
	StateFinished
	StateFailed
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateAdvancing:
		return "advancing"
	case StateBlocked:
		return "blocked"
	case StateFinished:
		return "finished"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncResult contains the outcome of one replay pass
type SyncResult struct {
	PassID    string
	Processed int // количество подтвержденных сервером запросов
	Skipped   int // количество пропущенных запросов (ошибка, зависимость, нет WLAN)
	Failed    int // количество отклоненных сервером запросов
	// Resync - от подтвержденного запроса зависели другие запросы очереди
	Resync bool
}

// Delegate получает ход прохода: итог каждого отправленного запроса и
// ровно один вызов SyncFinished или SyncFailed
type Delegate interface {
	RequestFinished(req *request.Request, result *request.Result)
	RequestFailed(req *request.Request, err error)
	SyncFinished(result *SyncResult)
	SyncFailed(result *SyncResult, err error)
}

// Service определяет интерфейс планировщика синхронизации
type Service interface {
	// Sync запускает проход; false, если проход уже идет
	Sync(ctx context.Context, delegate Delegate) bool

	// IsSyncing reports whether a pass is in progress
	IsSyncing() bool

	// State returns the current pass state
	State() State
}

// service воспроизводит очередь через request.Runtime
type service struct {
	runtime *request.Runtime
	config  config.Source
	logger  *slog.Logger
	state   State
	mu      sync.Mutex
}

// NewService creates a new replay scheduler
func NewService(runtime *request.Runtime, cfg config.Source, logger *slog.Logger) Service {
	return &service{
		runtime: runtime,
		config:  cfg,
		logger:  logger,
	}
}

// Sync performs one replay pass over the queue
// 1. Snapshots the pending top-level requests
// 2. Sends them one at a time in ascending order
// 3. Stops at the first connectivity failure
func (s *service) Sync(ctx context.Context, delegate Delegate) bool {
	s.mu.Lock()
	if s.syncing() {
		s.mu.Unlock()
		s.logger.Debug("Sync already running")
		return false
	}
	s.state = StateRunning
	s.mu.Unlock()

	p := &pass{
		service:  s,
		ctx:      ctx,
		delegate: delegate,
		result:   &SyncResult{PassID: uuid.NewString()},
	}

	s.logger.Info("Starting synchronization", "pass_id", p.result.PassID)

	numbers, err := s.snapshot(ctx, p.result.PassID)
	if err != nil {
		p.fail(fmt.Errorf("failed to start sync: %w", err))
		return true
	}

	// в pending номера по убыванию: берем с конца, отправка идет по возрастанию
	p.pending = make([]int64, 0, len(numbers))
	for i := len(numbers) - 1; i >= 0; i-- {
		p.pending = append(p.pending, numbers[i])
	}

	s.logger.Info("Collected pending requests", "pass_id", p.result.PassID, "count", len(numbers))
	p.advance()
	return true
}

// IsSyncing reports whether a pass is in progress
func (s *service) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.syncing()
}

// State returns the current pass state
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *service) syncing() bool {
	return s.state == StateRunning || s.state == StateAdvancing || s.state == StateBlocked
}

func (s *service) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}

func (s *service) snapshot(ctx context.Context, passID string) ([]int64, error) {
	var numbers []int64
	err := s.runtime.Store().Update(ctx, func(tx *sqlite.Tx) error {
		var err error
		numbers, err = tx.RequestNumbers(ctx, true)
		if err != nil {
			return err
		}
		return tx.StartSyncHistory(ctx, passID, time.Now())
	})
	return numbers, err
}

// pass - один проход по очереди
type pass struct {
	service  *service
	ctx      context.Context
	delegate Delegate
	result   *SyncResult
	pending  []int64
	mu       sync.Mutex
	// dispatching - StartSync еще не вернул управление
	dispatching bool
	// completedInline - ответ пришел до возврата из StartSync
	completedInline bool
	halted          bool
	done            bool
}

// advance отправляет запросы, пока ответы приходят синхронно.
// Асинхронный ответ продолжает проход из completed.
func (p *pass) advance() {
	for {
		nr, ok := p.pop()
		if !ok {
			p.finish()
			return
		}

		req, ok := p.prepare(nr)
		if !ok {
			continue
		}

		p.mu.Lock()
		p.dispatching = true
		p.completedInline = false
		p.mu.Unlock()

		p.service.setState(StateAdvancing)
		p.service.logger.Debug("Dispatching request", "pass_id", p.result.PassID, "request_nr", nr)
		p.service.runtime.StartSync(p.ctx, req, &step{pass: p}, false)

		p.mu.Lock()
		p.dispatching = false
		inline := p.completedInline
		halted := p.halted
		p.mu.Unlock()

		if !inline || halted {
			return
		}
	}
}

func (p *pass) pop() (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.halted || len(p.pending) == 0 {
		return 0, false
	}
	nr := p.pending[len(p.pending)-1]
	p.pending = p.pending[:len(p.pending)-1]
	return nr, true
}

// prepare перечитывает запрос и решает, можно ли его отправить сейчас
func (p *pass) prepare(nr int64) (*request.Request, bool) {
	s := p.service

	req, err := s.runtime.Reload(p.ctx, nr)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			// удален, пока проход шел (откат или удаление пользователем)
			s.logger.Debug("Request vanished", "request_nr", nr)
		} else {
			s.logger.Warn("Failed to load request, skipping", "request_nr", nr, "error", err)
			p.skip()
		}
		return nil, false
	}

	if req.HasError() {
		s.logger.Debug("Skipping request with error", "request_nr", nr, "blocked", req.IsBlocked())
		p.skip()
		return nil, false
	}

	var dependsOn []int64
	err = s.runtime.Store().View(p.ctx, func(tx *sqlite.Tx) error {
		var err error
		dependsOn, err = unresolvedDependencies(p.ctx, tx, nr, req.IsMulti())
		return err
	})
	if err != nil {
		s.logger.Warn("Failed to resolve dependencies, skipping", "request_nr", nr, "error", err)
		p.skip()
		return nil, false
	}
	if len(dependsOn) > 0 {
		s.logger.Debug("Skipping request with unresolved dependencies", "request_nr", nr, "depends_on", dependsOn)
		p.skip()
		return nil, false
	}

	if s.needsWLAN(req) {
		s.logger.Debug("Skipping upload until WLAN is available", "request_nr", nr, "size", req.DocumentSize())
		p.skip()
		return nil, false
	}

	return req, true
}

// unresolvedDependencies возвращает более ранние запросы, которых ждет nr.
// Записи составного запроса лежат в дочерних запросах, поэтому для него
// проверяются все дочерние; зависимости между самими дочерними не в счет.
func unresolvedDependencies(ctx context.Context, tx *sqlite.Tx, nr int64, multi bool) ([]int64, error) {
	if !multi {
		return tx.DependsOn(ctx, nr)
	}

	children, err := tx.ChildRequestNumbers(ctx, nr)
	if err != nil {
		return nil, err
	}
	own := make(map[int64]struct{}, len(children)+1)
	own[nr] = struct{}{}
	for _, child := range children {
		own[child] = struct{}{}
	}

	seen := make(map[int64]struct{})
	var result []int64
	for _, member := range append([]int64{nr}, children...) {
		dependsOn, err := tx.DependsOn(ctx, member)
		if err != nil {
			return nil, err
		}
		for _, dep := range dependsOn {
			if _, ok := own[dep]; ok {
				continue
			}
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			result = append(result, dep)
		}
	}
	slices.Sort(result)
	return result, nil
}

func (s *service) needsWLAN(req *request.Request) bool {
	limit := config.Int64(s.config, config.KeyMaxCellularUploadBytes, defaultMaxCellularUploadBytes)
	if req.DocumentSize() <= limit {
		return false
	}
	return s.runtime.Session().ReachabilityClass() != request.ReachabilityWiFi
}

func (p *pass) skip() {
	p.service.setState(StateBlocked)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.result.Skipped++
}

// completed продолжает проход после ответа на запрос
func (p *pass) completed() {
	p.mu.Lock()
	if p.dispatching {
		p.completedInline = true
		p.mu.Unlock()
		return
	}
	halted := p.halted
	p.mu.Unlock()

	if !halted {
		p.advance()
	}
}

func (p *pass) finish() {
	if !p.markDone() {
		return
	}

	p.service.setState(StateFinished)
	p.record(storage.SyncStatusFinished, "")

	p.service.logger.Info("Synchronization completed",
		"pass_id", p.result.PassID,
		"processed", p.result.Processed,
		"skipped", p.result.Skipped,
		"failed", p.result.Failed,
		"resync", p.result.Resync)

	p.delegate.SyncFinished(p.result)
}

// fail останавливает проход; оставшиеся запросы ждут следующего прохода
func (p *pass) fail(err error) {
	p.mu.Lock()
	p.halted = true
	p.mu.Unlock()

	if !p.markDone() {
		return
	}

	p.service.setState(StateFailed)
	p.record(storage.SyncStatusFailed, err.Error())

	p.service.logger.Warn("Synchronization stopped", "pass_id", p.result.PassID, "error", err)
	p.delegate.SyncFailed(p.result, err)
}

func (p *pass) markDone() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return false
	}
	p.done = true
	return true
}

// record сохраняет итог прохода в synchistory; ошибка записи не прерывает проход
func (p *pass) record(status storage.SyncStatus, detail string) {
	finished := time.Now()
	entry := &storage.SyncHistoryEntry{
		PassID:     p.result.PassID,
		Status:     status,
		Processed:  p.result.Processed,
		Skipped:    p.result.Skipped,
		Detail:     detail,
		FinishedAt: &finished,
	}
	err := p.service.runtime.Store().Update(p.ctx, func(tx *sqlite.Tx) error {
		return tx.FinishSyncHistory(p.ctx, entry)
	})
	if err != nil {
		p.service.logger.Warn("Failed to record sync history", "pass_id", p.result.PassID, "error", err)
	}
}

// step - request.Delegate одного отправленного запроса
type step struct {
	pass *pass
}

func (st *step) RequestFinished(req *request.Request, result *request.Result) {
	p := st.pass

	p.mu.Lock()
	p.result.Processed++
	if result != nil && result.Resync {
		p.result.Resync = true
	}
	p.mu.Unlock()

	p.service.setState(StateRunning)
	p.delegate.RequestFinished(req, result)
	p.completed()
}

func (st *step) MultiRequestFinished(req *request.Request) {
	st.RequestFinished(req, &request.Result{})
}

func (st *step) RequestFailed(req *request.Request, err error) {
	p := st.pass

	if models.IsOffline(err) {
		p.delegate.RequestFailed(req, err)
		p.fail(err)
		p.completed()
		return
	}

	p.mu.Lock()
	p.result.Failed++
	p.mu.Unlock()

	p.service.setState(StateRunning)
	p.delegate.RequestFailed(req, err)
	p.completed()
}
