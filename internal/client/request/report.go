package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/models"
)

// ReportSuccessfulSync разбирает подтверждение сервера: заменяет placeholder-ы
// постоянными id в очереди и кэше, удаляет запрос и сообщает, зависели ли
// от него другие запросы очереди.
func (r *Runtime) ReportSuccessfulSync(ctx context.Context, req *Request, result *Result) (bool, error) {
	var ids map[string]string
	if result != nil {
		ids = result.RecordIDs
	}

	var dependents []int64
	err := r.store.Update(ctx, func(tx *sqlite.Tx) error {
		var err error
		dependents, err = tx.Dependents(ctx, req.ID)
		if err != nil {
			return err
		}

		for oldID, newID := range ids {
			n, err := tx.RemapRecordID(ctx, oldID, newID)
			if err != nil {
				return err
			}
			r.logger.Debug("Record id remapped", "old_id", oldID, "new_id", newID, "rows", n)
		}

		return req.Delete(ctx, tx)
	})
	if err != nil {
		return false, fmt.Errorf("failed to complete request %d: %w", req.ID, err)
	}

	for oldID, newID := range ids {
		if err := r.cache.RemapRecordID(ctx, oldID, newID); err != nil {
			r.logger.Warn("Failed to remap record id in cache", "old_id", oldID, "new_id", newID, "error", err)
		}
		r.mapper.Remap(oldID, newID)
	}

	for _, q := range req.all() {
		r.commit(q.ID)
		if q.Document != nil && q.Document.FileBacked() {
			r.deleteBlobs(ctx, []string{q.Document.BlobKey})
		}
	}

	r.logger.Info("Request completed", "request_nr", req.ID, "dependents", len(dependents))
	return len(dependents) > 0, nil
}

// ReportSyncError разбирает ошибку отправки: ошибка связи оставляет запрос
// в очереди, спекулятивный запрос откатывается, остальные получают ошибку,
// которая блокирует их до вмешательства пользователя.
func (r *Runtime) ReportSyncError(ctx context.Context, req *Request, err error) error {
	switch {
	case models.IsOffline(err):
		r.logger.Info("Server unreachable, request kept", "request_nr", req.ID)
		return nil

	case req.ApplicationRequest:
		r.logger.Info("Speculative request rejected, rolling back", "request_nr", req.ID, "error", err)
		return r.UndoRequest(ctx, req)

	default:
		reqErr := models.AsRequestError(err)
		if req.Variant.MergeOnLoad && reqErr.Code == models.ErrorCodeConflict {
			// конфликт в строках serial entry клиент не разрешает, решает пользователь
			reqErr = &models.RequestError{
				Message:  "serial entry conflict: " + reqErr.Message,
				Stack:    reqErr.Stack,
				Code:     models.ErrorCodeNotImplemented,
				BaseCode: models.ErrorCodeConflict,
			}
		}
		req.SetError(reqErr)
		r.logger.Warn("Request rejected", "request_nr", req.ID, "error", reqErr)

		if !req.Persisted() {
			return nil
		}
		return r.store.Update(ctx, func(tx *sqlite.Tx) error {
			return tx.SetRequestError(ctx, req.ID, reqErr)
		})
	}
}

// UndoRequest откатывает запрос: изменения кэша отменяются, запрос удаляется,
// а изменения зависящих от него запросов применяются к кэшу заново.
func (r *Runtime) UndoRequest(ctx context.Context, req *Request) error {
	var redo []*Request

	if req.Persisted() {
		err := r.store.Update(ctx, func(tx *sqlite.Tx) error {
			closure, err := DependencyClosure(ctx, tx, req.ID)
			if err != nil {
				return err
			}
			for _, nr := range closure.Numbers() {
				dep, err := Load(ctx, tx, nr)
				if err != nil {
					return fmt.Errorf("failed to load dependent request %d: %w", nr, err)
				}
				redo = append(redo, dep)
			}
			return req.Delete(ctx, tx)
		})
		if err != nil {
			return fmt.Errorf("failed to undo request %d: %w", req.ID, err)
		}
	}

	var errs []error

	// сначала снимаем изменения зависимых (новые раньше), затем самого запроса
	for i := len(redo) - 1; i >= 0; i-- {
		if err := r.undoCache(ctx, redo[i]); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.undoCache(ctx, req); err != nil {
		errs = append(errs, err)
	}

	for _, dep := range redo {
		for _, q := range dep.all() {
			if len(q.Records) == 0 {
				continue
			}
			if _, err := capture.Apply(ctx, r.cache, q.ID, q.Records); err != nil {
				errs = append(errs, fmt.Errorf("failed to redo request %d: %w", q.ID, err))
			}
		}
	}

	for _, q := range req.all() {
		if q.Document != nil && q.Document.FileBacked() {
			r.deleteBlobs(ctx, []string{q.Document.BlobKey})
		}
	}

	r.logger.Info("Request rolled back", "request_nr", req.ID, "redone", len(redo))
	return errors.Join(errs...)
}

// Discard удаляет запрос из очереди по решению пользователя, откатывая его изменения
func (r *Runtime) Discard(ctx context.Context, nr int64) error {
	req, err := r.Reload(ctx, nr)
	if err != nil {
		return err
	}
	return r.UndoRequest(ctx, req)
}

// undoCache снимает изменения запроса и его дочерних запросов с кэша, новые раньше
func (r *Runtime) undoCache(ctx context.Context, req *Request) error {
	all := req.all()
	for i := len(all) - 1; i >= 0; i-- {
		q := all[i]
		if q.undo != nil {
			if err := q.undo.Undo(ctx); err != nil {
				return err
			}
			continue
		}
		if err := r.cache.UndoChange(ctx, q.ID); err != nil {
			return fmt.Errorf("failed to undo changes of request %d: %w", q.ID, err)
		}
	}
	return nil
}
