package request

import (
	"context"
	"errors"

	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
	"github.com/iudanet/offlinesync/internal/models"
)

// startMulti выполняет дочерние запросы по порядку, каждый следующий после
// подтверждения предыдущего. Отказ сервера откатывает отклоненный и все
// последующие дочерние запросы вместе.
func (r *Runtime) startMulti(ctx context.Context, root *Request, delegate Delegate, online bool) {
	r.runChild(ctx, root, 0, false, delegate, online)
}

func (r *Runtime) runChild(ctx context.Context, root *Request, i int, resync bool, delegate Delegate, online bool) {
	if i == len(root.Children) {
		r.finishMulti(ctx, root, resync, delegate)
		return
	}

	child := root.Children[i]
	if child.Persisted() {
		// предыдущие дочерние запросы могли переименовать записи
		fresh, err := r.Reload(ctx, child.ID)
		if err != nil {
			delegate.RequestFailed(root, err)
			return
		}
		fresh.undo = child.undo
		root.Children[i] = fresh
		child = fresh
	}

	r.execute(ctx, child, func(result *Result, err error) {
		if err != nil {
			r.failMulti(ctx, root, i, err, delegate, online)
			return
		}

		childResync := false
		if child.Persisted() {
			var reportErr error
			childResync, reportErr = r.ReportSuccessfulSync(ctx, child, result)
			if reportErr != nil {
				delegate.RequestFailed(root, reportErr)
				return
			}
		}

		r.runChild(ctx, root, i+1, resync || childResync, delegate, online)
	})
}

func (r *Runtime) finishMulti(ctx context.Context, root *Request, resync bool, delegate Delegate) {
	if root.Persisted() {
		err := r.store.Update(ctx, func(tx *sqlite.Tx) error {
			return tx.DeleteRequest(ctx, root.ID)
		})
		if err != nil {
			delegate.RequestFailed(root, err)
			return
		}
	}

	r.logger.Info("Multi request completed", "request_nr", root.ID, "children", len(root.Children), "resync", resync)
	delegate.MultiRequestFinished(root)
}

func (r *Runtime) failMulti(ctx context.Context, root *Request, i int, err error, delegate Delegate, online bool) {
	if models.IsOffline(err) {
		if online && root.Mode.Deferrable() {
			delegate.RequestFinished(root, &Result{Deferred: true})
			return
		}
		delegate.RequestFailed(root, err)
		return
	}

	var reportErr error
	switch {
	case online || root.ApplicationRequest:
		reportErr = r.UndoRequest(ctx, root)
	default:
		// отклоненный и последующие дочерние запросы откатываются вместе,
		// ошибка остается на корневом запросе
		reportErr = r.undoChildren(ctx, root.Children[i:])
		if setErr := r.ReportSyncError(ctx, root, err); setErr != nil {
			reportErr = errors.Join(reportErr, setErr)
		}
	}
	if reportErr != nil {
		r.logger.Error("Failed to roll back multi request", "request_nr", root.ID, "error", reportErr)
		err = errors.Join(err, reportErr)
	}

	delegate.RequestFailed(root, err)
}

func (r *Runtime) undoChildren(ctx context.Context, children []*Request) error {
	var errs []error
	for j := len(children) - 1; j >= 0; j-- {
		if err := r.undoCache(ctx, children[j]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
