package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/offlinesync/internal/models"
)

//go:generate moq -out recordcache_mock.go . RecordCache

// RecordCache - кэш записей CRM в памяти, который видит UI.
// Каждое изменение журналируется под номером запроса, чтобы его можно было откатить.
type RecordCache interface {
	// ApplyFieldChange записывает новое значение поля
	ApplyFieldChange(ctx context.Context, requestNr int64, infoArea, recordID string, change models.FieldChange) error

	// ApplyLinkChange записывает связь записи
	ApplyLinkChange(ctx context.Context, requestNr int64, infoArea, recordID string, link models.LinkChange) error

	// UndoChange откатывает все изменения, сделанные под requestNr
	UndoChange(ctx context.Context, requestNr int64) error

	// DeleteRecord удаляет запись из кэша
	DeleteRecord(ctx context.Context, requestNr int64, infoArea, recordID string) error

	// RemapRecordID заменяет oldID на newID везде, где он встречается
	RemapRecordID(ctx context.Context, oldID, newID string) error
}

// UndoRequest откатывает ровно те изменения кэша, которые сделал Apply
type UndoRequest struct {
	cache     RecordCache
	requestNr int64
	done      bool
}

// RequestNr returns the request whose changes the handle reverses
func (u *UndoRequest) RequestNr() int64 {
	return u.requestNr
}

// Undo откатывает изменения; повторный вызов ничего не делает
func (u *UndoRequest) Undo(ctx context.Context) error {
	if u == nil || u.done {
		return nil
	}
	if err := u.cache.UndoChange(ctx, u.requestNr); err != nil {
		return fmt.Errorf("failed to undo changes of request %d: %w", u.requestNr, err)
	}
	u.done = true
	return nil
}

// Apply записывает изменения полей и связей в кэш. Если запись в кэш
// прерывается ошибкой, уже сделанные изменения откатываются.
func Apply(ctx context.Context, cache RecordCache, requestNr int64, records []*models.Record) (*UndoRequest, error) {
	undo := &UndoRequest{cache: cache, requestNr: requestNr}

	if err := applyRecords(ctx, cache, requestNr, records); err != nil {
		if undoErr := undo.Undo(ctx); undoErr != nil {
			return nil, errors.Join(err, undoErr)
		}
		return nil, err
	}

	return undo, nil
}

func applyRecords(ctx context.Context, cache RecordCache, requestNr int64, records []*models.Record) error {
	for _, rec := range records {
		if rec.Mode == models.RecordModeDelete {
			if err := cache.DeleteRecord(ctx, requestNr, rec.InfoArea, rec.RecordID); err != nil {
				return fmt.Errorf("failed to delete %s from cache: %w", rec.Identification(), err)
			}
			continue
		}

		for _, f := range rec.Fields {
			if err := cache.ApplyFieldChange(ctx, requestNr, rec.InfoArea, rec.RecordID, f); err != nil {
				return fmt.Errorf("failed to apply field %d of %s: %w", f.FieldID, rec.Identification(), err)
			}
		}
		for _, l := range rec.Links {
			if err := cache.ApplyLinkChange(ctx, requestNr, rec.InfoArea, rec.RecordID, l); err != nil {
				return fmt.Errorf("failed to apply link %s of %s: %w", l.Key(), rec.Identification(), err)
			}
		}
	}
	return nil
}
