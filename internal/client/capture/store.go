package capture

import (
	"context"
	"fmt"

	"github.com/iudanet/offlinesync/internal/models"
	"github.com/iudanet/offlinesync/internal/validation"
)

// RecordWriter - строки записей запроса внутри транзакции
type RecordWriter interface {
	InsertRecord(ctx context.Context, requestNr int64, rec *models.Record) error
	InsertField(ctx context.Context, requestNr int64, recordNr int, f models.FieldChange) error
	InsertLink(ctx context.Context, requestNr int64, recordNr int, l models.LinkChange) error
	DeleteRecords(ctx context.Context, requestNr int64) error
}

// RecordReader читает строки записей запроса
type RecordReader interface {
	LoadRecords(ctx context.Context, requestNr int64) ([]*models.Record, error)
}

// StoreRecords записывает изменения записей запроса requestNr, заменяя прежние строки.
// Записи нумеруются и получают placeholder-ы на месте (см. AssignIdentities).
// Любая ошибка возвращается как есть: вызывающий откатывает транзакцию целиком.
func StoreRecords(ctx context.Context, w RecordWriter, requestNr int64, records []*models.Record, mapper *IDMapper) error {
	if err := w.DeleteRecords(ctx, requestNr); err != nil {
		return err
	}

	AssignIdentities(requestNr, records, mapper)

	for _, rec := range records {
		if err := validation.ValidateRecord(rec); err != nil {
			return fmt.Errorf("record %d of request %d: %w", rec.RecordNr, requestNr, err)
		}

		if err := w.InsertRecord(ctx, requestNr, rec); err != nil {
			return err
		}
		for _, f := range rec.Fields {
			if err := w.InsertField(ctx, requestNr, rec.RecordNr, f); err != nil {
				return err
			}
		}
		for _, l := range rec.Links {
			if err := w.InsertLink(ctx, requestNr, rec.RecordNr, l); err != nil {
				return err
			}
		}
	}

	return nil
}

// LoadRecords восстанавливает изменения записей запроса. При mergeOnLoad
// изменения одной записи объединяются в одно логическое изменение.
func LoadRecords(ctx context.Context, r RecordReader, requestNr int64, mergeOnLoad bool) ([]*models.Record, error) {
	records, err := r.LoadRecords(ctx, requestNr)
	if err != nil {
		return nil, fmt.Errorf("failed to load records of request %d: %w", requestNr, err)
	}
	if !mergeOnLoad || len(records) < 2 {
		return records, nil
	}

	b := NewBuilder()
	for _, rec := range records {
		b.Add(rec)
	}
	merged := b.Records()
	for i, rec := range merged {
		rec.RecordNr = i + 1
	}
	return merged, nil
}

// ServerRecords возвращает копии записей для отправки на сервер: поля
// только для офлайна отбрасываются
func ServerRecords(records []*models.Record) []*models.Record {
	result := make([]*models.Record, 0, len(records))
	for _, rec := range records {
		c := rec.Clone()
		c.Fields = c.Fields[:0]
		for _, f := range rec.Fields {
			if !f.OfflineOnly {
				c.Fields = append(c.Fields, f)
			}
		}
		result = append(result, c)
	}
	return result
}
