// Package capture превращает изменения записей CRM в строки records,
// recordfields и recordlinks очереди и обратно.
package capture

import (
	"github.com/iudanet/offlinesync/internal/models"
)

// Builder собирает изменения записей одного запроса.
// Два изменения одной записи объединяются в одно, кроме случая, когда
// существующее изменение - эхо синхронизации (режим Sync*).
type Builder struct {
	records []*models.Record
	// mergeEcho - info areas, для которых эхо синхронизации тоже объединяется
	mergeEcho map[string]bool
}

// NewBuilder создает Builder; mergeEchoInfoAreas перечисляет info areas,
// в которых вариант запроса объединяет изменения и с эхом синхронизации
func NewBuilder(mergeEchoInfoAreas ...string) *Builder {
	b := &Builder{}
	if len(mergeEchoInfoAreas) > 0 {
		b.mergeEcho = make(map[string]bool, len(mergeEchoInfoAreas))
		for _, ia := range mergeEchoInfoAreas {
			b.mergeEcho[ia] = true
		}
	}
	return b
}

// Add добавляет изменение записи и возвращает запись, в которой оно оказалось
// (новую или ту, с которой оно объединено). rec не модифицируется.
func (b *Builder) Add(rec *models.Record) *models.Record {
	if target := b.mergeTarget(rec); target != nil {
		Merge(target, rec)
		return target
	}

	c := rec.Clone()
	b.records = append(b.records, c)
	return c
}

// Records возвращает собранные изменения в порядке добавления
func (b *Builder) Records() []*models.Record {
	return b.records
}

// Len возвращает количество собранных записей
func (b *Builder) Len() int {
	return len(b.records)
}

func (b *Builder) mergeTarget(rec *models.Record) *models.Record {
	// новые записи без id различимы только по placeholder
	if rec.RecordID == "" {
		return nil
	}

	for _, existing := range b.records {
		if existing.InfoArea != rec.InfoArea || existing.RecordID != rec.RecordID {
			continue
		}
		if existing.Mode.IsSync() && !b.mergeEcho[existing.InfoArea] {
			continue
		}
		return existing
	}
	return nil
}

// Merge объединяет src в dst: набор полей и связей - объединение обоих,
// NewValue берется из более позднего изменения, OldValue - из самого раннего.
// Delete поглощает все остальное, New сохраняется при последующем Update.
func Merge(dst, src *models.Record) {
	dst.Mode = mergeMode(dst.Mode, src.Mode)

	for _, f := range src.Fields {
		merged := false
		for i := range dst.Fields {
			if dst.Fields[i].FieldID != f.FieldID {
				continue
			}
			dst.Fields[i].NewValue = f.NewValue
			dst.Fields[i].OfflineOnly = dst.Fields[i].OfflineOnly && f.OfflineOnly
			merged = true
			break
		}
		if !merged {
			dst.Fields = append(dst.Fields, f)
		}
	}

	for _, l := range src.Links {
		merged := false
		for i := range dst.Links {
			if dst.Links[i].Key() == l.Key() {
				dst.Links[i].RecordID = l.RecordID
				merged = true
				break
			}
		}
		if !merged {
			dst.Links = append(dst.Links, l)
		}
	}

	for k, v := range src.Options {
		if dst.Options == nil {
			dst.Options = make(map[string]string, len(src.Options))
		}
		dst.Options[k] = v
	}
}

func mergeMode(older, newer models.RecordMode) models.RecordMode {
	switch {
	case older == models.RecordModeDelete || newer == models.RecordModeDelete:
		return models.RecordModeDelete
	case older == models.RecordModeNew:
		return models.RecordModeNew
	case older.IsSync() && !newer.IsSync():
		// локальное изменение поверх эха синхронизации
		return newer
	default:
		return older
	}
}

// Adopt делает records текущим набором Builder без копирования.
// Записи в records считаются уже объединенными.
func (b *Builder) Adopt(records []*models.Record) {
	b.records = records
}
