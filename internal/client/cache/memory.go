// Package cache - кэш записей CRM в памяти, в который очередь запросов
// записывает свои изменения до подтверждения сервером.
package cache

import (
	"context"
	"sync"

	"github.com/iudanet/offlinesync/internal/models"
)

// Entry - состояние одной записи в кэше
type Entry struct {
	Fields   map[int]string    // map[fieldID]value
	Links    map[string]string // map[infoArea:linkID]recordID
	InfoArea string
	RecordID string
}

func (e *Entry) clone() *Entry {
	c := &Entry{
		InfoArea: e.InfoArea,
		RecordID: e.RecordID,
		Fields:   make(map[int]string, len(e.Fields)),
		Links:    make(map[string]string, len(e.Links)),
	}
	for k, v := range e.Fields {
		c.Fields[k] = v
	}
	for k, v := range e.Links {
		c.Links[k] = v
	}
	return c
}

// undoOp - состояние записи до изменения; nil prev означает, что записи не было
type undoOp struct {
	prev *Entry
	key  string
}

// Memory - потокобезопасный кэш записей с журналом отката по номеру запроса
type Memory struct {
	records map[string]*Entry   // map[infoArea.recordID]entry
	journal map[int64][]*undoOp // map[requestNr]ops в порядке применения
	mu      sync.RWMutex        // мьютекс для потокобезопасности
}

// NewMemory создает пустой кэш
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*Entry),
		journal: make(map[int64][]*undoOp),
	}
}

func recordKey(infoArea, recordID string) string {
	return infoArea + "." + recordID
}

// ApplyFieldChange записывает NewValue поля и журналирует прежнее состояние записи
func (m *Memory) ApplyFieldChange(_ context.Context, requestNr int64, infoArea, recordID string, change models.FieldChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.prepare(requestNr, infoArea, recordID)
	entry.Fields[change.FieldID] = change.NewValue
	return nil
}

// ApplyLinkChange записывает связь и журналирует прежнее состояние записи
func (m *Memory) ApplyLinkChange(_ context.Context, requestNr int64, infoArea, recordID string, link models.LinkChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.prepare(requestNr, infoArea, recordID)
	entry.Links[link.Key()] = link.RecordID
	return nil
}

// DeleteRecord удаляет запись из кэша; удаление отсутствующей записи не ошибка
func (m *Memory) DeleteRecord(_ context.Context, requestNr int64, infoArea, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey(infoArea, recordID)
	existing, exists := m.records[key]
	if !exists {
		return nil
	}

	m.journal[requestNr] = append(m.journal[requestNr], &undoOp{key: key, prev: existing.clone()})
	delete(m.records, key)
	return nil
}

// UndoChange восстанавливает записи в состояние до изменений запроса requestNr.
// Операции откатываются в обратном порядке.
func (m *Memory) UndoChange(_ context.Context, requestNr int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := m.journal[requestNr]
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		if op.prev == nil {
			delete(m.records, op.key)
			continue
		}
		m.records[op.key] = op.prev.clone()
	}
	delete(m.journal, requestNr)
	return nil
}

// Commit забывает журнал подтвержденного сервером запроса: его изменения больше не откатываются
func (m *Memory) Commit(requestNr int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.journal, requestNr)
}

// RemapRecordID заменяет oldID на newID в записях, связях и журнале.
// Повторный вызов ничего не меняет.
func (m *Memory) RemapRecordID(_ context.Context, oldID, newID string) error {
	if oldID == newID {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	remapped := make(map[string]*Entry, len(m.records))
	for key, entry := range m.records {
		if entry.RecordID == oldID {
			entry.RecordID = newID
			key = recordKey(entry.InfoArea, newID)
		}
		remapLinks(entry, oldID, newID)
		remapped[key] = entry
	}
	m.records = remapped

	for _, ops := range m.journal {
		for _, op := range ops {
			if op.prev == nil {
				// записи не было до изменения, в журнале только ключ
				if infoArea, ok := splitKey(op.key, oldID); ok {
					op.key = recordKey(infoArea, newID)
				}
				continue
			}
			if op.prev.RecordID == oldID {
				op.prev.RecordID = newID
				op.key = recordKey(op.prev.InfoArea, newID)
			}
			remapLinks(op.prev, oldID, newID)
		}
	}

	return nil
}

// Get возвращает копию записи
func (m *Memory) Get(infoArea, recordID string) (*Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.records[recordKey(infoArea, recordID)]
	if !exists {
		return nil, false
	}
	return entry.clone(), true
}

// FieldValue возвращает значение поля записи
func (m *Memory) FieldValue(infoArea, recordID string, fieldID int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.records[recordKey(infoArea, recordID)]
	if !exists {
		return "", false
	}
	value, ok := entry.Fields[fieldID]
	return value, ok
}

// Put кладет запись в кэш вне журнала, например после загрузки с сервера
func (m *Memory) Put(entry *Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := entry.clone()
	m.records[recordKey(c.InfoArea, c.RecordID)] = c
}

// Size возвращает количество записей в кэше
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

// PendingUndo возвращает количество запросов, изменения которых можно откатить
func (m *Memory) PendingUndo() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.journal)
}

// Clear удаляет все записи и журнал
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]*Entry)
	m.journal = make(map[int64][]*undoOp)
}

// prepare возвращает запись для изменения, создавая ее при необходимости,
// и журналирует ее состояние до изменения
func (m *Memory) prepare(requestNr int64, infoArea, recordID string) *Entry {
	key := recordKey(infoArea, recordID)
	existing, exists := m.records[key]

	op := &undoOp{key: key}
	if exists {
		op.prev = existing.clone()
	}
	m.journal[requestNr] = append(m.journal[requestNr], op)

	if !exists {
		existing = &Entry{
			InfoArea: infoArea,
			RecordID: recordID,
			Fields:   make(map[int]string),
			Links:    make(map[string]string),
		}
		m.records[key] = existing
	}
	return existing
}

func remapLinks(entry *Entry, oldID, newID string) {
	for k, v := range entry.Links {
		if v == oldID {
			entry.Links[k] = newID
		}
	}
}

// splitKey возвращает info area ключа "<infoArea>.<recordID>", если recordID совпадает
func splitKey(key, recordID string) (string, bool) {
	suffix := "." + recordID
	if len(key) <= len(suffix) || key[len(key)-len(suffix):] != suffix {
		return "", false
	}
	return key[:len(key)-len(suffix)], true
}
