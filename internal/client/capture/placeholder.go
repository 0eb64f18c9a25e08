package capture

import (
	"sync"

	"github.com/iudanet/offlinesync/internal/models"
)

// IDMapper запоминает, какой placeholder получила запись с временным id,
// чтобы связи, ссылающиеся на временный id, указывали на placeholder
type IDMapper struct {
	ids map[string]string // map[infoArea.tempID]placeholder
	mu  sync.RWMutex
}

// NewIDMapper создает пустой IDMapper
func NewIDMapper() *IDMapper {
	return &IDMapper{ids: make(map[string]string)}
}

// Add регистрирует соответствие временного id и назначенного id
func (m *IDMapper) Add(infoArea, tempID, assignedID string) {
	if tempID == "" || tempID == assignedID {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids[infoArea+"."+tempID] = assignedID
}

// Resolve возвращает назначенный id для id или сам id, если соответствия нет
func (m *IDMapper) Resolve(infoArea, id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if mapped, ok := m.ids[infoArea+"."+id]; ok {
		return mapped
	}
	return id
}

// Remap заменяет oldID на newID во всех соответствиях, например когда сервер
// присвоил placeholder-у постоянный id
func (m *IDMapper) Remap(oldID, newID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range m.ids {
		if v == oldID {
			m.ids[k] = newID
		}
	}
}

// Len возвращает количество соответствий
func (m *IDMapper) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.ids)
}

// NeedsPlaceholder reports whether rec must get a generated placeholder id
func NeedsPlaceholder(rec *models.Record) bool {
	if rec.Mode.IsSync() {
		return false
	}
	if !models.IsLocalID(rec.RecordID) {
		return false
	}
	return !models.IsGeneratedPlaceholder(rec.RecordID) && !models.IsServerPlaceholder(rec.RecordID)
}

// AssignIdentities нумерует записи запроса (RecordNr с 1 в порядке следования),
// присваивает placeholder-ы новым записям и перенаправляет связи через mapper.
// Записи изменяются на месте; mapper может быть nil.
func AssignIdentities(requestNr int64, records []*models.Record, mapper *IDMapper) {
	if mapper == nil {
		mapper = NewIDMapper()
	}

	for i, rec := range records {
		rec.RecordNr = i + 1
		if NeedsPlaceholder(rec) {
			placeholder := models.PlaceholderID(requestNr, rec.RecordNr)
			mapper.Add(rec.InfoArea, rec.RecordID, placeholder)
			rec.RecordID = placeholder
		}
	}

	for _, rec := range records {
		for i := range rec.Links {
			rec.Links[i].RecordID = mapper.Resolve(rec.Links[i].InfoArea, rec.Links[i].RecordID)
		}
	}
}

// Clear удаляет все соответствия
func (m *IDMapper) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = make(map[string]string)
}
