package api

// FieldChange представляет изменение одного поля записи
type FieldChange struct {
	OldValue string `json:"old_value,omitempty"` // значение до изменения, для обнаружения конфликтов
	NewValue string `json:"new_value"`
	FieldID  int    `json:"field_id"`
}

// LinkChange представляет связь записи с другой записью
type LinkChange struct {
	InfoArea string `json:"info_area"`
	RecordID string `json:"record_id"`
	LinkID   int    `json:"link_id"`
}

// Record представляет изменение одной записи CRM
type Record struct {
	Options  map[string]string `json:"options,omitempty"`
	InfoArea string            `json:"info_area"`
	RecordID string            `json:"record_id"` // постоянный id или placeholder вида new...
	Mode     string            `json:"mode"`
	Fields   []FieldChange     `json:"fields,omitempty"`
	Links    []LinkChange      `json:"links,omitempty"`
}

// Document представляет загружаемый документ
type Document struct {
	InfoArea string `json:"info_area,omitempty"`
	RecordID string `json:"record_id,omitempty"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type,omitempty"`
	Data     []byte `json:"data"` // base64 в JSON
	FieldID  int    `json:"field_id,omitempty"`
}

// ChangeRequest представляет запрос клиента на применение изменений
type ChangeRequest struct {
	Parameters      map[string]string `json:"parameters,omitempty"`
	Document        *Document         `json:"document,omitempty"`
	RequestType     string            `json:"request_type"`
	ProcessType     string            `json:"process_type"`
	AppVersion      string            `json:"app_version,omitempty"`
	DeviceID        string            `json:"device_id"`
	Records         []Record          `json:"records,omitempty"`
	RequestNr       int64             `json:"request_nr"`
	ServerRequestNr int64             `json:"server_request_nr"` // повтор с тем же номером сервер не применяет дважды
}

// ChangeResponse представляет ответ сервера на успешно примененный запрос
type ChangeResponse struct {
	RecordIDs       map[string]string `json:"record_ids,omitempty"` // placeholder -> постоянный id
	ServerRequestNr int64             `json:"server_request_nr"`
	SequenceCounter int64             `json:"sequence_counter"` // последний номер запроса, принятый сервером
}

// StatusResponse представляет состояние сервера для клиента
type StatusResponse struct {
	ServerVersion   string `json:"server_version"`
	SequenceCounter int64  `json:"sequence_counter"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error    string `json:"error"`               // описание ошибки
	Message  string `json:"message,omitempty"`   // дополнительное сообщение
	Stack    string `json:"stack,omitempty"`     // стек ошибки сервера
	Code     int    `json:"code,omitempty"`      // код ошибки сервера
	BaseCode int    `json:"base_code,omitempty"` // исходный код, если ошибка преобразована
}
