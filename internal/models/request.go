package models

import "time"

// RequestMode определяет, может ли запрос быть отложен до появления сети
type RequestMode int

const (
	// ModeOnlineConfirm выполняется онлайн, результат подтверждается пользователю;
	// при отсутствии сети запрос откладывается в очередь
	ModeOnlineConfirm RequestMode = iota
	// ModeOnlineNoConfirm выполняется онлайн без подтверждения; может быть отложен
	ModeOnlineNoConfirm
	// ModeOnlineOnly выполняется только онлайн и никогда не откладывается
	ModeOnlineOnly
	// ModeOffline сразу сохраняется в очередь без попытки отправки
	ModeOffline
)

// String returns a short name used in logs and exports
func (m RequestMode) String() string {
	switch m {
	case ModeOnlineConfirm:
		return "online-confirm"
	case ModeOnlineNoConfirm:
		return "online-no-confirm"
	case ModeOnlineOnly:
		return "online-only"
	case ModeOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Deferrable reports whether a request in this mode may wait in the queue
func (m RequestMode) Deferrable() bool {
	return m != ModeOnlineOnly
}

// RequestType - тип запроса на уровне протокола сервера
type RequestType string

const (
	RequestTypeGeneric        RequestType = "Generic"
	RequestTypeRecords        RequestType = "Records"
	RequestTypeDocumentUpload RequestType = "DocumentUpload"
	RequestTypeChangeConfig   RequestType = "ChangeConfig"
	RequestTypeMulti          RequestType = "Multi"
)

// ProcessType - бизнес-процесс, породивший запрос
type ProcessType string

const (
	ProcessGeneric          ProcessType = "Generic"
	ProcessEditRecord       ProcessType = "EditRecord"
	ProcessSerialEntry      ProcessType = "SerialEntry"
	ProcessSerialEntryOrder ProcessType = "SerialEntryOrder"
	ProcessSerialEntryPOS   ProcessType = "SerialEntryPOS"
	ProcessCharacteristics  ProcessType = "Characteristics"
	ProcessObjectives       ProcessType = "Objectives"
	ProcessQuestionnaire    ProcessType = "Questionnaire"
	ProcessCopyRecords      ProcessType = "CopyRecords"
	ProcessDeleteRecord     ProcessType = "DeleteRecord"
	ProcessModifyRecord     ProcessType = "ModifyRecord"
	ProcessDocumentUpload   ProcessType = "DocumentUpload"
	ProcessSettings         ProcessType = "Settings"
	ProcessMulti            ProcessType = "Multi"
)

// Kind - пара (RequestType, ProcessType), по которой восстанавливается вариант запроса
type Kind struct {
	RequestType RequestType `json:"request_type" xml:"requestType,attr"`
	ProcessType ProcessType `json:"process_type" xml:"processType,attr"`
}

// NoGroup marks a request that does not belong to a request group
const NoGroup int64 = -1

// Envelope - общие поля всех запросов очереди (строка таблицы requests)
type Envelope struct {
	Timestamp       time.Time         `json:"timestamp"`
	RelatedInfo     map[string]string `json:"related_info,omitempty"`
	Error           *string           `json:"error,omitempty"`
	ErrorStack      *string           `json:"error_stack,omitempty"`
	ErrorCode       *int              `json:"error_code,omitempty"`
	BaseErrorCode   *int              `json:"base_error_code,omitempty"`
	ServerRequestNr *int64            `json:"server_request_nr,omitempty"`
	FollowUpRoot    *int64            `json:"follow_up_root,omitempty"`
	Kind            Kind              `json:"kind"`
	Title           string            `json:"title,omitempty"`
	Detail          string            `json:"detail,omitempty"`
	ImageName       string            `json:"image_name,omitempty"`
	TranslationKey  string            `json:"translation_key,omitempty"`
	AppVersion      string            `json:"app_version,omitempty"`
	ID              int64             `json:"id"`
	GroupRequestNr  int64             `json:"group_request_nr"`
	Mode            RequestMode       `json:"mode"`
	// ApplicationRequest помечает спекулятивный запрос: при отказе сервера
	// он откатывается, а не остается в очереди с ошибкой
	ApplicationRequest bool `json:"application_request"`
}

// Persisted reports whether the request has a durable id
func (e *Envelope) Persisted() bool {
	return e.ID >= 0
}

// HasError reports whether a sticky error (including the blocked sentinel) is set
func (e *Envelope) HasError() bool {
	return e.Error != nil
}

// IsBlocked reports whether the request carries the blocked sentinel error
func (e *Envelope) IsBlocked() bool {
	return e.ErrorCode != nil && *e.ErrorCode == ErrorCodeBlocked
}

// SetError stores err as the sticky error of the envelope
func (e *Envelope) SetError(err *RequestError) {
	msg := err.Message
	e.Error = &msg
	if err.Stack != "" {
		stack := err.Stack
		e.ErrorStack = &stack
	} else {
		e.ErrorStack = nil
	}
	code := err.Code
	e.ErrorCode = &code
	if err.BaseCode != 0 {
		base := err.BaseCode
		e.BaseErrorCode = &base
	} else {
		e.BaseErrorCode = nil
	}
}

// ClearError removes the sticky error
func (e *Envelope) ClearError() {
	e.Error = nil
	e.ErrorStack = nil
	e.ErrorCode = nil
	e.BaseErrorCode = nil
}

// StoredError returns the sticky error as a RequestError, nil if none is set
func (e *Envelope) StoredError() *RequestError {
	if e.Error == nil {
		return nil
	}
	re := &RequestError{Message: *e.Error}
	if e.ErrorStack != nil {
		re.Stack = *e.ErrorStack
	}
	if e.ErrorCode != nil {
		re.Code = *e.ErrorCode
	}
	if e.BaseErrorCode != nil {
		re.BaseCode = *e.BaseErrorCode
	}
	return re
}
