package request

import (
	"context"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/models"
)

//go:generate moq -out session_mock.go . Session
//go:generate moq -out delegate_mock.go . Delegate

// RecordCache - кэш записей, в который запросы применяют свои изменения
type RecordCache = capture.RecordCache

// Reachability - класс доступной сети
type Reachability int

const (
	ReachabilityNone Reachability = iota
	ReachabilityCellular
	ReachabilityWiFi
)

// String returns the network class name
func (r Reachability) String() string {
	switch r {
	case ReachabilityCellular:
		return "cellular"
	case ReachabilityWiFi:
		return "wifi"
	default:
		return "none"
	}
}

// ChangeSet - то, что отправляется на сервер для одного запроса
type ChangeSet struct {
	Parameters      map[string]string
	Document        *models.DocumentUpload
	Kind            models.Kind
	AppVersion      string
	Records         []*models.Record
	RequestNr       int64
	ServerRequestNr int64
}

// Result - итог выполнения запроса
type Result struct {
	// RecordIDs - постоянные id, которые сервер присвоил placeholder-ам
	RecordIDs       map[string]string
	ServerRequestNr int64
	// Deferred - запрос сохранен в очередь и будет отправлен позже
	Deferred bool
	// Cancelled - загрузка отменена вызывающим
	Cancelled bool
	// Resync - от запроса зависели другие запросы очереди
	Resync bool
}

// Session - соединение с сервером CRM
type Session interface {
	// ExecuteChangeRequest отправляет изменения и вызывает callback ровно один раз.
	// Ошибка связи должна удовлетворять errors.Is(err, models.ErrOffline).
	ExecuteChangeRequest(ctx context.Context, cs *ChangeSet, callback func(*Result, error))

	// ReachabilityClass returns the currently available network class
	ReachabilityClass() Reachability

	// CurrentServerSequenceCounter returns the last request number the server acknowledged
	CurrentServerSequenceCounter() int64
}

// Delegate получает итог StartRequest/StartSync: ровно один вызов на запрос
type Delegate interface {
	RequestFinished(req *Request, result *Result)
	RequestFailed(req *Request, err error)
	MultiRequestFinished(req *Request)
}
