package request

import (
	"time"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/models"
)

// Request - один запрос очереди: общий конверт плюс полезная нагрузка варианта
type Request struct {
	Variant    *Variant
	Parameters map[string]string
	Document   *models.DocumentUpload
	undo       *capture.UndoRequest
	Records    []*models.Record
	Children   []*Request
	models.Envelope
}

func newRequest(v *Variant, mode models.RequestMode) *Request {
	return &Request{
		Variant: v,
		Envelope: models.Envelope{
			ID:             -1,
			Kind:           v.Kind(),
			Mode:           mode,
			Title:          v.DefaultTitle,
			Timestamp:      time.Now(),
			GroupRequestNr: models.NoGroup,
		},
	}
}

// New создает несохраненный запрос процесса process
func New(process models.ProcessType, mode models.RequestMode) *Request {
	return newRequest(VariantFor(models.Kind{ProcessType: process}), mode)
}

// NewRecordRequest создает запрос с изменениями записей.
// Изменения одной записи объединяются.
func NewRecordRequest(process models.ProcessType, mode models.RequestMode, records ...*models.Record) *Request {
	v := VariantFor(models.Kind{RequestType: models.RequestTypeRecords, ProcessType: process})
	req := newRequest(v, mode)
	for _, rec := range records {
		req.AddRecord(rec)
	}
	return req
}

// NewDocumentUpload создает запрос загрузки документа
func NewDocumentUpload(mode models.RequestMode, doc *models.DocumentUpload) *Request {
	req := newRequest(variants[models.ProcessDocumentUpload], mode)
	req.Document = doc
	if doc != nil && doc.Size == 0 {
		doc.Size = int64(len(doc.Data))
	}
	return req
}

// NewSettings создает запрос изменения настроек
func NewSettings(mode models.RequestMode, params map[string]string) *Request {
	req := newRequest(variants[models.ProcessSettings], mode)
	req.Parameters = params
	return req
}

// NewMulti создает составной запрос; дочерние запросы выполняются по порядку
func NewMulti(mode models.RequestMode, children ...*Request) *Request {
	req := newRequest(variants[models.ProcessMulti], mode)
	for _, child := range children {
		child.Mode = mode
		req.Children = append(req.Children, child)
	}
	return req
}

// AddRecord добавляет изменение записи, объединяя его с изменением той же записи.
// Возвращает запись запроса, в которой оказалось изменение.
func (r *Request) AddRecord(rec *models.Record) *models.Record {
	b := capture.NewBuilder()
	b.Adopt(r.Records)
	merged := b.Add(rec)
	r.Records = b.Records()
	return merged
}

// IsMulti reports whether the request is a composite of child requests
func (r *Request) IsMulti() bool {
	return r.Variant.Payload == PayloadChildren
}

// HasRecords reports whether the request carries record changes
func (r *Request) HasRecords() bool {
	if r.Variant.Payload == PayloadRecords {
		return true
	}
	for _, child := range r.Children {
		if child.HasRecords() {
			return true
		}
	}
	return false
}

// CanSync reports whether the request may be replayed: no sticky error is set
func (r *Request) CanSync() bool {
	return !r.HasError()
}

// DocumentSize returns the upload size, 0 for non-upload requests
func (r *Request) DocumentSize() int64 {
	if r.Document == nil {
		return 0
	}
	return r.Document.Size
}

// all возвращает запрос и все его дочерние запросы
func (r *Request) all() []*Request {
	result := []*Request{r}
	for _, child := range r.Children {
		result = append(result, child.all()...)
	}
	return result
}
