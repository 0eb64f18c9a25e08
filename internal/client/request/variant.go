package request

import (
	"github.com/iudanet/offlinesync/internal/models"
)

// Payload - форма полезной нагрузки варианта запроса
type Payload int

const (
	// PayloadParameters - набор параметров в колонке payload
	PayloadParameters Payload = iota
	// PayloadRecords - изменения записей в records/recordfields/recordlinks
	PayloadRecords
	// PayloadDocument - загрузка документа в documentuploads
	PayloadDocument
	// PayloadChildren - дочерние запросы, связанные через followuproot
	PayloadChildren
)

// Variant - возможности одного вида запроса
type Variant struct {
	DefaultTitle string
	RequestType  models.RequestType
	Process      models.ProcessType
	Payload      Payload
	// FixableByUser - ошибку такого запроса пользователь может исправить сам
	FixableByUser bool
	// MergeOnLoad - изменения одной записи объединяются при загрузке из очереди
	MergeOnLoad bool
}

// Kind returns the stored kind of the variant
func (v *Variant) Kind() models.Kind {
	return models.Kind{RequestType: v.RequestType, ProcessType: v.Process}
}

var variants = map[models.ProcessType]*Variant{
	models.ProcessGeneric: {
		DefaultTitle: "Request",
		RequestType:  models.RequestTypeGeneric,
		Process:      models.ProcessGeneric,
		Payload:      PayloadParameters,
	},
	models.ProcessEditRecord: {
		DefaultTitle:  "Edit record",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessEditRecord,
		Payload:       PayloadRecords,
		FixableByUser: true,
	},
	models.ProcessSerialEntry: {
		DefaultTitle:  "Serial entry",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessSerialEntry,
		Payload:       PayloadRecords,
		FixableByUser: true,
		MergeOnLoad:   true,
	},
	models.ProcessSerialEntryOrder: {
		DefaultTitle:  "Order",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessSerialEntryOrder,
		Payload:       PayloadRecords,
		FixableByUser: true,
		MergeOnLoad:   true,
	},
	models.ProcessSerialEntryPOS: {
		DefaultTitle:  "Point of sale",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessSerialEntryPOS,
		Payload:       PayloadRecords,
		FixableByUser: true,
		MergeOnLoad:   true,
	},
	models.ProcessCharacteristics: {
		DefaultTitle:  "Characteristics",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessCharacteristics,
		Payload:       PayloadRecords,
		FixableByUser: true,
	},
	models.ProcessObjectives: {
		DefaultTitle:  "Objectives",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessObjectives,
		Payload:       PayloadRecords,
		FixableByUser: true,
	},
	models.ProcessQuestionnaire: {
		DefaultTitle:  "Questionnaire",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessQuestionnaire,
		Payload:       PayloadRecords,
		FixableByUser: true,
	},
	models.ProcessCopyRecords: {
		DefaultTitle: "Copy records",
		RequestType:  models.RequestTypeRecords,
		Process:      models.ProcessCopyRecords,
		Payload:      PayloadRecords,
	},
	models.ProcessDeleteRecord: {
		DefaultTitle: "Delete record",
		RequestType:  models.RequestTypeRecords,
		Process:      models.ProcessDeleteRecord,
		Payload:      PayloadRecords,
	},
	models.ProcessModifyRecord: {
		DefaultTitle:  "Modify record",
		RequestType:   models.RequestTypeRecords,
		Process:       models.ProcessModifyRecord,
		Payload:       PayloadRecords,
		FixableByUser: true,
	},
	models.ProcessDocumentUpload: {
		DefaultTitle: "Upload document",
		RequestType:  models.RequestTypeDocumentUpload,
		Process:      models.ProcessDocumentUpload,
		Payload:      PayloadDocument,
	},
	models.ProcessSettings: {
		DefaultTitle: "Change settings",
		RequestType:  models.RequestTypeChangeConfig,
		Process:      models.ProcessSettings,
		Payload:      PayloadParameters,
	},
	models.ProcessMulti: {
		DefaultTitle: "Multiple changes",
		RequestType:  models.RequestTypeMulti,
		Process:      models.ProcessMulti,
		Payload:      PayloadChildren,
	},
}

// genericRecords - неизвестный процесс с изменениями записей
var genericRecords = &Variant{
	DefaultTitle: "Record changes",
	RequestType:  models.RequestTypeRecords,
	Process:      models.ProcessGeneric,
	Payload:      PayloadRecords,
}

// VariantFor возвращает вариант для сохраненного вида запроса.
// Неизвестный процесс восстанавливается как generic по типу запроса.
func VariantFor(kind models.Kind) *Variant {
	if kind.ProcessType == models.ProcessGeneric && kind.RequestType == models.RequestTypeRecords {
		return genericRecords
	}
	if v, ok := variants[kind.ProcessType]; ok {
		return v
	}
	switch kind.RequestType {
	case models.RequestTypeRecords:
		return genericRecords
	case models.RequestTypeDocumentUpload:
		return variants[models.ProcessDocumentUpload]
	case models.RequestTypeMulti:
		return variants[models.ProcessMulti]
	case models.RequestTypeChangeConfig:
		return variants[models.ProcessSettings]
	default:
		return variants[models.ProcessGeneric]
	}
}
