package models

import (
	"fmt"
	"regexp"
	"strings"
)

// RecordMode - режим изменения записи CRM внутри запроса
type RecordMode string

const (
	RecordModeNew        RecordMode = "New"
	RecordModeUpdate     RecordMode = "Update"
	RecordModeDelete     RecordMode = "Delete"
	RecordModeSync       RecordMode = "Sync"
	RecordModeSyncUpdate RecordMode = "SyncUpdate"
)

// IsSync reports whether the record mirrors an already server-confirmed record
func (m RecordMode) IsSync() bool {
	return strings.HasPrefix(string(m), "Sync")
}

// FieldChange - изменение одного поля записи (строка recordfields)
type FieldChange struct {
	OldValue    string `json:"old_value" xml:"old,attr,omitempty"`
	NewValue    string `json:"new_value" xml:",chardata"`
	FieldID     int    `json:"field_id" xml:"fieldId,attr"`
	OfflineOnly bool   `json:"offline_only,omitempty" xml:"offline,attr,omitempty"`
}

// LinkChange - связь записи с другой записью (строка recordlinks)
type LinkChange struct {
	InfoArea string `json:"info_area" xml:"infoAreaId,attr"`
	RecordID string `json:"record_id" xml:"recordId,attr"`
	LinkID   int    `json:"link_id" xml:"linkId,attr"`
}

// Key returns the identity of a link within one record
func (l LinkChange) Key() string {
	return fmt.Sprintf("%s:%d", l.InfoArea, l.LinkID)
}

// Record - изменение одной записи CRM внутри запроса (строка records)
type Record struct {
	Options  map[string]string `json:"options,omitempty" xml:"-"`
	InfoArea string            `json:"info_area" xml:"infoAreaId,attr"`
	RecordID string            `json:"record_id" xml:"recordId,attr"`
	Mode     RecordMode        `json:"mode" xml:"mode,attr"`
	Fields   []FieldChange     `json:"fields,omitempty" xml:"field"`
	Links    []LinkChange      `json:"links,omitempty" xml:"link"`
	// RecordNr - порядковый номер записи внутри запроса, присваивается при сохранении
	RecordNr int `json:"record_nr" xml:"recordNr,attr"`
}

// Identification returns "<infoArea>.<recordID>"
func (r *Record) Identification() string {
	return r.InfoArea + "." + r.RecordID
}

// Field returns the change for fieldID if present
func (r *Record) Field(fieldID int) (FieldChange, bool) {
	for _, f := range r.Fields {
		if f.FieldID == fieldID {
			return f, true
		}
	}
	return FieldChange{}, false
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	c := &Record{
		InfoArea: r.InfoArea,
		RecordID: r.RecordID,
		Mode:     r.Mode,
		RecordNr: r.RecordNr,
	}
	if r.Options != nil {
		c.Options = make(map[string]string, len(r.Options))
		for k, v := range r.Options {
			c.Options[k] = v
		}
	}
	c.Fields = append([]FieldChange(nil), r.Fields...)
	c.Links = append([]LinkChange(nil), r.Links...)
	return c
}

var generatedPlaceholder = regexp.MustCompile(`^new[0-9a-f]{12}$`)

// PlaceholderID builds the local id of a record created by request requestNr
func PlaceholderID(requestNr int64, recordNr int) string {
	return fmt.Sprintf("new%08x%04x", requestNr, recordNr)
}

// IsGeneratedPlaceholder reports whether id was produced by PlaceholderID
func IsGeneratedPlaceholder(id string) bool {
	return generatedPlaceholder.MatchString(id)
}

// IsServerPlaceholder reports whether id is a "newid:<n>-<request>" id
func IsServerPlaceholder(id string) bool {
	return strings.HasPrefix(id, "newid:")
}

// IsLocalID reports whether id is any not-yet-server-assigned record id
func IsLocalID(id string) bool {
	return id == "" || strings.HasPrefix(id, "new")
}

// DocumentUpload - загрузка документа, привязанная к запросу 1:1
type DocumentUpload struct {
	RecordID string `json:"record_id"`
	InfoArea string `json:"info_area"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	// BlobKey непустой, если содержимое хранится во внешнем blob-хранилище
	BlobKey string `json:"blob_key,omitempty"`
	Data    []byte `json:"-"`
	Size    int64  `json:"size"`
	FieldID int    `json:"field_id"`
}

// FileBacked reports whether the payload lives in the blob store
func (d *DocumentUpload) FileBacked() bool {
	return d.BlobKey != ""
}
