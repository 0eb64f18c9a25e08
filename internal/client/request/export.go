package request

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/offlinesync/internal/models"
)

type exportError struct {
	Message  string `xml:",chardata"`
	Stack    string `xml:"stack,attr,omitempty"`
	Code     int    `xml:"code,attr"`
	BaseCode int    `xml:"baseCode,attr,omitempty"`
}

type exportDocument struct {
	FileName string `xml:"fileName,attr"`
	MimeType string `xml:"mimeType,attr,omitempty"`
	InfoArea string `xml:"infoAreaId,attr,omitempty"`
	RecordID string `xml:"recordId,attr,omitempty"`
	BlobKey  string `xml:"blobKey,attr,omitempty"`
	Size     int64  `xml:"size,attr"`
	FieldID  int    `xml:"fieldId,attr"`
}

type exportParameter struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type exportRequest struct {
	XMLName         xml.Name          `xml:"request"`
	Error           *exportError      `xml:"error,omitempty"`
	Document        *exportDocument   `xml:"document,omitempty"`
	ServerRequestNr *int64            `xml:"serverRequestNr,attr,omitempty"`
	FollowUpRoot    *int64            `xml:"followUpRoot,attr,omitempty"`
	Mode            string            `xml:"mode,attr"`
	Title           string            `xml:"title,omitempty"`
	Detail          string            `xml:"detail,omitempty"`
	AppVersion      string            `xml:"appVersion,attr,omitempty"`
	Timestamp       string            `xml:"timestamp,attr"`
	Kind            models.Kind       `xml:"kind"`
	Records         []*models.Record  `xml:"records>record,omitempty"`
	Parameters      []exportParameter `xml:"parameters>parameter,omitempty"`
	RelatedInfo     []exportParameter `xml:"relatedInfo>info,omitempty"`
	Children        []*exportRequest  `xml:"children>request,omitempty"`
	ID              int64             `xml:"nr,attr"`
	Blocked         bool              `xml:"blocked,attr,omitempty"`
	Speculative     bool              `xml:"applicationRequest,attr,omitempty"`
}

// Export описывает запрос в XML для просмотра пользователем или службой поддержки
func Export(req *Request) ([]byte, error) {
	data, err := xml.MarshalIndent(toExport(req), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export request %d: %w", req.ID, err)
	}
	return append([]byte(xml.Header), data...), nil
}

func toExport(req *Request) *exportRequest {
	e := &exportRequest{
		ID:              req.ID,
		Kind:            req.Kind,
		Mode:            req.Mode.String(),
		Title:           req.Title,
		Detail:          req.Detail,
		AppVersion:      req.AppVersion,
		Timestamp:       req.Timestamp.UTC().Format(time.RFC3339),
		ServerRequestNr: req.ServerRequestNr,
		FollowUpRoot:    req.FollowUpRoot,
		Records:         req.Records,
		Parameters:      sortedParameters(req.Parameters),
		RelatedInfo:     sortedParameters(req.RelatedInfo),
		Blocked:         req.IsBlocked(),
		Speculative:     req.ApplicationRequest,
	}

	if stored := req.StoredError(); stored != nil {
		e.Error = &exportError{
			Message:  stored.Message,
			Stack:    stored.Stack,
			Code:     stored.Code,
			BaseCode: stored.BaseCode,
		}
	}

	if doc := req.Document; doc != nil {
		e.Document = &exportDocument{
			FileName: doc.FileName,
			MimeType: doc.MimeType,
			InfoArea: doc.InfoArea,
			RecordID: doc.RecordID,
			BlobKey:  doc.BlobKey,
			Size:     doc.Size,
			FieldID:  doc.FieldID,
		}
	}

	for _, child := range req.Children {
		e.Children = append(e.Children, toExport(child))
	}

	return e
}

func sortedParameters(m map[string]string) []exportParameter {
	if len(m) == 0 {
		return nil
	}
	params := make([]exportParameter, 0, len(m))
	for k, v := range m {
		params = append(params, exportParameter{Name: k, Value: v})
	}
	sort.Slice(params, func(i, j int) bool {
		return params[i].Name < params[j].Name
	})
	return params
}
