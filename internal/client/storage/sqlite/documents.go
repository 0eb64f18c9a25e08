package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/models"
)

// SaveDocument inserts or replaces the document upload of request nr.
// For file-backed documents only the blob key is stored, Data stays empty.
func (t *Tx) SaveDocument(ctx context.Context, nr int64, doc *models.DocumentUpload) error {
	var data any
	if !doc.FileBacked() {
		data = doc.Data
	}

	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO documentuploads
			(requestnr, recordid, infoareaid, fieldid, filename, mimetype, size, data, blobkey)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(requestnr) DO UPDATE SET
			recordid = excluded.recordid,
			infoareaid = excluded.infoareaid,
			fieldid = excluded.fieldid,
			filename = excluded.filename,
			mimetype = excluded.mimetype,
			size = excluded.size,
			data = excluded.data,
			blobkey = excluded.blobkey
	`,
		nr,
		doc.RecordID,
		doc.InfoArea,
		doc.FieldID,
		doc.FileName,
		doc.MimeType,
		doc.Size,
		data,
		doc.BlobKey,
	)
	if err != nil {
		return fmt.Errorf("failed to save document of request %d: %w", nr, err)
	}
	return nil
}

// LoadDocument returns the document upload attached to request nr
// Returns storage.ErrDocumentNotFound if there is none
func (t *Tx) LoadDocument(ctx context.Context, nr int64) (*models.DocumentUpload, error) {
	doc := &models.DocumentUpload{}
	var recordID, infoArea, mimeType, blobKey sql.NullString

	err := t.tx.QueryRowContext(ctx, `
		SELECT recordid, infoareaid, fieldid, filename, mimetype, size, data, blobkey
		FROM documentuploads WHERE requestnr = ?
	`, nr).Scan(
		&recordID,
		&infoArea,
		&doc.FieldID,
		&doc.FileName,
		&mimeType,
		&doc.Size,
		&doc.Data,
		&blobKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document of request %d: %w", nr, err)
	}

	doc.RecordID = recordID.String
	doc.InfoArea = infoArea.String
	doc.MimeType = mimeType.String
	doc.BlobKey = blobKey.String

	return doc, nil
}

// DocumentSize returns the payload size of the upload attached to request nr, 0 if none
func (t *Tx) DocumentSize(ctx context.Context, nr int64) (int64, error) {
	var size int64
	err := t.tx.QueryRowContext(ctx,
		"SELECT size FROM documentuploads WHERE requestnr = ?", nr).Scan(&size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get document size of request %d: %w", nr, err)
	}
	return size, nil
}
