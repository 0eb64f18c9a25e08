package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iudanet/offlinesync/internal/models"
)

// InsertRecord writes the record row of a request; RecordNr must already be assigned
func (t *Tx) InsertRecord(ctx context.Context, requestNr int64, rec *models.Record) error {
	options, err := marshalMap(rec.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal record options: %w", err)
	}

	_, err = t.tx.ExecContext(ctx, `
		INSERT INTO records (requestnr, recordnr, infoareaid, recordid, mode, options)
		VALUES (?, ?, ?, ?, ?, ?)
	`, requestNr, rec.RecordNr, rec.InfoArea, rec.RecordID, string(rec.Mode), options)
	if err != nil {
		return fmt.Errorf("failed to insert record %d/%d: %w", requestNr, rec.RecordNr, err)
	}
	return nil
}

// InsertField writes one field delta of a record
func (t *Tx) InsertField(ctx context.Context, requestNr int64, recordNr int, f models.FieldChange) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO recordfields (requestnr, recordnr, fieldid, oldvalue, newvalue, offline)
		VALUES (?, ?, ?, ?, ?, ?)
	`, requestNr, recordNr, f.FieldID, f.OldValue, f.NewValue, boolToInt(f.OfflineOnly))
	if err != nil {
		return fmt.Errorf("failed to insert field %d of record %d/%d: %w", f.FieldID, requestNr, recordNr, err)
	}
	return nil
}

// InsertLink writes one link delta of a record
func (t *Tx) InsertLink(ctx context.Context, requestNr int64, recordNr int, l models.LinkChange) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO recordlinks (requestnr, recordnr, infoareaid, linkid, linkrecordid)
		VALUES (?, ?, ?, ?, ?)
	`, requestNr, recordNr, l.InfoArea, l.LinkID, l.RecordID)
	if err != nil {
		return fmt.Errorf("failed to insert link %s of record %d/%d: %w", l.Key(), requestNr, recordNr, err)
	}
	return nil
}

// DeleteRecords removes the record, field and link rows of a request
func (t *Tx) DeleteRecords(ctx context.Context, requestNr int64) error {
	statements := []string{
		"DELETE FROM recordfields WHERE requestnr = ?",
		"DELETE FROM recordlinks WHERE requestnr = ?",
		"DELETE FROM records WHERE requestnr = ?",
	}
	for _, stmt := range statements {
		if _, err := t.tx.ExecContext(ctx, stmt, requestNr); err != nil {
			return fmt.Errorf("failed to delete records of request %d: %w", requestNr, err)
		}
	}
	return nil
}

// LoadRecords returns the record deltas of a request ordered by recordnr
func (t *Tx) LoadRecords(ctx context.Context, requestNr int64) ([]*models.Record, error) {
	records, err := t.loadRecordRows(ctx, requestNr)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	byNr := make(map[int]*models.Record, len(records))
	for _, rec := range records {
		byNr[rec.RecordNr] = rec
	}

	if err := t.loadFieldRows(ctx, requestNr, byNr); err != nil {
		return nil, err
	}
	if err := t.loadLinkRows(ctx, requestNr, byNr); err != nil {
		return nil, err
	}

	return records, nil
}

// RemapRecordID replaces oldID by newID in every record and link row of the queue.
// Returns the number of rows changed; a second call with the same ids changes nothing.
func (t *Tx) RemapRecordID(ctx context.Context, oldID, newID string) (int64, error) {
	if oldID == newID {
		return 0, nil
	}

	var total int64
	statements := []string{
		"UPDATE records SET recordid = ? WHERE recordid = ?",
		"UPDATE recordlinks SET linkrecordid = ? WHERE linkrecordid = ?",
		"UPDATE documentuploads SET recordid = ? WHERE recordid = ?",
	}
	for _, stmt := range statements {
		result, err := t.tx.ExecContext(ctx, stmt, newID, oldID)
		if err != nil {
			return 0, fmt.Errorf("failed to remap %s to %s: %w", oldID, newID, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		total += n
	}

	return total, nil
}

func (t *Tx) loadRecordRows(ctx context.Context, requestNr int64) (records []*models.Record, err error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT recordnr, infoareaid, recordid, mode, options
		FROM records WHERE requestnr = ? ORDER BY recordnr ASC
	`, requestNr)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		rec := &models.Record{}
		var mode string
		var options sql.NullString
		if err := rows.Scan(&rec.RecordNr, &rec.InfoArea, &rec.RecordID, &mode, &options); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Mode = models.RecordMode(mode)
		if options.Valid && options.String != "" {
			if err := json.Unmarshal([]byte(options.String), &rec.Options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record options: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func (t *Tx) loadFieldRows(ctx context.Context, requestNr int64, byNr map[int]*models.Record) (err error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT recordnr, fieldid, oldvalue, newvalue, offline
		FROM recordfields WHERE requestnr = ? ORDER BY recordnr, fieldid
	`, requestNr)
	if err != nil {
		return fmt.Errorf("failed to query record fields: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var recordNr, offline int
		var oldValue, newValue sql.NullString
		var f models.FieldChange
		if err := rows.Scan(&recordNr, &f.FieldID, &oldValue, &newValue, &offline); err != nil {
			return fmt.Errorf("failed to scan record field: %w", err)
		}
		f.OldValue = oldValue.String
		f.NewValue = newValue.String
		f.OfflineOnly = intToBool(offline)

		if rec, ok := byNr[recordNr]; ok {
			rec.Fields = append(rec.Fields, f)
		}
	}

	return rows.Err()
}

func (t *Tx) loadLinkRows(ctx context.Context, requestNr int64, byNr map[int]*models.Record) (err error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT recordnr, infoareaid, linkid, linkrecordid
		FROM recordlinks WHERE requestnr = ? ORDER BY recordnr, infoareaid, linkid
	`, requestNr)
	if err != nil {
		return fmt.Errorf("failed to query record links: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var recordNr int
		var l models.LinkChange
		if err := rows.Scan(&recordNr, &l.InfoArea, &l.LinkID, &l.RecordID); err != nil {
			return fmt.Errorf("failed to scan record link: %w", err)
		}
		if rec, ok := byNr[recordNr]; ok {
			rec.Links = append(rec.Links, l)
		}
	}

	return rows.Err()
}
