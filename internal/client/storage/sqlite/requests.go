package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/models"
)

const requestColumns = `
	requestnr, requesttype, processtype, mode,
	error, errorstack, errorcode, baseerrorcode,
	serverrequestnr, followuproot, title, detail, imagename,
	translationkey, relatedinfo, payload, timestamp,
	grouprequestnr, appversion, applicationrequest
`

// SaveRequest inserts or updates the request row.
// Repeating the call within one transaction leaves the same row.
func (t *Tx) SaveRequest(ctx context.Context, env *models.Envelope, payload string) error {
	if !env.Persisted() {
		return fmt.Errorf("request has no id")
	}

	relatedInfo, err := marshalMap(env.RelatedInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal related info: %w", err)
	}

	query := `
		INSERT INTO requests (` + requestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(requestnr) DO UPDATE SET
			requesttype = excluded.requesttype,
			processtype = excluded.processtype,
			mode = excluded.mode,
			error = excluded.error,
			errorstack = excluded.errorstack,
			errorcode = excluded.errorcode,
			baseerrorcode = excluded.baseerrorcode,
			serverrequestnr = excluded.serverrequestnr,
			followuproot = excluded.followuproot,
			title = excluded.title,
			detail = excluded.detail,
			imagename = excluded.imagename,
			translationkey = excluded.translationkey,
			relatedinfo = excluded.relatedinfo,
			payload = excluded.payload,
			timestamp = excluded.timestamp,
			grouprequestnr = excluded.grouprequestnr,
			appversion = excluded.appversion,
			applicationrequest = excluded.applicationrequest
	`

	_, err = t.tx.ExecContext(ctx, query,
		env.ID,
		string(env.Kind.RequestType),
		string(env.Kind.ProcessType),
		int(env.Mode),
		nullString(env.Error),
		nullString(env.ErrorStack),
		nullInt(env.ErrorCode),
		nullInt(env.BaseErrorCode),
		nullInt64(env.ServerRequestNr),
		nullInt64(env.FollowUpRoot),
		env.Title,
		env.Detail,
		env.ImageName,
		env.TranslationKey,
		relatedInfo,
		payload,
		env.Timestamp.UnixMilli(),
		env.GroupRequestNr,
		env.AppVersion,
		boolToInt(env.ApplicationRequest),
	)
	if err != nil {
		return fmt.Errorf("failed to save request %d: %w", env.ID, err)
	}

	return nil
}

// LoadRequest returns the envelope and the raw payload of request nr
// Returns storage.ErrRequestNotFound if the request doesn't exist
func (t *Tx) LoadRequest(ctx context.Context, nr int64) (*models.Envelope, string, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE requestnr = ?`, nr)

	env, payload, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", storage.ErrRequestNotFound
		}
		return nil, "", fmt.Errorf("failed to load request %d: %w", nr, err)
	}

	return env, payload, nil
}

// DeleteRequest removes the request and all of its child rows
func (t *Tx) DeleteRequest(ctx context.Context, nr int64) error {
	// Дочерние таблицы чистим явно: старые базы могли быть созданы без внешних ключей
	statements := []string{
		"DELETE FROM recordfields WHERE requestnr = ?",
		"DELETE FROM recordlinks WHERE requestnr = ?",
		"DELETE FROM records WHERE requestnr = ?",
		"DELETE FROM documentuploads WHERE requestnr = ?",
		"DELETE FROM requests WHERE requestnr = ?",
	}
	for _, stmt := range statements {
		if _, err := t.tx.ExecContext(ctx, stmt, nr); err != nil {
			return fmt.Errorf("failed to delete request %d: %w", nr, err)
		}
	}
	return nil
}

// RequestNumbers returns ids of queued requests in ascending order.
// With topLevelOnly the children of multi-requests are excluded.
func (t *Tx) RequestNumbers(ctx context.Context, topLevelOnly bool) ([]int64, error) {
	query := "SELECT requestnr FROM requests"
	if topLevelOnly {
		query += " WHERE followuproot IS NULL"
	}
	query += " ORDER BY requestnr ASC"

	return t.queryNumbers(ctx, query)
}

// ChildRequestNumbers returns the ids of requests chained to root, ascending
func (t *Tx) ChildRequestNumbers(ctx context.Context, root int64) ([]int64, error) {
	return t.queryNumbers(ctx,
		"SELECT requestnr FROM requests WHERE followuproot = ? ORDER BY requestnr ASC", root)
}

// CountRequests returns the number of top-level queued requests
func (t *Tx) CountRequests(ctx context.Context) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM requests WHERE followuproot IS NULL").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

// CountRequestsWithErrors returns the number of requests carrying a sticky error
func (t *Tx) CountRequestsWithErrors(ctx context.Context) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM requests WHERE error IS NOT NULL").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests with errors: %w", err)
	}
	return count, nil
}

// SetRequestError persists err as the sticky error of request nr
func (t *Tx) SetRequestError(ctx context.Context, nr int64, reqErr *models.RequestError) error {
	var stack, base any
	if reqErr.Stack != "" {
		stack = reqErr.Stack
	}
	if reqErr.BaseCode != 0 {
		base = reqErr.BaseCode
	}

	result, err := t.tx.ExecContext(ctx, `
		UPDATE requests SET error = ?, errorstack = ?, errorcode = ?, baseerrorcode = ?
		WHERE requestnr = ?
	`, reqErr.Message, stack, reqErr.Code, base, nr)
	if err != nil {
		return fmt.Errorf("failed to set error on request %d: %w", nr, err)
	}
	return requireAffected(result, storage.ErrRequestNotFound)
}

// ClearRequestError removes the sticky error of request nr
func (t *Tx) ClearRequestError(ctx context.Context, nr int64) error {
	result, err := t.tx.ExecContext(ctx, `
		UPDATE requests SET error = NULL, errorstack = NULL, errorcode = NULL, baseerrorcode = NULL
		WHERE requestnr = ?
	`, nr)
	if err != nil {
		return fmt.Errorf("failed to clear error on request %d: %w", nr, err)
	}
	return requireAffected(result, storage.ErrRequestNotFound)
}

// ClearAllErrors removes every sticky error except the blocked sentinel.
// Returns the number of requests that were cleared.
func (t *Tx) ClearAllErrors(ctx context.Context) (int64, error) {
	result, err := t.tx.ExecContext(ctx, `
		UPDATE requests SET error = NULL, errorstack = NULL, errorcode = NULL, baseerrorcode = NULL
		WHERE error IS NOT NULL AND (errorcode IS NULL OR errorcode <> ?)
	`, models.ErrorCodeBlocked)
	if err != nil {
		return 0, fmt.Errorf("failed to clear errors: %w", err)
	}
	return result.RowsAffected()
}

// SetServerRequestNr stores the server sequence number assigned to request nr
func (t *Tx) SetServerRequestNr(ctx context.Context, nr, serverNr int64) error {
	result, err := t.tx.ExecContext(ctx,
		"UPDATE requests SET serverrequestnr = ? WHERE requestnr = ?", serverNr, nr)
	if err != nil {
		return fmt.Errorf("failed to set server request nr on %d: %w", nr, err)
	}
	return requireAffected(result, storage.ErrRequestNotFound)
}

func (t *Tx) queryNumbers(ctx context.Context, query string, args ...any) (numbers []int64, err error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query request numbers: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var nr int64
		if err := rows.Scan(&nr); err != nil {
			return nil, fmt.Errorf("failed to scan request number: %w", err)
		}
		numbers = append(numbers, nr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return numbers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*models.Envelope, string, error) {
	var env models.Envelope
	var requestType, processType string
	var mode, applicationRequest int
	var errText, errStack sql.NullString
	var errCode, baseErrCode sql.NullInt64
	var serverNr, followUpRoot, groupNr sql.NullInt64
	var title, detail, imageName, translation sql.NullString
	var relatedInfo, payload, appVersion sql.NullString
	var timestamp int64

	err := row.Scan(
		&env.ID, &requestType, &processType, &mode,
		&errText, &errStack, &errCode, &baseErrCode,
		&serverNr, &followUpRoot, &title, &detail, &imageName,
		&translation, &relatedInfo, &payload, &timestamp,
		&groupNr, &appVersion, &applicationRequest,
	)
	if err != nil {
		return nil, "", err
	}

	env.Kind = models.Kind{
		RequestType: models.RequestType(requestType),
		ProcessType: models.ProcessType(processType),
	}
	env.Mode = models.RequestMode(mode)
	env.Error = stringPtr(errText)
	env.ErrorStack = stringPtr(errStack)
	env.ErrorCode = intPtr(errCode)
	env.BaseErrorCode = intPtr(baseErrCode)
	env.ServerRequestNr = int64Ptr(serverNr)
	env.FollowUpRoot = int64Ptr(followUpRoot)
	env.Title = title.String
	env.Detail = detail.String
	env.ImageName = imageName.String
	env.TranslationKey = translation.String
	env.AppVersion = appVersion.String
	env.Timestamp = time.UnixMilli(timestamp)
	env.GroupRequestNr = models.NoGroup
	if groupNr.Valid {
		env.GroupRequestNr = groupNr.Int64
	}
	env.ApplicationRequest = intToBool(applicationRequest)

	if relatedInfo.Valid && relatedInfo.String != "" {
		if err := json.Unmarshal([]byte(relatedInfo.String), &env.RelatedInfo); err != nil {
			return nil, "", fmt.Errorf("failed to unmarshal related info: %w", err)
		}
	}

	return &env, payload.String, nil
}

func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

func marshalMap(m map[string]string) (any, error) {
	if len(m) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func nullInt64(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	i := ni.Int64
	return &i
}
