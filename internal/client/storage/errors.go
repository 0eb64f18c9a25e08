package storage

import "errors"

// Common client storage errors
var (
	// ErrRequestNotFound indicates that a queued request was not found
	ErrRequestNotFound = errors.New("request not found")

	// ErrDocumentNotFound indicates that a request has no document upload attached
	ErrDocumentNotFound = errors.New("document upload not found")

	// ErrBlobNotFound indicates that a document blob was not found
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSchema indicates that the local schema could not be created or migrated
	ErrSchema = errors.New("schema migration failed")
)
