package storage

import "context"

//go:generate moq -out blobstorage_mock.go . BlobStorage

// BlobStorage хранит содержимое крупных документов вне основной базы
type BlobStorage interface {
	// PutBlob stores data under key, replacing any previous value
	PutBlob(ctx context.Context, key string, data []byte) error

	// GetBlob returns the data stored under key
	// Returns ErrBlobNotFound if key doesn't exist
	GetBlob(ctx context.Context, key string) ([]byte, error)

	// DeleteBlob removes key; deleting a missing key is not an error
	DeleteBlob(ctx context.Context, key string) error

	// Clear removes all blobs
	Clear(ctx context.Context) error
}
