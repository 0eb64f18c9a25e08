package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/offlinesync/internal/client/storage"
)

// PutBlob stores data under key, replacing any previous value
func (s *Storage) PutBlob(ctx context.Context, key string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	value := data
	if s.sealer != nil {
		sealed, err := s.sealer.seal(key, data)
		if err != nil {
			return err
		}
		value = sealed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlobs).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to put blob %s: %w", key, err)
	}
	return nil
}

// GetBlob returns the data stored under key
func (s *Storage) GetBlob(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketBlobs).Get([]byte(key))
		if data == nil {
			return storage.ErrBlobNotFound
		}
		// данные bbolt валидны только внутри транзакции
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.sealer != nil {
		return s.sealer.open(key, value)
	}
	return value, nil
}

// DeleteBlob removes key; deleting a missing key is not an error
func (s *Storage) DeleteBlob(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlobs).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Clear removes all blobs
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketBlobs); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketBlobs); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}
	return nil
}
