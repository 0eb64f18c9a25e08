package boltdb

import (
	"context"
	"crypto/rand"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketBlobs = []byte("blobs")
	bucketMeta  = []byte("meta")

	keySealSalt = []byte("seal_salt")
)

// Storage хранит содержимое документов, которые слишком велики для строки documentuploads
type Storage struct {
	db     *bbolt.DB
	sealer *sealer
}

// New creates a new BoltDB blob storage instance
// dbPath is the path to the BoltDB database file.
// A non-empty secret turns on sealing: blobs are encrypted at rest with a key derived from it.
func New(ctx context.Context, dbPath, secret string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	if secret != "" {
		salt, err := s.sealSalt()
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to load seal salt: %w", err)
		}
		s.sealer = newSealer(secret, salt)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Sealed reports whether blobs are encrypted at rest
func (s *Storage) Sealed() bool {
	return s.sealer != nil
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketBlobs, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// sealSalt возвращает соль хранилища, создавая ее при первом открытии
func (s *Storage) sealSalt() ([]byte, error) {
	var salt []byte

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)

		if existing := bucket.Get(keySealSalt); existing != nil {
			salt = append([]byte(nil), existing...)
			return nil
		}

		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return fmt.Errorf("failed to generate salt: %w", err)
		}
		return bucket.Put(keySealSalt, salt)
	})
	if err != nil {
		return nil, err
	}

	return salt, nil
}
