package boltdb

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для ключа хранилища документов
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	keyLen        = 32
	saltSize      = 32
	nonceSize     = 12
)

// sealer шифрует blob-ы AES-256-GCM.
// Формат: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
type sealer struct {
	aead cipher.AEAD
}

func newSealer(secret string, salt []byte) *sealer {
	key := argon2.IDKey([]byte(secret), salt, argon2Time, argon2Memory, argon2Threads, keyLen)

	// ключ всегда 32 байта, ошибок здесь быть не может
	block, _ := aes.NewCipher(key)
	aead, _ := cipher.NewGCM(block)

	return &sealer{aead: aead}
}

// seal шифрует blob; key используется как associated data, чтобы blob нельзя было подменить другим
func (s *sealer) seal(key string, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	result := make([]byte, 0, nonceSize+len(plaintext)+s.aead.Overhead())
	result = append(result, nonce...)
	return s.aead.Seal(result, nonce, plaintext, []byte(key)), nil
}

func (s *sealer) open(key string, sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("sealed blob too short")
	}

	plaintext, err := s.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], []byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open blob: authentication failed or corrupted data: %w", err)
	}
	return plaintext, nil
}
