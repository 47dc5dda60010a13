package store

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrResetNotSupported = errors.New("reset is not supported on a prefixed storage")
)

// KVStorage keeps its keys under keyPrefix of a backend that may be shared with other users.
// Reset and Close are refused because they would act on the whole backend; the backend owner
// closes it.
type KVStorage struct {
	backend   fiber.Storage
	keyPrefix string
}

func (s *KVStorage) Get(key string) ([]byte, error) {
	return s.backend.Get(s.keyPrefix + key)
}

func (s *KVStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.backend.Set(s.keyPrefix+key, val, exp)
}

func (s *KVStorage) Delete(key string) error {
	return s.backend.Delete(s.keyPrefix + key)
}

func (s *KVStorage) Reset() error {
	return ErrResetNotSupported
}

func (s *KVStorage) Close() error {
	return nil
}

func NewKVStorage(backend fiber.Storage, keyPrefix string) *KVStorage {
	return &KVStorage{
		backend:   backend,
		keyPrefix: keyPrefix,
	}
}
