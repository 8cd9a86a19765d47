package storage

import (
	"sync"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
)

type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, model.ErrStorageKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStorage) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}
