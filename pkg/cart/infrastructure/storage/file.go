package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
)

type entriesJSON struct {
	Entries map[string]json.RawMessage `json:"entries"`
}

// FileStorage keeps every key in one JSON document on disk.
type FileStorage struct {
	mu       sync.Mutex
	filePath string
}

func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{filePath: filePath}
}

func (s *FileStorage) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, model.ErrStorageKeyNotFound
	}
	return value, nil
}

func (s *FileStorage) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		// an unreadable document is replaced rather than blocking every write
		entries = make(map[string]json.RawMessage)
	}
	if !json.Valid(value) {
		return errors.Errorf("value for %q is not valid JSON", key)
	}
	entries[key] = json.RawMessage(value)

	jsonData, err := json.MarshalIndent(entriesJSON{Entries: entries}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode storage file")
	}

	return errors.Wrapf(os.WriteFile(s.filePath, jsonData, 0666), "failed to write %s", s.filePath)
}

func (s *FileStorage) read() (map[string]json.RawMessage, error) {
	file, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", s.filePath)
	}

	var data entriesJSON
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.filePath)
	}
	if data.Entries == nil {
		return make(map[string]json.RawMessage), nil
	}
	return data.Entries, nil
}
