package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// StorageKey is the fixed key the cart is serialised under. The payload
// format is plain JSON with no versioning or migration.
const StorageKey = "cart"

// Store persists cart lines between sessions.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
	Clear() error
}

// fileStore keeps the cart as a JSON file in a local directory, one file per
// storage key.
type fileStore struct {
	path string
}

// NewFileStore returns a Store writing to dir/<StorageKey>.json.
func NewFileStore(dir string) Store {
	return &fileStore{path: filepath.Join(dir, StorageKey+".json")}
}

func (s *fileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *fileStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *fileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// memoryStore holds the serialised cart in memory; used in tests and for
// sessions without a writable directory.
type memoryStore struct {
	data []byte
}

// NewMemoryStore returns an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load() ([]Item, error) {
	if s.data == nil {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(s.data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *memoryStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func (s *memoryStore) Clear() error {
	s.data = nil
	return nil
}
