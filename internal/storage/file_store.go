package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"comanda_manager/internal/apperrors"
)

// FileStore keeps each collection in its own JSON file under a data
// directory. Writes go through a temp file and rename so a crash never
// leaves a half-written collection behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(collection string, dest interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return apperrors.NewCorruptState(collection, err)
	}
	return nil
}

func (s *FileStore) Save(collection string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) SaveAll(collections map[string]interface{}) error {
	for name, value := range collections {
		if err := s.Save(name, value); err != nil {
			return err
		}
	}
	return nil
}
