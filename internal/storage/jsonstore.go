package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andy/clienthub/internal/domain"
)

// JSONStore persists the registry as a JSON array of records in a single
// file. This is the default backend.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store writing to path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads every record from the data file. A missing file is an empty
// registry; unreadable or invalid content is an error so the caller can fall
// back to an empty registry instead of working with half-loaded data.
func (s *JSONStore) Load(ctx context.Context) ([]domain.Client, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("data file is not valid JSON: %w", err)
	}

	clients, err := decodeAll(records)
	if err != nil {
		return nil, fmt.Errorf("data file contains an invalid record: %w", err)
	}
	return clients, nil
}

// Save writes all clients atomically: marshal to a temp file in the same
// directory, then rename over the target so a crash mid-write never leaves a
// truncated data file.
func (s *JSONStore) Save(ctx context.Context, clients []domain.Client) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(encodeAll(clients), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal clients: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".clients-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
