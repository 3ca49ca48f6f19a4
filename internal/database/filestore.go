package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	tmpSuffix    = ".tmp"
	backupSuffix = ".bak"
)

// FileStore implements KeyValueStore as one JSON object file {key: value}.
// Every write replaces the file through a temp file and rename; the previous
// file is kept as a backup next to it.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on first write.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// GetItem returns the value stored under key
func (s *FileStore) GetItem(_ context.Context, key string) (string, bool, error) {
	items, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// SetItem stores value under key and rewrites the file
func (s *FileStore) SetItem(_ context.Context, key, value string) error {
	items, err := s.read()
	if err != nil {
		// An unreadable file is replaced rather than blocking every future write
		slog.Warn("replacing unreadable storage file", "path", s.path, "error", err)
		items = map[string]string{}
	}
	items[key] = value
	return s.write(items)
}

// RemoveItem deletes key and rewrites the file
func (s *FileStore) RemoveItem(_ context.Context, key string) error {
	items, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.write(items)
}

// Close is a no-op; the file is not held open between calls
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse storage file: %w", err)
	}
	return items, nil
}

func (s *FileStore) write(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	tmpFile := s.path + tmpSuffix
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		// Copy rather than rename so the live file never disappears
		if prev, err := os.ReadFile(s.path); err == nil {
			if err := os.WriteFile(s.path+backupSuffix, prev, 0o644); err != nil {
				slog.Warn("failed to write storage backup", "error", err)
			}
		}
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
