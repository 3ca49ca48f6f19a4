// Package testutil holds helpers shared by package tests
package testutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/thenoetrevino/fitcal/internal/database"
)

// ErrInjected is returned by MemoryStore when a failure is injected
var ErrInjected = errors.New("injected storage failure")

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestStore creates an in-memory SQLite key-value store closed at test cleanup
func SetupTestStore(t *testing.T) *database.SQLiteStore {
	t.Helper()
	kv, err := database.OpenSQLiteStore(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}

// MemoryStore is a map-backed KeyValueStore with failure injection
type MemoryStore struct {
	mu      sync.Mutex
	items   map[string]string
	writes  int
	FailGet bool
	FailSet bool
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]string{}}
}

var _ database.KeyValueStore = (*MemoryStore)(nil)

// GetItem returns the stored value
func (m *MemoryStore) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return "", false, ErrInjected
	}
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem stores value and counts the write
func (m *MemoryStore) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return ErrInjected
	}
	m.items[key] = value
	m.writes++
	return nil
}

// RemoveItem deletes key
func (m *MemoryStore) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

// Writes returns how many successful SetItem calls were made
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Raw returns the stored value for key, empty if absent
func (m *MemoryStore) Raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key]
}

// Put seeds a raw value without counting a write
func (m *MemoryStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}
