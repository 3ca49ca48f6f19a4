package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================================
// SHARED BACKEND CONTRACT
// ============================================================================

func backends(t *testing.T) map[string]KeyValueStore {
	t.Helper()

	sqliteStore, err := OpenSQLiteStore(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "data", "workouts.json"))
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	return map[string]KeyValueStore{
		"sqlite": sqliteStore,
		"file":   fileStore,
	}
}

func TestKeyValueStore_Contract(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := kv.GetItem(ctx, "fitnessWorkouts"); err != nil || ok {
				t.Fatalf("GetItem on empty store = ok:%v err:%v, want absent", ok, err)
			}

			if err := kv.SetItem(ctx, "fitnessWorkouts", `{"a":1}`); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := kv.SetItem(ctx, "fitnessWorkouts", `{"b":2}`); err != nil {
				t.Fatalf("SetItem overwrite failed: %v", err)
			}
			if err := kv.SetItem(ctx, "other", "x"); err != nil {
				t.Fatalf("SetItem other failed: %v", err)
			}

			got, ok, err := kv.GetItem(ctx, "fitnessWorkouts")
			if err != nil || !ok {
				t.Fatalf("GetItem = ok:%v err:%v", ok, err)
			}
			if got != `{"b":2}` {
				t.Errorf("GetItem = %q, want overwritten value", got)
			}

			if err := kv.RemoveItem(ctx, "fitnessWorkouts"); err != nil {
				t.Fatalf("RemoveItem failed: %v", err)
			}
			if err := kv.RemoveItem(ctx, "missing"); err != nil {
				t.Errorf("RemoveItem of absent key should not fail: %v", err)
			}
			if _, ok, _ := kv.GetItem(ctx, "fitnessWorkouts"); ok {
				t.Error("key should be gone after RemoveItem")
			}
			if v, ok, _ := kv.GetItem(ctx, "other"); !ok || v != "x" {
				t.Error("unrelated key should survive RemoveItem")
			}
		})
	}
}

// ============================================================================
// PERSISTENCE ACROSS RESTARTS
// ============================================================================

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fitcal.db")

	store, err := OpenSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.SetItem(ctx, "fitnessWorkouts", "snapshot"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Simulate app restart; migrations must be idempotent
	reopened, err := OpenSQLiteStore(ctx, path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.GetItem(ctx, "fitnessWorkouts")
	if err != nil || !ok || got != "snapshot" {
		t.Errorf("after reopen GetItem = %q ok:%v err:%v", got, ok, err)
	}
}

func TestFileStore_WritesBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workouts.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.SetItem(ctx, "k", "first"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if _, err := os.Stat(path + backupSuffix); !os.IsNotExist(err) {
		t.Error("no backup expected after the first write")
	}

	if err := store.SetItem(ctx, "k", "second"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	backup, err := os.ReadFile(path + backupSuffix)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) == "" || !strings.Contains(string(backup), "first") {
		t.Errorf("backup = %s, want previous contents", backup)
	}
	if _, err := os.Stat(path + tmpSuffix); !os.IsNotExist(err) {
		t.Error("temp file should not remain after write")
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workouts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	store, _ := NewFileStore(path)

	if _, _, err := store.GetItem(ctx, "k"); err == nil {
		t.Error("GetItem on a corrupt file should report an error")
	}

	// Writes recover by replacing the file
	if err := store.SetItem(ctx, "k", "v"); err != nil {
		t.Fatalf("SetItem over corrupt file failed: %v", err)
	}
	if v, ok, err := store.GetItem(ctx, "k"); err != nil || !ok || v != "v" {
		t.Errorf("GetItem after recovery = %q ok:%v err:%v", v, ok, err)
	}
}
