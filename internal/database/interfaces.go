// Package database defines the storage backends that hold the workout snapshot
package database

import "context"

// KeyValueStore is a string key-value store, the local equivalent of browser storage.
// The workout service keeps its entire snapshot under a single key.
type KeyValueStore interface {
	// GetItem returns the value for key and whether it was present
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, overwriting any prior value
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key; removing an absent key is not an error
	RemoveItem(ctx context.Context, key string) error

	// Close releases the backend
	Close() error
}
