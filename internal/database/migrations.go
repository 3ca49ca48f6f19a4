package database

import (
	"context"
	"database/sql"
)

// schemaVersion is bumped whenever a migration step is appended
const schemaVersion = 1

// runMigrations creates the key-value schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS kv_store (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}

		var current int
		if err := tx.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
			return err
		}
		if current >= schemaVersion {
			return nil
		}

		// PRAGMA does not accept bound parameters
		_, err := tx.ExecContext(ctx, "PRAGMA user_version = 1")
		return err
	})
}
