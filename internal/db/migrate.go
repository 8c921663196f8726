package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS history_entries (
		seq               INTEGER PRIMARY KEY AUTOINCREMENT,
		id                TEXT NOT NULL UNIQUE,
		recorded_at       TEXT NOT NULL,
		name              TEXT NOT NULL,
		age               INTEGER NOT NULL,
		gender            TEXT NOT NULL CHECK(gender IN ('Male','Female')),
		height_m          REAL NOT NULL,
		weight_kg         REAL NOT NULL,
		bmi               REAL NOT NULL,
		bmr               REAL NOT NULL,
		category          TEXT NOT NULL,
		activity          INTEGER NOT NULL,
		screen_time_hours REAL NOT NULL,
		water_liters      REAL NOT NULL,
		smoking           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_recorded ON history_entries(recorded_at)`,

	// The log is append-only.
	`CREATE TRIGGER IF NOT EXISTS history_entries_no_update
		BEFORE UPDATE ON history_entries
		BEGIN SELECT RAISE(ABORT, 'history entries are immutable'); END`,

	`CREATE TRIGGER IF NOT EXISTS history_entries_no_delete
		BEFORE DELETE ON history_entries
		BEGIN SELECT RAISE(ABORT, 'history entries are immutable'); END`,
}
