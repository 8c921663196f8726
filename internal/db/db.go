package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database. Its contents die with the
// last connection, so the session log never outlives the process.
const MemoryDSN = ":memory:"

// OpenDB opens a SQLite database and runs migrations.
// The pool is pinned to one connection: every new connection to ":memory:"
// would otherwise see its own empty database.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenSessionStore opens the in-memory store backing one application run.
func OpenSessionStore() (*sql.DB, error) {
	return OpenDB(MemoryDSN)
}
