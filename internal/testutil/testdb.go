package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/vitalis/internal/db"
)

// NewTestDB creates a fresh session store with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenSessionStore()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
