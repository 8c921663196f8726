package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSessionStore()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insertEntry(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO history_entries
		(id, recorded_at, name, age, gender, height_m, weight_kg, bmi, bmr, category,
		 activity, screen_time_hours, water_liters, smoking)
		VALUES (?, '2026-01-01T00:00:00Z', 'x', 30, 'Male', 1.8, 80, 24.69, 1800, 'Normal Weight', 2, 3, 2, 'no')`, id)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesHistoryTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='history_entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "history_entries", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_history_recorded'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_HistoryIsAppendOnly(t *testing.T) {
	db := openTestDB(t)
	insertEntry(t, db, "a")

	_, err := db.Exec(`UPDATE history_entries SET bmi = 99 WHERE id = 'a'`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "immutable")

	_, err = db.Exec(`DELETE FROM history_entries WHERE id = 'a'`)
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM history_entries`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_RejectsUnknownGender(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO history_entries
		(id, recorded_at, name, age, gender, height_m, weight_kg, bmi, bmr, category,
		 activity, screen_time_hours, water_liters, smoking)
		VALUES ('b', '2026-01-01T00:00:00Z', 'x', 30, 'Other', 1.8, 80, 24.69, 1800, 'Normal Weight', 2, 3, 2, 'no')`)
	assert.Error(t, err)
}

func TestOpenSessionStore_StoresAreIsolated(t *testing.T) {
	first := openTestDB(t)
	insertEntry(t, first, "only-in-first")

	second := openTestDB(t)
	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM history_entries`).Scan(&count))
	assert.Equal(t, 0, count)
}
