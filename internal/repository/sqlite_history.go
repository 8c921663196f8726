package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/vitalis/internal/db"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/google/uuid"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

const historyColumns = `seq, id, recorded_at, name, age, gender, height_m, weight_kg,
	bmi, bmr, category, activity, screen_time_hours, water_liters, smoking`

// Append stores e and fills in its ID (when empty) and its submission
// sequence number.
func (r *SQLiteHistoryRepo) Append(ctx context.Context, e *domain.HistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO history_entries (id, recorded_at, name, age, gender, height_m, weight_kg,
			bmi, bmr, category, activity, screen_time_hours, water_liters, smoking)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING seq`
	err := r.db.QueryRowContext(ctx, query,
		e.ID,
		formatTime(e.Timestamp),
		e.Name,
		e.Age,
		string(e.Gender),
		e.HeightM,
		e.WeightKg,
		e.BMI,
		e.BMR,
		e.Category.String(),
		int(e.Activity),
		e.ScreenTimeHours,
		e.WaterLiters,
		string(e.Smoking),
	).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM history_entries WHERE id = ?`, id)
	e, err := scanHistoryEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("history entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// List returns every entry in submission order.
func (r *SQLiteHistoryRepo) List(ctx context.Context) ([]*domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+historyColumns+` FROM history_entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing history entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		e, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteHistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryEntry(row rowScanner) (*domain.HistoryEntry, error) {
	var (
		e                                   domain.HistoryEntry
		recordedAt, gender, category, smoke string
		activity                            int
	)
	err := row.Scan(
		&e.Seq, &e.ID, &recordedAt, &e.Name, &e.Age, &gender, &e.HeightM, &e.WeightKg,
		&e.BMI, &e.BMR, &category, &activity, &e.ScreenTimeHours, &e.WaterLiters, &smoke,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	if e.Timestamp, err = parseTime("recorded_at", recordedAt); err != nil {
		return nil, err
	}
	if e.Category, err = domain.ParseCategory(category); err != nil {
		return nil, fmt.Errorf("history entry %s: %w", e.ID, err)
	}
	e.Gender = domain.Gender(gender)
	e.Activity = domain.ActivityLevel(activity)
	e.Smoking = domain.Answer(smoke)
	return &e, nil
}
