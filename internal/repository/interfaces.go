package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// HistoryRepo is the append-only session log. There is no
// update or delete method.
type HistoryRepo interface {
	Append(ctx context.Context, e *domain.HistoryEntry) error
	GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error)
	List(ctx context.Context) ([]*domain.HistoryEntry, error)
	Count(ctx context.Context) (int, error)
}
