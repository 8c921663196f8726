package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/repository"
	"github.com/alexanderramin/vitalis/internal/testutil"
)

func setupHistory(t *testing.T) repository.HistoryRepo {
	t.Helper()
	return repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// failingHistory fails every append with err.
type failingHistory struct {
	repository.HistoryRepo
	err error
}

func (f failingHistory) Append(context.Context, *domain.HistoryEntry) error {
	return f.err
}
