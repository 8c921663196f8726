package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/export"
	"github.com/alexanderramin/vitalis/internal/repository"
)

type historyService struct {
	history  repository.HistoryRepo
	observer UseCaseObserver
}

func NewHistoryService(history repository.HistoryRepo, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		history:  history,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) List(ctx context.Context) ([]*domain.HistoryEntry, error) {
	return s.history.List(ctx)
}

func (s *historyService) Count(ctx context.Context) (int, error) {
	return s.history.Count(ctx)
}

func (s *historyService) Trend(ctx context.Context) ([]TrendPoint, error) {
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}
	points := make([]TrendPoint, len(entries))
	for i, e := range entries {
		points[i] = TrendPoint{Seq: e.Seq, Timestamp: e.Timestamp, BMI: e.BMI, Category: e.Category}
	}
	return points, nil
}

func (s *historyService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	return s.exportWith(ctx, "csv", w, export.WriteCSV)
}

func (s *historyService) ExportXLSX(ctx context.Context, w io.Writer) (int, error) {
	return s.exportWith(ctx, "xlsx", w, export.WriteXLSX)
}

func (s *historyService) exportWith(
	ctx context.Context,
	format string,
	w io.Writer,
	write func(io.Writer, []*domain.HistoryEntry) error,
) (n int, err error) {
	startedAt := time.Now()
	fields := map[string]any{"format": format}
	defer observe(ctx, s.observer, UseCaseExport, startedAt, fields, &err)

	var entries []*domain.HistoryEntry
	entries, err = s.history.List(ctx)
	if err != nil {
		return 0, err
	}
	if err = write(w, entries); err != nil {
		return 0, fmt.Errorf("exporting %s: %w", format, err)
	}
	fields["entries"] = len(entries)
	return len(entries), nil
}
