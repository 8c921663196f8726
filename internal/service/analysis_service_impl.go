package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/engine"
	"github.com/alexanderramin/vitalis/internal/repository"
)

type analysisService struct {
	history  repository.HistoryRepo
	now      func() time.Time
	observer UseCaseObserver
}

// NewAnalysisService wires the submission pipeline. A nil clock means
// time.Now.
func NewAnalysisService(
	history repository.HistoryRepo,
	now func() time.Time,
	observers ...UseCaseObserver,
) AnalysisService {
	if now == nil {
		now = time.Now
	}
	return &analysisService{
		history:  history,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analysisService) Analyze(ctx context.Context, sub domain.Submission) (result *AnalysisResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, UseCaseAnalyze, startedAt, fields, &err)

	if err = sub.Validate(); err != nil {
		return nil, err
	}

	m := engine.Compute(sub.Person)
	entry := domain.NewHistoryEntry(s.now(), sub, m)
	if err = s.history.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("recording history: %w", err)
	}
	fields["category"] = m.Category.String()
	fields["bmi"] = entry.BMI
	fields["seq"] = entry.Seq

	return &AnalysisResult{
		Metrics:         m,
		Recommendations: engine.Generate(m.Category, sub.Lifestyle),
		Entry:           entry,
	}, nil
}

func (s *analysisService) Recommend(ctx context.Context, category domain.Category, answers domain.LifestyleAnswers) domain.RecommendationSet {
	startedAt := time.Now()
	defer observe(ctx, s.observer, UseCaseRecommend, startedAt, map[string]any{"category": category.String()}, nil)

	return engine.Generate(category, answers)
}
