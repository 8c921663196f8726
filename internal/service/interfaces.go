package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// AnalysisResult is everything one accepted submission produces.
type AnalysisResult struct {
	Metrics         domain.MetricsResult     `json:"metrics"`
	Recommendations domain.RecommendationSet `json:"recommendations"`
	Entry           *domain.HistoryEntry     `json:"entry"`
}

type AnalysisService interface {
	// Analyze validates sub, computes its metrics, appends it to the session
	// history and generates recommendations. Nothing is recorded when
	// validation fails.
	Analyze(ctx context.Context, sub domain.Submission) (*AnalysisResult, error)
	Recommend(ctx context.Context, category domain.Category, answers domain.LifestyleAnswers) domain.RecommendationSet
}

// TrendPoint is one BMI sample of the history chart.
type TrendPoint struct {
	Seq       int             `json:"seq"`
	Timestamp time.Time       `json:"timestamp"`
	BMI       float64         `json:"bmi"`
	Category  domain.Category `json:"category"`
}

type HistoryService interface {
	List(ctx context.Context) ([]*domain.HistoryEntry, error)
	Count(ctx context.Context) (int, error)
	Trend(ctx context.Context) ([]TrendPoint, error)
	// ExportCSV and ExportXLSX write the full history and return the number
	// of entries written.
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	ExportXLSX(ctx context.Context, w io.Writer) (int, error)
}
