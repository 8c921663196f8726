package service

import (
	"context"
	"errors"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/metrics"
	"github.com/alexanderramin/vitalis/internal/testutil"
)

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     UseCaseAnalyze,
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"category": "Normal Weight"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: UseCaseExport,
		Err:  errors.New("write failed"),
	})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "analyze", ctx["use_case"])
	assert.Equal(t, int64(12), ctx["duration_ms"])
	assert.Equal(t, "Normal Weight", ctx["category"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "write failed", entries[1].ContextMap()["error"])
}

func TestLogObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestMetricsObserver_CountsOutcomes(t *testing.T) {
	m := metrics.New()
	history := setupHistory(t)
	analysis := NewAnalysisService(history, nil, NewMetricsUseCaseObserver(m))
	historySvc := NewHistoryService(history, NewMetricsUseCaseObserver(m))
	ctx := context.Background()

	_, err := analysis.Analyze(ctx, testutil.NewTestSubmission())
	require.NoError(t, err)
	_, err = analysis.Analyze(ctx, testutil.NewTestSubmission(testutil.WithWeight(80)))
	require.NoError(t, err)
	_, err = analysis.Analyze(ctx, testutil.NewTestSubmission(testutil.WithName("")))
	require.ErrorIs(t, err, domain.ErrIncompleteSubmission)
	_, err = historySvc.ExportXLSX(ctx, &discard{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.SubmissionsTotal.WithLabelValues("Normal Weight")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.SubmissionsTotal.WithLabelValues("Overweight Level I")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ValidationFailuresTotal))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.UseCaseErrorsTotal.WithLabelValues(UseCaseAnalyze)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ExportsTotal.WithLabelValues("xlsx")))
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := NewMultiUseCaseObserver(a, nil, b)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: UseCaseRecommend, Success: true})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
