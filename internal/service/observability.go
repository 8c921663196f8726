package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/metrics"
)

// Use-case names reported in UseCaseEvent.Name.
const (
	UseCaseAnalyze   = "analyze"
	UseCaseRecommend = "recommend"
	UseCaseExport    = "export"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *zap.Logger
}

// NewLogUseCaseObserver writes one structured line per use case.
func NewLogUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

type metricsUseCaseObserver struct {
	metrics *metrics.Metrics
}

// NewMetricsUseCaseObserver records use-case outcomes as Prometheus metrics.
func NewMetricsUseCaseObserver(m *metrics.Metrics) UseCaseObserver {
	if m == nil {
		return NoopUseCaseObserver{}
	}
	return &metricsUseCaseObserver{metrics: m}
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.metrics.ObserveUseCase(event.Name, event.Duration, event.Success)

	switch event.Name {
	case UseCaseAnalyze:
		var verr *domain.ValidationError
		switch {
		case event.Success:
			if c, ok := event.Fields["category"].(string); ok {
				o.metrics.IncSubmission(c)
			}
		case errors.As(event.Err, &verr):
			o.metrics.IncValidationFailure()
		}
	case UseCaseExport:
		if format, ok := event.Fields["format"].(string); ok && event.Success {
			o.metrics.IncExport(format)
		}
	}
}

type multiUseCaseObserver []UseCaseObserver

// NewMultiUseCaseObserver fans each event out to every non-nil observer.
func NewMultiUseCaseObserver(observers ...UseCaseObserver) UseCaseObserver {
	var out multiUseCaseObserver
	for _, obs := range observers {
		if obs != nil {
			out = append(out, obs)
		}
	}
	return out
}

func (m multiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		obs.ObserveUseCase(ctx, event)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	switch len(observers) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		if observers[0] != nil {
			return observers[0]
		}
		return NoopUseCaseObserver{}
	}
	return NewMultiUseCaseObserver(observers...)
}

// observe reports a finished use case. It is meant to be deferred with a
// pointer to the named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   e == nil,
		Err:       e,
		Fields:    fields,
	})
}
