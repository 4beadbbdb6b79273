package session

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.trai.ch/tsload/internal/core/domain"
)

var meter = otel.Meter("tsload.session")

// Metrics for session operations.
var (
	buildLatency     metric.Float64Histogram
	sessionsBuilt    metric.Int64Counter
	deltasApplied    metric.Int64Counter
	programRefreshes metric.Int64Counter
	emitsTotal       metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"session_build_duration_seconds",
			metric.WithDescription("Duration of session bootstrap"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sessionsBuilt, err = meter.Int64Counter(
			"session_builds_total",
			metric.WithDescription("Total number of session bootstrap attempts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		deltasApplied, err = meter.Int64Counter(
			"session_delta_changes_total",
			metric.WithDescription("Total number of file changes applied to sessions"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		programRefreshes, err = meter.Int64Counter(
			"session_program_refreshes_total",
			metric.WithDescription("Total number of watch program refreshes"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		emitsTotal, err = meter.Int64Counter(
			"session_emits_total",
			metric.WithDescription("Total number of per-file emits"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordBuild(ctx context.Context, duration time.Duration, strategy domain.Strategy, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy.String()),
		attribute.Bool("success", success),
	)

	buildLatency.Record(ctx, duration.Seconds(), attrs)
	sessionsBuilt.Add(ctx, 1, attrs)
}

func recordDelta(ctx context.Context, kind domain.ChangeKind, changed bool) {
	if err := initMetrics(); err != nil {
		return
	}
	deltasApplied.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
		attribute.Bool("changed", changed),
	))
}

func recordRefresh(ctx context.Context, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	programRefreshes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

func recordEmit(ctx context.Context, strategy domain.Strategy, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	emitsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strategy", strategy.String()),
		attribute.Bool("success", success),
	))
}
