// Package ports defines the interfaces between the scoring engine's
// application layer and infrastructure. These interfaces enable
// dependency inversion and keep the engine free of any concrete
// observability backend.
package ports

import (
	"context"
	"time"

	"github.com/votolimpio/puntaje/internal/domain"
)

// CandidateSource loads a candidate slate from a backing store. The
// engine itself never performs I/O; sources live in infrastructure and
// feed the application layer.
type CandidateSource interface {
	// Candidates returns the full slate. Implementations must return
	// records as-is; validation happens at the engine boundary.
	Candidates(ctx context.Context) ([]domain.CandidateData, error)
}

// MetricsCollector defines the interface for collecting operational
// metrics from batch scoring runs. Implementations should integrate
// with observability platforms like Prometheus or custom monitoring
// solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// Useful for tracking events like scored candidates and
	// per-candidate validation failures.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// Useful for tracking values like batch size and worker count.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// Useful for tracking score distributions.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
