// Package middleware provides cross-cutting observability for batch
// scoring runs.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/votolimpio/puntaje/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of batch throughput,
// per-candidate failure rates, and composite score distributions.
type PrometheusMetrics struct {
	scoringLatency   *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	systemGauges     *prometheus.GaugeVec
	scoreHistograms  *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the given registry. Pass
// prometheus.DefaultRegisterer for the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		scoringLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scoring_operation_duration_seconds",
				Help:    "Execution time of scoring operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "cargo"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoring_operations_total",
				Help: "Total number of scoring operations, by outcome.",
			},
			[]string{"metric", "cargo"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scoring_system_state",
				Help: "Current state values for the batch scorer.",
			},
			[]string{"metric", "cargo"},
		),
		scoreHistograms: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scoring_composite_distribution",
				Help:    "Distribution of composite scores per batch.",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
			[]string{"metric", "cargo"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	pm.scoringLatency.WithLabelValues(operation, labels["cargo"]).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing a labeled counter.
func (pm *PrometheusMetrics) RecordCounter(metric string, value float64, labels map[string]string) {
	pm.operationCounter.WithLabelValues(metric, labels["cargo"]).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting a
// labeled gauge.
func (pm *PrometheusMetrics) RecordGauge(metric string, value float64, labels map[string]string) {
	pm.systemGauges.WithLabelValues(metric, labels["cargo"]).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by
// observing a value in a labeled histogram.
func (pm *PrometheusMetrics) RecordHistogram(metric string, value float64, labels map[string]string) {
	pm.scoreHistograms.WithLabelValues(metric, labels["cargo"]).Observe(value)
}
