package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/votolimpio/puntaje/internal/application"
	"github.com/votolimpio/puntaje/internal/domain"
)

var _ application.BatchObserver = (*OTelBatchObserver)(nil)

// OTelBatchObserver implements observability for batch scoring runs
// using OpenTelemetry tracing. It opens a span per batch, records the
// slate size and outcome counts, and flags runs with validation
// failures. The span travels through the run's context, so a single
// observer is safe across concurrent batches.
type OTelBatchObserver struct{}

// NewOTelBatchObserver creates a new OpenTelemetry batch observer.
func NewOTelBatchObserver() *OTelBatchObserver {
	return &OTelBatchObserver{}
}

// BatchStarted implements the BatchObserver interface. It starts a
// span, records the initial batch attributes, and returns the context
// carrying the span. Per-candidate scoring spans become its children.
func (o *OTelBatchObserver) BatchStarted(ctx context.Context, cargo domain.Cargo, size int) context.Context {
	tracer := otel.Tracer("batch-scorer")
	ctx, _ = tracer.Start(ctx, "BatchScorer.ScoreAll",
		trace.WithAttributes(
			attribute.String("batch.cargo", string(cargo)),
			attribute.Int("batch.size", size),
		),
	)
	return ctx
}

// BatchFinished implements the BatchObserver interface. It finalizes
// the span carried by the context with outcome counts and elapsed
// time. A context without a batch span is a no-op.
func (o *OTelBatchObserver) BatchFinished(ctx context.Context, scored, failed int, elapsed time.Duration) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(
		attribute.Int("batch.scored", scored),
		attribute.Int("batch.failed", failed),
		attribute.Int64("batch.elapsed_ms", elapsed.Milliseconds()),
	)
	if failed > 0 {
		span.AddEvent("batch.candidates_rejected", trace.WithAttributes(
			attribute.Int("count", failed),
		))
	}
	if scored == 0 && failed > 0 {
		span.SetStatus(codes.Error, "every candidate in the batch was rejected")
		return
	}
	span.SetStatus(codes.Ok, "")
}
