package application

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/ports"
	"github.com/votolimpio/puntaje/internal/scoring"
)

// BatchConfig controls concurrent batch execution.
type BatchConfig struct {
	// MaxConcurrency limits the number of candidates scored in
	// parallel. Each scoring call is independent, so the only shared
	// resource is the read-only lookup tables.
	MaxConcurrency int `yaml:"max_concurrency" json:"max_concurrency" validate:"min=1,max=64"`
}

// DefaultBatchConfig returns production-ready batch settings.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{MaxConcurrency: 8}
}

// CandidateError records a per-candidate scoring failure inside a
// batch. One bad record never aborts the rest of the batch.
type CandidateError struct {
	// Index is the candidate's position in the input slice.
	Index int `json:"index"`

	// Name echoes the candidate name for log readability.
	Name string `json:"name,omitempty"`

	// Err is the underlying validation or scoring error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *CandidateError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("candidate %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("candidate %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *CandidateError) Unwrap() error { return e.Err }

// BatchResult is the outcome of scoring a candidate slate. Results
// keep input order regardless of worker interleaving.
type BatchResult struct {
	// Results holds one entry per successfully scored candidate, in
	// input order.
	Results []*domain.ScoreResult

	// Errors holds one entry per rejected candidate, in input order.
	Errors []*CandidateError
}

// BatchObserver receives lifecycle notifications from batch runs.
// Implementations live in infrastructure (tracing, logging). Run state
// travels through the returned context, never through observer fields,
// so one observer serves concurrent batches.
type BatchObserver interface {
	// BatchStarted fires before any candidate is scored. The returned
	// context is used for the rest of the run, including the finish
	// notification.
	BatchStarted(ctx context.Context, cargo domain.Cargo, size int) context.Context

	// BatchFinished fires after the run completes, with counts and
	// elapsed wall time.
	BatchFinished(ctx context.Context, scored, failed int, elapsed time.Duration)
}

// BatchScorer scores candidate slates concurrently with a bounded
// worker pool. It is safe for concurrent use.
type BatchScorer struct {
	engine   *scoring.Engine
	config   BatchConfig
	metrics  ports.MetricsCollector
	observer BatchObserver
}

// NewBatchScorer creates a batch scorer around the given engine.
// metrics and observer are optional; nil disables them.
func NewBatchScorer(engine *scoring.Engine, config BatchConfig, metrics ports.MetricsCollector, observer BatchObserver) (*BatchScorer, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("batch configuration validation failed: %w", err)
	}
	return &BatchScorer{
		engine:   engine,
		config:   config,
		metrics:  metrics,
		observer: observer,
	}, nil
}

// ScoreAll scores every candidate in the slate against the given cargo
// and reference year. Per-candidate failures are collected rather than
// aborting the batch; only context cancellation stops the run early.
func (b *BatchScorer) ScoreAll(ctx context.Context, candidates []domain.CandidateData, cargo domain.Cargo, referenceYear int) (*BatchResult, error) {
	start := time.Now()
	if b.observer != nil {
		ctx = b.observer.BatchStarted(ctx, cargo, len(candidates))
	}
	if b.metrics != nil {
		b.metrics.RecordGauge("batch_size", float64(len(candidates)), map[string]string{"cargo": string(cargo)})
	}

	results := make([]*domain.ScoreResult, len(candidates))
	errs := make([]*CandidateError, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.config.MaxConcurrency)
	for i := range candidates {
		i := i // pre-Go 1.22 loop variable semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := b.engine.Score(gctx, &candidates[i], cargo, referenceYear)
			if err != nil {
				errs[i] = &CandidateError{Index: i, Name: candidates[i].Name, Err: err}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch scoring aborted: %w", err)
	}

	out := &BatchResult{}
	for i := range candidates {
		if results[i] != nil {
			out.Results = append(out.Results, results[i])
			if b.metrics != nil {
				b.metrics.RecordCounter("candidates_scored_total", 1, map[string]string{"cargo": string(cargo)})
				b.metrics.RecordHistogram("composite_balanced", results[i].Composites.Balanced, map[string]string{"cargo": string(cargo)})
			}
			continue
		}
		out.Errors = append(out.Errors, errs[i])
		if b.metrics != nil {
			b.metrics.RecordCounter("candidate_errors_total", 1, map[string]string{"cargo": string(cargo)})
		}
	}

	elapsed := time.Since(start)
	if b.metrics != nil {
		b.metrics.RecordLatency("batch_score", elapsed, map[string]string{"cargo": string(cargo)})
	}
	if b.observer != nil {
		b.observer.BatchFinished(ctx, len(out.Results), len(out.Errors), elapsed)
	}
	return out, nil
}
