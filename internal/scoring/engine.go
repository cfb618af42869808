package scoring

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Plausible bounds for the injected reference year.
const (
	minReferenceYear = 1900
	maxReferenceYear = 2200
)

// Config controls engine-wide scoring behavior. The zero value is the
// canonical engine.
type Config struct {
	// LegacyCivilStacking reproduces the older engine's full-weight
	// civil penalty stacking instead of diminishing returns. Per-type
	// and aggregate caps still apply.
	LegacyCivilStacking bool `yaml:"legacy_civil_stacking" json:"legacy_civil_stacking"`
}

// Engine is the scoring entry point. It is stateless apart from its
// configuration and fixed lookup tables, and safe for concurrent use:
// every Score call is independent, with the reference year injected
// explicitly rather than read from a clock.
type Engine struct {
	config Config
	tracer trace.Tracer
}

// NewEngine creates a scoring engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{
		config: config,
		tracer: otel.Tracer("scoring-engine"),
	}
}

// Score computes every sub-score and composite for one candidate
// targeting the given cargo. Open-ended tenures resolve against
// referenceYear. The input is validated strictly at this boundary:
// enum values outside their closed sets and structurally broken
// records are rejected rather than silently under-scored. The
// candidate is never mutated.
func (e *Engine) Score(ctx context.Context, c *domain.CandidateData, cargo domain.Cargo, referenceYear int) (*domain.ScoreResult, error) {
	_, span := e.tracer.Start(ctx, "Engine.Score",
		trace.WithAttributes(
			attribute.String("scoring.cargo", string(cargo)),
			attribute.Int("scoring.reference_year", referenceYear),
		),
	)
	defer span.End()

	if err := e.validateInput(c, cargo, referenceYear); err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := &domain.ScoreResult{
		Candidate:     c.Name,
		Cargo:         cargo,
		ReferenceYear: referenceYear,
	}

	result.Competence = ScoreCompetence(c, cargo, referenceYear)
	result.Integrity = ScoreIntegrity(c, e.config.LegacyCivilStacking)
	if c.Enhanced != nil {
		breakdown := ScoreEnhancedIntegrity(result.Integrity, c.Enhanced)
		result.IntegrityBreakdown = &breakdown
		result.Performance = ScorePerformance(c.Enhanced.Performance)
	}
	result.Transparency = ScoreTransparency(c)
	result.Confidence = ScoreConfidence(c)
	result.Composites = Composites(result, c.PlanViability)

	span.SetAttributes(
		attribute.Float64("scoring.competence", result.Competence.Total),
		attribute.Float64("scoring.integrity", result.IntegrityTotal()),
		attribute.Float64("scoring.transparency", result.Transparency.Total),
		attribute.Float64("scoring.confidence", result.Confidence.Total),
		attribute.Float64("scoring.balanced", result.Composites.Balanced),
	)
	return result, nil
}

// CustomComposite combines an existing result under caller-supplied
// weights. The weights are guardrail-clamped and normalized before use.
func (e *Engine) CustomComposite(r *domain.ScoreResult, w Weights) (float64, error) {
	n, err := w.Normalize()
	if err != nil {
		return 0, err
	}
	return n.Composite(r.Competence.Total, r.IntegrityTotal(), r.Transparency.Total), nil
}

// validateInput enforces the strict boundary contract: plausible
// reference year, closed-set enum membership for every categorical
// field, structurally sound tenure ranges, and in-range percentage
// fields.
func (e *Engine) validateInput(c *domain.CandidateData, cargo domain.Cargo, referenceYear int) error {
	if c == nil {
		return ErrNilCandidate
	}
	if referenceYear < minReferenceYear || referenceYear > maxReferenceYear {
		return fmt.Errorf("%w: %d", ErrInvalidReferenceYear, referenceYear)
	}
	if !cargo.Valid() {
		return domain.NewInvalidEnumError("cargo", string(cargo), enumStrings(domain.Cargos()))
	}

	if err := validateFiniteInputs(c); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("candidate data validation failed: %w", err)
	}

	for i, r := range c.Education {
		if !r.Level.Valid() {
			return domain.NewInvalidEnumError(
				fmt.Sprintf("education[%d].level", i),
				string(r.Level),
				enumStrings(domain.EducationLevels()),
			)
		}
	}

	for i, r := range c.Experience {
		if !r.RoleType.Valid() {
			return domain.NewInvalidEnumError(
				fmt.Sprintf("experience[%d].role_type", i),
				string(r.RoleType),
				enumStrings(domain.RoleTypes()),
			)
		}
		if r.IsLeadership && r.SeniorityLevel != "" && !r.SeniorityLevel.Valid() {
			return domain.NewInvalidEnumError(
				fmt.Sprintf("experience[%d].seniority_level", i),
				string(r.SeniorityLevel),
				enumStrings(domain.SeniorityLevels()),
			)
		}
		if r.StartYear <= 0 {
			return &domain.RecordError{
				Field:  fmt.Sprintf("experience[%d]", i),
				Reason: fmt.Sprintf("start year %d is not a calendar year", r.StartYear),
			}
		}
		if r.EndYear != nil && *r.EndYear < r.StartYear {
			return &domain.RecordError{
				Field:  fmt.Sprintf("experience[%d]", i),
				Reason: fmt.Sprintf("end year %d precedes start year %d", *r.EndYear, r.StartYear),
			}
		}
	}

	for i, s := range c.CivilSentences {
		if !s.Type.Valid() {
			return domain.NewInvalidEnumError(
				fmt.Sprintf("civil_sentences[%d].type", i),
				string(s.Type),
				enumStrings(domain.CivilSentenceTypes()),
			)
		}
	}

	if c.Enhanced != nil {
		if t := c.Enhanced.Tax; t != nil {
			if t.Condition != "" && !t.Condition.Valid() {
				return domain.NewInvalidEnumError("enhanced.tax.condition", string(t.Condition),
					[]string{string(domain.TaxConditionHabido), string(domain.TaxConditionNoHabido), string(domain.TaxConditionNoHallado)})
			}
			if t.Status != "" && !t.Status.Valid() {
				return domain.NewInvalidEnumError("enhanced.tax.status", string(t.Status),
					[]string{string(domain.TaxStatusActivo), string(domain.TaxStatusSuspendido), string(domain.TaxStatusBaja)})
			}
		}
		if j := c.Enhanced.Judicial; j != nil && j.Severity != "" && !j.Severity.Valid() {
			return domain.NewInvalidEnumError("enhanced.judicial.severity", string(j.Severity),
				[]string{string(domain.DiscrepancyNone), string(domain.DiscrepancyMinor), string(domain.DiscrepancyMajor), string(domain.DiscrepancyCritical)})
		}
	}

	return nil
}

// validateFiniteInputs rejects NaN and infinite values in the optional
// numeric fields that struct tags cannot cover. Score arithmetic clamps
// ranges but cannot repair a non-finite operand, so these never pass
// the boundary.
func validateFiniteInputs(c *domain.CandidateData) error {
	if err := finiteField("plan_viability", c.PlanViability); err != nil {
		return err
	}
	if a := c.Assets; a != nil {
		if err := finiteField("assets.declared_income", a.DeclaredIncome); err != nil {
			return err
		}
		for i, s := range a.IncomeSources {
			if !isFinite(s.Amount) {
				return &domain.RecordError{
					Field:  fmt.Sprintf("assets.income_sources[%d].amount", i),
					Reason: fmt.Sprintf("non-finite amount %v", s.Amount),
				}
			}
		}
	}
	if c.Enhanced != nil && c.Enhanced.Performance != nil {
		if err := finiteField("enhanced.performance.budget_execution_pct", c.Enhanced.Performance.BudgetExecutionPct); err != nil {
			return err
		}
		if err := finiteField("enhanced.performance.override_score", c.Enhanced.Performance.OverrideScore); err != nil {
			return err
		}
	}
	return nil
}

func finiteField(field string, v *float64) error {
	if v == nil || isFinite(*v) {
		return nil
	}
	return &domain.RecordError{
		Field:  field,
		Reason: fmt.Sprintf("non-finite value %v", *v),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// enumStrings converts a slice of string-typed enum values into plain
// strings for error suggestions.
func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
