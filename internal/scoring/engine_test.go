package scoring

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/testutils"
)

// TestEngineScoreCleanCandidate verifies the full pipeline against a
// fully verified candidate with no legal history.
func TestEngineScoreCleanCandidate(t *testing.T) {
	engine := NewEngine(Config{})
	candidate := testutils.CleanCandidate()

	result, err := engine.Score(context.Background(), &candidate, domain.CargoSenador, 2026)
	require.NoError(t, err)

	assert.Equal(t, "Ana Pérez", result.Candidate)
	assert.Equal(t, domain.CargoSenador, result.Cargo)
	assert.Equal(t, 2026, result.ReferenceYear)

	assert.InDelta(t, 100.0, result.Integrity.Total, 1e-9)
	assert.InDelta(t, 100.0, result.Transparency.Total, 1e-9)
	assert.InDelta(t, 100.0, result.Confidence.Total, 1e-9)

	for name, total := range map[string]float64{
		"competence":   result.Competence.Total,
		"integrity":    result.IntegrityTotal(),
		"transparency": result.Transparency.Total,
		"confidence":   result.Confidence.Total,
	} {
		assert.GreaterOrEqual(t, total, 0.0, name)
		assert.LessOrEqual(t, total, 100.0, name)
	}

	assert.Nil(t, result.IntegrityBreakdown)
	assert.Nil(t, result.Performance)
	assert.Nil(t, result.Composites.Presidential)
}

// TestEngineScoreDeterministic verifies that scoring the same candidate
// twice with the same reference year yields identical results.
func TestEngineScoreDeterministic(t *testing.T) {
	engine := NewEngine(Config{})
	candidate := testutils.CleanCandidate()
	candidate.Experience = append(candidate.Experience, domain.ExperienceRecord{
		RoleType:  domain.RoleTecnicoProfesional,
		StartYear: 2021,
	})

	first, err := engine.Score(context.Background(), &candidate, domain.CargoDiputado, 2026)
	require.NoError(t, err)
	second, err := engine.Score(context.Background(), &candidate, domain.CargoDiputado, 2026)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestEngineScoreEnhanced verifies that enhanced inputs populate the
// integrity breakdown and the performance score.
func TestEngineScoreEnhanced(t *testing.T) {
	engine := NewEngine(Config{})
	candidate := testutils.CleanCandidate()
	candidate.Enhanced = &domain.EnhancedIntegrityData{
		Tax: &domain.TaxRecord{
			Condition:     domain.TaxConditionHabido,
			Status:        domain.TaxStatusActivo,
			CoactiveDebts: 1,
		},
		Performance: &domain.IncumbentRecord{
			IsIncumbent:        true,
			BudgetExecutionPct: testutils.Float(80),
		},
	}

	result, err := engine.Score(context.Background(), &candidate, domain.CargoVicepresidente, 2026)
	require.NoError(t, err)

	require.NotNil(t, result.IntegrityBreakdown)
	assert.InDelta(t, 100.0, result.IntegrityBreakdown.Subtotals.AfterTraditional, 1e-9)
	assert.Less(t, result.IntegrityBreakdown.Subtotals.AfterTax,
		result.IntegrityBreakdown.Subtotals.AfterVoting)
	assert.Equal(t, result.IntegrityBreakdown.Subtotals.Final, result.IntegrityTotal())

	require.NotNil(t, result.Performance)
	assert.InDelta(t, 50+(80-50)*0.5, result.Performance.Total, 1e-9)
}

// TestEngineScorePresidentialComposite verifies the four-pillar
// composite appears only when a plan viability score is supplied.
func TestEngineScorePresidentialComposite(t *testing.T) {
	engine := NewEngine(Config{})
	candidate := testutils.CleanCandidate()
	candidate.PlanViability = testutils.Float(60)

	result, err := engine.Score(context.Background(), &candidate, domain.CargoPresidente, 2026)
	require.NoError(t, err)

	require.NotNil(t, result.Composites.Presidential)
	w := DefaultPresidentialWeights()
	want := w.Composite(result.Competence.Total, result.IntegrityTotal(), result.Transparency.Total, 60)
	assert.InDelta(t, want, *result.Composites.Presidential, 1e-9)
}

// TestEngineScoreValidation exercises the strict boundary contract.
func TestEngineScoreValidation(t *testing.T) {
	engine := NewEngine(Config{})
	ctx := context.Background()

	t.Run("nil candidate", func(t *testing.T) {
		_, err := engine.Score(ctx, nil, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, ErrNilCandidate)
	})

	t.Run("implausible reference year", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 0)
		assert.ErrorIs(t, err, ErrInvalidReferenceYear)
	})

	t.Run("unknown cargo suggests nearest", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		_, err := engine.Score(ctx, &candidate, domain.Cargo("presidnte"), 2026)
		require.ErrorIs(t, err, domain.ErrInvalidEnum)

		var enumErr *domain.InvalidEnumError
		require.ErrorAs(t, err, &enumErr)
		assert.Equal(t, "cargo", enumErr.Field)
		assert.Equal(t, string(domain.CargoPresidente), enumErr.Suggestion)
	})

	t.Run("unknown education level rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Education = []domain.EducationRecord{{Level: "licenciatura"}}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidEnum)
	})

	t.Run("unknown civil sentence type rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.CivilSentences = []domain.CivilSentence{{Type: "penal"}}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidEnum)
	})

	t.Run("inverted tenure rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Experience = []domain.ExperienceRecord{{
			RoleType:  domain.RoleEjecutivoPrivadoMedio,
			StartYear: 2020,
			EndYear:   testutils.Year(2015),
		}}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		require.ErrorIs(t, err, domain.ErrInvalidRecord)

		var recErr *domain.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, "experience[0]", recErr.Field)
	})

	t.Run("out of range verification level rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.VerificationLevel = 150
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.Error(t, err)
	})

	t.Run("NaN plan viability rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.PlanViability = testutils.Float(math.NaN())
		_, err := engine.Score(ctx, &candidate, domain.CargoPresidente, 2026)
		require.ErrorIs(t, err, domain.ErrInvalidRecord)

		var recErr *domain.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, "plan_viability", recErr.Field)
	})

	t.Run("NaN declared income rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Assets = &domain.AssetsDeclaration{
			DeclaredIncome: testutils.Float(math.NaN()),
			IncomeSources:  []domain.IncomeSource{{Category: "salario", Amount: 1000}},
		}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	})

	t.Run("infinite income source amount rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Assets = &domain.AssetsDeclaration{
			IncomeSources: []domain.IncomeSource{{Category: "salario", Amount: math.Inf(1)}},
		}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		require.ErrorIs(t, err, domain.ErrInvalidRecord)

		var recErr *domain.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, "assets.income_sources[0].amount", recErr.Field)
	})

	t.Run("NaN budget execution rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Enhanced = &domain.EnhancedIntegrityData{
			Performance: &domain.IncumbentRecord{
				IsIncumbent:        true,
				BudgetExecutionPct: testutils.Float(math.NaN()),
			},
		}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	})

	t.Run("infinite override score rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Enhanced = &domain.EnhancedIntegrityData{
			Performance: &domain.IncumbentRecord{
				IsIncumbent:   true,
				OverrideScore: testutils.Float(math.Inf(-1)),
			},
		}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	})

	t.Run("out of range plan viability rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.PlanViability = testutils.Float(150)
		_, err := engine.Score(ctx, &candidate, domain.CargoPresidente, 2026)
		assert.Error(t, err)
	})

	t.Run("unknown tax condition rejected", func(t *testing.T) {
		candidate := testutils.MinimalCandidate()
		candidate.Enhanced = &domain.EnhancedIntegrityData{
			Tax: &domain.TaxRecord{Condition: "fugado"},
		}
		_, err := engine.Score(ctx, &candidate, domain.CargoDiputado, 2026)
		assert.ErrorIs(t, err, domain.ErrInvalidEnum)
	})
}

// TestEngineLegacyCivilStacking verifies the configurable stacking mode
// flows through to the integrity score.
func TestEngineLegacyCivilStacking(t *testing.T) {
	candidate := testutils.CleanCandidate()
	candidate.CivilSentences = []domain.CivilSentence{
		{Type: domain.CivilContractual},
		{Type: domain.CivilContractual},
	}

	modern, err := NewEngine(Config{}).Score(context.Background(), &candidate, domain.CargoDiputado, 2026)
	require.NoError(t, err)
	legacy, err := NewEngine(Config{LegacyCivilStacking: true}).Score(context.Background(), &candidate, domain.CargoDiputado, 2026)
	require.NoError(t, err)

	// 15 + 7.5 with diminishing returns versus 15 + 15 flat, the
	// latter clipped by the 25-point contractual cap.
	assert.InDelta(t, 100-22.5, modern.Integrity.Total, 1e-9)
	assert.InDelta(t, 100-25, legacy.Integrity.Total, 1e-9)
}

// TestEngineCustomComposite verifies caller-supplied weights are
// normalized before combining.
func TestEngineCustomComposite(t *testing.T) {
	engine := NewEngine(Config{})
	candidate := testutils.CleanCandidate()

	result, err := engine.Score(context.Background(), &candidate, domain.CargoSenador, 2026)
	require.NoError(t, err)

	got, err := engine.CustomComposite(result, Weights{Competence: 0.5, Integrity: 0.4, Transparency: 0.1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)

	_, err = engine.CustomComposite(result, Weights{Competence: 0.5, Integrity: 0.4, Transparency: math.Inf(1)})
	assert.Error(t, err)
}
