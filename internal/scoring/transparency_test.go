package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/testutils"
)

// TestScoreTransparency_LegacyTriple verifies scaling of the
// pre-computed percentage triple and the ONPE sanction penalty.
func TestScoreTransparency_LegacyTriple(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.CandidateData
		want      domain.TransparencyScore
	}{
		{
			name: "full disclosure scores the full scale",
			candidate: domain.CandidateData{
				Disclosure: &domain.DisclosurePercentages{Completeness: 100, Consistency: 100, AssetsQuality: 100},
			},
			want: domain.TransparencyScore{Completeness: 35, Consistency: 35, AssetsQuality: 30, Total: 100},
		},
		{
			name: "partial percentages round to points",
			candidate: domain.CandidateData{
				Disclosure: &domain.DisclosurePercentages{Completeness: 50, Consistency: 80, AssetsQuality: 33},
			},
			want: domain.TransparencyScore{Completeness: 18, Consistency: 28, AssetsQuality: 10, Total: 56},
		},
		{
			name:      "no disclosure data at all scores zero",
			candidate: domain.CandidateData{},
			want:      domain.TransparencyScore{},
		},
		{
			name: "one sanction subtracts 15",
			candidate: domain.CandidateData{
				Disclosure:    &domain.DisclosurePercentages{Completeness: 100, Consistency: 100, AssetsQuality: 100},
				OnpeSanctions: 1,
			},
			want: domain.TransparencyScore{Completeness: 35, Consistency: 35, AssetsQuality: 30, OnpePenalty: 15, Total: 85},
		},
		{
			name: "sanction penalty caps at 30",
			candidate: domain.CandidateData{
				Disclosure:    &domain.DisclosurePercentages{Completeness: 100, Consistency: 100, AssetsQuality: 100},
				OnpeSanctions: 4,
			},
			want: domain.TransparencyScore{Completeness: 35, Consistency: 35, AssetsQuality: 30, OnpePenalty: 30, Total: 70},
		},
		{
			name: "total floors at zero",
			candidate: domain.CandidateData{
				Disclosure:    &domain.DisclosurePercentages{Completeness: 20, Consistency: 0, AssetsQuality: 0},
				OnpeSanctions: 2,
			},
			want: domain.TransparencyScore{Completeness: 7, OnpePenalty: 30, Total: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreTransparency(&tt.candidate))
		})
	}
}

// TestScoreTransparency_Derived verifies derivation from the profile
// field counts and the assets declaration.
func TestScoreTransparency_Derived(t *testing.T) {
	t.Run("completeness from filled field ratio", func(t *testing.T) {
		c := domain.CandidateData{Profile: &domain.ProfileFields{Total: 20, Filled: 10}}
		got := ScoreTransparency(&c)
		assert.Equal(t, 18.0, got.Completeness) // 50% of 35, rounded
	})

	t.Run("declared total matching sources scores full consistency", func(t *testing.T) {
		c := domain.CandidateData{
			Assets: &domain.AssetsDeclaration{
				DeclaredIncome: testutils.Float(120000),
				IncomeSources: []domain.IncomeSource{
					{Category: "salario", Amount: 100000},
					{Category: "alquileres", Amount: 20000},
				},
			},
		}
		got := ScoreTransparency(&c)
		assert.Equal(t, 35.0, got.Consistency)
	})

	t.Run("full mismatch scores near zero consistency", func(t *testing.T) {
		c := domain.CandidateData{
			Assets: &domain.AssetsDeclaration{
				DeclaredIncome: testutils.Float(100000),
				IncomeSources:  []domain.IncomeSource{{Category: "salario", Amount: 350000}},
			},
		}
		got := ScoreTransparency(&c)
		assert.Zero(t, got.Consistency)
	})

	t.Run("income sources without a declared total get the flat floor", func(t *testing.T) {
		c := domain.CandidateData{
			Assets: &domain.AssetsDeclaration{
				IncomeSources: []domain.IncomeSource{{Category: "salario", Amount: 50000}},
			},
		}
		got := ScoreTransparency(&c)
		assert.Equal(t, 5.0, got.Consistency)
	})

	t.Run("quality rewards category granularity", func(t *testing.T) {
		c := domain.CandidateData{
			Assets: &domain.AssetsDeclaration{
				DeclaredIncome: testutils.Float(90000),
				IncomeSources: []domain.IncomeSource{
					{Category: "salario", Amount: 60000},
					{Category: "alquileres", Amount: 20000},
					{Category: "dividendos", Amount: 10000},
				},
			},
		}
		got := ScoreTransparency(&c)
		// 3 categories x 16 + 20 all-quantified bonus = 68% of 30.
		assert.Equal(t, 20.0, got.AssetsQuality)
	})

	t.Run("unquantified sources lose the amount bonus", func(t *testing.T) {
		c := domain.CandidateData{
			Assets: &domain.AssetsDeclaration{
				IncomeSources: []domain.IncomeSource{
					{Category: "salario", Amount: 60000},
					{Category: "alquileres"},
				},
			},
		}
		got := ScoreTransparency(&c)
		// 2 categories x 16 = 32% of 30.
		assert.Equal(t, 10.0, got.AssetsQuality)
	})

	t.Run("legacy triple takes precedence over derivation", func(t *testing.T) {
		c := domain.CandidateData{
			Disclosure: &domain.DisclosurePercentages{Completeness: 100, Consistency: 100, AssetsQuality: 100},
			Profile:    &domain.ProfileFields{Total: 10, Filled: 0},
		}
		got := ScoreTransparency(&c)
		assert.Equal(t, 100.0, got.Total)
	})
}
