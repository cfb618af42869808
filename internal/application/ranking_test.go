package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votolimpio/puntaje/internal/domain"
)

func resultWithComposites(name string, balanced, merit float64) *domain.ScoreResult {
	return &domain.ScoreResult{
		Candidate: name,
		Composites: domain.CompositeSet{
			Balanced: balanced,
			Merit:    merit,
		},
	}
}

// TestRankOrdersDescending verifies ordering by the chosen preset.
func TestRankOrdersDescending(t *testing.T) {
	results := []*domain.ScoreResult{
		resultWithComposites("Carla Díaz", 60, 90),
		resultWithComposites("Berta López", 80, 40),
		resultWithComposites("Andrés Quispe", 70, 70),
	}

	ranked, err := Rank(results, "balanced")
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Berta López", ranked[0].Result.Candidate)
	assert.Equal(t, "Andrés Quispe", ranked[1].Result.Candidate)
	assert.Equal(t, "Carla Díaz", ranked[2].Result.Candidate)
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})

	byMerit, err := Rank(results, "merit")
	require.NoError(t, err)
	assert.Equal(t, "Carla Díaz", byMerit[0].Result.Candidate)
}

// TestRankSharesTiedRanks verifies tied composites share a rank and
// break the tie by name under Spanish collation, so accented names
// interleave with unaccented ones.
func TestRankSharesTiedRanks(t *testing.T) {
	results := []*domain.ScoreResult{
		resultWithComposites("Benítez", 75, 0),
		resultWithComposites("Ávila", 75, 0),
		resultWithComposites("Castro", 75, 0),
		resultWithComposites("Zárate", 90, 0),
	}

	ranked, err := Rank(results, "balanced")
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	assert.Equal(t, "Zárate", ranked[0].Result.Candidate)
	assert.Equal(t, 1, ranked[0].Rank)

	assert.Equal(t, "Ávila", ranked[1].Result.Candidate)
	assert.Equal(t, "Benítez", ranked[2].Result.Candidate)
	assert.Equal(t, "Castro", ranked[3].Result.Candidate)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 2, ranked[2].Rank)
	assert.Equal(t, 2, ranked[3].Rank)
}

// TestRankPresidentialPreset verifies the presidential composite is
// required for every candidate when ranking by it.
func TestRankPresidentialPreset(t *testing.T) {
	presidential := 88.0
	with := resultWithComposites("Con Plan", 80, 80)
	with.Composites.Presidential = &presidential
	without := resultWithComposites("Sin Plan", 70, 70)

	ranked, err := Rank([]*domain.ScoreResult{with}, "presidential")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 88.0, ranked[0].Composite, 1e-9)

	_, err = Rank([]*domain.ScoreResult{with, without}, "presidential")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sin Plan")
}

// TestRankUnknownPreset verifies preset names outside the known set are
// rejected.
func TestRankUnknownPreset(t *testing.T) {
	_, err := Rank([]*domain.ScoreResult{resultWithComposites("X", 1, 1)}, "alphabetical")
	assert.Error(t, err)
}

// TestRankEmptyInput verifies an empty slate ranks to an empty slice.
func TestRankEmptyInput(t *testing.T) {
	ranked, err := Rank(nil, "balanced")
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
