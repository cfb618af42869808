package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/testutils"
)

// TestTotalExperienceScore pins the tier table on unique years.
func TestTotalExperienceScore(t *testing.T) {
	tests := []struct {
		years int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 6},
		{4, 6},
		{5, 12},
		{7, 12},
		{8, 16},
		{10, 16},
		{11, 20},
		{14, 20},
		{15, 25},
		{40, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, totalExperienceScore(tt.years), "years=%d", tt.years)
	}
}

// TestScoreExperience_Relevant verifies cargo-weighted relevance with
// the per-record year cap and the aggregate cap.
func TestScoreExperience_Relevant(t *testing.T) {
	tests := []struct {
		name         string
		records      []domain.ExperienceRecord
		cargo        domain.Cargo
		wantRelevant float64
	}{
		{
			name: "ten years electivo_alto for presidente hits the relevant cap",
			records: []domain.ExperienceRecord{
				{RoleType: domain.RoleElectivoAlto, StartYear: 2010, EndYear: testutils.Year(2020)},
			},
			cargo:        domain.CargoPresidente,
			wantRelevant: 25, // 10y x 3.0 = 30, capped
		},
		{
			name: "one long tenure is capped at ten years",
			records: []domain.ExperienceRecord{
				{RoleType: domain.RolePartidario, StartYear: 1990, EndYear: testutils.Year(2020)},
			},
			cargo:        domain.CargoPresidente,
			wantRelevant: 5, // min(30y, 10) x 0.5
		},
		{
			name: "relevance depends on the target cargo",
			records: []domain.ExperienceRecord{
				{RoleType: domain.RoleInternacional, StartYear: 2015, EndYear: testutils.Year(2020)},
			},
			cargo:        domain.CargoParlamentoAndino,
			wantRelevant: 15, // 5y x 3.0
		},
		{
			name: "mixed roles sum before the aggregate cap",
			records: []domain.ExperienceRecord{
				{RoleType: domain.RoleAcademia, StartYear: 2010, EndYear: testutils.Year(2015)},
				{RoleType: domain.RoleTecnicoProfesional, StartYear: 2015, EndYear: testutils.Year(2020)},
			},
			cargo:        domain.CargoSenador,
			wantRelevant: 15, // 5x1.5 + 5x1.5
		},
		{
			name:         "no records yields zero",
			cargo:        domain.CargoDiputado,
			wantRelevant: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreExperience(tt.records, tt.cargo, 2025)
			assert.Equal(t, tt.wantRelevant, got.Relevant)
			assert.LessOrEqual(t, got.Relevant, float64(relevantTotalCap))
		})
	}
}

// TestScoreExperience_OverlapMerging verifies overlapping tenures only
// count once toward the tier score while relevance stays per-record.
func TestScoreExperience_OverlapMerging(t *testing.T) {
	records := []domain.ExperienceRecord{
		{RoleType: domain.RoleElectivoMedio, StartYear: 2010, EndYear: testutils.Year(2020)},
		{RoleType: domain.RoleEjecutivoPublicoMedio, StartYear: 2012, EndYear: testutils.Year(2016)},
	}

	got := ScoreExperience(records, domain.CargoDiputado, 2025)
	assert.Equal(t, 10, got.UniqueYears)
	assert.Equal(t, 14, got.RawYears)
	assert.True(t, got.HasOverlap)
	assert.Equal(t, 16.0, got.Total, "tier lookup uses merged years")
	// Relevance counts each record's own span: 10x2.5 + 4x1.5 = 31, capped.
	assert.Equal(t, 25.0, got.Relevant)
}

// TestRelevanceMatrix_Complete verifies every (cargo, role) pair has an
// explicit entry so the default weight stays a maintenance safety net.
func TestRelevanceMatrix_Complete(t *testing.T) {
	for _, cargo := range domain.Cargos() {
		row, ok := relevanceMatrix[cargo]
		assert.True(t, ok, "missing row for cargo %s", cargo)
		for _, role := range domain.RoleTypes() {
			_, ok := row[role]
			assert.True(t, ok, "missing entry for (%s, %s)", cargo, role)
		}
	}
}
