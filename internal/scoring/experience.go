package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Experience scoring constants.
const (
	// relevantYearsCap bounds the years one record may contribute to
	// the relevant-experience score, so a single long tenure cannot
	// dominate.
	relevantYearsCap = 10

	// relevantTotalCap bounds the aggregate relevant-experience score.
	relevantTotalCap = 25

	// defaultRelevancePerYear is used for a (cargo, role) pair absent
	// from the relevance matrix. The matrix is total over the closed
	// enums, so this is a safety net for table maintenance, not a
	// scoring path for unknown role types; those are rejected at the
	// engine boundary.
	defaultRelevancePerYear = 0.5
)

// relevanceMatrix maps (cargo, role type) to relevance points per year
// of tenure. Rows are complete over the closed RoleType set.
var relevanceMatrix = map[domain.Cargo]map[domain.RoleType]float64{
	domain.CargoPresidente: {
		domain.RoleElectivoAlto:          3.0,
		domain.RoleElectivoMedio:         2.0,
		domain.RoleEjecutivoPublicoAlto:  2.5,
		domain.RoleEjecutivoPublicoMedio: 1.5,
		domain.RoleEjecutivoPrivadoAlto:  2.0,
		domain.RoleEjecutivoPrivadoMedio: 1.0,
		domain.RoleTecnicoProfesional:    1.0,
		domain.RoleAcademia:              1.0,
		domain.RoleInternacional:         1.5,
		domain.RolePartidario:            0.5,
	},
	domain.CargoVicepresidente: {
		domain.RoleElectivoAlto:          2.5,
		domain.RoleElectivoMedio:         2.0,
		domain.RoleEjecutivoPublicoAlto:  2.5,
		domain.RoleEjecutivoPublicoMedio: 1.5,
		domain.RoleEjecutivoPrivadoAlto:  2.0,
		domain.RoleEjecutivoPrivadoMedio: 1.0,
		domain.RoleTecnicoProfesional:    1.0,
		domain.RoleAcademia:              1.0,
		domain.RoleInternacional:         1.5,
		domain.RolePartidario:            0.5,
	},
	domain.CargoSenador: {
		domain.RoleElectivoAlto:          2.5,
		domain.RoleElectivoMedio:         2.0,
		domain.RoleEjecutivoPublicoAlto:  2.0,
		domain.RoleEjecutivoPublicoMedio: 1.5,
		domain.RoleEjecutivoPrivadoAlto:  1.5,
		domain.RoleEjecutivoPrivadoMedio: 1.0,
		domain.RoleTecnicoProfesional:    1.5,
		domain.RoleAcademia:              1.5,
		domain.RoleInternacional:         1.0,
		domain.RolePartidario:            1.0,
	},
	domain.CargoDiputado: {
		domain.RoleElectivoAlto:          2.0,
		domain.RoleElectivoMedio:         2.5,
		domain.RoleEjecutivoPublicoAlto:  1.5,
		domain.RoleEjecutivoPublicoMedio: 1.5,
		domain.RoleEjecutivoPrivadoAlto:  1.0,
		domain.RoleEjecutivoPrivadoMedio: 1.0,
		domain.RoleTecnicoProfesional:    1.5,
		domain.RoleAcademia:              1.0,
		domain.RoleInternacional:         0.5,
		domain.RolePartidario:            1.5,
	},
	domain.CargoParlamentoAndino: {
		domain.RoleElectivoAlto:          2.0,
		domain.RoleElectivoMedio:         1.5,
		domain.RoleEjecutivoPublicoAlto:  1.5,
		domain.RoleEjecutivoPublicoMedio: 1.0,
		domain.RoleEjecutivoPrivadoAlto:  1.0,
		domain.RoleEjecutivoPrivadoMedio: 0.5,
		domain.RoleTecnicoProfesional:    1.0,
		domain.RoleAcademia:              1.5,
		domain.RoleInternacional:         3.0,
		domain.RolePartidario:            0.5,
	},
}

// relevancePerYear looks up the relevance weight for a role type under
// the target cargo.
func relevancePerYear(cargo domain.Cargo, role domain.RoleType) float64 {
	row, ok := relevanceMatrix[cargo]
	if !ok {
		return defaultRelevancePerYear
	}
	pts, ok := row[role]
	if !ok {
		return defaultRelevancePerYear
	}
	return pts
}

// totalExperienceScore is the tiered lookup on overlap-merged tenure
// years.
func totalExperienceScore(uniqueYears int) float64 {
	switch {
	case uniqueYears >= 15:
		return 25
	case uniqueYears >= 11:
		return 20
	case uniqueYears >= 8:
		return 16
	case uniqueYears >= 5:
		return 12
	case uniqueYears >= 2:
		return 6
	default:
		return 0
	}
}

// ScoreExperience computes the total-experience tier score over merged
// tenure coverage and the cargo-relevance weighted score over
// individual records. Open-ended tenures resolve against referenceYear.
func ScoreExperience(records []domain.ExperienceRecord, cargo domain.Cargo, referenceYear int) domain.ExperienceScore {
	merged := mergeTenures(records, referenceYear, false)

	var relevant float64
	for _, r := range records {
		years := float64(tenureInterval(r, referenceYear).Years())
		years = math.Min(years, relevantYearsCap)
		relevant += years * relevancePerYear(cargo, r.RoleType)
	}
	relevant = math.Min(relevant, relevantTotalCap)

	return domain.ExperienceScore{
		UniqueYears: merged.UniqueYears,
		RawYears:    merged.RawYears,
		HasOverlap:  merged.HasOverlap,
		Total:       totalExperienceScore(merged.UniqueYears),
		Relevant:    relevant,
	}
}
