package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Education scoring constants.
const (
	// educationLevelCap bounds the level component (doctorado points).
	educationLevelCap = 22

	// depthBonus is awarded per additional substantive degree beyond
	// the highest one.
	depthBonus = 2

	// depthThreshold is the minimum level points a record needs to
	// count toward the depth bonus.
	depthThreshold = 10

	// depthCap bounds the total depth bonus.
	depthCap = 8

	// educationTotalCap bounds the education total.
	educationTotalCap = 30
)

// educationLevelPoints maps an education level to its fixed point
// value. The switch is exhaustive over the closed enum.
func educationLevelPoints(l domain.EducationLevel) float64 {
	switch l {
	case domain.EducationSinInformacion:
		return 0
	case domain.EducationPrimaria:
		return 3
	case domain.EducationSecundaria:
		return 6
	case domain.EducationTecnico:
		return 10
	case domain.EducationUniversitario:
		return 12
	case domain.EducationTitulo:
		return 15
	case domain.EducationMaestria:
		return 18
	case domain.EducationDoctorado:
		return 22
	}
	return 0
}

// ScoreEducation maps a candidate's education records to the education
// sub-score: the best level's points plus a capped depth bonus for
// additional substantive degrees. Empty input yields a zero score.
func ScoreEducation(records []domain.EducationRecord) domain.EducationScore {
	if len(records) == 0 {
		return domain.EducationScore{}
	}

	var level float64
	bestIdx := -1
	for i, r := range records {
		if pts := educationLevelPoints(r.Level); pts > level {
			level = pts
			bestIdx = i
		}
	}
	level = math.Min(level, educationLevelCap)

	// Depth counts every record beyond the top one that is itself a
	// substantive degree.
	var depth float64
	for i, r := range records {
		if i == bestIdx {
			continue
		}
		if educationLevelPoints(r.Level) >= depthThreshold {
			depth += depthBonus
		}
	}
	depth = math.Min(depth, depthCap)

	return domain.EducationScore{
		Level: level,
		Depth: depth,
		Total: math.Min(level+depth, educationTotalCap),
	}
}
