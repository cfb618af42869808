package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Leadership scoring constants.
const (
	// seniorityCap bounds the seniority component (direccion points).
	seniorityCap = 14

	// leadershipTotalCap bounds the leadership total.
	leadershipTotalCap = 20
)

// seniorityPoints maps a seniority level to its fixed point value.
// The switch is exhaustive over the closed enum.
func seniorityPoints(s domain.SeniorityLevel) float64 {
	switch s {
	case domain.SeniorityIndividualContributor:
		return 2
	case domain.SeniorityCoordinacion:
		return 5
	case domain.SeniorityJefatura:
		return 8
	case domain.SeniorityGerencia:
		return 11
	case domain.SeniorityDireccion:
		return 14
	}
	return 0
}

// stabilityScore is the tiered lookup on merged leadership years.
func stabilityScore(years int) float64 {
	switch {
	case years >= 7:
		return 6
	case years >= 4:
		return 4
	case years >= 2:
		return 2
	default:
		return 0
	}
}

// ScoreLeadership computes the seniority and stability sub-scores from
// leadership-tagged tenures carrying a seniority level. Candidates with
// no such records score zero.
func ScoreLeadership(records []domain.ExperienceRecord, referenceYear int) domain.LeadershipScore {
	var seniority float64
	found := false
	for _, r := range records {
		if !r.IsLeadership || r.SeniorityLevel == "" {
			continue
		}
		found = true
		if pts := seniorityPoints(r.SeniorityLevel); pts > seniority {
			seniority = pts
		}
	}
	if !found {
		return domain.LeadershipScore{}
	}
	seniority = math.Min(seniority, seniorityCap)

	merged := mergeTenures(records, referenceYear, true)
	stability := stabilityScore(merged.UniqueYears)

	return domain.LeadershipScore{
		Seniority: seniority,
		Stability: stability,
		Total:     math.Min(seniority+stability, leadershipTotalCap),
	}
}
