package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Integrity scoring constants.
const (
	// integrityBase is the score every candidate starts from.
	integrityBase = 100

	// penalPenaltyMultipleFirm applies when two or more firm sentences
	// exist.
	penalPenaltyMultipleFirm = 85

	// penalPenaltySingleFirm applies when exactly one firm sentence
	// exists.
	penalPenaltySingleFirm = 70

	// penalPenaltyPending applies per non-firm (pending or appealed)
	// sentence.
	penalPenaltyPending = 35

	// penalPenaltyCap bounds the total penal penalty.
	penalPenaltyCap = 85

	// civilAggregateCap bounds the summed civil penalty across types.
	civilAggregateCap = 85
)

// civilPenaltyTable holds the per-type base penalty and individual cap.
func civilPenaltyTable(t domain.CivilSentenceType) (base, limit float64) {
	switch t {
	case domain.CivilViolencia:
		return 50, 70
	case domain.CivilAlimentos:
		return 35, 50
	case domain.CivilLaboral:
		return 25, 40
	case domain.CivilContractual:
		return 15, 25
	}
	return 0, 0
}

// civilStackMultiplier is the diminishing-returns weight for the Nth
// (0-indexed) sentence of the same type: full, half, then quarter for
// every further repetition. The exact sequence is load-bearing for
// downstream expectations; do not collapse the flat tail.
func civilStackMultiplier(n int) float64 {
	switch n {
	case 0:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0.25
	}
}

// resignationPenalty is the tiered penalty on party resignations.
func resignationPenalty(count int) float64 {
	switch {
	case count >= 4:
		return 15
	case count >= 2:
		return 10
	case count == 1:
		return 5
	default:
		return 0
	}
}

// penalPenalty computes the firm/pending penal penalty under the
// 85-point penal cap.
func penalPenalty(sentences []domain.PenalSentence) domain.PenalPenaltyDetail {
	detail := domain.PenalPenaltyDetail{}
	for _, s := range sentences {
		if s.IsFirm {
			detail.FirmCount++
		} else {
			detail.PendingCount++
		}
	}

	var penalty float64
	switch {
	case detail.FirmCount >= 2:
		penalty = penalPenaltyMultipleFirm
	case detail.FirmCount == 1:
		penalty = penalPenaltySingleFirm
	}
	penalty += float64(detail.PendingCount) * penalPenaltyPending

	detail.Applied = math.Min(penalty, penalPenaltyCap)
	return detail
}

// civilPenalties groups civil sentences by type, stacks each type with
// diminishing returns (or full weight under legacy stacking), caps each
// type individually, then caps the cross-type aggregate.
func civilPenalties(sentences []domain.CivilSentence, legacyStacking bool) ([]domain.CivilPenaltyDetail, float64) {
	counts := make(map[domain.CivilSentenceType]int, len(sentences))
	for _, s := range sentences {
		counts[s.Type]++
	}

	var details []domain.CivilPenaltyDetail
	var aggregate float64
	for _, t := range domain.CivilSentenceTypes() {
		count := counts[t]
		if count == 0 {
			continue
		}
		base, typeCap := civilPenaltyTable(t)
		var raw float64
		for n := 0; n < count; n++ {
			if legacyStacking {
				raw += base
			} else {
				raw += base * civilStackMultiplier(n)
			}
		}
		capped := math.Min(raw, typeCap)
		details = append(details, domain.CivilPenaltyDetail{
			Type:   t,
			Count:  count,
			Raw:    raw,
			Capped: capped,
		})
		aggregate += capped
	}

	return details, math.Min(aggregate, civilAggregateCap)
}

// ScoreIntegrity computes the traditional integrity score: penal,
// civil, and resignation penalties subtracted from a 100-point base,
// floored at zero. legacyStacking reproduces the older full-weight
// civil stacking behavior.
func ScoreIntegrity(c *domain.CandidateData, legacyStacking bool) domain.IntegrityScore {
	penal := penalPenalty(c.PenalSentences)
	civil, civilTotal := civilPenalties(c.CivilSentences, legacyStacking)
	resignations := resignationPenalty(c.PartyResignations)

	total := math.Max(integrityBase-penal.Applied-civilTotal-resignations, 0)

	return domain.IntegrityScore{
		Base:               integrityBase,
		Penal:              penal,
		CivilPenalties:     civil,
		CivilTotal:         civilTotal,
		ResignationPenalty: resignations,
		Total:              total,
	}
}
