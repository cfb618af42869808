package scoring

import (
	"github.com/votolimpio/puntaje/internal/domain"
)

// Confidence scoring constants. Verification and coverage each carry
// half the confidence scale.
const (
	verificationScale = 50
	coverageScale     = 50
)

// ScoreConfidence scales the verification and coverage levels to the
// confidence score. It reflects how much the system trusts its own
// data about the candidate, not the candidate's behavior.
func ScoreConfidence(c *domain.CandidateData) domain.ConfidenceScore {
	verification := scalePoints(c.VerificationLevel, verificationScale)
	coverage := scalePoints(c.CoverageLevel, coverageScale)
	return domain.ConfidenceScore{
		Verification: verification,
		Coverage:     coverage,
		Total:        verification + coverage,
	}
}
