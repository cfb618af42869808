package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// competenceCap bounds the competence composite. This is the only
// place the four competence sub-components are summed.
const competenceCap = 100

// ScoreCompetence computes education, experience, and leadership
// sub-scores for a candidate and sums them under the 100-point cap.
func ScoreCompetence(c *domain.CandidateData, cargo domain.Cargo, referenceYear int) domain.CompetenceScore {
	education := ScoreEducation(c.Education)
	experience := ScoreExperience(c.Experience, cargo, referenceYear)
	leadership := ScoreLeadership(c.Experience, referenceYear)

	total := education.Total + experience.Total + experience.Relevant + leadership.Total

	return domain.CompetenceScore{
		Education:  education,
		Experience: experience,
		Leadership: leadership,
		Total:      math.Min(total, competenceCap),
	}
}
