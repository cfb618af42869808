package scoring

import (
	"github.com/votolimpio/puntaje/internal/domain"
)

// Performance scoring constants.
const (
	performanceBase = 50

	// performanceBudgetWeight scales the deviation of budget execution
	// from the 50 percent midpoint.
	performanceBudgetWeight = 0.5

	performancePerAuditReport = 10
)

// ScorePerformance computes the optional incumbent performance score.
// It returns nil for non-incumbents. A direct override score, when
// supplied, replaces the computed value; the result is clamped to
// [0, 100] either way.
func ScorePerformance(rec *domain.IncumbentRecord) *domain.PerformanceScore {
	if rec == nil || !rec.IsIncumbent {
		return nil
	}

	score := domain.PerformanceScore{Base: performanceBase}
	if rec.BudgetExecutionPct != nil {
		score.BudgetAdjustment = (*rec.BudgetExecutionPct - 50) * performanceBudgetWeight
	}
	score.AuditPenalty = float64(rec.AuditReports) * performancePerAuditReport

	total := score.Base + score.BudgetAdjustment - score.AuditPenalty
	if rec.OverrideScore != nil {
		total = *rec.OverrideScore
		score.Overridden = true
	}
	score.Total = clampScore(total)
	return &score
}
