package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Enhanced integrity pipeline constants.
const (
	votingPenaltyCap = 85
	votingBonusCap   = 15

	taxPenaltyNoHabido   = 50
	taxPenaltyNoHallado  = 20
	taxPenaltySuspendido = 15
	taxPenaltyBaja       = 10
	taxPenaltyPerDebt    = 20
	taxDebtCountCap      = 3
	taxPenaltyCap        = 85

	judicialPenaltyCritical = 60
	judicialPenaltyMajor    = 40
	judicialPenaltyMinor    = 20
	judicialPerUndeclared   = 10
	judicialPenaltyCap      = 85

	companyPerPenalCase    = 40
	companyPerLaborIssue   = 20
	companyPerEnvIssue     = 25
	companyConsumerFlat    = 15
	companyConsumerTrigger = 5
	companyPenaltyCap      = 60
)

// votingAdjustment caps the voting-record penalty and bonus.
func votingAdjustment(v *domain.VotingRecord) (penalty, bonus float64) {
	if v == nil {
		return 0, 0
	}
	return math.Min(v.Penalty, votingPenaltyCap), math.Min(v.Bonus, votingBonusCap)
}

// taxPenalty computes the SUNAT compliance penalty. Condition and
// status contribute independently; coactive debts stack up to three.
func taxPenalty(t *domain.TaxRecord) float64 {
	if t == nil {
		return 0
	}
	var penalty float64
	switch t.Condition {
	case domain.TaxConditionNoHabido:
		penalty += taxPenaltyNoHabido
	case domain.TaxConditionNoHallado:
		penalty += taxPenaltyNoHallado
	}
	switch t.Status {
	case domain.TaxStatusSuspendido:
		penalty += taxPenaltySuspendido
	case domain.TaxStatusBaja:
		penalty += taxPenaltyBaja
	}
	debts := t.CoactiveDebts
	if debts > taxDebtCountCap {
		debts = taxDebtCountCap
	}
	penalty += float64(debts) * taxPenaltyPerDebt
	return math.Min(penalty, taxPenaltyCap)
}

// judicialPenalty computes the omission penalty for undeclared judicial
// history. It only applies when a discrepancy was actually found.
func judicialPenalty(j *domain.JudicialDiscrepancy) float64 {
	if j == nil || !j.Found {
		return 0
	}
	var penalty float64
	switch j.Severity {
	case domain.DiscrepancyCritical:
		penalty = judicialPenaltyCritical
	case domain.DiscrepancyMajor:
		penalty = judicialPenaltyMajor
	case domain.DiscrepancyMinor:
		penalty = judicialPenaltyMinor
	}
	penalty += float64(j.UndeclaredCases) * judicialPerUndeclared
	return math.Min(penalty, judicialPenaltyCap)
}

// companyPenalty computes the corporate legal record penalty.
func companyPenalty(c *domain.CompanyRecord) float64 {
	if c == nil {
		return 0
	}
	penalty := float64(c.PenalCases)*companyPerPenalCase +
		float64(c.LaborIssues)*companyPerLaborIssue +
		float64(c.EnvironmentalIssues)*companyPerEnvIssue
	if c.ConsumerComplaints > companyConsumerTrigger {
		penalty += companyConsumerFlat
	}
	return math.Min(penalty, companyPenaltyCap)
}

// ScoreEnhancedIntegrity chains the four additional penalty and bonus
// sources over the traditional integrity score in a fixed order,
// recording the running total after every stage. The running total is
// carried raw; each exposed subtotal is clamped to [0, 100] and the
// final score is the clamped end of the chain.
func ScoreEnhancedIntegrity(traditional domain.IntegrityScore, data *domain.EnhancedIntegrityData) domain.EnhancedIntegrityBreakdown {
	breakdown := domain.EnhancedIntegrityBreakdown{Traditional: traditional}

	running := traditional.Total
	breakdown.Subtotals.AfterTraditional = clampScore(running)

	breakdown.VotingPenalty, breakdown.VotingBonus = votingAdjustment(data.Voting)
	running += breakdown.VotingBonus - breakdown.VotingPenalty
	breakdown.Subtotals.AfterVoting = clampScore(running)

	breakdown.TaxPenalty = taxPenalty(data.Tax)
	running -= breakdown.TaxPenalty
	breakdown.Subtotals.AfterTax = clampScore(running)

	breakdown.JudicialPenalty = judicialPenalty(data.Judicial)
	running -= breakdown.JudicialPenalty
	breakdown.Subtotals.AfterJudicial = clampScore(running)

	breakdown.CompanyPenalty = companyPenalty(data.Companies)
	running -= breakdown.CompanyPenalty

	breakdown.Subtotals.Final = clampScore(running)
	breakdown.Total = breakdown.Subtotals.Final
	return breakdown
}
