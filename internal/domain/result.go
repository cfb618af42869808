package domain

// EducationScore is the education sub-breakdown of competence.
type EducationScore struct {
	// Level is the points of the highest education level found (0-22).
	Level float64 `json:"level"`

	// Depth rewards additional substantive degrees beyond the top one
	// (+2 each, capped at 8).
	Depth float64 `json:"depth"`

	// Total is min(Level+Depth, 30).
	Total float64 `json:"total"`
}

// ExperienceScore is the experience sub-breakdown of competence.
type ExperienceScore struct {
	// UniqueYears is the overlap-merged tenure coverage in years.
	UniqueYears int `json:"unique_years"`

	// RawYears is the unmerged sum of tenure spans; differs from
	// UniqueYears only when tenures overlap.
	RawYears int `json:"raw_years"`

	// HasOverlap reports whether any two tenures overlapped.
	HasOverlap bool `json:"has_overlap"`

	// Total is the tiered total-experience score (0-25).
	Total float64 `json:"total"`

	// Relevant is the cargo-weighted relevant-experience score (0-25).
	Relevant float64 `json:"relevant"`
}

// LeadershipScore is the leadership sub-breakdown of competence.
type LeadershipScore struct {
	// Seniority is the best seniority-table value across leadership
	// records (0-14).
	Seniority float64 `json:"seniority"`

	// Stability is the tiered score over merged leadership years (0-6).
	Stability float64 `json:"stability"`

	// Total is min(Seniority+Stability, 20).
	Total float64 `json:"total"`
}

// CompetenceScore aggregates education, experience, and leadership.
// This is the sole owner of the final 100-point competence cap.
type CompetenceScore struct {
	Education  EducationScore  `json:"education"`
	Experience ExperienceScore `json:"experience"`
	Leadership LeadershipScore `json:"leadership"`

	// Total is min(sum of the four sub-components, 100).
	Total float64 `json:"total"`
}

// CivilPenaltyDetail is the per-type civil penalty breakdown. Downstream
// display panels index into these named fields, so the shape is stable.
type CivilPenaltyDetail struct {
	// Type is the civil sentence type this entry covers.
	Type CivilSentenceType `json:"type"`

	// Count is the number of sentences of this type.
	Count int `json:"count"`

	// Raw is the diminishing-returns stacked penalty before the
	// per-type cap.
	Raw float64 `json:"raw"`

	// Capped is the penalty after the per-type cap.
	Capped float64 `json:"capped"`
}

// PenalPenaltyDetail is the penal penalty breakdown.
type PenalPenaltyDetail struct {
	// FirmCount counts firm (non-appealable) sentences.
	FirmCount int `json:"firm_count"`

	// PendingCount counts non-firm (pending or appealed) sentences.
	PendingCount int `json:"pending_count"`

	// Applied is the penal penalty actually subtracted, after the
	// 85-point penal cap.
	Applied float64 `json:"applied"`
}

// IntegrityScore is the traditional integrity breakdown: penalties
// subtracted from a 100-point base, floored at zero.
type IntegrityScore struct {
	// Base is always 100.
	Base float64 `json:"base"`

	Penal PenalPenaltyDetail `json:"penal"`

	// CivilPenalties holds one entry per civil sentence type present,
	// in CivilSentenceTypes order.
	CivilPenalties []CivilPenaltyDetail `json:"civil_penalties"`

	// CivilTotal is the cross-type civil penalty after the 85-point
	// aggregate cap.
	CivilTotal float64 `json:"civil_total"`

	// ResignationPenalty is the tiered party-resignation penalty.
	ResignationPenalty float64 `json:"resignation_penalty"`

	// Total is max(Base - penalties, 0).
	Total float64 `json:"total"`
}

// IntegritySubtotals records the running total after each stage of the
// enhanced integrity pipeline. The chained-subtotal breakdown is the
// defining contract of the enhanced pipeline: each value is the score
// as it stood after that stage, clamped to [0, 100] for display.
type IntegritySubtotals struct {
	AfterTraditional float64 `json:"after_traditional"`
	AfterVoting      float64 `json:"after_voting"`
	AfterTax         float64 `json:"after_tax"`
	AfterJudicial    float64 `json:"after_judicial"`
	Final            float64 `json:"final"`
}

// EnhancedIntegrityBreakdown is the full enhanced integrity result:
// the traditional breakdown plus the four chained adjustments and
// every intermediate subtotal.
type EnhancedIntegrityBreakdown struct {
	Traditional IntegrityScore `json:"traditional"`

	// VotingPenalty and VotingBonus are the applied (capped) voting
	// adjustments.
	VotingPenalty float64 `json:"voting_penalty"`
	VotingBonus   float64 `json:"voting_bonus"`

	// TaxPenalty is the applied SUNAT penalty (capped at 85).
	TaxPenalty float64 `json:"tax_penalty"`

	// JudicialPenalty is the applied omission penalty (capped at 85).
	JudicialPenalty float64 `json:"judicial_penalty"`

	// CompanyPenalty is the applied corporate-record penalty (capped at 60).
	CompanyPenalty float64 `json:"company_penalty"`

	Subtotals IntegritySubtotals `json:"subtotals"`

	// Total equals Subtotals.Final.
	Total float64 `json:"total"`
}

// TransparencyScore is the disclosure-quality breakdown.
type TransparencyScore struct {
	// Completeness is the profile-completeness points (0-35).
	Completeness float64 `json:"completeness"`

	// Consistency is the income-declaration plausibility points (0-35).
	Consistency float64 `json:"consistency"`

	// AssetsQuality is the declaration-granularity points (0-30).
	AssetsQuality float64 `json:"assets_quality"`

	// OnpePenalty is the applied sanctions penalty (0-30).
	OnpePenalty float64 `json:"onpe_penalty"`

	// Total is max(sum - OnpePenalty, 0).
	Total float64 `json:"total"`
}

// ConfidenceScore expresses how much the system trusts its own data
// about the candidate. It is not a judgment of the candidate.
type ConfidenceScore struct {
	Verification float64 `json:"verification"`
	Coverage     float64 `json:"coverage"`
	Total        float64 `json:"total"`
}

// PerformanceScore is the optional incumbent performance breakdown.
type PerformanceScore struct {
	// Base is always 50.
	Base float64 `json:"base"`

	// BudgetAdjustment is (budget execution pct - 50) x 0.5, zero when
	// no execution figure was supplied.
	BudgetAdjustment float64 `json:"budget_adjustment"`

	// AuditPenalty is 10 points per adverse audit report.
	AuditPenalty float64 `json:"audit_penalty"`

	// Overridden reports whether a direct override replaced the
	// computed value.
	Overridden bool `json:"overridden"`

	// Total is the final performance score, clamped to [0, 100].
	Total float64 `json:"total"`
}

// CompositeSet holds every weighted composite produced for a candidate.
type CompositeSet struct {
	Balanced       float64 `json:"balanced"`
	Merit          float64 `json:"merit"`
	IntegrityFirst float64 `json:"integrity_first"`

	// Presidential is the four-pillar composite including plan
	// viability. Nil when no plan-viability score was supplied.
	Presidential *float64 `json:"presidential,omitempty"`
}

// ScoreResult is the complete output of one scoring call.
type ScoreResult struct {
	// Candidate echoes the candidate name for ranking output.
	Candidate string `json:"candidate,omitempty"`

	// Cargo echoes the target cargo the candidate was scored for.
	Cargo Cargo `json:"cargo"`

	// ReferenceYear echoes the year open-ended tenures were resolved
	// against.
	ReferenceYear int `json:"reference_year"`

	Competence   CompetenceScore   `json:"competence"`
	Integrity    IntegrityScore    `json:"integrity"`
	Transparency TransparencyScore `json:"transparency"`
	Confidence   ConfidenceScore   `json:"confidence"`

	// IntegrityBreakdown is present when enhanced integrity data was
	// supplied; its Total then supersedes Integrity.Total in composites.
	IntegrityBreakdown *EnhancedIntegrityBreakdown `json:"integrity_breakdown,omitempty"`

	// Performance is present only for incumbents.
	Performance *PerformanceScore `json:"performance,omitempty"`

	Composites CompositeSet `json:"composites"`
}

// IntegrityTotal returns the integrity value composites are built on:
// the enhanced final when the enhanced pipeline ran, the traditional
// total otherwise.
func (r *ScoreResult) IntegrityTotal() float64 {
	if r.IntegrityBreakdown != nil {
		return r.IntegrityBreakdown.Total
	}
	return r.Integrity.Total
}
