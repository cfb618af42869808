// Package domain defines the input records, closed categorical enums,
// result types, and errors of the candidate scoring engine.
// Every type here is a plain value object: the engine never mutates its
// input and retains no state between scoring calls.
package domain

// EducationRecord is one academic attainment entry for a candidate.
// Records are supplied whole and treated as immutable.
type EducationRecord struct {
	// Level is the academic level reached. Member of the closed
	// EducationLevel set; anything else is rejected at the boundary.
	Level EducationLevel `json:"level" yaml:"level"`

	// Year the degree or level was obtained, when known.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Field of study, when known.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`

	// Institution that granted the level, when known.
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
}

// ExperienceRecord is one professional tenure entry for a candidate.
type ExperienceRecord struct {
	// RoleType classifies the position. Member of the closed RoleType set.
	RoleType RoleType `json:"role_type" yaml:"role_type"`

	// StartYear is the year the tenure began.
	StartYear int `json:"start_year" yaml:"start_year"`

	// EndYear is the year the tenure ended. Nil means ongoing; ongoing
	// tenures are resolved against the reference year at evaluation time.
	EndYear *int `json:"end_year,omitempty" yaml:"end_year,omitempty"`

	// IsLeadership marks the tenure as a leadership position. Only
	// leadership-tagged records with a seniority level feed the
	// leadership sub-score.
	IsLeadership bool `json:"is_leadership,omitempty" yaml:"is_leadership,omitempty"`

	// SeniorityLevel is the management tier of a leadership tenure.
	// Empty for non-leadership records.
	SeniorityLevel SeniorityLevel `json:"seniority_level,omitempty" yaml:"seniority_level,omitempty"`
}

// PenalSentence is one penal judgment against the candidate.
type PenalSentence struct {
	// IsFirm reports whether the judgment is final with no appeal
	// pending. Firm sentences carry a much larger penalty than
	// pending or appealed ones.
	IsFirm bool `json:"is_firm" yaml:"is_firm"`
}

// CivilSentence is one civil judgment against the candidate.
type CivilSentence struct {
	// Type classifies the judgment. Member of the closed
	// CivilSentenceType set; the type selects the base penalty and
	// the per-type penalty cap.
	Type CivilSentenceType `json:"type" yaml:"type"`
}

// IncomeSource is one declared source of income inside an assets
// declaration.
type IncomeSource struct {
	// Category names the source kind (salary, rental, dividends, ...).
	Category string `json:"category" yaml:"category"`

	// Amount is the declared yearly amount for this source.
	Amount float64 `json:"amount" yaml:"amount" validate:"min=0"`
}

// AssetsDeclaration is the structured asset and income declaration
// filed by the candidate. The transparency consistency and quality
// sub-scores are derived from it when the legacy percentage triple is
// not supplied directly.
type AssetsDeclaration struct {
	// DeclaredIncome is the total yearly income the candidate declared.
	// Nil means the candidate declared no total.
	DeclaredIncome *float64 `json:"declared_income,omitempty" yaml:"declared_income,omitempty" validate:"omitempty,min=0"`

	// IncomeSources itemizes the declared income.
	IncomeSources []IncomeSource `json:"income_sources,omitempty" yaml:"income_sources,omitempty"`
}

// ProfileFields counts the declared-profile fields a candidate was
// expected to fill versus the fields actually filled. It feeds the
// transparency completeness sub-score.
type ProfileFields struct {
	Total  int `json:"total" yaml:"total"`
	Filled int `json:"filled" yaml:"filled"`
}

// DisclosurePercentages is the legacy transparency input: the three
// sub-scores pre-computed as percentages by an upstream pipeline.
// When present it takes precedence over derivation from the assets
// declaration.
type DisclosurePercentages struct {
	Completeness  float64 `json:"completeness" yaml:"completeness" validate:"min=0,max=100"`
	Consistency   float64 `json:"consistency" yaml:"consistency" validate:"min=0,max=100"`
	AssetsQuality float64 `json:"assets_quality" yaml:"assets_quality" validate:"min=0,max=100"`
}

// VotingRecord carries pre-computed voting-history adjustments from the
// electoral registry pipeline.
type VotingRecord struct {
	// Penalty is the accumulated voting-record penalty, applied capped at 85.
	Penalty float64 `json:"penalty,omitempty" yaml:"penalty,omitempty" validate:"min=0"`

	// Bonus is the accumulated voting-record bonus, applied capped at 15.
	Bonus float64 `json:"bonus,omitempty" yaml:"bonus,omitempty" validate:"min=0"`
}

// TaxRecord carries the candidate's SUNAT standing.
type TaxRecord struct {
	// Condition is the taxpayer locatability finding.
	Condition TaxCondition `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Status is the registration status.
	Status TaxStatus `json:"status,omitempty" yaml:"status,omitempty"`

	// CoactiveDebts counts active coactive collection processes.
	CoactiveDebts int `json:"coactive_debts,omitempty" yaml:"coactive_debts,omitempty" validate:"min=0"`
}

// JudicialDiscrepancy describes undeclared judicial history discovered
// by cross-checking court registries against the candidate's own
// declaration.
type JudicialDiscrepancy struct {
	// Found reports whether any discrepancy was detected. The omission
	// penalty only applies when set.
	Found bool `json:"found" yaml:"found"`

	// Severity grades the worst discrepancy found.
	Severity DiscrepancySeverity `json:"severity,omitempty" yaml:"severity,omitempty"`

	// UndeclaredCases counts cases present in registries but absent
	// from the declaration.
	UndeclaredCases int `json:"undeclared_cases,omitempty" yaml:"undeclared_cases,omitempty" validate:"min=0"`
}

// CompanyRecord counts legal issues of companies the candidate owns or
// directs.
type CompanyRecord struct {
	PenalCases          int `json:"penal_cases,omitempty" yaml:"penal_cases,omitempty" validate:"min=0"`
	LaborIssues         int `json:"labor_issues,omitempty" yaml:"labor_issues,omitempty" validate:"min=0"`
	EnvironmentalIssues int `json:"environmental_issues,omitempty" yaml:"environmental_issues,omitempty" validate:"min=0"`
	ConsumerComplaints  int `json:"consumer_complaints,omitempty" yaml:"consumer_complaints,omitempty" validate:"min=0"`
}

// IncumbentRecord carries performance inputs for candidates currently
// holding office. Non-incumbents receive no performance score.
type IncumbentRecord struct {
	// IsIncumbent gates the whole performance sub-score.
	IsIncumbent bool `json:"is_incumbent" yaml:"is_incumbent"`

	// BudgetExecutionPct is the budget execution percentage of the
	// candidate's administration, when known.
	BudgetExecutionPct *float64 `json:"budget_execution_pct,omitempty" yaml:"budget_execution_pct,omitempty" validate:"omitempty,min=0,max=100"`

	// AuditReports counts adverse comptroller audit reports.
	AuditReports int `json:"audit_reports,omitempty" yaml:"audit_reports,omitempty" validate:"min=0"`

	// OverrideScore, when set, replaces the computed performance score.
	OverrideScore *float64 `json:"override_score,omitempty" yaml:"override_score,omitempty" validate:"omitempty,min=0,max=100"`
}

// CandidateData is the aggregate scoring input: everything the engine
// needs to score one candidate. Callers assemble it fresh per scoring
// call from persisted records; the engine never mutates it.
type CandidateData struct {
	// Name identifies the candidate for ranking output. Not used in
	// any score computation.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Education  []EducationRecord  `json:"education,omitempty" yaml:"education,omitempty"`
	Experience []ExperienceRecord `json:"experience,omitempty" yaml:"experience,omitempty"`

	PenalSentences    []PenalSentence `json:"penal_sentences,omitempty" yaml:"penal_sentences,omitempty"`
	CivilSentences    []CivilSentence `json:"civil_sentences,omitempty" yaml:"civil_sentences,omitempty"`
	PartyResignations int             `json:"party_resignations,omitempty" yaml:"party_resignations,omitempty" validate:"min=0"`

	// Disclosure is the legacy pre-computed transparency triple. When
	// nil, the triple is derived from Assets and Profile.
	Disclosure *DisclosurePercentages `json:"disclosure,omitempty" yaml:"disclosure,omitempty"`

	// Assets is the structured declaration used to derive consistency
	// and quality when Disclosure is absent.
	Assets *AssetsDeclaration `json:"assets,omitempty" yaml:"assets,omitempty"`

	// Profile is the field-completeness count used to derive
	// completeness when Disclosure is absent.
	Profile *ProfileFields `json:"profile,omitempty" yaml:"profile,omitempty"`

	// OnpeSanctions counts electoral-finance sanctions applied by ONPE.
	OnpeSanctions int `json:"onpe_sanctions,omitempty" yaml:"onpe_sanctions,omitempty" validate:"min=0"`

	// VerificationLevel and CoverageLevel (0-100) express how much of
	// the candidate's record the system verified and covered. They feed
	// the confidence score, not any judgment of the candidate.
	VerificationLevel float64 `json:"verification_level" yaml:"verification_level" validate:"min=0,max=100"`
	CoverageLevel     float64 `json:"coverage_level" yaml:"coverage_level" validate:"min=0,max=100"`

	// PlanViability is the externally computed government-plan
	// viability score (0-100), consumed only by the presidential
	// four-pillar composite.
	PlanViability *float64 `json:"plan_viability,omitempty" yaml:"plan_viability,omitempty" validate:"omitempty,min=0,max=100"`

	// Enhanced carries the optional enhanced-integrity inputs. When nil
	// the engine computes traditional integrity only.
	Enhanced *EnhancedIntegrityData `json:"enhanced,omitempty" yaml:"enhanced,omitempty"`
}

// EnhancedIntegrityData extends CandidateData with the four additional
// penalty and bonus sources of the enhanced integrity pipeline, plus
// incumbent performance inputs.
type EnhancedIntegrityData struct {
	Voting      *VotingRecord        `json:"voting,omitempty" yaml:"voting,omitempty"`
	Tax         *TaxRecord           `json:"tax,omitempty" yaml:"tax,omitempty"`
	Judicial    *JudicialDiscrepancy `json:"judicial,omitempty" yaml:"judicial,omitempty"`
	Companies   *CompanyRecord       `json:"companies,omitempty" yaml:"companies,omitempty"`
	Performance *IncumbentRecord     `json:"performance,omitempty" yaml:"performance,omitempty"`
}
