// Package testutils provides shared candidate fixtures for scoring
// tests.
package testutils

import (
	"github.com/go-playground/validator/v10"

	"github.com/votolimpio/puntaje/internal/domain"
)

// NewTestValidator creates a new validator instance for testing.
// This provides a consistent validator configuration across all tests.
func NewTestValidator() *validator.Validate {
	return validator.New()
}

// Year returns a pointer to the given year, for optional end-year
// fields.
func Year(y int) *int { return &y }

// Float returns a pointer to the given value, for optional numeric
// fields.
func Float(v float64) *float64 { return &v }

// CleanCandidate returns a fully verified candidate with a strong
// record and no legal history. Useful as a baseline: integrity scores
// exactly 100.
func CleanCandidate() domain.CandidateData {
	return domain.CandidateData{
		Name: "Ana Pérez",
		Education: []domain.EducationRecord{
			{Level: domain.EducationDoctorado, Year: 2005},
			{Level: domain.EducationMaestria, Year: 2000},
		},
		Experience: []domain.ExperienceRecord{
			{
				RoleType:       domain.RoleEjecutivoPublicoAlto,
				StartYear:      2010,
				EndYear:        Year(2020),
				IsLeadership:   true,
				SeniorityLevel: domain.SeniorityDireccion,
			},
		},
		Disclosure: &domain.DisclosurePercentages{
			Completeness:  100,
			Consistency:   100,
			AssetsQuality: 100,
		},
		VerificationLevel: 100,
		CoverageLevel:     100,
	}
}

// MinimalCandidate returns a structurally valid candidate with no
// records at all. Every optional sub-score collapses to its zero
// contribution.
func MinimalCandidate() domain.CandidateData {
	return domain.CandidateData{Name: "N. N."}
}
