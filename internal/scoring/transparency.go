package scoring

import (
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Transparency scoring constants.
const (
	completenessScale  = 35
	consistencyScale   = 35
	assetsQualityScale = 30

	// consistencyFloor is the flat consistency awarded when income
	// sources exist but no total was declared.
	consistencyFloor = 5

	onpePenaltyPerSanction = 15
	onpePenaltyCap         = 30

	// qualityPctPerCategory rewards each distinct income-source
	// category, up to qualityCategoryCap categories.
	qualityPctPerCategory = 16
	qualityCategoryCap    = 5

	// qualityPctAmountBonus rewards declarations where every source
	// carries a positive amount.
	qualityPctAmountBonus = 20
)

// completenessPct derives the profile-completeness percentage from
// filled versus expected field counts.
func completenessPct(p *domain.ProfileFields) float64 {
	if p == nil || p.Total <= 0 {
		return 0
	}
	return clamp(float64(p.Filled)/float64(p.Total)*100, 0, 100)
}

// consistencyPoints derives the income-declaration plausibility points.
// A declared total close to the itemized source sum scores high; a full
// mismatch scores near zero; sources with no declared total at all get
// the flat floor.
func consistencyPoints(a *domain.AssetsDeclaration) float64 {
	if a == nil {
		return 0
	}
	var sourceSum float64
	for _, s := range a.IncomeSources {
		sourceSum += s.Amount
	}

	if a.DeclaredIncome == nil || *a.DeclaredIncome <= 0 {
		if sourceSum > 0 {
			return consistencyFloor
		}
		return 0
	}

	gap := math.Abs(sourceSum-*a.DeclaredIncome) / *a.DeclaredIncome
	pct := clamp((1-gap)*100, 0, 100)
	return scalePoints(pct, consistencyScale)
}

// assetsQualityPct derives the declaration-granularity percentage:
// distinct source categories plus a bonus for fully quantified sources.
func assetsQualityPct(a *domain.AssetsDeclaration) float64 {
	if a == nil || len(a.IncomeSources) == 0 {
		return 0
	}
	categories := make(map[string]struct{}, len(a.IncomeSources))
	allQuantified := true
	for _, s := range a.IncomeSources {
		categories[s.Category] = struct{}{}
		if s.Amount <= 0 {
			allQuantified = false
		}
	}
	n := len(categories)
	if n > qualityCategoryCap {
		n = qualityCategoryCap
	}
	pct := float64(n) * qualityPctPerCategory
	if allQuantified {
		pct += qualityPctAmountBonus
	}
	return clamp(pct, 0, 100)
}

// ScoreTransparency computes the disclosure sub-score. The legacy
// pre-computed percentage triple is used when present; otherwise the
// three components are derived from the assets declaration and profile
// field counts. ONPE sanctions subtract a capped penalty.
func ScoreTransparency(c *domain.CandidateData) domain.TransparencyScore {
	var completeness, consistency, quality float64
	if c.Disclosure != nil {
		completeness = scalePoints(c.Disclosure.Completeness, completenessScale)
		consistency = scalePoints(c.Disclosure.Consistency, consistencyScale)
		quality = scalePoints(c.Disclosure.AssetsQuality, assetsQualityScale)
	} else {
		completeness = scalePoints(completenessPct(c.Profile), completenessScale)
		consistency = consistencyPoints(c.Assets)
		quality = scalePoints(assetsQualityPct(c.Assets), assetsQualityScale)
	}

	penalty := math.Min(float64(c.OnpeSanctions)*onpePenaltyPerSanction, onpePenaltyCap)

	return domain.TransparencyScore{
		Completeness:  completeness,
		Consistency:   consistency,
		AssetsQuality: quality,
		OnpePenalty:   penalty,
		Total:         math.Max(completeness+consistency+quality-penalty, 0),
	}
}
