package application

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/votolimpio/puntaje/internal/domain"
)

// RankedCandidate is one row of a composite ranking.
type RankedCandidate struct {
	// Rank is 1-based; candidates with equal composites share a rank.
	Rank int `json:"rank"`

	// Composite is the value the ranking was ordered by.
	Composite float64 `json:"composite"`

	Result *domain.ScoreResult `json:"result"`
}

// compositeOf extracts the named preset composite from a result.
func compositeOf(r *domain.ScoreResult, preset string) (float64, error) {
	switch preset {
	case "balanced":
		return r.Composites.Balanced, nil
	case "merit":
		return r.Composites.Merit, nil
	case "integrity_first":
		return r.Composites.IntegrityFirst, nil
	case "presidential":
		if r.Composites.Presidential == nil {
			return 0, fmt.Errorf("candidate %q has no presidential composite", r.Candidate)
		}
		return *r.Composites.Presidential, nil
	}
	return 0, fmt.Errorf("unknown composite preset %q", preset)
}

// Rank orders scored candidates by the named preset composite,
// descending. Ties are broken by candidate name under Spanish
// collation so accented names sort the way a voter expects.
func Rank(results []*domain.ScoreResult, preset string) ([]RankedCandidate, error) {
	ranked := make([]RankedCandidate, 0, len(results))
	for _, r := range results {
		composite, err := compositeOf(r, preset)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedCandidate{Composite: composite, Result: r})
	}

	coll := collate.New(language.Spanish)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Composite != ranked[j].Composite {
			return ranked[i].Composite > ranked[j].Composite
		}
		return coll.CompareString(ranked[i].Result.Candidate, ranked[j].Result.Candidate) < 0
	})

	for i := range ranked {
		if i > 0 && ranked[i].Composite == ranked[i-1].Composite {
			ranked[i].Rank = ranked[i-1].Rank
			continue
		}
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
