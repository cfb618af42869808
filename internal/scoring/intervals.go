package scoring

import (
	"sort"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Interval is a half-open [Start, End) year range covered by a tenure.
type Interval struct {
	Start int
	End   int
}

// Years returns the elapsed years the interval spans.
func (iv Interval) Years() int {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// MergeResult is the outcome of normalizing a tenure list into
// non-overlapping coverage. It is the shared primitive for both
// total-experience and leadership-stability tenure counting.
type MergeResult struct {
	// Merged is the non-overlapping coverage, sorted by start year.
	Merged []Interval

	// RawYears sums the unmerged spans.
	RawYears int

	// UniqueYears sums the merged spans, so overlapping tenures never
	// double-count elapsed time.
	UniqueYears int

	// HasOverlap reports whether RawYears and UniqueYears differ.
	HasOverlap bool
}

// MergeIntervals sorts the given intervals by start year and
// sweep-merges overlapping or adjacent ranges.
func MergeIntervals(intervals []Interval) MergeResult {
	var res MergeResult
	if len(intervals) == 0 {
		return res
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for _, iv := range sorted {
		res.RawYears += iv.Years()
		if iv.Years() == 0 && iv.End < iv.Start {
			// Degenerate range; contributes nothing to coverage.
			continue
		}
		n := len(res.Merged)
		if n > 0 && iv.Start <= res.Merged[n-1].End {
			if iv.End > res.Merged[n-1].End {
				res.Merged[n-1].End = iv.End
			}
			continue
		}
		res.Merged = append(res.Merged, iv)
	}

	for _, iv := range res.Merged {
		res.UniqueYears += iv.Years()
	}
	res.HasOverlap = res.RawYears != res.UniqueYears
	return res
}

// tenureInterval resolves one experience record into an interval,
// defaulting an open-ended tenure to the reference year.
func tenureInterval(r domain.ExperienceRecord, referenceYear int) Interval {
	end := referenceYear
	if r.EndYear != nil {
		end = *r.EndYear
	}
	return Interval{Start: r.StartYear, End: end}
}

// mergeTenures normalizes the given experience records into
// non-overlapping coverage. When onlyLeadership is set, only records
// tagged as leadership positions with a seniority level are counted,
// the same records the seniority scan considers.
func mergeTenures(records []domain.ExperienceRecord, referenceYear int, onlyLeadership bool) MergeResult {
	intervals := make([]Interval, 0, len(records))
	for _, r := range records {
		if onlyLeadership && (!r.IsLeadership || r.SeniorityLevel == "") {
			continue
		}
		intervals = append(intervals, tenureInterval(r, referenceYear))
	}
	return MergeIntervals(intervals)
}
