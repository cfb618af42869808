// Package scoring implements the candidate scoring engine: competence,
// integrity (traditional and enhanced), transparency, confidence, and
// incumbent performance sub-scores, combined into weighted composites.
// Every scorer is a pure function over validated input; the package
// holds no mutable state beyond fixed lookup tables.
package scoring

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// Common errors returned by the scoring engine.
var (
	// ErrNilCandidate is returned when Score receives a nil candidate.
	ErrNilCandidate = errors.New("candidate data cannot be nil")

	// ErrInvalidReferenceYear is returned when the reference year is
	// not a plausible calendar year.
	ErrInvalidReferenceYear = errors.New("reference year out of range")

	// ErrInvalidWeights is returned when a custom weight set cannot be
	// normalized (NaN or infinite components).
	ErrInvalidWeights = errors.New("invalid weight set")
)

// Package-level validator instance for configuration and input validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// clampScore bounds v to the standard [0, 100] score range.
func clampScore(v float64) float64 { return clamp(v, 0, 100) }

// scalePoints converts a 0-100 percentage into points on a smaller
// scale, rounding half away from zero.
func scalePoints(pct, scale float64) float64 {
	return math.Round(clamp(pct, 0, 100) / 100 * scale)
}
