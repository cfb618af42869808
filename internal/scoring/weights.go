package scoring

import (
	"fmt"
	"math"

	"github.com/votolimpio/puntaje/internal/domain"
)

// Guardrail ranges every custom composite weight must satisfy before
// normalization. Out-of-range weights are clamped into the range, never
// silently accepted.
const (
	weightCoreMin = 0.20
	weightCoreMax = 0.55

	weightTransparencyMin = 0.05
	weightTransparencyMax = 0.20

	weightPlanMin = 0.05
	weightPlanMax = 0.30
)

// weightSumTolerance is the allowed deviation of a normalized weight
// sum from 1.0.
const weightSumTolerance = 1e-3

// Weights is a three-pillar composite weight set over competence,
// integrity, and transparency. A usable set sums to 1.0 within
// tolerance; Normalize produces one from arbitrary in-guardrail input.
type Weights struct {
	Competence   float64 `yaml:"competence" json:"competence" validate:"min=0,max=1"`
	Integrity    float64 `yaml:"integrity" json:"integrity" validate:"min=0,max=1"`
	Transparency float64 `yaml:"transparency" json:"transparency" validate:"min=0,max=1"`
}

// BalancedWeights is the default preset: competence and integrity
// weighted equally.
func BalancedWeights() Weights {
	return Weights{Competence: 0.45, Integrity: 0.45, Transparency: 0.10}
}

// MeritWeights emphasizes competence.
func MeritWeights() Weights {
	return Weights{Competence: 0.60, Integrity: 0.30, Transparency: 0.10}
}

// IntegrityFirstWeights emphasizes integrity.
func IntegrityFirstWeights() Weights {
	return Weights{Competence: 0.30, Integrity: 0.60, Transparency: 0.10}
}

// PresetWeights resolves a preset name to its weight set.
func PresetWeights(name string) (Weights, error) {
	switch name {
	case "balanced":
		return BalancedWeights(), nil
	case "merit":
		return MeritWeights(), nil
	case "integrity_first":
		return IntegrityFirstWeights(), nil
	}
	return Weights{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidWeights, name)
}

// Sum returns the total of the three weights.
func (w Weights) Sum() float64 { return w.Competence + w.Integrity + w.Transparency }

// Composite combines the three pillar scores under this weight set.
func (w Weights) Composite(competence, integrity, transparency float64) float64 {
	return w.Competence*competence + w.Integrity*integrity + w.Transparency*transparency
}

// Normalize clamps each weight into its guardrail range and rescales
// the set proportionally to sum to exactly 1.0, pushing residual
// floating-point error onto the largest weight. NaN or infinite
// components are rejected.
func (w Weights) Normalize() (Weights, error) {
	for _, v := range []float64{w.Competence, w.Integrity, w.Transparency} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Weights{}, fmt.Errorf("%w: non-finite component %f", ErrInvalidWeights, v)
		}
	}

	n := Weights{
		Competence:   clamp(w.Competence, weightCoreMin, weightCoreMax),
		Integrity:    clamp(w.Integrity, weightCoreMin, weightCoreMax),
		Transparency: clamp(w.Transparency, weightTransparencyMin, weightTransparencyMax),
	}

	sum := n.Sum()
	n.Competence /= sum
	n.Integrity /= sum
	n.Transparency /= sum

	// Push residual rounding error onto the largest weight: it is
	// recomputed as one minus the others so the set sums to 1.0.
	switch {
	case n.Competence >= n.Integrity && n.Competence >= n.Transparency:
		n.Competence = 1.0 - n.Integrity - n.Transparency
	case n.Integrity >= n.Transparency:
		n.Integrity = 1.0 - n.Competence - n.Transparency
	default:
		n.Transparency = 1.0 - n.Competence - n.Integrity
	}
	return n, nil
}

// PresidentialWeights is the four-pillar variant adding plan viability,
// used for presidential-level composites.
type PresidentialWeights struct {
	Competence   float64 `yaml:"competence" json:"competence" validate:"min=0,max=1"`
	Integrity    float64 `yaml:"integrity" json:"integrity" validate:"min=0,max=1"`
	Transparency float64 `yaml:"transparency" json:"transparency" validate:"min=0,max=1"`
	Plan         float64 `yaml:"plan" json:"plan" validate:"min=0,max=1"`
}

// DefaultPresidentialWeights is the balanced four-pillar preset.
func DefaultPresidentialWeights() PresidentialWeights {
	return PresidentialWeights{Competence: 0.40, Integrity: 0.40, Transparency: 0.10, Plan: 0.10}
}

// Sum returns the total of the four weights.
func (w PresidentialWeights) Sum() float64 {
	return w.Competence + w.Integrity + w.Transparency + w.Plan
}

// Composite combines the four pillar scores under this weight set.
func (w PresidentialWeights) Composite(competence, integrity, transparency, plan float64) float64 {
	return w.Competence*competence + w.Integrity*integrity +
		w.Transparency*transparency + w.Plan*plan
}

// Normalize clamps each weight into its guardrail range and rescales
// the set to sum to exactly 1.0, pushing residual error onto the
// largest weight.
func (w PresidentialWeights) Normalize() (PresidentialWeights, error) {
	for _, v := range []float64{w.Competence, w.Integrity, w.Transparency, w.Plan} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return PresidentialWeights{}, fmt.Errorf("%w: non-finite component %f", ErrInvalidWeights, v)
		}
	}

	n := PresidentialWeights{
		Competence:   clamp(w.Competence, weightCoreMin, weightCoreMax),
		Integrity:    clamp(w.Integrity, weightCoreMin, weightCoreMax),
		Transparency: clamp(w.Transparency, weightTransparencyMin, weightTransparencyMax),
		Plan:         clamp(w.Plan, weightPlanMin, weightPlanMax),
	}

	sum := n.Sum()
	n.Competence /= sum
	n.Integrity /= sum
	n.Transparency /= sum
	n.Plan /= sum

	switch {
	case n.Competence >= n.Integrity && n.Competence >= n.Transparency && n.Competence >= n.Plan:
		n.Competence = 1.0 - n.Integrity - n.Transparency - n.Plan
	case n.Integrity >= n.Transparency && n.Integrity >= n.Plan:
		n.Integrity = 1.0 - n.Competence - n.Transparency - n.Plan
	case n.Transparency >= n.Plan:
		n.Transparency = 1.0 - n.Competence - n.Integrity - n.Plan
	default:
		n.Plan = 1.0 - n.Competence - n.Integrity - n.Transparency
	}
	return n, nil
}

// Composites builds the full named-preset composite set for a scored
// candidate. The presidential composite is included when a plan
// viability score was supplied.
func Composites(r *domain.ScoreResult, planViability *float64) domain.CompositeSet {
	competence := r.Competence.Total
	integrity := r.IntegrityTotal()
	transparency := r.Transparency.Total

	set := domain.CompositeSet{
		Balanced:       BalancedWeights().Composite(competence, integrity, transparency),
		Merit:          MeritWeights().Composite(competence, integrity, transparency),
		IntegrityFirst: IntegrityFirstWeights().Composite(competence, integrity, transparency),
	}
	if planViability != nil {
		p := DefaultPresidentialWeights().Composite(competence, integrity, transparency, clampScore(*planViability))
		set.Presidential = &p
	}
	return set
}
