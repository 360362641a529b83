// Package metric defines the static descriptors for every financial ratio
// the engine can evaluate: formulas over named line items, threshold bands,
// comparison direction, and zero-denominator policies.
package metric

import (
	"fmt"
	"math"
)

// RiskLevel grades the risk implied by a ratio value.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// PerformanceRating grades how well the company performs on a ratio.
type PerformanceRating string

const (
	RatingExcellent PerformanceRating = "excellent"
	RatingGood      PerformanceRating = "good"
	RatingAverage   PerformanceRating = "average"
	RatingPoor      PerformanceRating = "poor"
	RatingCritical  PerformanceRating = "critical"
)

// Rank orders ratings from worst (0) to best (4) so callers can compare
// tiers without string juggling.
func (r PerformanceRating) Rank() int {
	switch r {
	case RatingExcellent:
		return 4
	case RatingGood:
		return 3
	case RatingAverage:
		return 2
	case RatingPoor:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r is the same tier as other or a better one.
func (r PerformanceRating) AtLeast(other PerformanceRating) bool {
	return r.Rank() >= other.Rank()
}

// Direction declares which way a ratio improves. Liquidity ratios improve
// upward, leverage ratios improve downward; the classifier must not infer
// this from the band values.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
)

// Format selects how a value is rendered inside interpretation text.
type Format string

const (
	FormatRatio   Format = "ratio"   // plain number, e.g. 1.50
	FormatPercent Format = "percent" // fraction rendered as %, e.g. 15.0%
)

// Inputs maps financial-statement line-item names to their reported values.
type Inputs map[string]float64

// Band is one entry of a threshold table. Bound is the inclusive limit on
// the metric's declared direction; a nil Bound marks the catch-all tier
// that absorbs everything the earlier bands rejected.
type Band struct {
	Bound  *float64
	Risk   RiskLevel
	Rating PerformanceRating
}

// ZeroDenominatorPolicy is the fixed result substituted when a ratio's
// denominator is exactly zero. The pairing of value and tier is declared
// per metric: an infinite current ratio reads as maximal liquidity while a
// margin over zero revenue reads as an undefined, critical state.
type ZeroDenominatorPolicy struct {
	Value  float64
	Risk   RiskLevel
	Rating PerformanceRating
}

// Definition is the static descriptor for one ratio type. Definitions are
// registered once at process start and never mutated afterwards.
type Definition struct {
	ID       string
	Category string

	// Required lists every line-item name the formula reads. A missing
	// key is a caller error, distinct from a key present with value zero.
	Required []string

	// Denominator names the line item whose zero value triggers the
	// zero-denominator policy instead of the formula.
	Denominator string

	// Compute evaluates the formula. It is only called after the
	// required-input and zero-denominator checks have passed.
	Compute func(in Inputs) float64

	Direction       Direction
	Bands           []Band
	ZeroDenominator ZeroDenominatorPolicy
	Format          Format
}

// Classify maps a computed value onto the band table, scanning from the
// most favorable tier downward. Bounds are inclusive on the declared
// direction, so a value exactly on a bound lands in the better tier.
func (d *Definition) Classify(value float64) (RiskLevel, PerformanceRating) {
	for _, b := range d.Bands {
		if b.Bound == nil {
			return b.Risk, b.Rating
		}
		if d.Direction == LowerIsBetter {
			if value <= *b.Bound {
				return b.Risk, b.Rating
			}
		} else if value >= *b.Bound {
			return b.Risk, b.Rating
		}
	}
	// Catalog entries always end in a catch-all band; reaching this point
	// means the definition data is malformed.
	last := d.Bands[len(d.Bands)-1]
	return last.Risk, last.Rating
}

// FormatValue renders the value the way the metric's interpretation text
// expects it: margins as percentages, pure ratios as plain numbers.
func (d *Definition) FormatValue(v float64) string {
	if d.Format == FormatPercent {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// Validate sanity-checks a definition before registration.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("metric definition missing id")
	}
	if d.Compute == nil {
		return fmt.Errorf("metric %s has no formula", d.ID)
	}
	if len(d.Required) == 0 {
		return fmt.Errorf("metric %s declares no required inputs", d.ID)
	}
	if d.Denominator == "" {
		return fmt.Errorf("metric %s declares no denominator", d.ID)
	}
	if len(d.Bands) == 0 {
		return fmt.Errorf("metric %s has no threshold bands", d.ID)
	}
	if d.Bands[len(d.Bands)-1].Bound != nil {
		return fmt.Errorf("metric %s band table has no catch-all tier", d.ID)
	}
	for i, b := range d.Bands[:len(d.Bands)-1] {
		if b.Bound == nil {
			return fmt.Errorf("metric %s band %d: catch-all must be the final band", d.ID, i)
		}
	}
	return nil
}
