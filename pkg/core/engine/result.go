package engine

import (
	"fmt"
	"math"
	"strconv"

	"finratio/pkg/core/locale"
	"finratio/pkg/core/metric"
)

// Value is a float64 that survives JSON round-trips when non-finite.
// Zero-denominator policies legitimately produce +Inf, which RFC 8259 JSON
// cannot carry, so non-finite values marshal as the strings "Infinity",
// "-Infinity" and "NaN".
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*v = Value(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*v = Value(math.Inf(-1))
		return nil
	case `"NaN"`:
		*v = Value(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid value %s: %w", data, err)
	}
	*v = Value(f)
	return nil
}

// AnalysisResult is the output of one ratio evaluation: the computed
// value, the jointly derived risk/performance tier, and display texts for
// every supported locale. Results are pure projections of their inputs;
// nothing in here depends on clock or call order.
type AnalysisResult struct {
	MetricID          string                     `json:"metric_id"`
	Value             Value                      `json:"value"`
	RiskLevel         metric.RiskLevel           `json:"risk_level"`
	PerformanceRating metric.PerformanceRating   `json:"performance_rating"`
	Name              map[locale.Locale]string   `json:"name"`
	Interpretation    map[locale.Locale]string   `json:"interpretation"`
	Recommendations   map[locale.Locale][]string `json:"recommendations"`
}
