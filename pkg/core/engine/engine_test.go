package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"finratio/pkg/core/locale"
	"finratio/pkg/core/metric"
)

func TestEvaluateReferenceScenarios(t *testing.T) {
	eng := Default()

	cases := []struct {
		name     string
		metricID string
		inputs   metric.Inputs
		value    float64
		risk     metric.RiskLevel
		rating   metric.PerformanceRating
	}{
		{
			name:     "current ratio 1.5m / 1.0m",
			metricID: "current_ratio",
			inputs: metric.Inputs{
				metric.InCurrentAssets:      1_500_000,
				metric.InCurrentLiabilities: 1_000_000,
			},
			// 1_500_000 / 1_000_000 = 1.5 -> low/good
			value:  1.5,
			risk:   metric.RiskLow,
			rating: metric.RatingGood,
		},
		{
			name:     "net profit margin 150k / 1.0m",
			metricID: "net_profit_margin",
			inputs: metric.Inputs{
				metric.InNetIncome: 150_000,
				metric.InRevenue:   1_000_000,
			},
			// 150_000 / 1_000_000 = 0.15, exactly on the excellent bound
			value:  0.15,
			risk:   metric.RiskVeryLow,
			rating: metric.RatingExcellent,
		},
		{
			name:     "debt to equity 500k / 1.0m",
			metricID: "debt_to_equity_ratio",
			inputs: metric.Inputs{
				metric.InTotalDebt: 500_000,
				metric.InEquity:    1_000_000,
			},
			// 500_000 / 1_000_000 = 0.5 -> low/good (inverted direction)
			value:  0.5,
			risk:   metric.RiskLow,
			rating: metric.RatingGood,
		},
	}

	for _, c := range cases {
		res, err := eng.Evaluate(c.metricID, c.inputs)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if float64(res.Value) != c.value {
			t.Errorf("%s: value = %v, want %v", c.name, float64(res.Value), c.value)
		}
		if res.RiskLevel != c.risk {
			t.Errorf("%s: risk = %s, want %s", c.name, res.RiskLevel, c.risk)
		}
		if res.PerformanceRating != c.rating {
			t.Errorf("%s: rating = %s, want %s", c.name, res.PerformanceRating, c.rating)
		}
	}
}

func TestEvaluateZeroDenominatorPolicies(t *testing.T) {
	eng := Default()

	// Ratio-type: zero current liabilities reads as unlimited coverage.
	res, err := eng.Evaluate("current_ratio", metric.Inputs{
		metric.InCurrentAssets:      1_500_000,
		metric.InCurrentLiabilities: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(float64(res.Value), 1) {
		t.Errorf("current_ratio with zero liabilities: value = %v, want +Inf", float64(res.Value))
	}
	if res.RiskLevel != metric.RiskVeryLow || res.PerformanceRating != metric.RatingExcellent {
		t.Errorf("current_ratio zero-denominator tier = %s/%s, want very_low/excellent", res.RiskLevel, res.PerformanceRating)
	}

	// Margin-type: a margin over zero revenue is an undefined, critical state.
	res, err = eng.Evaluate("net_profit_margin", metric.Inputs{
		metric.InNetIncome: 150_000,
		metric.InRevenue:   0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if float64(res.Value) != 0 {
		t.Errorf("net_profit_margin with zero revenue: value = %v, want 0", float64(res.Value))
	}
	if res.RiskLevel != metric.RiskVeryHigh || res.PerformanceRating != metric.RatingCritical {
		t.Errorf("net_profit_margin zero-denominator tier = %s/%s, want very_high/critical", res.RiskLevel, res.PerformanceRating)
	}

	// Leverage over zero equity follows its own declared policy: infinite
	// leverage is a critical state, not an excellent one.
	res, err = eng.Evaluate("debt_to_equity_ratio", metric.Inputs{
		metric.InTotalDebt: 500_000,
		metric.InEquity:    0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(float64(res.Value), 1) {
		t.Errorf("debt_to_equity with zero equity: value = %v, want +Inf", float64(res.Value))
	}
	if res.RiskLevel != metric.RiskVeryHigh || res.PerformanceRating != metric.RatingCritical {
		t.Errorf("debt_to_equity zero-denominator tier = %s/%s, want very_high/critical", res.RiskLevel, res.PerformanceRating)
	}
}

func TestEvaluateUnknownMetric(t *testing.T) {
	_, err := Default().Evaluate("no_such_metric", metric.Inputs{})
	if err == nil {
		t.Fatal("expected error for unknown metric")
	}
	var unknown *UnknownMetricError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownMetricError, got %T", err)
	}
	if unknown.MetricID != "no_such_metric" {
		t.Errorf("error names metric %q, want no_such_metric", unknown.MetricID)
	}
}

func TestEvaluateMissingInput(t *testing.T) {
	eng := Default()

	// Absent key fails and names the missing field.
	_, err := eng.Evaluate("current_ratio", metric.Inputs{
		metric.InCurrentAssets: 1_500_000,
	})
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingInputError, got %v", err)
	}
	if missing.Input != metric.InCurrentLiabilities {
		t.Errorf("error names input %q, want %q", missing.Input, metric.InCurrentLiabilities)
	}

	// Present-with-zero is not missing: it triggers the zero-denominator
	// policy instead of an error.
	res, err := eng.Evaluate("current_ratio", metric.Inputs{
		metric.InCurrentAssets:      1_500_000,
		metric.InCurrentLiabilities: 0,
	})
	if err != nil {
		t.Fatalf("zero value should not be treated as missing: %v", err)
	}
	if !math.IsInf(float64(res.Value), 1) {
		t.Errorf("expected zero-denominator policy value, got %v", float64(res.Value))
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	eng := Default()
	inputs := metric.Inputs{
		metric.InCurrentAssets:      1_234_567,
		metric.InCurrentLiabilities: 890_123,
	}

	first, err := eng.Evaluate("current_ratio", inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eng.Evaluate("current_ratio", inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func TestEvaluateLocalizedTexts(t *testing.T) {
	res, err := Default().Evaluate("current_ratio", metric.Inputs{
		metric.InCurrentAssets:      1_500_000,
		metric.InCurrentLiabilities: 1_000_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Name[locale.English] != "Current Ratio" {
		t.Errorf("english name = %q", res.Name[locale.English])
	}
	if res.Name[locale.Arabic] == "" {
		t.Error("arabic name missing")
	}
	if got := res.Interpretation[locale.English]; got != "Current ratio of 1.50 indicates good liquidity position" {
		t.Errorf("english interpretation = %q", got)
	}
	if res.Interpretation[locale.Arabic] == "" {
		t.Error("arabic interpretation missing")
	}

	// 1.5 sits on the good tier, so the maintain variant applies.
	recs := res.Recommendations[locale.English]
	if len(recs) != 1 || recs[0] != "Maintain current position" {
		t.Errorf("english recommendations = %v", recs)
	}

	// Below the good tier the improve variant applies.
	poor, err := Default().Evaluate("current_ratio", metric.Inputs{
		metric.InCurrentAssets:      900_000,
		metric.InCurrentLiabilities: 1_000_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recs = poor.Recommendations[locale.English]
	if len(recs) != 1 || recs[0] != "Improve liquidity management" {
		t.Errorf("english improve recommendations = %v", recs)
	}
}
