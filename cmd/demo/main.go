// Command demo runs the sample company figures through the ratio engine
// and prints bilingual results for the three headline metrics.
package main

import (
	"context"
	"fmt"

	"finratio/pkg/core/engine"
	"finratio/pkg/core/locale"
	"finratio/pkg/core/metric"
)

func logStep(step string, details string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
	fmt.Println(details)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	logStep("0. Initialization", "Starting Financial Ratio Engine Demo...")

	eng := engine.Default()
	fmt.Printf("✅ Metric catalog loaded (%d metrics)\n", eng.Registry().Len())

	// Sample financial data (same figures as the reference scenario:
	// current ratio 1.5, net margin 15%, debt-to-equity 0.5).
	sample := metric.Inputs{
		metric.InCurrentAssets:      1_500_000,
		metric.InCurrentLiabilities: 1_000_000,
		metric.InNetIncome:          150_000,
		metric.InRevenue:            1_000_000,
		metric.InTotalDebt:          500_000,
		metric.InEquity:             1_000_000,
	}

	logStep("1. Batch Evaluation", "Evaluating headline metrics for FinRatio Demo Corporation")

	report := eng.EvaluateBatch(context.Background(), engine.BatchRequest{
		CompanyName:   "FinRatio Demo Corporation",
		FinancialData: sample,
		Metrics:       []string{"current_ratio", "net_profit_margin", "debt_to_equity_ratio"},
	})

	fmt.Printf("🏢 Company: %s\n", report.CompanyName)
	fmt.Printf("📅 Analysis Date: %s\n", report.AnalysisDate.Format("2006-01-02 15:04:05 MST"))

	for _, res := range report.Results {
		fmt.Printf("\n📈 %s — %s\n", res.Name[locale.English], res.Name[locale.Arabic])
		fmt.Printf("   💰 Value: %.2f\n", float64(res.Value))
		fmt.Printf("   🇺🇸 English: %s\n", res.Interpretation[locale.English])
		fmt.Printf("   🇸🇦 Arabic: %s\n", res.Interpretation[locale.Arabic])
		fmt.Printf("   ⚠️ Risk Level: %s\n", res.RiskLevel)
		fmt.Printf("   ⭐ Performance: %s\n", res.PerformanceRating)
		for _, rec := range res.Recommendations[locale.English] {
			fmt.Printf("   💡 %s\n", rec)
		}
	}

	for _, e := range report.Errors {
		fmt.Printf("\n❌ %s: %s\n", e.MetricID, e.Message)
	}

	logStep("2. Done", "✅ Demo complete")
}
