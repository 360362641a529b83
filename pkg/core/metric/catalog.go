package metric

import "math"

// Line-item names accepted in evaluation inputs. Callers supply raw
// financial-statement figures under these keys.
const (
	InCurrentAssets      = "current_assets"
	InCurrentLiabilities = "current_liabilities"
	InInventory          = "inventory"
	InPrepaidExpenses    = "prepaid_expenses"
	InCash               = "cash_and_equivalents"
	InShortTermInvest    = "short_term_investments"
	InOperatingCashFlow  = "operating_cash_flow"
	InNetIncome          = "net_income"
	InRevenue            = "revenue"
	InGrossProfit        = "gross_profit"
	InOperatingIncome    = "operating_income"
	InTotalAssets        = "total_assets"
	InTotalDebt          = "total_debt"
	InEquity             = "shareholders_equity"
	InEBIT               = "ebit"
	InInterestExpense    = "interest_expense"
)

// Metric categories, following the original analysis groupings.
const (
	CategoryLiquidity     = "liquidity"
	CategoryProfitability = "profitability"
	CategoryLeverage      = "leverage"
)

func bound(v float64) *float64 { return &v }

// fourTier builds the standard descending band table: three inclusive
// bounds from best to worst plus the catch-all poor tier.
func fourTier(b1, b2, b3 float64) []Band {
	return []Band{
		{Bound: bound(b1), Risk: RiskVeryLow, Rating: RatingExcellent},
		{Bound: bound(b2), Risk: RiskLow, Rating: RatingGood},
		{Bound: bound(b3), Risk: RiskModerate, Rating: RatingAverage},
		{Risk: RiskHigh, Rating: RatingPoor},
	}
}

var (
	infExcellent = ZeroDenominatorPolicy{Value: math.Inf(1), Risk: RiskVeryLow, Rating: RatingExcellent}
	infCritical  = ZeroDenominatorPolicy{Value: math.Inf(1), Risk: RiskVeryHigh, Rating: RatingCritical}
	zeroCritical = ZeroDenominatorPolicy{Value: 0, Risk: RiskVeryHigh, Rating: RatingCritical}
)

// catalog returns the built-in metric definitions. Thresholds and
// zero-denominator policies are declared data; the engine never hardcodes
// a classification rule for a specific metric.
func catalog() []*Definition {
	return []*Definition{
		{
			ID:          "current_ratio",
			Category:    CategoryLiquidity,
			Required:    []string{InCurrentAssets, InCurrentLiabilities},
			Denominator: InCurrentLiabilities,
			Compute: func(in Inputs) float64 {
				return in[InCurrentAssets] / in[InCurrentLiabilities]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(2.0, 1.5, 1.0),
			ZeroDenominator: infExcellent,
			Format:          FormatRatio,
		},
		{
			ID:          "quick_ratio",
			Category:    CategoryLiquidity,
			Required:    []string{InCurrentAssets, InInventory, InPrepaidExpenses, InCurrentLiabilities},
			Denominator: InCurrentLiabilities,
			Compute: func(in Inputs) float64 {
				return (in[InCurrentAssets] - in[InInventory] - in[InPrepaidExpenses]) / in[InCurrentLiabilities]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(1.5, 1.0, 0.8),
			ZeroDenominator: infExcellent,
			Format:          FormatRatio,
		},
		{
			ID:          "cash_ratio",
			Category:    CategoryLiquidity,
			Required:    []string{InCash, InShortTermInvest, InCurrentLiabilities},
			Denominator: InCurrentLiabilities,
			Compute: func(in Inputs) float64 {
				return (in[InCash] + in[InShortTermInvest]) / in[InCurrentLiabilities]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.5, 0.3, 0.15),
			ZeroDenominator: infExcellent,
			Format:          FormatRatio,
		},
		{
			ID:          "operating_cash_flow_ratio",
			Category:    CategoryLiquidity,
			Required:    []string{InOperatingCashFlow, InCurrentLiabilities},
			Denominator: InCurrentLiabilities,
			Compute: func(in Inputs) float64 {
				return in[InOperatingCashFlow] / in[InCurrentLiabilities]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.4, 0.25, 0.1),
			ZeroDenominator: infExcellent,
			Format:          FormatRatio,
		},
		{
			ID:          "working_capital_ratio",
			Category:    CategoryLiquidity,
			Required:    []string{InCurrentAssets, InCurrentLiabilities, InTotalAssets},
			Denominator: InTotalAssets,
			Compute: func(in Inputs) float64 {
				return (in[InCurrentAssets] - in[InCurrentLiabilities]) / in[InTotalAssets]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.30, 0.15, 0.05),
			ZeroDenominator: zeroCritical,
			Format:          FormatRatio,
		},
		{
			ID:          "net_profit_margin",
			Category:    CategoryProfitability,
			Required:    []string{InNetIncome, InRevenue},
			Denominator: InRevenue,
			Compute: func(in Inputs) float64 {
				return in[InNetIncome] / in[InRevenue]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.15, 0.10, 0.05),
			ZeroDenominator: zeroCritical,
			Format:          FormatPercent,
		},
		{
			ID:          "gross_profit_margin",
			Category:    CategoryProfitability,
			Required:    []string{InGrossProfit, InRevenue},
			Denominator: InRevenue,
			Compute: func(in Inputs) float64 {
				return in[InGrossProfit] / in[InRevenue]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.50, 0.30, 0.15),
			ZeroDenominator: zeroCritical,
			Format:          FormatPercent,
		},
		{
			ID:          "operating_profit_margin",
			Category:    CategoryProfitability,
			Required:    []string{InOperatingIncome, InRevenue},
			Denominator: InRevenue,
			Compute: func(in Inputs) float64 {
				return in[InOperatingIncome] / in[InRevenue]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.25, 0.15, 0.08),
			ZeroDenominator: zeroCritical,
			Format:          FormatPercent,
		},
		{
			ID:          "return_on_assets",
			Category:    CategoryProfitability,
			Required:    []string{InNetIncome, InTotalAssets},
			Denominator: InTotalAssets,
			Compute: func(in Inputs) float64 {
				return in[InNetIncome] / in[InTotalAssets]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.15, 0.08, 0.03),
			ZeroDenominator: zeroCritical,
			Format:          FormatPercent,
		},
		{
			ID:          "return_on_equity",
			Category:    CategoryProfitability,
			Required:    []string{InNetIncome, InEquity},
			Denominator: InEquity,
			Compute: func(in Inputs) float64 {
				return in[InNetIncome] / in[InEquity]
			},
			Direction:       HigherIsBetter,
			Bands:           fourTier(0.20, 0.12, 0.06),
			ZeroDenominator: zeroCritical,
			Format:          FormatPercent,
		},
		{
			ID:          "debt_to_equity_ratio",
			Category:    CategoryLeverage,
			Required:    []string{InTotalDebt, InEquity},
			Denominator: InEquity,
			Compute: func(in Inputs) float64 {
				return in[InTotalDebt] / in[InEquity]
			},
			Direction:       LowerIsBetter,
			Bands:           fourTier(0.3, 0.6, 1.0),
			ZeroDenominator: infCritical,
			Format:          FormatRatio,
		},
		{
			ID:          "debt_ratio",
			Category:    CategoryLeverage,
			Required:    []string{InTotalDebt, InTotalAssets},
			Denominator: InTotalAssets,
			Compute: func(in Inputs) float64 {
				return in[InTotalDebt] / in[InTotalAssets]
			},
			Direction:       LowerIsBetter,
			Bands:           fourTier(0.2, 0.4, 0.6),
			ZeroDenominator: infCritical,
			Format:          FormatRatio,
		},
		{
			ID:          "times_interest_earned",
			Category:    CategoryLeverage,
			Required:    []string{InEBIT, InInterestExpense},
			Denominator: InInterestExpense,
			Compute: func(in Inputs) float64 {
				return in[InEBIT] / in[InInterestExpense]
			},
			Direction: HigherIsBetter,
			Bands:     fourTier(8, 5, 2.5),
			// No interest expense means nothing to cover; coverage is
			// effectively unlimited.
			ZeroDenominator: infExcellent,
			Format:          FormatRatio,
		},
	}
}
