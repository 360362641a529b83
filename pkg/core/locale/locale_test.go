package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundleLocales(t *testing.T) {
	b := Default()
	assert.Equal(t, []Locale{English, Arabic}, b.Locales())
}

func TestDefaultBundleCoversCatalog(t *testing.T) {
	b := Default()

	// Every metric shipped in the embedded resource must carry a complete
	// text set in both languages.
	ids := []string{
		"current_ratio", "quick_ratio", "cash_ratio", "operating_cash_flow_ratio",
		"working_capital_ratio", "net_profit_margin", "gross_profit_margin",
		"operating_profit_margin", "return_on_assets", "return_on_equity",
		"debt_to_equity_ratio", "debt_ratio", "times_interest_earned",
	}
	ratings := []string{"excellent", "good", "average", "poor", "critical"}

	for _, loc := range b.Locales() {
		for _, id := range ids {
			text, ok := b.Text(loc, id)
			require.True(t, ok, "missing %s text for %s", loc, id)
			assert.NotEmpty(t, text.Name, "%s/%s name", loc, id)
			assert.Contains(t, text.Interpretation, "%s", "%s/%s template has no slots", loc, id)
			for _, r := range ratings {
				assert.NotEmpty(t, text.Phrases[r], "%s/%s phrase for %s", loc, id, r)
			}
			assert.NotEmpty(t, text.Maintain, "%s/%s maintain recommendations", loc, id)
			assert.NotEmpty(t, text.Improve, "%s/%s improve recommendations", loc, id)
		}
	}
}

func TestRender(t *testing.T) {
	text, ok := Default().Text(English, "current_ratio")
	require.True(t, ok)

	got := text.Render("1.50", "good")
	assert.Equal(t, "Current ratio of 1.50 indicates good liquidity position", got)

	// Unknown rating falls back to the rating name itself rather than
	// producing a broken sentence.
	got = text.Render("1.50", "unrated")
	assert.Contains(t, got, "unrated")
}

func TestRecommendationsSplit(t *testing.T) {
	text, ok := Default().Text(English, "net_profit_margin")
	require.True(t, ok)

	assert.Equal(t, []string{"Maintain profitability"}, text.Recommendations(true))
	assert.Equal(t, []string{"Improve profit margins"}, text.Recommendations(false))
}

func TestLoadRejectsEmptyResource(t *testing.T) {
	_, err := Load([]byte(""))
	assert.Error(t, err)

	_, err = Load([]byte("not: [valid"))
	assert.Error(t, err)
}
