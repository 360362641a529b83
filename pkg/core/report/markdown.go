// Package report renders batch analysis results for human consumption.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"finratio/pkg/core/engine"
	"finratio/pkg/core/locale"
)

// Markdown renders a batch report as a bilingual Markdown document: one
// section per metric with value, tier, interpretation per locale and
// recommendations, followed by any per-metric errors.
func Markdown(rep *engine.BatchReport) string {
	var b strings.Builder

	company := rep.CompanyName
	if company == "" {
		company = "Unnamed Company"
	}
	fmt.Fprintf(&b, "# Financial Analysis Report — %s\n\n", company)
	fmt.Fprintf(&b, "Analysis date: %s\n\n", rep.AnalysisDate.Format("2006-01-02 15:04 MST"))

	for _, res := range rep.Results {
		name := res.Name[locale.English]
		if name == "" {
			name = res.MetricID
		}
		if ar := res.Name[locale.Arabic]; ar != "" {
			fmt.Fprintf(&b, "## %s — %s\n\n", name, ar)
		} else {
			fmt.Fprintf(&b, "## %s\n\n", name)
		}

		fmt.Fprintf(&b, "- **Value**: %s\n", formatValue(res))
		fmt.Fprintf(&b, "- **Risk level**: %s\n", res.RiskLevel)
		fmt.Fprintf(&b, "- **Performance**: %s\n", res.PerformanceRating)
		for _, loc := range []locale.Locale{locale.English, locale.Arabic} {
			if interp := res.Interpretation[loc]; interp != "" {
				fmt.Fprintf(&b, "- **Interpretation (%s)**: %s\n", loc, interp)
			}
		}
		for _, loc := range []locale.Locale{locale.English, locale.Arabic} {
			for _, rec := range res.Recommendations[loc] {
				fmt.Fprintf(&b, "- **Recommendation (%s)**: %s\n", loc, rec)
			}
		}
		b.WriteString("\n")
	}

	if len(rep.Errors) > 0 {
		b.WriteString("## Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(&b, "- `%s`: %s\n", e.MetricID, e.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts the Markdown rendering to HTML with Goldmark.
func HTML(rep *engine.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(rep)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.Bytes(), nil
}

func formatValue(res *engine.AnalysisResult) string {
	// The engine already localizes the formatted value inside the
	// interpretation; here a plain numeric rendering is enough.
	return fmt.Sprintf("%v", float64(res.Value))
}
