// Package engine evaluates financial ratios: it computes a metric's value
// from raw line items, classifies it against the metric's declared
// threshold bands, and renders bilingual interpretation text and
// recommendations. The engine is a pure function of its registry, its
// locale bundle and the call arguments; it performs no I/O and holds no
// mutable state, so evaluations are safe to run concurrently.
package engine

import (
	"finratio/pkg/core/locale"
	"finratio/pkg/core/metric"
)

// Engine binds a metric registry to a locale bundle.
type Engine struct {
	registry *metric.Registry
	bundle   *locale.Bundle
}

// New creates an engine over an explicit registry and bundle.
func New(registry *metric.Registry, bundle *locale.Bundle) *Engine {
	return &Engine{registry: registry, bundle: bundle}
}

// Default returns an engine over the built-in catalog and the embedded
// English/Arabic texts.
func Default() *Engine {
	return New(metric.Default(), locale.Default())
}

// Registry exposes the engine's metric registry.
func (e *Engine) Registry() *metric.Registry {
	return e.registry
}

// Evaluate computes a single ratio. It fails with *UnknownMetricError for
// an unregistered id and *MissingInputError when a required line item is
// absent from the inputs. A zero denominator is not an error: it
// short-circuits to the metric's declared policy value and tier.
func (e *Engine) Evaluate(metricID string, inputs metric.Inputs) (*AnalysisResult, error) {
	def, ok := e.registry.Get(metricID)
	if !ok {
		return nil, &UnknownMetricError{MetricID: metricID}
	}

	for _, name := range def.Required {
		if _, present := inputs[name]; !present {
			return nil, &MissingInputError{MetricID: metricID, Input: name}
		}
	}

	var (
		value  float64
		risk   metric.RiskLevel
		rating metric.PerformanceRating
	)
	if inputs[def.Denominator] == 0 {
		value = def.ZeroDenominator.Value
		risk = def.ZeroDenominator.Risk
		rating = def.ZeroDenominator.Rating
	} else {
		value = def.Compute(inputs)
		risk, rating = def.Classify(value)
	}

	result := &AnalysisResult{
		MetricID:          metricID,
		Value:             Value(value),
		RiskLevel:         risk,
		PerformanceRating: rating,
		Name:              make(map[locale.Locale]string),
		Interpretation:    make(map[locale.Locale]string),
		Recommendations:   make(map[locale.Locale][]string),
	}

	formatted := def.FormatValue(value)
	atOrAboveGood := rating.AtLeast(metric.RatingGood)
	for _, loc := range e.bundle.Locales() {
		text, ok := e.bundle.Text(loc, metricID)
		if !ok {
			continue
		}
		result.Name[loc] = text.Name
		result.Interpretation[loc] = text.Render(formatted, string(rating))
		result.Recommendations[loc] = text.Recommendations(atOrAboveGood)
	}

	return result, nil
}
