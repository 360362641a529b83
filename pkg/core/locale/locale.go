// Package locale supplies the bilingual display texts for metric results:
// names, interpretation templates, tier phrases and recommendations.
// Texts live in an embedded YAML resource so adding a language or a metric
// is a data change, not a code change.
package locale

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"
)

// Locale identifies a supported language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

//go:embed strings.yaml
var defaultStrings []byte

// MetricText holds every display string for one metric in one locale.
type MetricText struct {
	Name string `yaml:"name"`

	// Interpretation is a template with two slots: the formatted value
	// and the tier phrase selected by the performance rating.
	Interpretation string `yaml:"interpretation"`

	// Phrases maps a performance rating ("excellent".."critical") to the
	// qualifier inserted into the interpretation template.
	Phrases map[string]string `yaml:"phrases"`

	// Exactly two recommendation variants exist per metric: one for
	// results at or above the "good" tier, one for everything below it.
	Maintain []string `yaml:"maintain"`
	Improve  []string `yaml:"improve"`
}

// Render produces the interpretation sentence for a formatted value and a
// performance rating.
func (t MetricText) Render(value, rating string) string {
	phrase, ok := t.Phrases[rating]
	if !ok {
		phrase = rating
	}
	return fmt.Sprintf(t.Interpretation, value, phrase)
}

// Recommendations returns the advisory strings for the given tier side.
func (t MetricText) Recommendations(atOrAboveGood bool) []string {
	if atOrAboveGood {
		return t.Maintain
	}
	return t.Improve
}

// Bundle is an immutable set of metric texts keyed by locale.
type Bundle struct {
	locales []Locale
	texts   map[Locale]map[string]MetricText
}

// Load parses a YAML resource of the strings.yaml shape into a Bundle.
func Load(data []byte) (*Bundle, error) {
	var raw map[Locale]map[string]MetricText
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale resource: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("locale resource contains no locales")
	}

	b := &Bundle{texts: raw}
	// Keep a stable locale order: English first, then Arabic, then any
	// extras in whatever order they appear.
	if _, ok := raw[English]; ok {
		b.locales = append(b.locales, English)
	}
	if _, ok := raw[Arabic]; ok {
		b.locales = append(b.locales, Arabic)
	}
	for loc := range raw {
		if loc != English && loc != Arabic {
			b.locales = append(b.locales, loc)
		}
	}
	return b, nil
}

// Locales returns the supported locales in stable order.
func (b *Bundle) Locales() []Locale {
	out := make([]Locale, len(b.locales))
	copy(out, b.locales)
	return out
}

// Text looks up the display strings for a metric in one locale.
func (b *Bundle) Text(loc Locale, metricID string) (MetricText, bool) {
	texts, ok := b.texts[loc]
	if !ok {
		return MetricText{}, false
	}
	t, ok := texts[metricID]
	return t, ok
}

var (
	defaultBundle *Bundle
	defaultOnce   sync.Once
)

// Default returns the bundle built from the embedded resource.
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := Load(defaultStrings)
		if err != nil {
			// The embedded resource ships with the binary; failing to
			// parse it is a build defect.
			panic(err)
		}
		defaultBundle = b
	})
	return defaultBundle
}
