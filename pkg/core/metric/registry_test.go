package metric

import "testing"

func TestDefaultRegistryCatalog(t *testing.T) {
	r := Default()
	if r.Len() != 13 {
		t.Fatalf("expected 13 catalog metrics, got %d", r.Len())
	}

	// The three headline metrics must be present.
	for _, id := range []string{"current_ratio", "net_profit_margin", "debt_to_equity_ratio"} {
		if _, ok := r.Get(id); !ok {
			t.Errorf("metric %s missing from default registry", id)
		}
	}

	// Every definition must pass its own validation and end in a
	// catch-all band.
	for _, id := range r.IDs() {
		def, _ := r.Get(id)
		if err := def.Validate(); err != nil {
			t.Errorf("metric %s invalid: %v", id, err)
		}
		if def.Bands[len(def.Bands)-1].Bound != nil {
			t.Errorf("metric %s has no catch-all band", id)
		}
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	def := &Definition{
		ID:          "dup",
		Required:    []string{"a", "b"},
		Denominator: "b",
		Compute:     func(in Inputs) float64 { return in["a"] / in["b"] },
		Direction:   HigherIsBetter,
		Bands: []Band{
			{Bound: bound(1.0), Risk: RiskLow, Rating: RatingGood},
			{Risk: RiskHigh, Rating: RatingPoor},
		},
	}
	if err := r.Register(def); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := r.Register(def); err == nil {
		t.Fatal("duplicate registration should fail")
	}
}

func TestRegistryRejectsMalformedDefinitions(t *testing.T) {
	r := NewRegistry()

	// Band table without a catch-all tier.
	noCatchAll := &Definition{
		ID:          "bad",
		Required:    []string{"a", "b"},
		Denominator: "b",
		Compute:     func(in Inputs) float64 { return in["a"] / in["b"] },
		Direction:   HigherIsBetter,
		Bands: []Band{
			{Bound: bound(1.0), Risk: RiskLow, Rating: RatingGood},
		},
	}
	if err := r.Register(noCatchAll); err == nil {
		t.Error("definition without catch-all band should be rejected")
	}

	// No formula.
	noFormula := &Definition{
		ID:          "bad2",
		Required:    []string{"a"},
		Denominator: "a",
		Direction:   HigherIsBetter,
		Bands:       []Band{{Risk: RiskHigh, Rating: RatingPoor}},
	}
	if err := r.Register(noFormula); err == nil {
		t.Error("definition without formula should be rejected")
	}
}

func TestRegistryPreservesOrder(t *testing.T) {
	ids := Default().IDs()
	if ids[0] != "current_ratio" {
		t.Errorf("expected current_ratio first, got %s", ids[0])
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %s in IDs()", id)
		}
		seen[id] = true
	}
}
