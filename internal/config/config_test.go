package config

import (
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	doc := `
weights:
  tier1: 500000
  tier2: 500
  tier3: 5
horizon:
  gamma1: 0.2
  gamma2: 0.1
  theta: 1.5
  window: 16
ensemble:
  harm_threshold: 0.75
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Weights.Tier1 != 500000 {
		t.Fatalf("expected tier1 override, got %d", cfg.Weights.Tier1)
	}
	if cfg.Horizon.Theta != 1.5 {
		t.Fatalf("expected theta override, got %f", cfg.Horizon.Theta)
	}
	if cfg.Ensemble.HarmThreshold != 0.75 {
		t.Fatalf("expected harm threshold override, got %f", cfg.Ensemble.HarmThreshold)
	}
	// Untouched sections keep defaults.
	if cfg.Transparency.LowCostThreshold != 10 {
		t.Fatalf("transparency defaults lost: %d", cfg.Transparency.LowCostThreshold)
	}
}

func TestParseRejectsDisorderedWeights(t *testing.T) {
	doc := `
weights:
  tier1: 10
  tier2: 1000
  tier3: 1
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error for tier2 above tier1")
	}
}

func TestParseRejectsNegativeThreshold(t *testing.T) {
	doc := `
horizon:
  gamma1: -0.1
  gamma2: 0.05
  theta: 0.8
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected error for negative gamma1")
	}
	if !strings.Contains(err.Error(), "gamma1") {
		t.Fatalf("error must name the bad field, got: %v", err)
	}
}

func TestParseRejectsOutOfRangeHarmThreshold(t *testing.T) {
	doc := `
ensemble:
  harm_threshold: 1.2
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error for harm threshold above 1")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse([]byte("weights: [not, a, mapping]")); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Ensemble.HarmThreshold != 0.90 {
		t.Fatalf("expected default harm threshold, got %f", cfg.Ensemble.HarmThreshold)
	}
}

func TestConvertersRoundTrip(t *testing.T) {
	cfg := Default()

	w := cfg.ScoringWeights()
	if w.Tier1 != 1_000_000 || w.Tier2 != 1_000 || w.Tier3 != 10 {
		t.Fatalf("unexpected weights: %+v", w)
	}

	ec := cfg.EngineConfig()
	if ec.MaxTimeByAction["MOVE"] != 100.0 {
		t.Fatalf("expected MOVE budget 100, got %f", ec.MaxTimeByAction["MOVE"])
	}

	gc := cfg.GuardConfig()
	if gc.Theta != 0.8 {
		t.Fatalf("expected theta 0.8, got %f", gc.Theta)
	}
}
