package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/decision-kernel/internal/horizon"
	"github.com/danielpatrickdp/decision-kernel/internal/scoring"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

// #region config-types

// Config is the full kernel configuration as loaded from YAML.
// Validation happens eagerly at load time; the evaluation path never
// sees a misconfigured threshold.
type Config struct {
	Weights      WeightsConfig      `yaml:"weights"`
	Transparency TransparencyConfig `yaml:"transparency"`
	Horizon      HorizonConfig      `yaml:"horizon"`
	Ensemble     EnsembleConfig     `yaml:"ensemble"`
}

// WeightsConfig mirrors scoring.Weights with YAML tags.
type WeightsConfig struct {
	Tier1 int64 `yaml:"tier1"`
	Tier2 int64 `yaml:"tier2"`
	Tier3 int64 `yaml:"tier3"`
}

// TransparencyConfig mirrors transparency.EngineConfig with YAML tags.
type TransparencyConfig struct {
	LowCostThreshold     int                `yaml:"low_cost_threshold"`
	MaxTimeByAction      map[string]float64 `yaml:"max_time_by_action"`
	UnknownActionTimeMax float64            `yaml:"unknown_action_time_max"`
	CriticalAssets       []string           `yaml:"critical_assets"`
}

// HorizonConfig mirrors horizon.GuardConfig plus the window length.
type HorizonConfig struct {
	Gamma1 float64 `yaml:"gamma1"`
	Gamma2 float64 `yaml:"gamma2"`
	Theta  float64 `yaml:"theta"`
	Window int     `yaml:"window"`
}

// EnsembleConfig holds the worst-case aggregation policy knobs.
type EnsembleConfig struct {
	// HarmThreshold: an aggregate strictly above this enters safe mode.
	HarmThreshold float64 `yaml:"harm_threshold"`
}

// #endregion config-types

// #region defaults

// Default returns the reference configuration.
func Default() *Config {
	ec := transparency.DefaultEngineConfig()
	gc := horizon.DefaultGuardConfig()
	w := scoring.DefaultWeights()

	maxTimes := make(map[string]float64, len(ec.MaxTimeByAction))
	for at, max := range ec.MaxTimeByAction {
		maxTimes[string(at)] = max
	}

	return &Config{
		Weights: WeightsConfig{Tier1: w.Tier1, Tier2: w.Tier2, Tier3: w.Tier3},
		Transparency: TransparencyConfig{
			LowCostThreshold:     ec.LowCostThreshold,
			MaxTimeByAction:      maxTimes,
			UnknownActionTimeMax: ec.UnknownActionTimeMax,
			CriticalAssets:       ec.CriticalAssets,
		},
		Horizon: HorizonConfig{
			Gamma1: gc.Gamma1,
			Gamma2: gc.Gamma2,
			Theta:  gc.Theta,
			Window: 32,
		},
		Ensemble: EnsembleConfig{HarmThreshold: 0.90},
	}
}

// #endregion defaults

// #region load

// Load reads YAML from the given path. An empty path returns the
// default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Fields the file
// omits fall back to defaults before validation.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// #endregion load

// #region validate

// Validate rejects misconfiguration eagerly, before any kernel is
// built on top of it.
func (c *Config) Validate() error {
	if err := c.ScoringWeights().Validate(); err != nil {
		return err
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return err
	}
	if err := c.GuardConfig().Validate(); err != nil {
		return err
	}
	if c.Horizon.Window < 0 {
		return fmt.Errorf("horizon window must be non-negative, got %d", c.Horizon.Window)
	}
	if c.Ensemble.HarmThreshold < 0 || c.Ensemble.HarmThreshold > 1 {
		return fmt.Errorf("harm threshold must be in [0, 1], got %f", c.Ensemble.HarmThreshold)
	}
	return nil
}

// #endregion validate

// #region converters

// ScoringWeights converts to the scoring package's weight type.
func (c *Config) ScoringWeights() scoring.Weights {
	return scoring.Weights{Tier1: c.Weights.Tier1, Tier2: c.Weights.Tier2, Tier3: c.Weights.Tier3}
}

// EngineConfig converts to the transparency engine's config type.
func (c *Config) EngineConfig() transparency.EngineConfig {
	maxTimes := make(map[transparency.ActionType]float64, len(c.Transparency.MaxTimeByAction))
	for at, max := range c.Transparency.MaxTimeByAction {
		maxTimes[transparency.ActionType(at)] = max
	}
	return transparency.EngineConfig{
		LowCostThreshold:     c.Transparency.LowCostThreshold,
		MaxTimeByAction:      maxTimes,
		UnknownActionTimeMax: c.Transparency.UnknownActionTimeMax,
		CriticalAssets:       c.Transparency.CriticalAssets,
	}
}

// GuardConfig converts to the horizon guard's config type.
func (c *Config) GuardConfig() horizon.GuardConfig {
	return horizon.GuardConfig{Gamma1: c.Horizon.Gamma1, Gamma2: c.Horizon.Gamma2, Theta: c.Horizon.Theta}
}

// #endregion converters
