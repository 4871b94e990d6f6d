package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-kernel/internal/config"
	"github.com/danielpatrickdp/decision-kernel/internal/kernel"
	"github.com/danielpatrickdp/decision-kernel/internal/safety"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Config          FixtureConfig           `json:"config"`
	Cycles          []FixtureCycle          `json:"cycles"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureConfig mirrors the kernel configuration with JSON tags.
// Zero-valued sections fall back to defaults.
type FixtureConfig struct {
	Weights       FixtureWeights `json:"weights"`
	Horizon       FixtureHorizon `json:"horizon"`
	HarmThreshold float64        `json:"harm_threshold"`
}

// FixtureWeights mirrors scoring.Weights with JSON tags.
type FixtureWeights struct {
	Tier1 int64 `json:"tier1"`
	Tier2 int64 `json:"tier2"`
	Tier3 int64 `json:"tier3"`
}

// FixtureHorizon mirrors horizon.GuardConfig plus window with JSON tags.
type FixtureHorizon struct {
	Gamma1 float64 `json:"gamma1"`
	Gamma2 float64 `json:"gamma2"`
	Theta  float64 `json:"theta"`
	Window int     `json:"window"`
}

// FixtureAction mirrors safety.Action with JSON tags.
type FixtureAction struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	Tags                   []string `json:"tags"`
	CausesIrreversibleHarm bool     `json:"causes_irreversible_harm"`
	ViolatesTruthLock      bool     `json:"violates_truth_lock"`
	ViolatesAuthLock       bool     `json:"violates_auth_lock"`
	ViolatesResourceBounds bool     `json:"violates_resource_bounds"`
	IsRescue               bool     `json:"is_rescue"`
}

// FixtureCycle is one recorded decision cycle. Metadata reuses the
// transparency record's own JSON schema.
type FixtureCycle struct {
	CycleID         string                         `json:"cycle_id"`
	Candidates      []FixtureAction                `json:"candidates"`
	ImminentHarm    bool                           `json:"imminent_harm"`
	Metadata        map[string]transparency.Record `json:"metadata"`
	HarmRisk        float64                        `json:"harm_risk"`
	Trajectory      []float64                      `json:"trajectory"`
	Confidences     []float64                      `json:"confidences"`
	AuthorizedReset bool                           `json:"authorized_reset"`
}

// FixtureExpectedResult captures the expected outcome per cycle.
type FixtureExpectedResult struct {
	CycleID  string `json:"cycle_id"`
	Outcome  string `json:"outcome"`
	Executed string `json:"executed"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToConfig converts a FixtureConfig to a kernel configuration,
// filling unset sections from defaults.
func (fc *FixtureConfig) ToConfig() *config.Config {
	cfg := config.Default()
	if fc.Weights != (FixtureWeights{}) {
		cfg.Weights = config.WeightsConfig{
			Tier1: fc.Weights.Tier1,
			Tier2: fc.Weights.Tier2,
			Tier3: fc.Weights.Tier3,
		}
	}
	if fc.Horizon != (FixtureHorizon{}) {
		cfg.Horizon = config.HorizonConfig{
			Gamma1: fc.Horizon.Gamma1,
			Gamma2: fc.Horizon.Gamma2,
			Theta:  fc.Horizon.Theta,
			Window: fc.Horizon.Window,
		}
	}
	if fc.HarmThreshold > 0 {
		cfg.Ensemble.HarmThreshold = fc.HarmThreshold
	}
	return cfg
}

// ToAction converts a FixtureAction to a domain action.
func (fa *FixtureAction) ToAction() safety.Action {
	return safety.Action{
		Name:                   fa.Name,
		Description:            fa.Description,
		Tags:                   fa.Tags,
		CausesIrreversibleHarm: fa.CausesIrreversibleHarm,
		ViolatesTruthLock:      fa.ViolatesTruthLock,
		ViolatesAuthLock:       fa.ViolatesAuthLock,
		ViolatesResourceBounds: fa.ViolatesResourceBounds,
		IsRescue:               fa.IsRescue,
	}
}

// ToCycleInput converts a FixtureCycle to a kernel cycle input.
func (fc *FixtureCycle) ToCycleInput() kernel.CycleInput {
	candidates := make([]safety.Action, 0, len(fc.Candidates))
	for i := range fc.Candidates {
		candidates = append(candidates, fc.Candidates[i].ToAction())
	}
	return kernel.CycleInput{
		CycleID:     fc.CycleID,
		Candidates:  candidates,
		State:       safety.SafetyState{ImminentHarm: fc.ImminentHarm},
		Metadata:    fc.Metadata,
		HarmRisk:    fc.HarmRisk,
		Trajectory:  fc.Trajectory,
		Confidences: fc.Confidences,
	}
}

// #endregion fixture-loader
