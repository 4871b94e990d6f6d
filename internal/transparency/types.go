package transparency

import "fmt"

// #region action-type

// ActionType is the planner-declared category of an action.
type ActionType string

const (
	ActionMove        ActionType = "MOVE"
	ActionCommunicate ActionType = "COMMUNICATE"
	ActionAcquire     ActionType = "ACQUIRE"
	ActionAnalysis    ActionType = "ANALYSIS"
)

// #endregion action-type

// #region record

// Record is the planner's self-reported metadata for one proposed
// action. Produced once per cycle, never mutated, and never trusted:
// every field here is adversarial input to the veto rules. Missing
// fields decode to zero values and evaluation stays total.
type Record struct {
	ActionType    ActionType `json:"action_type"`
	TargetObject  string     `json:"target_object"`
	TargetCoords  [3]float64 `json:"target_coords"`
	Consequences  string     `json:"estimated_consequences"`
	PredictedP1   bool       `json:"predicted_p1_violation"`
	PredictedP2   bool       `json:"predicted_p2_violation"`
	ResourceCost  int        `json:"resource_cost_units"`
	ExecutionTime float64    `json:"execution_time_seconds"` // seconds
}

// #endregion record

// #region engine-config

// EngineConfig holds the rule thresholds for metadata veto evaluation.
type EngineConfig struct {
	// LowCostThreshold: predicted P1/P2 risk below this resource cost
	// trips the cheap-high-risk rule.
	LowCostThreshold int
	// MaxTimeByAction caps execution time per declared action type.
	MaxTimeByAction map[ActionType]float64
	// UnknownActionTimeMax is the budget applied to unrecognized
	// action types. Deliberately enormous: unknown types fail open on
	// the time rule only.
	UnknownActionTimeMax float64
	// CriticalAssets are name substrings that mark a target as a
	// protected asset.
	CriticalAssets []string
}

// DefaultEngineConfig returns the reference thresholds.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LowCostThreshold: 10,
		MaxTimeByAction: map[ActionType]float64{
			ActionMove:        100.0,
			ActionAcquire:     60.0,
			ActionCommunicate: 10.0,
			ActionAnalysis:    1200.0,
		},
		UnknownActionTimeMax: 9999.0,
		CriticalAssets: []string{
			"Critical System 7",
			"Global Network Link",
			"Human Control Panel",
			"Life Support",
		},
	}
}

// Validate rejects misconfigured thresholds eagerly, before any
// evaluation can rely on them.
func (c EngineConfig) Validate() error {
	if c.LowCostThreshold < 0 {
		return fmt.Errorf("low cost threshold must be non-negative, got %d", c.LowCostThreshold)
	}
	if c.UnknownActionTimeMax <= 0 {
		return fmt.Errorf("unknown-action time max must be positive, got %f", c.UnknownActionTimeMax)
	}
	for at, max := range c.MaxTimeByAction {
		if max <= 0 {
			return fmt.Errorf("time max for %s must be positive, got %f", at, max)
		}
	}
	return nil
}

// #endregion engine-config
