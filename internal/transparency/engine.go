package transparency

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

// Per-rule confidences. Fixed by contract: the aggregate is the mean
// of triggered confidences capped at 1.0, so corroborating rules beat
// any single weak rule without saturating.
const (
	confContradiction = 0.95
	confCheapHighRisk = 0.50
	confTimeBudget    = 0.85
	confCriticalAsset = 0.90
)

// contradictionPhrase is the consequence-text claim that cannot
// coexist with a predicted P1 violation.
const contradictionPhrase = "no observable physical change"

// #region engine

// Engine evaluates planner-reported action metadata against four
// independent veto rules.
type Engine struct {
	config EngineConfig
}

// NewEngine validates the configuration and returns an engine.
func NewEngine(config EngineConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("transparency config: %w", err)
	}
	return &Engine{config: config}, nil
}

// #endregion engine

// #region evaluate

// Evaluate runs all four rules against the reported record. Total
// over any record: absent fields act as zero values, and any
// defaulting that masks a rule input is surfaced in Notes.
func (e *Engine) Evaluate(rec Record) safety.VetoResult {
	var reasons []string
	var notes []string
	var confidenceSum float64

	// Rule 1: internal contradiction. A predicted P1 violation cannot
	// coexist with a claim of no observable physical change.
	consequences := strings.ToLower(rec.Consequences)
	if rec.PredictedP1 && strings.Contains(consequences, contradictionPhrase) {
		reasons = append(reasons, fmt.Sprintf(
			"internal contradiction: P1 risk predicted alongside %q claim (confidence %.2f)",
			contradictionPhrase, confContradiction))
		confidenceSum += confContradiction
	}

	// Rule 2: cheap high-risk. Declared P1/P2 risk at implausibly low
	// resource cost.
	if (rec.PredictedP1 || rec.PredictedP2) && rec.ResourceCost < e.config.LowCostThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"cheap high-risk: P1/P2 risk predicted at resource cost %d below threshold %d (confidence %.2f)",
			rec.ResourceCost, e.config.LowCostThreshold, confCheapHighRisk))
		confidenceSum += confCheapHighRisk
	}

	// Rule 3: time disproportion against the per-type budget.
	// TODO: unknown action types currently fail open with an
	// effectively unbounded budget; tighten once the action-type
	// registry is finalized.
	timeMax, known := e.config.MaxTimeByAction[rec.ActionType]
	if !known {
		timeMax = e.config.UnknownActionTimeMax
		notes = append(notes, fmt.Sprintf(
			"time budget defaulted to %.0fs for unrecognized action type %q", timeMax, string(rec.ActionType)))
	}
	if rec.ExecutionTime > timeMax {
		reasons = append(reasons, fmt.Sprintf(
			"time disproportion: execution time %.1fs exceeds %.1fs budget for %s (confidence %.2f)",
			rec.ExecutionTime, timeMax, actionLabel(rec.ActionType), confTimeBudget))
		confidenceSum += confTimeBudget
	}

	// Rule 4: critical-asset mismatch. A protected asset targeted
	// with P1 declared false.
	if asset, ok := e.criticalAsset(rec.TargetObject); ok && !rec.PredictedP1 {
		reasons = append(reasons, fmt.Sprintf(
			"critical asset mismatch: %q matches protected asset %q with no P1 risk predicted (confidence %.2f)",
			rec.TargetObject, asset, confCriticalAsset))
		confidenceSum += confCriticalAsset
	}

	if len(reasons) == 0 {
		return safety.VetoResult{Veto: false, Confidence: 0.0, Notes: notes}
	}

	confidence := confidenceSum / float64(len(reasons))
	if confidence > 1.0 {
		confidence = 1.0
	}
	return safety.VetoResult{
		Veto:       true,
		Reasons:    reasons,
		Confidence: confidence,
		Notes:      notes,
	}
}

// #endregion evaluate

// #region helpers

// criticalAsset reports whether the target mentions a configured
// protected asset, returning the matched asset name.
func (e *Engine) criticalAsset(target string) (string, bool) {
	for _, asset := range e.config.CriticalAssets {
		if asset != "" && strings.Contains(target, asset) {
			return asset, true
		}
	}
	return "", false
}

func actionLabel(at ActionType) string {
	if at == "" {
		return "UNKNOWN"
	}
	return string(at)
}

// #endregion helpers
