package kernel

import (
	"github.com/danielpatrickdp/decision-kernel/internal/safemode"
	"github.com/danielpatrickdp/decision-kernel/internal/safety"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

// #region outcomes

// Decision outcomes, in order of decreasing freedom.
const (
	OutcomeExecute        = "execute"          // chosen action cleared every layer
	OutcomeVetoed         = "vetoed"           // a safety layer vetoed; safe mode entered
	OutcomeSafeModeActive = "safe_mode_active" // cycle arrived with safe mode already engaged
)

// #endregion outcomes

// #region cycle-input

// CycleInput is everything the kernel sees for one decision cycle.
// All fields beyond Candidates are optional; absent layers simply do
// not veto.
type CycleInput struct {
	// CycleID identifies the cycle in logs and audit rows. Empty gets
	// a generated UUID.
	CycleID string

	// Candidates are the proposed actions for this cycle. Must be
	// non-empty.
	Candidates []safety.Action

	// State is the kernel's view of the environment.
	State safety.SafetyState

	// Metadata maps action names to their planner-reported records,
	// evaluated for the chosen action only.
	Metadata map[string]transparency.Record

	// HarmRisk is this cycle's harm-confidence estimate, appended to
	// the kernel's rolling trajectory.
	HarmRisk float64

	// Trajectory, when non-empty, replaces the rolling window for this
	// cycle's long-horizon evaluation. Used by replay.
	Trajectory []float64

	// Confidences are the per-source harm estimates for worst-case
	// aggregation.
	Confidences []float64
}

// #endregion cycle-input

// #region result

// Result is the audited outcome of one decision cycle.
type Result struct {
	CycleID            string
	Chosen             safety.Action
	Score              int64
	Executed           string
	Outcome            string
	VetoSources        []string
	Reasons            []string
	Notes              []string
	EnsembleConfidence float64
	SafeMode           safemode.State
}

// #endregion result
