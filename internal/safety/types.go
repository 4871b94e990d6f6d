package safety

import "strings"

// #region action

// Action is a candidate act proposed by an upstream planner.
// Immutable once constructed. The flags are the planner's own claims
// about the act; downstream veto engines treat them as untrusted.
type Action struct {
	Name        string
	Description string
	Tags        []string

	CausesIrreversibleHarm bool
	ViolatesTruthLock      bool
	ViolatesAuthLock       bool
	ViolatesResourceBounds bool
	IsRescue               bool
}

// #endregion action

// #region safety-state

// SafetyState is the world model's view of the current cycle.
// ImminentHarm means a protected entity will be harmed this cycle
// unless a rescue action is executed. Read-only to the kernel.
type SafetyState struct {
	ImminentHarm bool
}

// #endregion safety-state

// #region veto-result

// VetoResult is the output of one veto evaluation. Recomputed per
// call; no persisted identity.
type VetoResult struct {
	Veto       bool
	Reasons    []string // one entry per triggered rule, in rule order
	Confidence float64  // [0, 1]
	Notes      []string // non-veto observations (defaulted fields, short trajectories)
}

// Reason joins the triggered rule reasons into a single audit string.
func (r VetoResult) Reason() string {
	return strings.Join(r.Reasons, "; ")
}

// #endregion veto-result
