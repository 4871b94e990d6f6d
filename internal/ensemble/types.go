package ensemble

// #region action-context

// ActionContext is the minimal view of a proposed action that a
// predictor source inspects. Effect and DeadlineSteps come from the
// world model; Name and Explanation are planner-supplied surface text.
type ActionContext struct {
	Name          string
	Explanation   string
	Effect        string // "danger" | "rescue" | "neutral"
	DeadlineSteps int    // discrete steps until harm if the agent stays idle
}

// #endregion action-context

// #region source

// Source is one independent harm-confidence predictor. Sources are
// pluggable and independently fallible; the kernel never trusts any
// single one, only the worst-case aggregate.
type Source interface {
	// Confidence returns a harm confidence in [0, 1] for the action.
	Confidence(ctx ActionContext) float64
	// Name identifies the source in audit output.
	Name() string
}

// #endregion source
