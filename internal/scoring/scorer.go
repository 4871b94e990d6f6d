package scoring

import (
	"errors"
	"sort"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

// ErrNoCandidates is returned when Choose is given an empty candidate
// set. Choosing nothing is a decision the kernel must not make on its
// own, so the condition propagates instead of defaulting.
var ErrNoCandidates = errors.New("no candidate actions provided")

// #region score

// Score computes the violation score for a single action under the
// current safety state. Total function; higher is worse.
//
// Tier 1 fires on irreversible harm. Tier 2 fires once if either the
// truth lock or the authority lock is violated (not once per flag).
// Tier 3 fires on resource-bound violations. Failing to rescue while
// harm is imminent adds a second tier-1 contribution: omission is
// scored identically to causing the harm, and stacks additively with
// the irreversible-harm penalty when both apply.
func Score(a safety.Action, state safety.SafetyState, w Weights) int64 {
	var score int64

	if a.CausesIrreversibleHarm {
		score += w.Tier1
	}
	if a.ViolatesTruthLock || a.ViolatesAuthLock {
		score += w.Tier2
	}
	if a.ViolatesResourceBounds {
		score += w.Tier3
	}
	if state.ImminentHarm && !a.IsRescue {
		score += w.Tier1
	}

	return score
}

// #endregion score

// #region rank

// Rank scores every candidate and sorts by (score ascending, name
// ascending). The name tie-break keeps selection deterministic.
func Rank(candidates []safety.Action, state safety.SafetyState, w Weights) []Scored {
	scored := make([]Scored, len(candidates))
	for i, a := range candidates {
		scored[i] = Scored{Action: a, Score: Score(a, state, w)}
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score < scored[j].Score
		}
		return scored[i].Action.Name < scored[j].Action.Name
	})
	return scored
}

// #endregion rank

// #region choose

// Choose returns the least-violating candidate. Pure and
// deterministic: no randomness, no time dependency. Returns
// ErrNoCandidates on an empty set.
func Choose(candidates []safety.Action, state safety.SafetyState, w Weights) (safety.Action, error) {
	if len(candidates) == 0 {
		return safety.Action{}, ErrNoCandidates
	}
	return Rank(candidates, state, w)[0].Action, nil
}

// #endregion choose
