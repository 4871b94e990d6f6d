package scoring

import (
	"fmt"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

// #region weights

// Weights holds the per-tier violation weights. The contract is
// lexicographic tier dominance: no realistic combination of lower-tier
// violations may outweigh a single higher-tier one, so Tier1 must
// dwarf Tier2 which must dwarf Tier3.
type Weights struct {
	Tier1 int64 // irreversible harm, and the omission penalty
	Tier2 int64 // truth / authority locks
	Tier3 int64 // resource bounds
}

// DefaultWeights returns the standard exponentially-separated weights.
func DefaultWeights() Weights {
	return Weights{
		Tier1: 1_000_000,
		Tier2: 1_000,
		Tier3: 10,
	}
}

// Validate rejects weights that break strict tier dominance.
func (w Weights) Validate() error {
	if w.Tier3 <= 0 {
		return fmt.Errorf("tier3 weight must be positive, got %d", w.Tier3)
	}
	if w.Tier2 <= w.Tier3 {
		return fmt.Errorf("tier2 weight %d must exceed tier3 weight %d", w.Tier2, w.Tier3)
	}
	if w.Tier1 <= w.Tier2 {
		return fmt.Errorf("tier1 weight %d must exceed tier2 weight %d", w.Tier1, w.Tier2)
	}
	return nil
}

// #endregion weights

// #region scored

// Scored pairs a candidate with its violation score for ranking and audit.
type Scored struct {
	Action safety.Action
	Score  int64
}

// #endregion scored
