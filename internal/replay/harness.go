package replay

import (
	"fmt"

	"github.com/danielpatrickdp/decision-kernel/internal/kernel"
	"github.com/danielpatrickdp/decision-kernel/internal/metrics"
)

// #region types

// Mismatch records one divergence between a replay result and the
// fixture's expectation.
type Mismatch struct {
	CycleID          string
	Field            string
	Expected, Actual string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCycles int
	Executed    int
	Vetoed      int
	Blocked     int
}

// #endregion types

// #region replay

// Replay runs every fixture cycle through a fresh kernel, carrying
// safe-mode state across cycles the way a live run would. A cycle
// marked authorized_reset gets an authorised safe-mode exit before it
// is decided.
func Replay(f *Fixture) ([]kernel.Result, error) {
	k, err := kernel.New(f.Config.ToConfig(), metrics.Noop{})
	if err != nil {
		return nil, fmt.Errorf("build kernel: %w", err)
	}

	results := make([]kernel.Result, 0, len(f.Cycles))
	for i := range f.Cycles {
		cycle := &f.Cycles[i]
		if cycle.AuthorizedReset {
			k.AuthorizeExit(true)
		}
		res, err := k.Decide(cycle.ToCycleInput())
		if err != nil {
			return nil, fmt.Errorf("cycle %s: %w", cycle.CycleID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Compare checks replay results against the fixture's expectations.
// Expectations are matched by cycle ID; an expectation with no
// matching result is itself a mismatch.
func Compare(results []kernel.Result, expected []FixtureExpectedResult) []Mismatch {
	byID := make(map[string]kernel.Result, len(results))
	for _, r := range results {
		byID[r.CycleID] = r
	}

	var mismatches []Mismatch
	for _, exp := range expected {
		res, ok := byID[exp.CycleID]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				CycleID:  exp.CycleID,
				Field:    "cycle",
				Expected: "present",
				Actual:   "missing",
			})
			continue
		}
		if exp.Outcome != "" && res.Outcome != exp.Outcome {
			mismatches = append(mismatches, Mismatch{
				CycleID:  exp.CycleID,
				Field:    "outcome",
				Expected: exp.Outcome,
				Actual:   res.Outcome,
			})
		}
		if exp.Executed != "" && res.Executed != exp.Executed {
			mismatches = append(mismatches, Mismatch{
				CycleID:  exp.CycleID,
				Field:    "executed",
				Expected: exp.Executed,
				Actual:   res.Executed,
			})
		}
	}
	return mismatches
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []kernel.Result) Summary {
	s := Summary{TotalCycles: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case kernel.OutcomeExecute:
			s.Executed++
		case kernel.OutcomeVetoed:
			s.Vetoed++
		case kernel.OutcomeSafeModeActive:
			s.Blocked++
		}
	}
	return s
}

// #endregion replay
