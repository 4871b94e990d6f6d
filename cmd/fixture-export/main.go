package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-kernel/internal/replay"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

// #region main

func main() {
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json")
		os.Exit(2)
	}

	if err := run(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region fixture

// run writes the reference fixture: one cycle per safety layer plus a
// safe-mode blocked cycle and an authorised recovery.
func run(outPath string) error {
	doNothing := replay.FixtureAction{
		Name:        "DoNothing",
		Description: "remain idle this cycle",
	}
	rescue := replay.FixtureAction{
		Name:        "RescueHuman",
		Description: "move to assist the human operator",
		IsRescue:    true,
	}
	demolish := replay.FixtureAction{
		Name:                   "DemolishObstacle",
		Description:            "destroy the blocking structure",
		CausesIrreversibleHarm: true,
	}

	f := replay.Fixture{
		Description: "reference cycles covering every safety layer",
		Cycles: []replay.FixtureCycle{
			{
				// Omission is a violation: idling past imminent harm
				// loses to the rescue.
				CycleID:      "cycle-omission",
				Candidates:   []replay.FixtureAction{doNothing, rescue, demolish},
				ImminentHarm: true,
				HarmRisk:     0.01,
			},
			{
				CycleID:    "cycle-contradiction",
				Candidates: []replay.FixtureAction{rescue},
				Metadata: map[string]transparency.Record{
					"RescueHuman": {
						ActionType:    transparency.ActionMove,
						TargetObject:  "Door 4",
						Consequences:  "no observable physical change",
						PredictedP1:   true,
						ResourceCost:  50,
						ExecutionTime: 30,
					},
				},
				HarmRisk: 0.01,
			},
			{
				// Slow creep: each step is under the gradient limits
				// but the accumulated mass crosses theta.
				CycleID:         "cycle-creep",
				Candidates:      []replay.FixtureAction{doNothing},
				Trajectory:      []float64{0.01, 0.036, 0.062, 0.088, 0.114, 0.140, 0.166, 0.192},
				AuthorizedReset: true,
			},
			{
				CycleID:    "cycle-blocked",
				Candidates: []replay.FixtureAction{doNothing},
			},
			{
				CycleID:         "cycle-recovered",
				Candidates:      []replay.FixtureAction{doNothing},
				HarmRisk:        0.01,
				AuthorizedReset: true,
			},
		},
		ExpectedResults: []replay.FixtureExpectedResult{
			{CycleID: "cycle-omission", Outcome: "execute", Executed: "RescueHuman"},
			{CycleID: "cycle-contradiction", Outcome: "vetoed", Executed: "safe_halt"},
			{CycleID: "cycle-creep", Outcome: "vetoed", Executed: "safe_halt"},
			{CycleID: "cycle-blocked", Outcome: "safe_mode_active", Executed: "safe_halt"},
			{CycleID: "cycle-recovered", Outcome: "execute", Executed: "DoNothing"},
		},
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	fmt.Printf("wrote %d cycles to %s\n", len(f.Cycles), outPath)
	return nil
}

// #endregion fixture
