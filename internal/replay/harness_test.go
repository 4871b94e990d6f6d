package replay

import (
	"testing"

	"github.com/danielpatrickdp/decision-kernel/internal/kernel"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

func TestReplayRunsCyclesInOrder(t *testing.T) {
	f := &Fixture{
		Cycles: []FixtureCycle{
			{
				CycleID:      "c1",
				Candidates:   []FixtureAction{{Name: "DoNothing"}, {Name: "RescueHuman", IsRescue: true}},
				ImminentHarm: true,
				HarmRisk:     0.02,
			},
			{
				CycleID:    "c2",
				Candidates: []FixtureAction{{Name: "DoNothing"}},
				HarmRisk:   0.02,
			},
		},
	}

	results, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Executed != "RescueHuman" {
		t.Fatalf("cycle 1: expected RescueHuman, got %s", results[0].Executed)
	}
	if results[1].Outcome != kernel.OutcomeExecute {
		t.Fatalf("cycle 2: expected execute, got %s", results[1].Outcome)
	}
}

func TestReplayCarriesSafeModeAcrossCycles(t *testing.T) {
	corrupted := map[string]transparency.Record{
		"MoveToDoor": {
			ActionType:   transparency.ActionMove,
			Consequences: "no observable physical change",
			PredictedP1:  true,
			ResourceCost: 50,
		},
	}
	f := &Fixture{
		Cycles: []FixtureCycle{
			{
				CycleID:    "c1",
				Candidates: []FixtureAction{{Name: "MoveToDoor"}},
				Metadata:   corrupted,
				HarmRisk:   0.02,
			},
			{
				CycleID:    "c2",
				Candidates: []FixtureAction{{Name: "DoNothing"}},
				HarmRisk:   0.02,
			},
			{
				CycleID:         "c3",
				Candidates:      []FixtureAction{{Name: "DoNothing"}},
				HarmRisk:        0.02,
				AuthorizedReset: true,
			},
		},
	}

	results, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if results[0].Outcome != kernel.OutcomeVetoed {
		t.Fatalf("cycle 1: expected vetoed, got %s", results[0].Outcome)
	}
	if results[1].Outcome != kernel.OutcomeSafeModeActive {
		t.Fatalf("cycle 2: safe mode must persist, got %s", results[1].Outcome)
	}
	if results[2].Outcome != kernel.OutcomeExecute {
		t.Fatalf("cycle 3: authorised reset must restore operation, got %s", results[2].Outcome)
	}

	summary := Summarize(results)
	if summary.Vetoed != 1 || summary.Blocked != 1 || summary.Executed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestCompareFlagsDivergence(t *testing.T) {
	results := []kernel.Result{
		{CycleID: "c1", Outcome: kernel.OutcomeExecute, Executed: "DoNothing"},
	}
	expected := []FixtureExpectedResult{
		{CycleID: "c1", Outcome: "vetoed", Executed: "safe_halt"},
		{CycleID: "c2", Outcome: "execute"},
	}

	mismatches := Compare(results, expected)
	if len(mismatches) != 3 {
		t.Fatalf("expected 3 mismatches (outcome, executed, missing cycle), got %d: %+v",
			len(mismatches), mismatches)
	}
}

func TestCompareMatchingResults(t *testing.T) {
	results := []kernel.Result{
		{CycleID: "c1", Outcome: kernel.OutcomeExecute, Executed: "DoNothing"},
	}
	expected := []FixtureExpectedResult{
		{CycleID: "c1", Outcome: "execute", Executed: "DoNothing"},
	}
	if mm := Compare(results, expected); len(mm) != 0 {
		t.Fatalf("expected no mismatches, got %+v", mm)
	}
}

func TestReplayInvalidConfig(t *testing.T) {
	f := &Fixture{
		Config: FixtureConfig{Weights: FixtureWeights{Tier1: 1, Tier2: 10, Tier3: 100}},
		Cycles: []FixtureCycle{{CycleID: "c1", Candidates: []FixtureAction{{Name: "DoNothing"}}}},
	}
	if _, err := Replay(f); err == nil {
		t.Fatal("expected error for disordered weights")
	}
}
