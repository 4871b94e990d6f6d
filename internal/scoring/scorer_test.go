package scoring

import (
	"errors"
	"testing"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

func makeAction(name string) safety.Action {
	return safety.Action{Name: name}
}

func TestScoreCleanActionIsZero(t *testing.T) {
	score := Score(makeAction("DoNothing"), safety.SafetyState{}, DefaultWeights())
	if score != 0 {
		t.Fatalf("expected 0, got %d", score)
	}
}

func TestScoreTierDominance(t *testing.T) {
	w := DefaultWeights()
	state := safety.SafetyState{}

	tier1 := safety.Action{Name: "a", CausesIrreversibleHarm: true}
	manyLower := safety.Action{Name: "b", ViolatesTruthLock: true, ViolatesAuthLock: true, ViolatesResourceBounds: true}

	if Score(tier1, state, w) <= Score(manyLower, state, w) {
		t.Fatalf("single tier-1 violation must outweigh all lower tiers combined: %d vs %d",
			Score(tier1, state, w), Score(manyLower, state, w))
	}
}

func TestScoreTruthAndAuthCountOnce(t *testing.T) {
	w := DefaultWeights()
	state := safety.SafetyState{}

	both := safety.Action{Name: "a", ViolatesTruthLock: true, ViolatesAuthLock: true}
	one := safety.Action{Name: "b", ViolatesTruthLock: true}

	if Score(both, state, w) != Score(one, state, w) {
		t.Fatalf("truth and auth violations share one tier-2 charge: %d vs %d",
			Score(both, state, w), Score(one, state, w))
	}
	if Score(one, state, w) != w.Tier2 {
		t.Fatalf("expected %d, got %d", w.Tier2, Score(one, state, w))
	}
}

func TestScoreOmissionUnderImminentHarm(t *testing.T) {
	w := DefaultWeights()
	state := safety.SafetyState{ImminentHarm: true}

	idle := makeAction("DoNothing")
	rescue := safety.Action{Name: "RescueHuman", IsRescue: true}

	if got := Score(idle, state, w); got != w.Tier1 {
		t.Fatalf("idling past imminent harm must cost a tier-1 penalty, got %d", got)
	}
	if got := Score(rescue, state, w); got != 0 {
		t.Fatalf("rescue action must not be charged for omission, got %d", got)
	}
}

func TestScoreOmissionIsAdditive(t *testing.T) {
	w := DefaultWeights()
	state := safety.SafetyState{ImminentHarm: true}

	harmfulIdle := safety.Action{Name: "DemolishObstacle", CausesIrreversibleHarm: true}

	if got := Score(harmfulIdle, state, w); got != 2*w.Tier1 {
		t.Fatalf("omission penalty stacks on the harm penalty: expected %d, got %d", 2*w.Tier1, got)
	}
}

func TestChoosePrefersRescueOverIdle(t *testing.T) {
	state := safety.SafetyState{ImminentHarm: true}
	candidates := []safety.Action{
		makeAction("DoNothing"),
		{Name: "RescueHuman", IsRescue: true},
		{Name: "DemolishObstacle", CausesIrreversibleHarm: true},
	}

	chosen, err := Choose(candidates, state, DefaultWeights())
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if chosen.Name != "RescueHuman" {
		t.Fatalf("expected RescueHuman, got %s", chosen.Name)
	}
}

func TestChooseTieBreaksByName(t *testing.T) {
	state := safety.SafetyState{}
	candidates := []safety.Action{
		makeAction("Bravo"),
		makeAction("Alpha"),
		makeAction("Charlie"),
	}

	chosen, err := Choose(candidates, state, DefaultWeights())
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if chosen.Name != "Alpha" {
		t.Fatalf("ties must break lexicographically, got %s", chosen.Name)
	}
}

func TestChooseEmptyCandidates(t *testing.T) {
	_, err := Choose(nil, safety.SafetyState{}, DefaultWeights())
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	state := safety.SafetyState{ImminentHarm: true}
	candidates := []safety.Action{
		{Name: "DemolishObstacle", CausesIrreversibleHarm: true},
		makeAction("DoNothing"),
		{Name: "RescueHuman", IsRescue: true},
	}

	first := Rank(candidates, state, DefaultWeights())
	for i := 0; i < 10; i++ {
		again := Rank(candidates, state, DefaultWeights())
		for j := range first {
			if first[j].Action.Name != again[j].Action.Name || first[j].Score != again[j].Score {
				t.Fatalf("ranking changed between runs at index %d", j)
			}
		}
	}

	if first[0].Action.Name != "RescueHuman" {
		t.Fatalf("expected RescueHuman first, got %s", first[0].Action.Name)
	}
	if first[len(first)-1].Action.Name != "DemolishObstacle" {
		t.Fatalf("expected DemolishObstacle last, got %s", first[len(first)-1].Action.Name)
	}
}

func TestWeightsValidate(t *testing.T) {
	bad := Weights{Tier1: 10, Tier2: 10, Tier3: 1}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for non-descending tiers")
	}
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate: %v", err)
	}
}
