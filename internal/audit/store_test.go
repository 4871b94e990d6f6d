package audit

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "decision_log.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLogAndRecent(t *testing.T) {
	store := newTestStore(t)

	entry := Entry{
		CycleID:            "cycle-1",
		ChosenAction:       "RescueHuman",
		ExecutedAction:     "RescueHuman",
		Score:              0,
		Outcome:            "execute",
		EnsembleConfidence: 0.10,
		CreatedAt:          time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Log(entry); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.CycleID != "cycle-1" || got.ExecutedAction != "RescueHuman" || got.Outcome != "execute" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Fatalf("timestamp mismatch: %v vs %v", got.CreatedAt, entry.CreatedAt)
	}
}

func TestLogPreservesReasonsAndSources(t *testing.T) {
	store := newTestStore(t)

	entry := Entry{
		CycleID:        "cycle-2",
		ChosenAction:   "MoveToDoor",
		ExecutedAction: "safe_halt",
		Score:          0,
		Outcome:        "vetoed",
		VetoSources:    []string{"transparency", "horizon"},
		Reasons: []string{
			"internal contradiction: P1 risk predicted alongside \"no observable physical change\" claim (confidence 0.95)",
			"mass monitor: accumulated risk mass 0.808 exceeds theta 0.800",
		},
		Notes:              []string{"gradient monitor: trajectory too short (2 of 3 points)"},
		EnsembleConfidence: 0.42,
		SafeModeActive:     true,
		SafeModeReason:     "vetoed by transparency+horizon",
	}
	if err := store.Log(entry); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries, err := store.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	got := entries[0]
	if len(got.VetoSources) != 2 || got.VetoSources[1] != "horizon" {
		t.Fatalf("veto sources lost: %v", got.VetoSources)
	}
	if len(got.Reasons) != 2 {
		t.Fatalf("reasons lost: %v", got.Reasons)
	}
	if !got.SafeModeActive || got.SafeModeReason == "" {
		t.Fatalf("safe mode state lost: %+v", got)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"cycle-a", "cycle-b", "cycle-c"} {
		if err := store.Log(Entry{CycleID: id, Outcome: "execute"}); err != nil {
			t.Fatalf("log %s: %v", id, err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].CycleID != "cycle-c" || entries[1].CycleID != "cycle-b" {
		t.Fatalf("expected newest first, got %s then %s", entries[0].CycleID, entries[1].CycleID)
	}
}
