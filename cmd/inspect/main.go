package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/decision-kernel/internal/audit"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to decision_log.db")
	last := flag.Int("last", 20, "show N most recent decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/decision_log.db [--last N] [--json]")
		os.Exit(2)
	}

	store, err := audit.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := runListMode(store, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	CycleID        string   `json:"cycle_id"`
	Outcome        string   `json:"outcome"`
	Chosen         string   `json:"chosen_action"`
	Executed       string   `json:"executed_action"`
	Score          int64    `json:"score"`
	VetoSources    []string `json:"veto_sources,omitempty"`
	Reasons        []string `json:"reasons,omitempty"`
	SafeModeActive bool     `json:"safe_mode_active"`
	CreatedAt      string   `json:"created_at"`
}

func runListMode(store *audit.Store, last int, jsonOut bool) error {
	entries, err := store.Recent(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listRow{
			CycleID:        e.CycleID,
			Outcome:        e.Outcome,
			Chosen:         e.ChosenAction,
			Executed:       e.ExecutedAction,
			Score:          e.Score,
			VetoSources:    e.VetoSources,
			Reasons:        e.Reasons,
			SafeModeActive: e.SafeModeActive,
			CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-20s| %-18s| %-22s| %-26s| %-10s| %s\n",
		"Cycle", "Outcome", "Chosen", "Executed", "Score", "Vetoes")
	fmt.Println(strings.Repeat("-", 110))
	for _, r := range rows {
		fmt.Printf("%-20s| %-18s| %-22s| %-26s| %-10d| %s\n",
			truncate(r.CycleID, 20), r.Outcome, truncate(r.Chosen, 22),
			truncate(r.Executed, 26), r.Score, strings.Join(r.VetoSources, "+"))
	}
	fmt.Printf("\n%d entries\n", len(rows))
	return nil
}

// #endregion list-mode

// #region helpers

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// #endregion helpers
