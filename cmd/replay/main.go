package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/decision-kernel/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath))
}

// #endregion main

// #region run

func run(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	fmt.Printf("%-12s| %-18s| %-26s| %s\n", "Cycle", "Outcome", "Executed", "Vetoes")
	fmt.Printf("%-12s+%-19s+%-27s+%s\n",
		"------------", "-------------------", "---------------------------", "--------")
	for _, r := range results {
		fmt.Printf("%-12s| %-18s| %-26s| %d\n", r.CycleID, r.Outcome, r.Executed, len(r.VetoSources))
	}

	mismatches := replay.Compare(results, f.ExpectedResults)
	summary := replay.Summarize(results)
	fmt.Printf("\nSummary: %d cycles, %d executed, %d vetoed, %d blocked, %d diverge\n",
		summary.TotalCycles, summary.Executed, summary.Vetoed, summary.Blocked, len(mismatches))

	if len(mismatches) > 0 {
		for _, mm := range mismatches {
			fmt.Printf("  DIFF %s %s: expected %s, got %s\n", mm.CycleID, mm.Field, mm.Expected, mm.Actual)
		}
		return 1
	}
	return 0
}

// #endregion run
