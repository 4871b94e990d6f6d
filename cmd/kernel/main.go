package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/danielpatrickdp/decision-kernel/internal/audit"
	"github.com/danielpatrickdp/decision-kernel/internal/config"
	"github.com/danielpatrickdp/decision-kernel/internal/kernel"
	"github.com/danielpatrickdp/decision-kernel/internal/metrics"
	"github.com/danielpatrickdp/decision-kernel/internal/replay"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to kernel config YAML (empty uses defaults)")
	dbPath := flag.String("db", envOr("KERNEL_DB", "decision_log.db"), "path to decision log database")
	metricsAddr := flag.String("metrics", "", "address for /metrics (empty disables)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var m metrics.Metrics = metrics.Noop{}
	if *metricsAddr != "" {
		m = metrics.NewProm("kernel")
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	k, err := kernel.New(cfg, m)
	if err != nil {
		log.Fatalf("failed to build kernel: %v", err)
	}

	store, err := audit.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open decision log: %v", err)
	}
	defer store.Close()

	fmt.Println("Decision kernel ready.")
	fmt.Printf("  DB: %s\n", *dbPath)
	fmt.Println("Paste a cycle as JSON per line ('reset' for authorised exit, 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "reset" {
			if k.AuthorizeExit(true) {
				fmt.Println("safe mode cleared")
			} else {
				fmt.Println("safe mode was not active")
			}
			continue
		}

		var cycle replay.FixtureCycle
		if err := json.Unmarshal([]byte(line), &cycle); err != nil {
			log.Printf("parse cycle: %v", err)
			continue
		}

		res, err := k.Decide(cycle.ToCycleInput())
		if err != nil {
			log.Printf("decide error: %v", err)
			continue
		}

		if err := store.Log(res.AuditEntry()); err != nil {
			log.Printf("logging error: %v", err)
		}

		fmt.Printf("[%s] outcome=%s executed=%s score=%d ensemble=%.2f\n",
			res.CycleID, res.Outcome, res.Executed, res.Score, res.EnsembleConfidence)
		for _, r := range res.Reasons {
			fmt.Printf("  reason: %s\n", r)
		}
		for _, n := range res.Notes {
			fmt.Printf("  note: %s\n", n)
		}
	}
}
// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
