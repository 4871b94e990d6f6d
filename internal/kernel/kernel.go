package kernel

// #region imports
import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/decision-kernel/internal/audit"
	"github.com/danielpatrickdp/decision-kernel/internal/config"
	"github.com/danielpatrickdp/decision-kernel/internal/ensemble"
	"github.com/danielpatrickdp/decision-kernel/internal/horizon"
	"github.com/danielpatrickdp/decision-kernel/internal/metrics"
	"github.com/danielpatrickdp/decision-kernel/internal/safemode"
	"github.com/danielpatrickdp/decision-kernel/internal/safety"
	"github.com/danielpatrickdp/decision-kernel/internal/scoring"
	"github.com/danielpatrickdp/decision-kernel/internal/transparency"
)

// #endregion

// #region kernel-struct

// Kernel composes the safety layers into a single decision pipeline:
// rank candidates, vet the winner's metadata, check the long-horizon
// trajectory, aggregate the harm ensemble, then gate execution through
// the safe-mode controller. Any layer alone can stop execution.
type Kernel struct {
	weights       scoring.Weights
	engine        *transparency.Engine
	guard         *horizon.Guard
	controller    *safemode.Controller
	trajectory    *horizon.Trajectory
	harmThreshold float64
	metrics       metrics.Metrics
}

// #endregion

// #region constructor

// New creates a fully wired kernel from a validated configuration.
// Pass a nil Metrics to run without instrumentation.
func New(cfg *config.Config, m metrics.Metrics) (*Kernel, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kernel config: %w", err)
	}
	if m == nil {
		m = metrics.Noop{}
	}

	engine, err := transparency.NewEngine(cfg.EngineConfig())
	if err != nil {
		return nil, err
	}
	guard, err := horizon.NewGuard(cfg.GuardConfig())
	if err != nil {
		return nil, err
	}

	return &Kernel{
		weights:       cfg.ScoringWeights(),
		engine:        engine,
		guard:         guard,
		controller:    safemode.NewController(),
		trajectory:    horizon.NewTrajectory(cfg.Horizon.Window),
		harmThreshold: cfg.Ensemble.HarmThreshold,
		metrics:       m,
	}, nil
}

// #endregion

// #region decide

// Decide runs one full decision cycle. The only error condition is an
// empty candidate set; every safety concern is expressed as a veto in
// the result, never as an error.
func (k *Kernel) Decide(input CycleInput) (Result, error) {
	cycleID := input.CycleID
	if cycleID == "" {
		cycleID = uuid.New().String()
	}

	// Safe mode gates the whole cycle: while active, only nullipotent
	// actions are executable, so ranking is moot.
	if k.controller.Active() {
		log.Printf("[KERNEL] cycle=%s blocked: safe mode active", cycleID)
		k.metrics.IncDecision(OutcomeSafeModeActive)
		return Result{
			CycleID:  cycleID,
			Executed: safety.SafeActionHalt.String(),
			Outcome:  OutcomeSafeModeActive,
			Notes:    []string{"cycle refused: safe mode active, nullipotent actions only"},
			SafeMode: k.controller.Snapshot(),
		}, nil
	}

	chosen, err := scoring.Choose(input.Candidates, input.State, k.weights)
	if err != nil {
		return Result{}, err
	}
	score := scoring.Score(chosen, input.State, k.weights)

	res := Result{
		CycleID: cycleID,
		Chosen:  chosen,
		Score:   score,
	}

	// A best score at or above tier 1 means even the least harmful
	// candidate carries irreversible harm.
	if score >= k.weights.Tier1 {
		res.VetoSources = append(res.VetoSources, "scoring")
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"all candidates carry tier-1 violations (best score %d)", score))
		k.metrics.IncVeto("scoring")
	}

	if rec, ok := input.Metadata[chosen.Name]; ok {
		verdict := k.engine.Evaluate(rec)
		res.Notes = append(res.Notes, verdict.Notes...)
		if verdict.Veto {
			res.VetoSources = append(res.VetoSources, "transparency")
			res.Reasons = append(res.Reasons, verdict.Reasons...)
			k.metrics.IncVeto("transparency")
		}
	}

	risks := input.Trajectory
	if len(risks) == 0 {
		k.trajectory.Append(input.HarmRisk)
		risks = k.trajectory.Values()
	}
	verdict := k.guard.Evaluate(risks)
	res.Notes = append(res.Notes, verdict.Notes...)
	if verdict.Veto {
		res.VetoSources = append(res.VetoSources, "horizon")
		res.Reasons = append(res.Reasons, verdict.Reasons...)
		k.metrics.IncVeto("horizon")
	}

	res.EnsembleConfidence = ensemble.Aggregate(input.Confidences)
	if res.EnsembleConfidence > k.harmThreshold {
		res.VetoSources = append(res.VetoSources, "ensemble")
		res.Reasons = append(res.Reasons, fmt.Sprintf(
			"worst-case harm confidence %.2f exceeds threshold %.2f",
			res.EnsembleConfidence, k.harmThreshold))
		k.metrics.IncVeto("ensemble")
	}

	if len(res.VetoSources) > 0 {
		reason := fmt.Sprintf("vetoed by %s: %s",
			strings.Join(res.VetoSources, "+"), strings.Join(res.Reasons, "; "))
		k.controller.Enter(reason)
		k.metrics.IncSafeModeEntered()
		res.Outcome = OutcomeVetoed
		res.Executed = safety.SafeActionHalt.String()
		res.SafeMode = k.controller.Snapshot()
		log.Printf("[KERNEL] cycle=%s vetoed sources=%s chosen=%s score=%d",
			cycleID, strings.Join(res.VetoSources, "+"), chosen.Name, score)
		k.metrics.IncDecision(OutcomeVetoed)
		return res, nil
	}

	res.Outcome = OutcomeExecute
	res.Executed = chosen.Name
	res.SafeMode = k.controller.Snapshot()
	log.Printf("[KERNEL] cycle=%s execute action=%s score=%d ensemble=%.2f",
		cycleID, chosen.Name, score, res.EnsembleConfidence)
	k.metrics.IncDecision(OutcomeExecute)
	return res, nil
}

// #endregion

// #region safe-mode

// EnterSafeMode forces safe mode from outside the pipeline, e.g. on
// an operator signal or a watchdog trip.
func (k *Kernel) EnterSafeMode(reason string) {
	k.controller.Enter(reason)
	k.metrics.IncSafeModeEntered()
}

// AuthorizeExit attempts a safe-mode exit. Authorization must come
// from an external channel; the kernel never passes its own signals
// here.
func (k *Kernel) AuthorizeExit(authorised bool) bool {
	ok := k.controller.Exit(authorised)
	if !ok {
		k.metrics.IncExitRefused()
	}
	return ok
}

// SafeMode returns the current safe-mode state.
func (k *Kernel) SafeMode() safemode.State {
	return k.controller.Snapshot()
}

// SafeActions returns the nullipotent set executable during safe mode.
func (k *Kernel) SafeActions() []safety.SafeAction {
	return k.controller.SafeActions()
}

// #endregion

// #region audit

// AuditEntry converts a result into a decision-log row.
func (r Result) AuditEntry() audit.Entry {
	return audit.Entry{
		CycleID:            r.CycleID,
		ChosenAction:       r.Chosen.Name,
		ExecutedAction:     r.Executed,
		Score:              r.Score,
		Outcome:            r.Outcome,
		VetoSources:        r.VetoSources,
		Reasons:            r.Reasons,
		Notes:              r.Notes,
		EnsembleConfidence: r.EnsembleConfidence,
		SafeModeActive:     r.SafeMode.Active,
		SafeModeReason:     r.SafeMode.Reason,
	}
}

// #endregion
