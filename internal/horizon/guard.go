package horizon

import (
	"fmt"

	"github.com/danielpatrickdp/decision-kernel/internal/safety"
)

// #region guard

// Guard evaluates a risk trajectory with two complementary monitors.
// The gradient monitor catches abrupt or accelerating rises that an
// accumulated-mass check misses early in the horizon; the mass
// monitor catches slow creep that stays under every gradient
// threshold while piling up total exposure.
type Guard struct {
	config GuardConfig
}

// NewGuard validates the thresholds and returns a guard.
func NewGuard(config GuardConfig) (*Guard, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("horizon config: %w", err)
	}
	return &Guard{config: config}, nil
}

// #endregion guard

// #region evaluate

// Evaluate runs both monitors over the trajectory. Either alone
// vetoes. The guard is a binary signal: a veto carries confidence
// 1.0, no separate per-rule confidence exists.
func (g *Guard) Evaluate(risks []float64) safety.VetoResult {
	var reasons []string
	var notes []string

	gradVeto, gradReasons, gradNote := g.gradientCheck(risks)
	reasons = append(reasons, gradReasons...)
	if gradNote != "" {
		notes = append(notes, gradNote)
	}

	massVeto, massReason := g.massCheck(risks)
	if massVeto {
		reasons = append(reasons, massReason)
	}

	if !gradVeto && !massVeto {
		return safety.VetoResult{Veto: false, Confidence: 0.0, Notes: notes}
	}
	return safety.VetoResult{
		Veto:       true,
		Reasons:    reasons,
		Confidence: 1.0,
		Notes:      notes,
	}
}

// #endregion evaluate

// #region gradient-check

// gradientCheck inspects first and second differences. Trajectories
// shorter than 3 points cannot be differenced twice and yield no veto
// with an observable note, never an error.
func (g *Guard) gradientCheck(risks []float64) (veto bool, reasons []string, note string) {
	n := len(risks)
	if n < 3 {
		return false, nil, fmt.Sprintf("gradient monitor: trajectory too short (%d of 3 points)", n)
	}

	d1 := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		d1[i] = risks[i+1] - risks[i]
	}
	d2 := make([]float64, len(d1)-1)
	for i := 0; i < len(d1)-1; i++ {
		d2[i] = d1[i+1] - d1[i]
	}

	maxD1 := maxOf(d1)
	maxD2 := maxOf(d2)

	if maxD1 > g.config.Gamma1 {
		reasons = append(reasons, fmt.Sprintf(
			"gradient monitor: steep risk gradient (max delta %.3f exceeds %.3f)", maxD1, g.config.Gamma1))
	}
	if maxD2 > g.config.Gamma2 {
		reasons = append(reasons, fmt.Sprintf(
			"gradient monitor: accelerating risk gradient (max second delta %.3f exceeds %.3f)", maxD2, g.config.Gamma2))
	}
	return len(reasons) > 0, reasons, ""
}

// #endregion gradient-check

// #region mass-check

// massCheck vetoes iff the accumulated risk mass strictly exceeds
// theta. An empty trajectory has mass 0 and never vetoes.
func (g *Guard) massCheck(risks []float64) (bool, string) {
	var mass float64
	for _, r := range risks {
		mass += r
	}
	if mass > g.config.Theta {
		return true, fmt.Sprintf(
			"mass monitor: accumulated risk mass %.3f exceeds theta %.3f", mass, g.config.Theta)
	}
	return false, ""
}

// #endregion mass-check

// #region helpers

func maxOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0.0
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// #endregion helpers
