package horizon

import "fmt"

// #region guard-config

// GuardConfig holds the long-horizon thresholds.
type GuardConfig struct {
	Gamma1 float64 // max allowed first difference (gradient)
	Gamma2 float64 // max allowed second difference (acceleration)
	Theta  float64 // max allowed accumulated risk mass
}

// DefaultGuardConfig returns the reference thresholds.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		Gamma1: 0.10,
		Gamma2: 0.05,
		Theta:  0.8,
	}
}

// Validate rejects unusable thresholds at construction time.
func (c GuardConfig) Validate() error {
	if c.Gamma1 < 0 {
		return fmt.Errorf("gamma1 must be non-negative, got %f", c.Gamma1)
	}
	if c.Gamma2 < 0 {
		return fmt.Errorf("gamma2 must be non-negative, got %f", c.Gamma2)
	}
	if c.Theta < 0 {
		return fmt.Errorf("theta must be non-negative, got %f", c.Theta)
	}
	return nil
}

// #endregion guard-config

// #region trajectory

// Trajectory is an append-only window of per-step harm-confidence
// estimates in [0, 1]. When the window reaches the configured horizon
// length it rolls: the old window is discarded and a new one begins.
// Not safe for concurrent mutation; each kernel owns its own.
type Trajectory struct {
	values  []float64
	horizon int
}

// NewTrajectory creates a trajectory with the given horizon length.
// A horizon of 0 disables rolling.
func NewTrajectory(horizon int) *Trajectory {
	return &Trajectory{horizon: horizon}
}

// Append adds one observation, clamped to [0, 1], rolling the window
// first if the horizon boundary was reached.
func (t *Trajectory) Append(v float64) {
	if t.horizon > 0 && len(t.values) >= t.horizon {
		t.values = t.values[:0]
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	t.values = append(t.values, v)
}

// Values returns a copy of the current window.
func (t *Trajectory) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}

// Len returns the number of observations in the current window.
func (t *Trajectory) Len() int {
	return len(t.values)
}

// #endregion trajectory
