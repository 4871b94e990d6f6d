package ensemble

import (
	"math/rand"
	"strings"
)

// Reference predictor sources. Each looks at a different slice of the
// action context and each has a known failure mode, so the set as a
// whole exercises the worst-case aggregation rule the way a real
// ensemble would.

// #region danger-flag

// DangerFlagSource keys entirely off the world model's effect label.
// Blind to anything the label misses.
type DangerFlagSource struct{}

func (DangerFlagSource) Name() string { return "danger_flag" }

func (DangerFlagSource) Confidence(ctx ActionContext) float64 {
	switch ctx.Effect {
	case "danger":
		return 0.99
	case "rescue":
		return 0.05
	default:
		return 0.10
	}
}

// #endregion danger-flag

// #region deadline

// DeadlineSource rates actions by how close the idle-harm deadline
// is; it flags omission pressure, not the action itself.
type DeadlineSource struct{}

func (DeadlineSource) Name() string { return "deadline" }

func (DeadlineSource) Confidence(ctx ActionContext) float64 {
	switch {
	case ctx.DeadlineSteps <= 2:
		return 0.95
	case ctx.DeadlineSteps <= 5:
		return 0.70
	default:
		return 0.10
	}
}

// #endregion deadline

// #region surface-cue

// SurfaceCueSource trusts reassuring names and explanations. Its
// failure mode is the false negative: a harmful action with a
// friendly name sails through.
type SurfaceCueSource struct{}

func (SurfaceCueSource) Name() string { return "surface_cue" }

func (SurfaceCueSource) Confidence(ctx ActionContext) float64 {
	looksSafe := strings.Contains(ctx.Name, "Help") ||
		strings.Contains(ctx.Name, "Rescue") ||
		strings.Contains(strings.ToLower(ctx.Explanation), "update")
	if looksSafe {
		return 0.10
	}
	return 0.80
}

// #endregion surface-cue

// #region obfuscation

// ObfuscationSource treats short or unjustified explanations as
// suspicious. Its failure mode is the false positive on terse but
// honest planners.
type ObfuscationSource struct{}

func (ObfuscationSource) Name() string { return "obfuscation" }

func (ObfuscationSource) Confidence(ctx ActionContext) float64 {
	if len(ctx.Explanation) < 30 || !strings.Contains(ctx.Explanation, "because") {
		return 0.90
	}
	return 0.15
}

// #endregion obfuscation

// #region noise

// NoiseSource models a broken predictor: pure noise. The rng is
// injected so tests stay deterministic.
type NoiseSource struct {
	Rng *rand.Rand
}

func (NoiseSource) Name() string { return "noise" }

func (s NoiseSource) Confidence(ActionContext) float64 {
	if s.Rng == nil {
		return 0.0
	}
	return s.Rng.Float64()
}

// #endregion noise

// #region default-sources

// DefaultSources returns the reference five-source ensemble.
func DefaultSources(rng *rand.Rand) []Source {
	return []Source{
		DangerFlagSource{},
		DeadlineSource{},
		SurfaceCueSource{},
		ObfuscationSource{},
		NoiseSource{Rng: rng},
	}
}

// #endregion default-sources
