package ensemble

// #region aggregate

// Aggregate collapses per-source harm confidences into one scalar
// using the worst-case rule: the maximum element, or 0.0 for an empty
// input. A single correctly-suspicious source is enough to raise the
// aggregate, trading false positives for recall on the harm side.
// Monotonic: raising any input never lowers the output.
func Aggregate(confidences []float64) float64 {
	if len(confidences) == 0 {
		return 0.0
	}
	max := confidences[0]
	for _, c := range confidences[1:] {
		if c > max {
			max = c
		}
	}
	return max
}

// #endregion aggregate

// #region collect

// Collect queries every source for the given action, preserving
// source order.
func Collect(sources []Source, ctx ActionContext) []float64 {
	out := make([]float64, len(sources))
	for i, s := range sources {
		out[i] = clamp(s.Confidence(ctx))
	}
	return out
}

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion collect
