package usmap

import "math"

// ApplyScale maps raw values into the domain used for color assignment.
// Linear is the identity. Log clamps everything below the smallest
// positive value (or 1 when nothing is positive) up to that floor before
// taking base-10 logs, so zeros and negatives compress onto the floor
// instead of producing NaNs. Custom bins each value into CustomBins and
// replaces it with its zero-based bin index; values outside every bin
// come back as NaN.
func ApplyScale(values []float64, cfg Config) []float64 {
	out := make([]float64, len(values))
	switch cfg.ScaleType {
	case ScaleLog:
		floor := math.Inf(1)
		for _, v := range values {
			if v > 0 && v < floor {
				floor = v
			}
		}
		if math.IsInf(floor, 1) {
			floor = 1
		}
		for i, v := range values {
			out[i] = math.Log10(math.Max(v, floor))
		}
	case ScaleCustom:
		if len(cfg.CustomBins) >= 2 {
			for i, v := range values {
				out[i] = binIndex(v, cfg.CustomBins)
			}
			return out
		}
		copy(out, values)
	default:
		copy(out, values)
	}
	return out
}

// binIndex returns the zero-based index of the (lo, hi] interval holding
// v, or NaN when v falls outside all bins. The leftmost edge is open,
// matching conventional right-closed binning.
func binIndex(v float64, bins []float64) float64 {
	for i := 0; i+1 < len(bins); i++ {
		if v > bins[i] && v <= bins[i+1] {
			return float64(i)
		}
	}
	return math.NaN()
}
