package chainseg

import "math"

// Segments holds a piecewise-constant sequence compressed into values at
// jump boundaries and the run-length (sample count) of each run. Invariant:
// len(Values) == len(Weights) and sum(Weights) equals the original length.
type Segments struct {
	Values  []float64
	Weights []int
}

// Compress scans the denoised sequence y for jumps — positions where
// |y[i]-y[i-1]| > tau — and returns one (value, run-length) pair per
// constant run. len(Values) == len(Weights) == 1 + number of jumps. An
// empty y returns an empty Segments.
func Compress(y []float64, tau float64) Segments {
	n := len(y)
	if n == 0 {
		return Segments{}
	}

	var values []float64
	var boundaries []int // index of the first sample of each run

	values = append(values, y[0])
	boundaries = append(boundaries, 0)

	for i := 1; i < n; i++ {
		if math.Abs(y[i]-y[i-1]) > tau {
			values = append(values, y[i])
			boundaries = append(boundaries, i)
		}
	}

	weights := make([]int, len(boundaries))
	for j := 0; j < len(boundaries); j++ {
		end := n
		if j+1 < len(boundaries) {
			end = boundaries[j+1]
		}
		weights[j] = end - boundaries[j]
	}

	return Segments{Values: values, Weights: weights}
}

// Expand reconstructs the full-length sequence represented by seg, by
// repeating each value for its run-length.
func Expand(seg Segments) []float64 {
	total := 0
	for _, w := range seg.Weights {
		total += w
	}

	out := make([]float64, 0, total)
	for i, v := range seg.Values {
		for j := 0; j < seg.Weights[i]; j++ {
			out = append(out, v)
		}
	}

	return out
}

// N returns the total number of samples represented by seg (sum of Weights).
func (s Segments) N() int {
	total := 0
	for _, w := range s.Weights {
		total += w
	}

	return total
}
