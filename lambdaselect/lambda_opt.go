package lambdaselect

import (
	"math"

	"github.com/katalvlaran/tvseg/tv1d"
)

// jumpThreshold is the fixed threshold tau used to count jumps in a
// denoised sequence's first differences.
const jumpThreshold = 1e-7

// Method selects the search strategy used by LambdaOpt.
type Method int

const (
	// SteepestDescent probes f = 1, 1/2, 1/(2*rho), ... until the slope of
	// the jumps-vs-f curve exceeds the initial slope. This is the default.
	SteepestDescent Method = iota
	// Bisection recursively bisects [lambdaMin, lambdaMax], comparing the
	// slope on either side of the midpoint, to a fixed depth.
	Bisection
)

// Options configures LambdaOpt.
type Options struct {
	Method        Method
	MaxIterations int     // default 50
	Rho           float64 // default 5.0, SteepestDescent only
	LambdaMin     float64 // Bisection only
}

// DefaultOptions returns the steepest-descent configuration used by default.
func DefaultOptions() Options {
	return Options{
		Method:        SteepestDescent,
		MaxIterations: 50,
		Rho:           5.0,
	}
}

func (o *Options) normalize() {
	if o.MaxIterations == 0 {
		o.MaxIterations = 50
	}
	if o.Rho == 0 {
		o.Rho = 5.0
	}
}

// LambdaOpt picks an operating lambda = f*lambdaMax for f in (0, 1] by
// observing how the jump count of tv1d.Denoise(x, f*lambdaMax) grows as f
// shrinks. The noisy input x is probed repeatedly; each probe denoises x
// into a freshly allocated slice.
func LambdaOpt(x []float64, lambdaMax float64, opts Options) float64 {
	opts.normalize()
	if len(x) == 0 || lambdaMax <= 0 {
		return 0
	}

	switch opts.Method {
	case Bisection:
		lambdaMin := opts.LambdaMin
		return bisectionSearch(x, lambdaMin, lambdaMax, -1, -1, opts.MaxIterations)
	default:
		return steepestDescentSearch(x, lambdaMax, opts)
	}
}

// jumps denoises x at lambda and counts first-difference entries whose
// absolute value exceeds jumpThreshold, clipped by len(x).
func jumps(x []float64, lambda float64) float64 {
	y := tv1d.Denoise(x, lambda)
	n := float64(len(x))

	var count float64
	for i := 1; i < len(y); i++ {
		if math.Abs(y[i]-y[i-1]) > jumpThreshold {
			count++
		}
	}
	if count > n {
		return n
	}

	return count
}

func slope(n1, n2, l1, l2 float64) float64 {
	return math.Abs(n2-n1) / (l2 - l1)
}

func steepestDescentSearch(x []float64, lambdaMax float64, opts Options) float64 {
	n := float64(len(x))

	fPrev := 1.0
	nPrev := jumps(x, fPrev*lambdaMax)
	f := fPrev / 2.0
	nCur := jumps(x, f*lambdaMax)

	startSlope := slope(n, nPrev, 0.0, 1.0)

	for i := 0; i < opts.MaxIterations; i++ {
		s := slope(nCur, nPrev, f, fPrev)
		if s > startSlope {
			break
		}
		fPrev = f
		nPrev = nCur
		f = fPrev / opts.Rho
		nCur = jumps(x, f*lambdaMax)
	}

	return f * lambdaMax
}

func bisectionSearch(x []float64, lambdaMin, lambdaMax, nMin, nMax float64, remainingIters int) float64 {
	pivot := (lambdaMin + lambdaMax) / 2
	if remainingIters == 0 {
		return pivot
	}

	if nMin < 0 {
		nMin = jumps(x, lambdaMin)
	}
	if nMax < 0 {
		nMax = jumps(x, lambdaMax)
	}
	nPivot := jumps(x, pivot)

	s1 := slope(nMin, nPivot, lambdaMin, pivot)
	s2 := slope(nPivot, nMax, pivot, lambdaMax)

	if s1 > s2 {
		return bisectionSearch(x, lambdaMin, pivot, nMin, nPivot, remainingIters-1)
	}

	return bisectionSearch(x, pivot, lambdaMax, nPivot, nMax, remainingIters-1)
}
