package histogram

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxPenaltyCost is returned by PenalizeTransitionConfiguration when the
// comparison against the reference distribution is undefined (NaN).
const MaxPenaltyCost = 100000.0

const referenceSampleCount = 10000

// defaultBinCount matches the reference implementation's fixed 100-bin
// jump histogram.
const defaultBinCount = 100

// binsForLabels returns the (binSize, min, max) of a jump histogram whose
// regular bins cover [0, span), where span is the distance between the
// smallest and largest label. Negative jumps fall into the below-minimum
// overflow bin, and a jump of exactly span into the above-maximum one.
func binsForLabels(labels []float64, binCount int) (binSize, lo, hi float64) {
	if len(labels) == 0 {
		return 1, 0, 1
	}

	lo, hi = labels[0], labels[0]
	for _, l := range labels[1:] {
		if l < lo {
			lo = l
		}
		if l > hi {
			hi = l
		}
	}
	span := hi - lo
	if binCount <= 0 {
		binCount = defaultBinCount
	}
	if span == 0 {
		return 1, 0, 1
	}

	return span / float64(binCount), 0, span
}

// NewJumpHistogram returns an empty histogram sized to hold jump heights
// between any two of the given labels.
func NewJumpHistogram(labels []float64, binCount int) *Histogram {
	binSize, lo, hi := binsForLabels(labels, binCount)

	return New(binSize, lo, hi)
}

// ReferenceGaussian builds a jump histogram sized for labels and fills
// it with referenceSampleCount draws from a Normal(mean, stddev)
// distribution, via gonum's distuv sampler. This is the reference
// distribution that observed jump-height distributions are compared
// against.
func ReferenceGaussian(mean, stddev float64, labels []float64, binCount int) *Histogram {
	h := NewJumpHistogram(labels, binCount)
	dist := distuv.Normal{Mu: mean, Sigma: stddev}
	for i := 0; i < referenceSampleCount; i++ {
		h.AddValue(dist.Rand())
	}

	return h
}

// JumpHistogramFromTransitions builds a jump histogram from a count of
// (fromLabel, toLabel) transitions between chain-adjacent sites, as
// produced by sites.Store.TransitionCounts. Each transition contributes
// its site count as a repeated sample of labels[to]-labels[from].
func JumpHistogramFromTransitions(transitions map[[2]int]int, labels []float64, binCount int) *Histogram {
	h := NewJumpHistogram(labels, binCount)
	for trans, count := range transitions {
		jump := labels[trans[1]] - labels[trans[0]]
		h.AddRepeatedValue(jump, count)
	}

	return h
}

// PenalizeTransitionConfiguration scores a labeling's transition
// histogram against a reference jump-height distribution: the more the
// observed jump distribution diverges from reference, the higher the
// cost. Returns MaxPenaltyCost if the comparison is undefined.
func PenalizeTransitionConfiguration(reference *Histogram, transitions map[[2]int]int, labels []float64, binCount int) float64 {
	observed := JumpHistogramFromTransitions(transitions, labels, binCount)

	cost, err := reference.Compare(observed, ChiSquared)
	if err != nil || math.IsNaN(cost) {
		return MaxPenaltyCost
	}

	return math.Abs(cost)
}
