package labelengine

import (
	"fmt"

	"github.com/katalvlaran/tvseg/energy"
)

// ErrNoCostFunction is returned by NewEngine when CostTerms.DataCost is
// nil; a data cost is the minimum required to run any expansion move.
var ErrNoCostFunction = fmt.Errorf("labelengine: %w", errNoCostFunction)
var errNoCostFunction = fmt.Errorf("CostTerms.DataCost must not be nil")

// CostTerms supplies the cost callables for one labeling problem.
// SmoothCost and LabelCost are optional; a nil callable disables that
// term regardless of its Weights multiplier.
type CostTerms struct {
	// DataCost(site, label) is the cost of assigning label to site.
	DataCost func(site, label int) float64
	// SmoothCost(i, j, labelI, labelJ) is the pairwise cost between
	// chain-adjacent sites i and j under the given label assignment.
	SmoothCost func(i, j, labelI, labelJ int) float64
	// LabelCost(i, j, labelI, labelJ) is an additional pairwise cost,
	// typically used to favor a target jump distance between labels.
	LabelCost func(i, j, labelI, labelJ int) float64
}

// Weights scales each of CostTerms' three terms. A zero weight disables
// that term even if the corresponding callable is set.
type Weights struct {
	Data, Smooth, Prior float64
}

// InitialAssignment selects how NewEngine assigns each site's starting
// label.
type InitialAssignment int

const (
	// RandomRoundRobin shuffles the label table once and assigns labels
	// to sites round-robin over the shuffled order. This is the default:
	// it avoids the all-sites-same-label degenerate starting point.
	RandomRoundRobin InitialAssignment = iota
	// MinDataCost assigns each site the label that minimizes its own
	// data cost in isolation, ignoring smoothness.
	MinDataCost
)

// Options configures a new Engine.
type Options struct {
	InitialAssignment InitialAssignment
	Seed              int64
	Verbose           bool
	// OnNonSubmodular selects the engine's reaction when a smoothness or
	// label-cost pairwise term violates the submodularity condition
	// required by the underlying BK min-cut solver. Defaults to
	// energy.Heal. Under energy.Fail, a non-submodular term aborts the
	// current expansion move and the error propagates out of Run.
	OnNonSubmodular energy.NonSubmodularPolicy
}

// DefaultOptions returns RandomRoundRobin initial assignment with a fixed
// seed for reproducibility, healing non-submodular terms rather than
// rejecting or failing on them.
func DefaultOptions() Options {
	return Options{InitialAssignment: RandomRoundRobin, Seed: 1, OnNonSubmodular: energy.Heal}
}

// TermKind identifies the total energy or one of the three cost terms, for
// EnergyHistory.
type TermKind string

const (
	TermTotal  TermKind = "total"
	TermData   TermKind = "data"
	TermSmooth TermKind = "smooth"
	TermPrior  TermKind = "prior"
)
