package labelengine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tvseg/energy"
	"github.com/katalvlaran/tvseg/sites"
)

// Engine drives alpha-expansion move-making over a chain of n sites, each
// labeled with an index into a fixed label table of size k.
type Engine struct {
	costs   CostTerms
	weights Weights
	opts    Options
	rng     *rand.Rand

	n, k int

	graph  *energy.Graph
	store  *sites.Store
	labels []int // current permutation of [0,k)

	lastEnergy int64
	history    map[TermKind][]int64
}

// NewEngine builds an engine over n chain sites and a label table of size
// k, wiring the given cost terms and weights. It performs the initial
// label assignment per opts.InitialAssignment before returning.
func NewEngine(n, k int, costs CostTerms, weights Weights, opts Options) (*Engine, error) {
	if costs.DataCost == nil {
		return nil, ErrNoCostFunction
	}

	g := energy.NewGraph(energy.Options{OnNonSubmodular: opts.OnNonSubmodular})
	store := sites.NewStore()
	labels := make([]int, k)
	for i := range labels {
		labels[i] = i
	}

	e := &Engine{
		costs:      costs,
		weights:    weights,
		opts:       opts,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		n:          n,
		k:          k,
		graph:      g,
		store:      store,
		labels:     labels,
		lastEnergy: math.MaxInt64,
		history:    make(map[TermKind][]int64),
	}

	for i := 0; i < n; i++ {
		g.AddVariable()
		store.AddVertex(i, 0)
	}

	e.assignInitialLabels()

	return e, nil
}

// quantize converts a non-negative weighted cost to the integer domain
// the energy graph operates in, matching the reference implementation's
// truncating cast.
func quantize(cost float64) int64 {
	return int64(cost)
}

func (e *Engine) assignInitialLabels() {
	switch e.opts.InitialAssignment {
	case MinDataCost:
		for i := 0; i < e.n; i++ {
			best, bestCost := 0, math.MaxFloat64
			for _, l := range e.labels {
				c := e.costs.DataCost(i, l)
				if c < bestCost {
					bestCost, best = c, l
				}
			}
			_ = e.store.Modify(i, func(s *sites.Site) {
				s.Label = best
				s.DataCost = e.weightedDataCost(i, best)
			})
		}
	default: // RandomRoundRobin
		e.rng.Shuffle(len(e.labels), func(i, j int) {
			e.labels[i], e.labels[j] = e.labels[j], e.labels[i]
		})
		for i := 0; i < e.n; i++ {
			label := e.labels[i%len(e.labels)]
			_ = e.store.Modify(i, func(s *sites.Site) {
				s.Label = label
				s.DataCost = e.weightedDataCost(i, label)
			})
		}
	}
}

func (e *Engine) weightedDataCost(site, label int) float64 {
	return e.weights.Data * e.costs.DataCost(site, label)
}

// Label returns the current label assigned to site.
func (e *Engine) Label(site int) int {
	s, err := e.store.Site(site)
	if err != nil {
		panic(fmt.Errorf("labelengine: %w", err))
	}

	return s.Label
}

// Labels returns the current label assignment for all sites, in order.
func (e *Engine) Labels() []int {
	out := make([]int, e.n)
	for i := 0; i < e.n; i++ {
		out[i] = e.Label(i)
	}

	return out
}

// Energy returns the total energy of the current labeling as of the last
// accepted move.
func (e *Engine) Energy() int64 {
	return e.lastEnergy
}

// EnergyHistory returns the recorded energy after each attempted move, in
// attempt order. Only the total (TermTotal) is recorded; the per-term kinds
// TermData, TermSmooth and TermPrior always return nil.
func (e *Engine) EnergyHistory(term TermKind) []int64 {
	return e.history[term]
}

func (e *Engine) recordHistory(term TermKind, value int64) {
	e.history[term] = append(e.history[term], value)
}
