package labelengine

import (
	"fmt"

	"github.com/katalvlaran/tvseg/energy"
	"github.com/katalvlaran/tvseg/sites"
)

// Scheduler selects how Run sequences alpha-expansion moves across the
// label table.
type Scheduler interface {
	run(e *Engine) (int64, error)
}

// Sweep repeatedly attempts every label in a freshly shuffled order,
// stopping early once a full pass leaves the energy unchanged.
type Sweep struct {
	MaxIterations int
}

func (s Sweep) run(e *Engine) (int64, error) {
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}

	newEnergy := e.computeEnergy()
	for i := 0; i < maxIter; i++ {
		oldEnergy := newEnergy
		e.shuffleLabels()
		for _, alpha := range e.labels {
			if _, err := e.alphaExpansion(alpha); err != nil {
				return 0, err
			}
		}
		newEnergy = e.computeEnergy()
		if newEnergy == oldEnergy {
			break
		}
	}

	return newEnergy, nil
}

// Backtracking concentrates effort on labels that have recently reduced
// energy, shrinking the working set whenever a pass finds that fewer
// than half its labels were productive, and falling back to an earlier,
// larger working set once a pass finds nothing.
type Backtracking struct{}

func (Backtracking) run(e *Engine) (int64, error) {
	sizesQueue := []int{len(e.labels)}
	e.shuffleLabels()

	nextLabel := 0
	for len(sizesQueue) > 0 {
		startLabel := nextLabel
		cycleSize := sizesQueue[len(sizesQueue)-1]

		for nextLabel < cycleSize {
			alpha := e.labels[nextLabel]
			accepted, err := e.alphaExpansion(alpha)
			if err != nil {
				return 0, err
			}
			if accepted {
				nextLabel++
			} else {
				cycleSize--
				e.labels[nextLabel], e.labels[cycleSize] = e.labels[cycleSize], e.labels[nextLabel]
			}
		}

		switch {
		case nextLabel == startLabel:
			sizesQueue = sizesQueue[:len(sizesQueue)-1]
			if len(sizesQueue) > 0 {
				nextLabel = sizesQueue[len(sizesQueue)-1]
			}
		case cycleSize < sizesQueue[len(sizesQueue)-1]/2:
			nextLabel = 0
			sizesQueue = append(sizesQueue, cycleSize)
		default:
			nextLabel = 0
		}
	}

	return e.computeEnergy(), nil
}

// Run drives the engine to convergence using scheduler and returns the
// final total energy. It returns a non-nil error, aborting the current
// move, when a pairwise cost term violates submodularity and
// Options.OnNonSubmodular is energy.Fail.
func (e *Engine) Run(scheduler Scheduler) (int64, error) {
	return scheduler.run(e)
}

func (e *Engine) shuffleLabels() {
	e.rng.Shuffle(len(e.labels), func(i, j int) {
		e.labels[i], e.labels[j] = e.labels[j], e.labels[i]
	})
}

func (e *Engine) computeEnergy() int64 {
	var total int64
	for i := 0; i < e.n; i++ {
		s, err := e.store.Site(i)
		if err != nil {
			panic(err)
		}
		total += quantize(s.DataCost)
	}
	for i := 0; i < e.n-1; i++ {
		li, lj := e.Label(i), e.Label(i+1)
		if e.weights.Smooth != 0 && e.costs.SmoothCost != nil {
			total += quantize(e.weights.Smooth * e.costs.SmoothCost(i, i+1, li, lj))
		}
		if e.weights.Prior != 0 && e.costs.LabelCost != nil {
			total += quantize(e.weights.Prior * e.costs.LabelCost(i, i+1, li, lj))
		}
	}

	return total
}

// alphaExpansion attempts one alpha-expansion move: every site may
// either keep its current label or switch to alpha. It accepts the move
// (updating the stored labeling) iff the resulting energy strictly
// improves on the last accepted energy, and reports whether it did. It
// returns a non-nil error, aborting the move without touching the stored
// labeling, when a pairwise term is non-submodular under energy.Fail.
func (e *Engine) alphaExpansion(alpha int) (bool, error) {
	active := e.store.QueryAll()
	if len(active) == 0 {
		return false, nil
	}

	e.graph.Recycle()
	e.addDataCostEdges(alpha, active)
	if err := e.addSmoothCostEdges(alpha, active); err != nil {
		return false, err
	}
	if err := e.addLabelCostEdges(alpha, active); err != nil {
		return false, err
	}

	energyAfter := e.graph.Minimize()
	e.recordHistory(TermTotal, energyAfter)

	if energyAfter >= e.lastEnergy {
		return false, nil
	}

	e.acceptLabeling(alpha, active)
	e.lastEnergy = energyAfter

	return true, nil
}

func (e *Engine) addDataCostEdges(alpha int, active []int) {
	for _, v := range active {
		s, err := e.store.Site(v)
		if err != nil {
			panic(err)
		}
		keepCost := quantize(s.DataCost)
		switchCost := quantize(e.weightedDataCost(v, alpha))
		e.graph.AddTerm1(v, keepCost, switchCost)
	}
}

func (e *Engine) addSmoothCostEdges(alpha int, active []int) error {
	if e.weights.Smooth == 0 || e.costs.SmoothCost == nil {
		return nil
	}

	return e.addPairwiseEdges(alpha, active, func(i, j, li, lj int) float64 {
		return e.weights.Smooth * e.costs.SmoothCost(i, j, li, lj)
	})
}

func (e *Engine) addLabelCostEdges(alpha int, active []int) error {
	if e.weights.Prior == 0 || e.costs.LabelCost == nil {
		return nil
	}

	return e.addPairwiseEdges(alpha, active, func(i, j, li, lj int) float64 {
		return e.weights.Prior * e.costs.LabelCost(i, j, li, lj)
	})
}

// addPairwiseEdges adds one binary term per chain-adjacent pair of active
// sites; a chain-adjacent pair where one side is inactive instead folds
// the inactive side's fixed label into a unary term on the active side.
// It returns the first error reported by AddTerm2 (energy.ErrNonSubmodular
// under energy.Fail), leaving the current move to be discarded by the
// caller.
func (e *Engine) addPairwiseEdges(alpha int, active []int, cost func(i, j, li, lj int) float64) error {
	isActive := make(map[int]bool, len(active))
	for _, v := range active {
		isActive[v] = true
	}

	for _, v := range active {
		for _, nb := range e.chainNeighbors(v) {
			if nb < v {
				continue // visit each undirected pair once, from its lower-indexed endpoint
			}

			curV, curNb := e.Label(v), e.Label(nb)
			if isActive[nb] {
				keepKeep := quantize(cost(v, nb, curV, curNb))
				keepSwitch := quantize(cost(v, nb, curV, alpha))
				switchKeep := quantize(cost(v, nb, alpha, curNb))
				switchSwitch := quantize(cost(v, nb, alpha, alpha))
				if err := e.graph.AddTerm2(v, nb, keepKeep, keepSwitch, switchKeep, switchSwitch); err != nil {
					return fmt.Errorf("labelengine: pairwise term (%d,%d): %w", v, nb, err)
				}
			} else {
				switchCost := quantize(cost(v, nb, alpha, curNb))
				keepCost := quantize(cost(v, nb, curV, curNb))
				e.graph.AddTerm1(v, keepCost, switchCost)
			}
		}
	}

	return nil
}

func (e *Engine) chainNeighbors(v int) []int {
	var out []int
	if v > 0 {
		out = append(out, v-1)
	}
	if v < e.n-1 {
		out = append(out, v+1)
	}

	return out
}

func (e *Engine) acceptLabeling(alpha int, active []int) {
	for _, v := range active {
		if e.graph.VertexColor(v) != energy.Sink {
			continue
		}
		cost := e.weightedDataCost(v, alpha)
		_ = e.store.Modify(v, func(s *sites.Site) {
			s.Label = alpha
			s.DataCost = cost
		})
	}
}
