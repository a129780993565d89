package energy

import "fmt"

// ErrNonSubmodular is returned by AddTerm2 when a pairwise term violates
// the submodularity condition B+C >= 0 and Options.OnNonSubmodular is
// Fail.
var ErrNonSubmodular = fmt.Errorf("energy: %w", errNonSubmodular)
var errNonSubmodular = fmt.Errorf("pairwise term is not submodular")

// Color identifies which search tree, if any, owns a node once Minimize
// has run.
type Color int

const (
	// Free means the node was not reached by either search tree; it is
	// assigned to whichever side of the cut its terminal capacity favors,
	// defaulting to the source side on a tie.
	Free Color = iota
	// Source means the node belongs to the source-side search tree: it
	// keeps its current label.
	Source
	// Sink means the node belongs to the sink-side search tree: it takes
	// the trial label.
	Sink
)

func (c Color) String() string {
	switch c {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return "free"
	}
}

// NonSubmodularPolicy selects how AddTerm2 reacts to a pairwise term that
// violates submodularity.
type NonSubmodularPolicy int

const (
	// Heal adjusts the term's four corner costs by round-robin increments
	// until it is submodular, at a bounded increase in total energy.
	Heal NonSubmodularPolicy = iota
	// Reject drops the pairwise edge of the offending term, keeping only
	// the unary contributions already folded into the terminal capacities.
	Reject
	// Fail returns ErrNonSubmodular without applying any part of the term.
	Fail
)

// Options configures a Graph's construction behavior.
type Options struct {
	// OnNonSubmodular selects the reaction to a non-submodular pairwise
	// term. Defaults to Heal.
	OnNonSubmodular NonSubmodularPolicy
}

// DefaultOptions returns the default construction options: heal
// non-submodular pairwise terms.
func DefaultOptions() Options {
	return Options{OnNonSubmodular: Heal}
}
