package flow

import "context"

// defaultEpsilon is the tolerance below which a capacity is treated as zero.
const defaultEpsilon = 1e-9

// DefaultOptions returns the baseline FlowOptions used by all max-flow
// algorithms when the caller has no specific requirements:
//   - Ctx: context.Background() (never cancelled)
//   - Epsilon: 1e-9
//   - Verbose: false
//   - LevelRebuildInterval: 0 (never force a rebuild)
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:                  context.Background(),
		Epsilon:              defaultEpsilon,
		Verbose:              false,
		LevelRebuildInterval: 0,
	}
}

// normalize fills in zero-value fields with their defaults so that a caller
// supplying a partially-populated FlowOptions still gets sane behavior.
func (opts *FlowOptions) normalize() {
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.Epsilon == 0 {
		opts.Epsilon = defaultEpsilon
	}
}
