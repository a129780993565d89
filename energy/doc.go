// Package energy builds binary submodular energy graphs for a single
// alpha-expansion move and solves them for the minimum s-t cut via the
// Boykov–Kolmogorov augmenting-path algorithm.
//
// A Graph holds one node per active site plus two implicit terminals (the
// source and the sink); edges live in a flat arena addressed by integer
// handle, each paired with its reverse edge, so the whole structure can be
// recycled between moves without reallocation.
//
// AddTerm1 encodes a unary cost (keep the current label vs switch to the
// trial label) as a terminal capacity. AddTerm2 encodes a pairwise cost
// between chain-adjacent sites via the standard Kolmogorov–Zabih
// decomposition, healing non-submodular terms according to Options.
package energy
