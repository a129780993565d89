// Package labelengine drives alpha-expansion move-making over a chain of
// sites, using package energy to solve each move's binary sub-problem and
// package sites to track the current labeling.
//
// A caller supplies CostTerms (data, smoothness, and optional label-prior
// cost callables) and Weights (their non-negative multipliers); Engine
// quantizes the weighted costs to integer energy and drives either a
// fixed-iteration sweep or a backtracking schedule of alpha-expansion
// moves to convergence.
package labelengine
