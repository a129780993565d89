// Package histogram provides a fixed-bin histogram over label jump
// heights and comparison functions (chi-squared, chi-squared-alt,
// correlation, Bhattacharyya) against a reference distribution, used as
// an optional label-cost penalty during alpha-expansion: configurations
// whose jump-height distribution looks nothing like a chosen reference
// (typically Gaussian, built via gonum.org/v1/gonum/stat/distuv) are
// penalized.
//
// This mirrors a one-dimensional histogram with an explicit "below
// minimum" and "above maximum" overflow bin on either end, so every
// sample is always countable.
package histogram
