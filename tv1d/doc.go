// Package tv1d implements Condat's exact, single-pass algorithm for the
// one-dimensional total-variation regularised least-squares problem:
//
//	minimize_y  (1/2) * Σ_i (y_i - x_i)^2  +  lambda * Σ_i |y_{i+1} - y_i|
//
// The algorithm runs in O(N) time with O(1) auxiliary state: it scans the
// input once, tracking dual bounds (umin, umax) and value bounds (vmin,
// vmax) for the current candidate segment, and emits a finished segment
// every time a jump becomes necessary.
//
// Denoise never allocates more than the output slice; it does not mutate
// its input.
package tv1d
