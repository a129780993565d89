// Package lambdaselect chooses a total-variation regularisation weight for
// tv1d.Denoise.
//
// LambdaMax computes the exact closed-form upper bound beyond which the
// denoised output is constant, via the Rose recurrence for solving the
// (-1, 2, -1) tridiagonal system formed by the input's first differences.
//
// LambdaOpt probes the jump-count-vs-lambda curve and picks an operating
// point by steepest descent (the default) or by bisection.
package lambdaselect
