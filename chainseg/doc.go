// Package chainseg converts a piecewise-constant sequence into compact
// (value, run-length) pairs and back.
//
// Compress detects jumps in a denoised sequence and emits one entry per
// constant run. Expand is its inverse, reconstructing a full-length
// sequence from the compressed pairs.
package chainseg
