// Package tvseg reconstructs piecewise-constant signals from noisy
// one-dimensional sequences by framing the problem as discrete labeling
// on a chain graph, solved with alpha-expansion move-making on s-t min-cut.
//
// 🚀 What is tvseg?
//
//	A small pipeline that brings together:
//		• tv1d         — Condat's exact O(N) total-variation denoiser
//		• lambdaselect — closed-form λ_max and steepest-descent λ_opt search
//		• chainseg     — piecewise-constant sequence ↔ (value, run-length) pairs
//		• energy       — Kolmogorov–Zabih energy graphs + Boykov–Kolmogorov min-cut
//		• sites        — multi-indexed per-site label/cost/activity store
//		• labelengine  — the alpha-expansion loop (sweep & backtracking schedulers)
//		• histogram    — optional reference-distribution label-cost diagnostics
//		• mmio         — Matrix-Market array I/O for the CLI front-ends
//
// ✨ Why choose tvseg?
//
//   - Deterministic core — single-threaded, seeded RNG, no hidden state
//   - Rock-solid guarantees — narrow mutation APIs, index-coherent stores
//   - Exact inner loop — Condat's TV1D is O(N), no iterative approximation
//   - Extensible — cost terms are plain callables, schedulers are a sum type
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/         — retained general graph primitives, used as a min-cut oracle
//	flow/         — retained max-flow algorithms (Ford–Fulkerson, Edmonds–Karp, Dinic)
//	tv1d/         — the TV1D denoiser
//	lambdaselect/ — λ_max / λ_opt selection
//	chainseg/     — chain compression and expansion
//	energy/       — the binary energy graph + BK min-cut solver
//	sites/        — the per-site label store
//	labelengine/  — the alpha-expansion engine
//	histogram/    — optional reference-distribution comparisons
//	mmio/         — Matrix-Market vector/matrix I/O
//	cmd/          — denoise, lambdaopt, levelgen, graphproc CLI front-ends
//
// Quick picture of the pipeline:
//
//	x ──TV1D──► y ──compress──► (d,w) ──alpha-expansion──► labels ──expand──► output
//
// See SPEC_FULL.md for the full component design.
package tvseg
