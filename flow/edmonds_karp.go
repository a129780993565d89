package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tvseg/core"
)

// EdmondsKarp computes the maximum flow from `source` to `sink` in the
// directed, weighted graph `g` using the Edmonds–Karp method (BFS for
// shortest augmenting paths, measured in edge count).
//
// It returns:
//   - maxFlow       : the total flow value (float64)
//   - residualGraph : a *core.Graph of remaining capacities, preserving
//     all original graph options (directed, weighted,
//     multi-edges, loops, mixed)
//   - err           : ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     or context cancellation error
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that `source` and `sink` exist in `g` (O(1)).
//  3. Build initial capacity map via buildCapMap (O(V + E*log d_max)).
//  4. Repeat until no more augmenting paths:
//     a. Check for cancellation (O(1)).
//     b. BFS from source to find the shortest path to sink (O(V + E)).
//     c. If sink unreachable, break.
//     d. Augment along the path by its bottleneck capacity (O(path length)).
//  5. Construct final residual graph via buildCoreResidualFromCapMap (O(V + E_res)).
//
// Complexity:
//
//	Time:   O(V * E^2).
//	Memory: O(V + E) for capMap and BFS bookkeeping.
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residualGraph *core.Graph, err error) {
	// 1) Normalize options (set default Ctx and Epsilon if needed)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate presence of source and sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 3) Build initial capacity map
	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	// 4) Main loop: BFS shortest augmenting path + augment
	for {
		// 4a) Cancellation check before each BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 4b) BFS from source, tracking parents and bottleneck capacity
		parent := make(map[string]string, len(capMap))
		bottleneck := map[string]float64{source: math.Inf(1)}
		visited := map[string]bool{source: true}

		queue := []string{source}
		found := false
		for i := 0; i < len(queue) && !found; i++ {
			u := queue[i]
			for v, capUV := range capMap[u] {
				if capUV <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parent[v] = u
				if capUV < bottleneck[u] {
					bottleneck[v] = capUV
				} else {
					bottleneck[v] = bottleneck[u]
				}
				if v == sink {
					found = true
					break
				}
				queue = append(queue, v)
			}
		}

		// 4c) If sink unreachable, we're done
		if !found {
			break
		}

		// 4d) Augment along the discovered path
		delta := bottleneck[sink]
		if opts.Verbose {
			path := []string{sink}
			for cur := sink; cur != source; cur = parent[cur] {
				path = append([]string{parent[cur]}, path...)
			}
			fmt.Printf("EdmondsKarp: augmenting path %v with flow %g\n", path, delta)
		}
		maxFlow += delta
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			capMap[u][v] -= delta
			capMap[v][u] += delta
		}
	}

	// 5) Construct the final residual graph from capMap,
	//    inheriting all flags from the original graph.
	residualGraph, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}
