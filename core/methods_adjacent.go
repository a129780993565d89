// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors) and adjacency bucket helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.
// AI-HINT (file):
//   - Neighbors(id): directed edges included only if e.From==id; undirected appear once; result sorted by Edge.ID asc.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id under the graph's neighborhood policy.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency is used); self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order) for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect incident edges by scanning adjacencyList[id] buckets and mapping edge IDs to *Edge.
//   - Stage 5: Sort the result by Edge.ID ascending.
//   - Stage 6: Return the sorted slice.
//
// Behavior highlights:
//   - Deterministic ordering by Edge.ID ascending.
//   - Returns pointers to live catalog edges (read-only by convention).
//   - Safe against concurrent vertex removal due to consistent lock ordering.
//
// Inputs:
//   - id: vertex identifier.
//
// Returns:
//   - []*Edge: incident edges under the defined policy, sorted by Edge.ID asc.
//   - error: nil on success; otherwise a sentinel error.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Determinism:
//   - Deterministic order by contract: Edge.ID ascending.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges collected.
//
// Notes:
//   - This method does not copy Edge objects; treat returned *Edge as immutable.
//   - Map key order is irrelevant because final ordering is enforced by sorting.
//
// AI-Hints:
//   - Use Neighbors(id) for deterministic iteration in algorithms.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	// AI-HINT: empty id → ErrEmptyVertexID; missing vertex → ErrVertexNotFound.
	//          Deterministic order by Edge.ID asc; treat returned *Edge as read-only.
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Acquire locks in the same order as mutators (muVert -> muEdgeAdj) to avoid races
	// where a vertex disappears between validation and adjacency snapshotting.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	// Lock edges+adjacency for reading
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	// Iterate all "to" maps for this vertex

	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]

			// Defensive guard: adjacency should not reference missing edges, but keep safety tight.
			if e.IsNil() {
				continue
			}
			//if e == nil { continue }

			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			// Append pointer directly: no copying
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// ensureAdjacency guarantees that adjacencyList[from] and adjacencyList[from][to] are initialized.
//
// Implementation:
//   - Stage 1: If adjacencyList[from] is nil, allocate it.
//   - Stage 2: If adjacencyList[from][to] is nil, allocate it.
//
// Behavior highlights:
//   - O(1) amortized nested-map initialization.
//   - No-op when buckets already exist.
//
// Inputs:
//   - g: target graph.
//   - from: source vertex ID.
//   - to: destination vertex ID.
//
// Returns:
//   - None.
//
// Errors:
//   - None.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Must be called ONLY under muEdgeAdj write lock by mutating code paths.
//
// AI-Hints:
//   - Keep this helper small and allocation-minimal; it is on mutation hot paths.
func ensureAdjacency(g *Graph, from, to string) {
	// AI-HINT: Called only under muEdgeAdj write lock by mutating codepaths.
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints.
//
// Removal policy:
//   - Always remove from e.From -> e.To.
//   - If the edge is undirected and not a self-loop, also remove from e.To -> e.From.
//
// Implementation:
//   - Stage 1: Delete e.ID from the primary bucket.
//   - Stage 2: If the bucket becomes empty, prune the nested map entry.
//   - Stage 3: If undirected non-loop, repeat for the mirrored bucket.
//
// Behavior highlights:
//   - Keeps adjacency buckets compact by pruning empty nested maps.
//
// Inputs:
//   - g: target graph.
//   - e: edge to unlink (must be non-nil).
//
// Returns:
//   - None.
//
// Errors:
//   - None.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(1) average, Space O(1).
//
// Notes:
//   - Must be called ONLY under muEdgeAdj write lock.
//
// AI-Hints:
//   - Always pair catalog deletion (delete(g.edges,e.ID)) with removeAdjacency to avoid dangling adjacency references.
func removeAdjacency(g *Graph, e *Edge) {
	// AI-HINT: Removes e.ID from from→to and (if undirected non-loop) to→from; write lock required.
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
//
// Implementation:
//   - Stage 1: Scan adjacencyList top-level keys.
//   - Stage 2: For each nested toMap, remove empty edgeSet buckets.
//   - Stage 3: Remove top-level entries whose nested map becomes empty.
//
// Behavior highlights:
//   - Maintains compact adjacency structure to keep HasEdge and scans fast.
//   - Safe to call repeatedly; idempotent relative to empty-state pruning.
//
// Inputs:
//   - g: target graph.
//
// Returns:
//   - None.
//
// Errors:
//   - None.
//
// Determinism:
//   - Deterministic given a fixed map state.
//
// Complexity:
//   - Time O(V + B) where B is the number of (from,to) buckets scanned; worst-case O(V+E) in dense maps.
//   - Space O(1).
//
// Notes:
//   - Must be called ONLY under muEdgeAdj write lock.
//
// AI-Hints:
//   - Call cleanupAdjacency after bulk removals (FilterEdges, RemoveVertex) rather than after every single deletion if batching is possible.
func cleanupAdjacency(g *Graph) {
	// AI-HINT: Prunes empty buckets after removals; write lock required.
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
