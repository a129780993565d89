package flow_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/tvseg/core"
	"github.com/katalvlaran/tvseg/flow"
)

func BenchmarkDinicLarge(b *testing.B) {
	// Build a random directed, weighted graph with V=1000, ~E=10000
	const V = 1000
	rng := rand.New(rand.NewSource(1))

	// 1) Create vertices
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < V; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}

	// 2) Add random edges with p≈0.02 → ~10000 edges
	for u := 0; u < V; u++ {
		for v := u + 1; v < V; v++ {
			if rng.Float64() < 0.02 {
				w := int64(rng.Intn(10) + 1)
				_, _ = g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), w)
			}
		}
	}

	src, dst := "0", strconv.Itoa(V-1)
	opts := flow.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = flow.Dinic(g, src, dst, opts)
	}
}
