package flow_test

import (
	"fmt"

	"github.com/katalvlaran/tvseg/core"
	"github.com/katalvlaran/tvseg/flow"
)

////////////////////////////////////////////////////////////////////////////////
// Ford–Fulkerson Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleFordFulkerson_simple demonstrates max-flow on a single-edge network.
// Graph: s→t with capacity 5
func ExampleFordFulkerson_simple() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "t", 5)

	maxFlow, _, _ := flow.FordFulkerson(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 5
}

// ExampleFordFulkerson_medium shows Ford–Fulkerson on a two‐path network.
// Graph:
//
//	s→a(3), a→t(2)
//	s→b(2), b→t(3)
//
// Expected flow: s→a→t limited by a→t=2, plus s→b→t limited by s→b=2 ⇒ 4
func ExampleFordFulkerson_medium() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 3)
	_, _ = g.AddEdge("a", "t", 2)
	_, _ = g.AddEdge("s", "b", 2)
	_, _ = g.AddEdge("b", "t", 3)

	maxFlow, _, _ := flow.FordFulkerson(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 4
}

////////////////////////////////////////////////////////////////////////////////
// Dinic Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleDinic_simple demonstrates Dinic on a single-edge network.
// Graph: s→t with capacity 7
func ExampleDinic_simple() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "t", 7)

	maxFlow, _, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 7
}

// ExampleDinic_medium demonstrates Dinic on a network with two augmenting paths.
// Graph:
//
//	s→a(5), a→t(4)
//	s→b(3), b→t(6)
//
// Expected max-flow = min(5,4) + min(3,6) = 4 + 3 = 7
func ExampleDinic_medium() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 5)
	_, _ = g.AddEdge("a", "t", 4)
	_, _ = g.AddEdge("s", "b", 3)
	_, _ = g.AddEdge("b", "t", 6)

	maxFlow, _, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 7
}
