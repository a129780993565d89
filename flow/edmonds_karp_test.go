package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tvseg/core"
	"github.com/katalvlaran/tvseg/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 5)

	opts := flow.DefaultOptions()
	mf, res, err := flow.EdmondsKarp(g, "A", "B", opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "max flow should match single-edge capacity")
	require.False(s.T(), res.HasEdge("A", "B"), "forward exhausted")
	require.True(s.T(), res.HasEdge("B", "A"), "reverse edge carries flow")
}

// TestMultiPath: two disjoint routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("C", "B", 2)

	opts := flow.DefaultOptions()
	mf, _, err := flow.EdmondsKarp(g, "A", "B", opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "flow should combine both paths (3 + 2)")
}

// TestNegativeCapacity yields an error.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("X", "Y", -1)

	opts := flow.DefaultOptions()
	_, _, err := flow.EdmondsKarp(g, "X", "Y", opts)
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "negative capacity")
}

// TestSourceSinkNotFound covers missing source or sink.
func (s *EdmondsKarpSuite) TestSourceSinkNotFound() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("A")

	opts := flow.DefaultOptions()
	_, _, err1 := flow.EdmondsKarp(g, "X", "A", opts)
	require.ErrorIs(s.T(), err1, flow.ErrSourceNotFound)

	_, _, err2 := flow.EdmondsKarp(g, "A", "Z", opts)
	require.ErrorIs(s.T(), err2, flow.ErrSinkNotFound)
}

// TestMatchesDinic cross-validates EdmondsKarp against Dinic on the same graph.
func (s *EdmondsKarpSuite) TestMatchesDinic() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 2)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "T", 2)

	opts := flow.DefaultOptions()
	mfEK, _, errEK := flow.EdmondsKarp(g, "S", "T", opts)
	require.NoError(s.T(), errEK)

	mfD, _, errD := flow.Dinic(g, "S", "T", opts)
	require.NoError(s.T(), errD)

	require.Equal(s.T(), mfD, mfEK)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
