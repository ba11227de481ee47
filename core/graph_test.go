package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/HamPoole/31251-data-structures-algorithms/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	// Loop-free by default; individual tests may override
	s.g = core.NewGraph[string]()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	// Add and check
	s.g.AddVertex("A")
	require.True(s.g.HasVertex("A"), "graph should have A after AddVertex")

	// Idempotence: adding again does not change count
	s.g.AddVertex("A")
	require.Equal(1, s.g.VertexCount(), "adding duplicate vertex should not increase count")
}

func (s *GraphSuite) TestAddEdgeRequiresEndpoints() {
	require := require.New(s.T())
	s.g.AddVertex("A")

	// Missing endpoint on either side is rejected
	require.ErrorIs(s.g.AddEdge("A", "B", 1), core.ErrVertexNotFound, "B does not exist yet")
	require.ErrorIs(s.g.AddEdge("B", "A", 1), core.ErrVertexNotFound, "B does not exist yet")

	s.g.AddVertex("B")
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.True(s.g.HasEdge("A", "B"), "expected edge A—B")
}

func (s *GraphSuite) TestAddEdgeOverwritesWeight() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	s.g.AddVertex("B")

	require.NoError(s.g.AddEdge("A", "B", 5))
	require.NoError(s.g.AddEdge("B", "A", 7), "re-adding the pair updates in place")

	require.Equal(1, s.g.EdgeCount(), "simple graph keeps one edge per pair")
	w, err := s.g.EdgeWeight("A", "B")
	require.NoError(err)
	require.Equal(int64(7), w, "last written weight wins")
}

func (s *GraphSuite) TestLoopPolicy() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	require.ErrorIs(s.g.AddEdge("A", "A", 3), core.ErrLoopNotAllowed, "loops are off by default")
	require.False(s.g.Looped())

	lg := core.NewGraph[string](core.WithLoops())
	lg.AddVertex("A")
	require.True(lg.Looped())
	require.NoError(lg.AddEdge("A", "A", 3))
	require.True(lg.HasEdge("A", "A"))
	require.Equal(1, lg.EdgeCount(), "a self-loop counts once")

	w, err := lg.EdgeWeight("A", "A")
	require.NoError(err)
	require.Equal(int64(3), w)
}

func (s *GraphSuite) TestHasEdgeSymmetry() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	s.g.AddVertex("B")
	require.NoError(s.g.AddEdge("A", "B", 2))

	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "adjacency must be symmetric")

	wAB, err := s.g.EdgeWeight("A", "B")
	require.NoError(err)
	wBA, err := s.g.EdgeWeight("B", "A")
	require.NoError(err)
	require.Equal(wAB, wBA, "weight must be equal in both directions")
}

func (s *GraphSuite) TestEdgeWeightMissing() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	s.g.AddVertex("B")

	_, err := s.g.EdgeWeight("A", "B")
	require.ErrorIs(err, core.ErrEdgeNotFound, "non-adjacent pair has no weight")
	_, err = s.g.EdgeWeight("A", "Z")
	require.ErrorIs(err, core.ErrEdgeNotFound, "unknown endpoint has no weight")
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g.AddVertex("A")
	s.g.AddVertex("B")
	require.NoError(s.g.AddEdge("A", "B", 1))

	require.NoError(s.g.RemoveEdge("B", "A"), "either anchoring works")
	require.False(s.g.HasEdge("A", "B"))
	require.Equal(0, s.g.EdgeCount())

	require.ErrorIs(s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound, "edge already gone")
}

func (s *GraphSuite) TestRemoveVertexCascades() {
	require := require.New(s.T())
	for _, v := range []string{"A", "B", "C"} {
		s.g.AddVertex(v)
	}
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddEdge("B", "C", 2))
	require.NoError(s.g.AddEdge("A", "C", 3))

	s.g.RemoveVertex("B")
	require.False(s.g.HasVertex("B"), "B should be removed")
	require.False(s.g.HasEdge("A", "B"), "incident edge A—B should be removed")
	require.False(s.g.HasEdge("C", "B"), "mirror edge C—B should be removed")
	require.True(s.g.HasEdge("A", "C"), "unrelated edge survives")
	require.Equal(2, s.g.VertexCount())
	require.Equal(1, s.g.EdgeCount())

	// Removing an absent vertex is a no-op
	s.g.RemoveVertex("B")
	require.Equal(2, s.g.VertexCount())
}

func (s *GraphSuite) TestRemoveVertexWithLoop() {
	require := require.New(s.T())
	lg := core.NewGraph[string](core.WithLoops())
	lg.AddVertex("A")
	lg.AddVertex("B")
	require.NoError(lg.AddEdge("A", "A", 1))
	require.NoError(lg.AddEdge("A", "B", 2))

	lg.RemoveVertex("A")
	require.Equal(0, lg.EdgeCount(), "loop and incident edge both removed")
	require.True(lg.HasVertex("B"))
}

func (s *GraphSuite) TestVerticesSorted() {
	require := require.New(s.T())
	for _, v := range []string{"D", "B", "A", "C"} {
		s.g.AddVertex(v)
	}
	require.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices(), "native enumeration order is ascending")
}

func (s *GraphSuite) TestNeighborsSortedViews() {
	require := require.New(s.T())
	for _, v := range []string{"B", "D", "A", "C"} {
		s.g.AddVertex(v)
	}
	require.NoError(s.g.AddEdge("B", "D", 4))
	require.NoError(s.g.AddEdge("B", "A", 1))
	require.NoError(s.g.AddEdge("B", "C", 3))

	nbs, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Equal([]core.Edge[string]{
		{From: "B", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 3},
		{From: "B", To: "D", Weight: 4},
	}, nbs, "views anchored at B, sorted by opposite endpoint")

	ids, err := s.g.NeighborIDs("B")
	require.NoError(err)
	require.Equal([]string{"A", "C", "D"}, ids)

	_, err = s.g.Neighbors("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.NeighborIDs("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestEdgesCanonical() {
	require := require.New(s.T())
	lg := core.NewGraph[string](core.WithLoops())
	for _, v := range []string{"A", "B", "C"} {
		lg.AddVertex(v)
	}
	require.NoError(lg.AddEdge("C", "A", 3))
	require.NoError(lg.AddEdge("B", "B", 9))
	require.NoError(lg.AddEdge("A", "B", 1))

	require.Equal([]core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 3},
		{From: "B", To: "B", Weight: 9},
	}, lg.Edges(), "each edge once, anchored at the smaller endpoint, sorted")
}

func (s *GraphSuite) TestClearPreservesFlags() {
	require := require.New(s.T())
	lg := core.NewGraph[string](core.WithLoops())
	lg.AddVertex("A")
	require.NoError(lg.AddEdge("A", "A", 1))

	lg.Clear()
	require.Equal(0, lg.VertexCount())
	require.Equal(0, lg.EdgeCount())
	require.True(lg.Looped(), "Clear keeps configuration")

	lg.AddVertex("A")
	require.NoError(lg.AddEdge("A", "A", 1), "loops still permitted after Clear")
}

func (s *GraphSuite) TestIntegerVertices() {
	require := require.New(s.T())
	g := core.NewGraph[int]()
	for _, v := range []int{10, 2, 33, 1} {
		g.AddVertex(v)
	}
	require.NoError(g.AddEdge(10, 2, 7))

	require.Equal([]int{1, 2, 10, 33}, g.Vertices(), "numeric order, not lexicographic")
	require.True(g.HasEdge(2, 10))
	w, err := g.EdgeWeight(2, 10)
	require.NoError(err)
	require.Equal(int64(7), w)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
