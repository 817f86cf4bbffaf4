package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(edges ...[2]string) *Digraph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestSCC(t *testing.T) {
	t.Run("acyclic graph has singleton components", func(t *testing.T) {
		g := chain([2]string{"a", "b"}, [2]string{"b", "c"})
		comps := g.SCC()
		require.Len(t, comps, 3)
		assert.Empty(t, g.Cycles())
	})

	t.Run("two node cycle", func(t *testing.T) {
		g := chain([2]string{"a", "b"}, [2]string{"b", "a"}, [2]string{"b", "c"})
		cycles := g.Cycles()
		require.Len(t, cycles, 1)
		assert.ElementsMatch(t, []string{"a", "b"}, cycles[0])
	})

	t.Run("self loop counts as a cycle", func(t *testing.T) {
		g := chain([2]string{"a", "a"}, [2]string{"a", "b"})
		cycles := g.Cycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []string{"a"}, cycles[0])
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		g := chain([2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"z", "x"}, [2]string{"p", "q"}, [2]string{"q", "p"})
		first := g.Cycles()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, g.Cycles())
		}
	})
}

func TestReachableAndShortestPath(t *testing.T) {
	g := chain(
		[2]string{"s", "a"},
		[2]string{"s", "b"},
		[2]string{"a", "c"},
		[2]string{"b", "c"},
		[2]string{"c", "d"},
	)
	g.AddNode("island")

	assert.Equal(t, []string{"s", "a", "b", "c", "d"}, g.Reachable("s", nil))
	assert.Nil(t, g.Reachable("missing", nil))

	// c is reported but not expanded
	assert.Equal(t, []string{"s", "a", "b", "c"}, g.Reachable("s", func(v string) bool { return v != "c" }))

	assert.Equal(t, []string{"s", "a", "c", "d"}, g.ShortestPath("s", "d"))
	assert.Equal(t, []string{"s"}, g.ShortestPath("s", "s"))
	assert.Nil(t, g.ShortestPath("s", "island"))
}

func TestSubgraphAndDegrees(t *testing.T) {
	g := chain([2]string{"a", "b"}, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegree("a"))
	assert.Equal(t, 1, g.InDegree("b"))

	sub := g.Subgraph(func(v string) bool { return v != "c" })
	assert.Equal(t, []string{"a", "b"}, sub.Nodes())
	assert.Equal(t, []string{"b", "b"}, sub.Successors("a"))
	assert.Empty(t, sub.Cycles())
}
