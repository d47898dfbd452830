package poagraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

func TestNew_EmptyGraphHasStartEndEdge(t *testing.T) {
	g := poagraph.New()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 2, g.NodeCountWithStartAndEnd())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []refgraph.NodeID{g.EndNode()}, g.Successors(g.StartNode()))
}

func TestAddNodeAndConnect(t *testing.T) {
	g := poagraph.New()
	a := g.AddNode('A')
	b := g.AddNode('B')
	g.Connect(g.StartNode(), a, 0, 1)
	g.Connect(a, b, 0, 1)
	g.Connect(b, g.EndNode(), 0, 1)
	g.RecomputeTopoOrder()

	order := g.GetNodeOrdering()
	require.Len(t, order, 4)
	assert.Less(t, order[g.StartNode()], order[a])
	assert.Less(t, order[a], order[b])
	assert.Less(t, order[b], order[g.EndNode()])
}

func TestEdgeSeqIDsStayAscending(t *testing.T) {
	g := poagraph.New()
	a := g.AddNode('A')
	g.Connect(g.StartNode(), a, 3, 1)
	g.Connect(g.StartNode(), a, 1, 1)
	g.Connect(g.StartNode(), a, 2, 1)

	e, ok := g.Edge(g.StartNode(), a)
	require.True(t, ok)
	assert.Equal(t, []uint32{1, 2, 3}, e.SeqIDs)
}

func TestAlignedNodesClass(t *testing.T) {
	g := poagraph.New()
	a := g.AddNode('A')
	d := g.AddNode('D')
	g.JoinClass(a, d)

	class := g.AlignedNodes(a)
	assert.ElementsMatch(t, []refgraph.NodeID{a, d}, class)
	assert.ElementsMatch(t, []refgraph.NodeID{a, d}, g.AlignedNodes(d))
}

func TestSnapshotRestore(t *testing.T) {
	g := poagraph.New()
	snap := g.TakeSnapshot()

	a := g.AddNode('A')
	g.Connect(g.StartNode(), a, 0, 1)
	g.RecomputeTopoOrder()
	require.Equal(t, 1, g.NodeCount())

	g.Restore(snap)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}
