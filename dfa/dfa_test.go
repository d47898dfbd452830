package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poasta-go/poasta/dfa"
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
	"github.com/poasta-go/poasta/visited"
)

// TestExtend_MismatchAfterOneMatch runs the extender on graph "ABC" with
// query "AA": it must return Mismatch(parent={A,offset=1},
// child={B,offset=2}) after visiting exactly one match.
func TestExtend_MismatchAfterOneMatch(t *testing.T) {
	g := refgraph.LinearMock("ABC")
	store := visited.New(g.NodeCountWithStartAndEnd(), len("AA"), nil)

	start := visited.AlignmentNode{Node: g.StartNode(), Offset: 0}
	store.SetScore(start.Node, start.Offset, visited.Match, score.Zero)

	ext := dfa.New[*refgraph.Mock](g, []byte("AA"), score.Zero, start)
	res := ext.Extend(store)

	require.Equal(t, dfa.Mismatch, res.Kind)
	assert.Equal(t, 1, res.Parent.Offset)
	assert.Equal(t, 2, res.Child.Offset)
	assert.True(t, g.IsSymbolEqual(res.Parent.Node, 'A'))
	assert.True(t, g.IsSymbolEqual(res.Child.Node, 'B'))
	assert.Equal(t, 1, ext.NumVisited())
}

func TestExtend_RefGraphEndOnFullMatch(t *testing.T) {
	g := refgraph.LinearMock("AB")
	store := visited.New(g.NodeCountWithStartAndEnd(), len("AB"), nil)

	start := visited.AlignmentNode{Node: g.StartNode(), Offset: 0}
	store.SetScore(start.Node, start.Offset, visited.Match, score.Zero)

	ext := dfa.New[*refgraph.Mock](g, []byte("AB"), score.Zero, start)
	res := ext.Extend(store)

	require.Equal(t, dfa.RefGraphEnd, res.Kind)
	assert.Equal(t, g.EndNode(), res.Child.Node)
	assert.Equal(t, 2, res.Child.Offset)
	assert.Equal(t, 2, ext.NumVisited())
}

func TestExtend_QueryEndOpensDeletion(t *testing.T) {
	g := refgraph.LinearMock("ABC")
	store := visited.New(g.NodeCountWithStartAndEnd(), len("AB"), nil)

	start := visited.AlignmentNode{Node: g.StartNode(), Offset: 0}
	store.SetScore(start.Node, start.Offset, visited.Match, score.Zero)

	ext := dfa.New[*refgraph.Mock](g, []byte("AB"), score.Zero, start)
	res := ext.Extend(store)

	require.Equal(t, dfa.QueryEnd, res.Kind)
	assert.Equal(t, 2, res.Parent.Offset)
}
