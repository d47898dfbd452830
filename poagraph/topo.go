package poagraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/poasta-go/poasta/refgraph"
)

// gonumNode adapts a refgraph.NodeID to gonum's graph.Node interface.
type gonumNode int64

func (n gonumNode) ID() int64 { return int64(n) }

// gonumEdge adapts a poagraph edge to gonum's graph.Edge interface; it
// carries no weight because topo.Sort only needs connectivity.
type gonumEdge struct{ f, t gonumNode }

func (e gonumEdge) From() graph.Node         { return e.f }
func (e gonumEdge) To() graph.Node           { return e.t }
func (e gonumEdge) ReversedEdge() graph.Edge { return gonumEdge{e.t, e.f} }

// topoView presents a Graph as a gonum graph.Directed, read-only, so
// topo.Sort (gonum.org/v1/gonum/graph/topo) can compute the topological
// order instead of a hand-rolled DFS.
//
// Callers must hold g.muNodes for reading for the lifetime of any gonum
// algorithm call against this view.
type topoView struct{ g *Graph }

var _ graph.Directed = topoView{}

func (v topoView) Node(id int64) graph.Node {
	n := refgraph.NodeID(id)
	if int(n) < 0 || int(n) >= len(v.g.succ) {
		return nil
	}
	return gonumNode(id)
}

func (v topoView) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(v.g.succ))
	for i := range nodes {
		nodes[i] = gonumNode(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (v topoView) From(id int64) graph.Nodes {
	n := refgraph.NodeID(id)
	succ := v.g.succ[n]
	nodes := make([]graph.Node, len(succ))
	for i, s := range succ {
		nodes[i] = gonumNode(s)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (v topoView) To(id int64) graph.Nodes {
	n := refgraph.NodeID(id)
	pred := v.g.pred[n]
	nodes := make([]graph.Node, len(pred))
	for i, p := range pred {
		nodes[i] = gonumNode(p)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (v topoView) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

func (v topoView) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := v.g.edges[edgeKey{refgraph.NodeID(uid), refgraph.NodeID(vid)}]
	return ok
}

func (v topoView) Edge(uid, vid int64) graph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return gonumEdge{gonumNode(uid), gonumNode(vid)}
}

// recomputeTopoOrder rebuilds g.topoOrder via gonum's topo.Sort. Callers
// must hold muNodes and muEdges for writing; it is always called as the
// last step of a mutation.
func (g *Graph) recomputeTopoOrder() {
	sorted, err := topo.Sort(topoView{g})
	if err != nil {
		// topo.Sort returns a topo.Unorderable error alongside a partial
		// ordering when the graph has a cycle; poagraph never introduces
		// cycles (merge only appends forward edges), so this indicates a
		// programming error upstream rather than recoverable input.
		panic(fmt.Sprintf("poagraph: topological sort failed: %v", err))
	}
	order := make([]int, len(g.succ))
	for rank, n := range sorted {
		order[n.ID()] = rank
	}
	g.topoOrder = order
}
