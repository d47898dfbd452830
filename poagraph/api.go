package poagraph

import "github.com/poasta-go/poasta/refgraph"

var _ refgraph.Graph = (*Graph)(nil)

// AllNodes implements refgraph.Graph.
func (g *Graph) AllNodes() []refgraph.NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]refgraph.NodeID, len(g.symbols))
	for i := range out {
		out[i] = refgraph.NodeID(i)
	}
	return out
}

// NodeCount implements refgraph.Graph.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.symbols) - 2
}

// NodeCountWithStartAndEnd implements refgraph.Graph.
func (g *Graph) NodeCountWithStartAndEnd() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.symbols)
}

// EdgeCount implements refgraph.Graph.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edges)
}

// StartNode implements refgraph.Graph.
func (g *Graph) StartNode() refgraph.NodeID { return startID }

// EndNode implements refgraph.Graph.
func (g *Graph) EndNode() refgraph.NodeID { return endID }

// IsEnd implements refgraph.Graph.
func (g *Graph) IsEnd(n refgraph.NodeID) bool { return n == endID }

// Predecessors implements refgraph.Graph.
func (g *Graph) Predecessors(n refgraph.NodeID) []refgraph.NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]refgraph.NodeID, len(g.pred[n]))
	copy(out, g.pred[n])
	return out
}

// Successors implements refgraph.Graph.
func (g *Graph) Successors(n refgraph.NodeID) []refgraph.NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]refgraph.NodeID, len(g.succ[n]))
	copy(out, g.succ[n])
	return out
}

// InDegree implements refgraph.Graph.
func (g *Graph) InDegree(n refgraph.NodeID) int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.pred[n])
}

// OutDegree implements refgraph.Graph.
func (g *Graph) OutDegree(n refgraph.NodeID) int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.succ[n])
}

// IsSymbolEqual implements refgraph.Graph.
func (g *Graph) IsSymbolEqual(n refgraph.NodeID, b byte) bool {
	if n == startID || n == endID {
		return false
	}
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.symbols[n] == b
}

// GetSymbolChar implements refgraph.Graph.
func (g *Graph) GetSymbolChar(n refgraph.NodeID) byte {
	if n == startID || n == endID {
		return '-'
	}
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.symbols[n]
}

// GetNodeOrdering implements refgraph.Graph.
func (g *Graph) GetNodeOrdering() []int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]int, len(g.topoOrder))
	copy(out, g.topoOrder)
	return out
}
