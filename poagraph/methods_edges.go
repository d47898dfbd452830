package poagraph

import "github.com/poasta-go/poasta/refgraph"

// connectLocked creates an edge from->to if absent, or appends seqID to an
// existing edge's sequence-ID set. Callers must hold muNodes (for the
// adjacency slices) and muEdges (for the edges map) for writing.
func (g *Graph) connectLocked(from, to refgraph.NodeID, seqID uint32, weight float64) {
	key := edgeKey{from, to}
	e, ok := g.edges[key]
	if !ok {
		e = &Edge{From: from, To: to}
		g.edges[key] = e
		g.succ[from] = append(g.succ[from], to)
		g.pred[to] = append(g.pred[to], from)
	}
	e.addSeq(seqID)
	e.Weight += weight
}

// Connect is the exported, lock-acquiring form of connectLocked.
func (g *Graph) Connect(from, to refgraph.NodeID, seqID uint32, weight float64) {
	g.muNodes.Lock()
	g.muEdges.Lock()
	defer g.muNodes.Unlock()
	defer g.muEdges.Unlock()
	g.connectLocked(from, to, seqID, weight)
}

// Edge returns the edge from->to, if any.
func (g *Graph) Edge(from, to refgraph.NodeID) (*Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	e, ok := g.edges[edgeKey{from, to}]
	return e, ok
}

// Edges returns every edge in the graph, in unspecified order. Exporters
// that need a deterministic order (ioformats) sort by (From, To).
func (g *Graph) Edges() []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	return out
}

// NextSeqID allocates a fresh, monotonically increasing sequence ID.
func (g *Graph) NextSeqID() uint32 {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	id := g.nextSeqID
	g.nextSeqID++
	return id
}

// Sequences returns the recorded (name, start node) pairs, one per
// absorbed query.
func (g *Graph) Sequences() []SequenceRecord {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]SequenceRecord, len(g.sequences))
	copy(out, g.sequences)
	return out
}

// addSequenceRecordLocked appends a sequence record. Callers must hold
// muEdges for writing.
func (g *Graph) addSequenceRecordLocked(rec SequenceRecord) {
	g.sequences = append(g.sequences, rec)
}
