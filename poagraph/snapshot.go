package poagraph

import "github.com/poasta-go/poasta/refgraph"

// Snapshot captures a Graph's full mutable state so a failed mutation can
// be rolled back, keeping mutations all-or-nothing. It is a deep
// copy: O(V+E), the same order as the topological resort every successful
// merge pays anyway, and it must be deep because a merge can splice new
// sequence IDs into pre-existing edges and new neighbors into
// pre-existing adjacency lists — truncation alone cannot undo either.
type Snapshot struct {
	symbols      []byte
	succ         [][]refgraph.NodeID
	pred         [][]refgraph.NodeID
	edges        map[edgeKey]*Edge
	alignedClass []refgraph.NodeID
	classMembers map[refgraph.NodeID][]refgraph.NodeID
	sequences    []SequenceRecord
	topoOrder    []int
	nextSeqID    uint32
}

// TakeSnapshot deep-copies the graph's mutable state.
func (g *Graph) TakeSnapshot() Snapshot {
	g.muNodes.RLock()
	g.muEdges.RLock()
	defer g.muNodes.RUnlock()
	defer g.muEdges.RUnlock()

	snap := Snapshot{
		symbols:      append([]byte(nil), g.symbols...),
		succ:         copyAdjacency(g.succ),
		pred:         copyAdjacency(g.pred),
		edges:        make(map[edgeKey]*Edge, len(g.edges)),
		alignedClass: append([]refgraph.NodeID(nil), g.alignedClass...),
		classMembers: make(map[refgraph.NodeID][]refgraph.NodeID, len(g.classMembers)),
		sequences:    append([]SequenceRecord(nil), g.sequences...),
		topoOrder:    append([]int(nil), g.topoOrder...),
		nextSeqID:    g.nextSeqID,
	}
	for key, e := range g.edges {
		snap.edges[key] = &Edge{
			From:   e.From,
			To:     e.To,
			SeqIDs: append([]uint32(nil), e.SeqIDs...),
			Weight: e.Weight,
		}
	}
	for rep, members := range g.classMembers {
		snap.classMembers[rep] = append([]refgraph.NodeID(nil), members...)
	}
	return snap
}

// Restore replaces the graph's mutable state with the snapshot, discarding
// every node, edge, sequence-ID tag, and class merge applied since.
func (g *Graph) Restore(snap Snapshot) {
	g.muNodes.Lock()
	g.muEdges.Lock()
	defer g.muNodes.Unlock()
	defer g.muEdges.Unlock()

	g.symbols = snap.symbols
	g.succ = snap.succ
	g.pred = snap.pred
	g.edges = snap.edges
	g.alignedClass = snap.alignedClass
	g.classMembers = snap.classMembers
	g.sequences = snap.sequences
	g.topoOrder = snap.topoOrder
	g.nextSeqID = snap.nextSeqID
}

func copyAdjacency(adj [][]refgraph.NodeID) [][]refgraph.NodeID {
	out := make([][]refgraph.NodeID, len(adj))
	for i, neighbors := range adj {
		out[i] = append([]refgraph.NodeID(nil), neighbors...)
	}
	return out
}

// JoinClass merges newNode into existing's aligned-equivalence class.
func (g *Graph) JoinClass(existing, newNode refgraph.NodeID) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.addToClassLocked(existing, newNode)
}

// AddSequenceRecord appends a (name, start node) record for an absorbed
// query.
func (g *Graph) AddSequenceRecord(rec SequenceRecord) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.addSequenceRecordLocked(rec)
}

// RecomputeTopoOrder re-derives the topological order after a batch of
// mutations. Exported for the merger, which performs many edge insertions
// before resorting once.
func (g *Graph) RecomputeTopoOrder() {
	g.muNodes.Lock()
	g.muEdges.Lock()
	defer g.muNodes.Unlock()
	defer g.muEdges.Unlock()
	g.recomputeTopoOrder()
}
