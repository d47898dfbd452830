package poagraph

import (
	"sync"

	"github.com/poasta-go/poasta/refgraph"
)

// edgeKey identifies a directed edge by its endpoints.
type edgeKey struct {
	from, to refgraph.NodeID
}

// Edge is a POA graph edge: an ordered pair labeled by the ascending list
// of sequence IDs that traverse it.
type Edge struct {
	From, To refgraph.NodeID

	// SeqIDs is strictly increasing, enabling O(log n) membership tests.
	SeqIDs []uint32

	// Weight sums per-base weights contributed by every sequence crossing
	// this edge; used only by debug/emission output, never by alignment.
	Weight float64
}

// hasSeq reports whether seqID already traverses this edge.
func (e *Edge) hasSeq(seqID uint32) bool {
	i, found := searchUint32(e.SeqIDs, seqID)
	_ = i
	return found
}

// addSeq inserts seqID into the ascending SeqIDs list if not already
// present, preserving the strictly-increasing invariant.
func (e *Edge) addSeq(seqID uint32) {
	i, found := searchUint32(e.SeqIDs, seqID)
	if found {
		return
	}
	e.SeqIDs = append(e.SeqIDs, 0)
	copy(e.SeqIDs[i+1:], e.SeqIDs[i:])
	e.SeqIDs[i] = seqID
}

// searchUint32 performs a binary search over an ascending slice, returning
// the insertion index and whether seqID was found.
func searchUint32(s []uint32, v uint32) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == v:
			return mid, true
		case s[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// SequenceRecord names one absorbed query and its entry node in the graph.
type SequenceRecord struct {
	Name      string
	StartNode refgraph.NodeID
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithForbidSilentSubstitution makes AddAlignmentWithWeights return
// ErrSymbolMismatch instead of silently allocating a substitution node
// when a Match pair's query byte disagrees with the aligned node's symbol.
func WithForbidSilentSubstitution() Option {
	return func(g *Graph) { g.forbidSilentSubstitution = true }
}

// Graph is the mutable partial-order alignment graph.
//
// muNodes guards symbols/succ/pred/aligned-class storage; muEdges guards
// the edges map and sequences list, following the same split as
// core.Graph's muVert/muEdgeAdj (mutations of topology and of edge
// sequence-ID sets are independent operations that do not need to block
// each other during a read-heavy alignment phase).
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	forbidSilentSubstitution bool

	// symbols[n] is the byte carried by node n; indices 0 (START) and 1
	// (END) are unused placeholders.
	symbols []byte

	succ [][]refgraph.NodeID
	pred [][]refgraph.NodeID

	edges map[edgeKey]*Edge

	sequences []SequenceRecord

	// alignedClass[n] is the representative NodeID of n's aligned
	// equivalence class; classMembers[rep] lists the whole class.
	alignedClass  []refgraph.NodeID
	classMembers  map[refgraph.NodeID][]refgraph.NodeID

	// topoOrder[n] = topological rank, rebuilt after every mutation.
	topoOrder []int

	nextSeqID uint32
}

const (
	startID refgraph.NodeID = 0
	endID   refgraph.NodeID = 1
)

// New creates an empty Graph containing only START and END, connected by
// a single edge.
func New(opts ...Option) *Graph {
	g := &Graph{
		symbols:      make([]byte, 2),
		succ:         [][]refgraph.NodeID{{}, {}},
		pred:         [][]refgraph.NodeID{{}, {}},
		edges:        make(map[edgeKey]*Edge),
		alignedClass: []refgraph.NodeID{startID, endID},
		classMembers: map[refgraph.NodeID][]refgraph.NodeID{
			startID: {startID},
			endID:   {endID},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.succ[startID] = append(g.succ[startID], endID)
	g.pred[endID] = append(g.pred[endID], startID)
	g.edges[edgeKey{startID, endID}] = &Edge{From: startID, To: endID}
	g.recomputeTopoOrder()
	return g
}
