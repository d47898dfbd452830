package dfa

import (
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/visited"
)

// Kind identifies which terminal event Extend returned.
type Kind uint8

const (
	// None means the stack drained fully without encountering any event;
	// no extension was possible from the start node.
	None Kind = iota

	// RefGraphEnd means a successor reached the reference graph's END
	// sentinel; Child is the (END, offset) terminus candidate. The one
	// exception is the ends-free start match that consumes a one-byte
	// query: there Child is the matched start node at offset 1, not END.
	RefGraphEnd

	// QueryEnd means the parent's offset already equals the query length;
	// the caller must open a deletion from Parent.
	QueryEnd

	// Mismatch means a successor's symbol differs from the query byte at
	// Parent's offset; the caller must branch into mismatch and
	// indel-open states from Parent.
	Mismatch
)

// Result is the outcome of one Extend call.
type Result struct {
	Kind   Kind
	Parent visited.AlignmentNode
	Child  visited.AlignmentNode
}

// frame is one level of the explicit DFS stack: the alignment-graph node
// being extended from, and its materialized successor list with a cursor.
// Materializing successors up front keeps each frame self-contained; no
// live iterator state has to be shared across stack levels.
type frame struct {
	node visited.AlignmentNode
	succ []refgraph.NodeID
	idx  int
}
