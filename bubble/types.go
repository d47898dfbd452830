package bubble

import "github.com/poasta-go/poasta/refgraph"

// Entry is one (exit_node, min_dist_to_exit) pair a node carries because
// it is interior to, or the entrance of, some superbubble. Distance is
// the count of reference-graph edges on the shortest path from the node
// to the exit, staying inside the bubble.
type Entry struct {
	Exit          refgraph.NodeID
	MinDistToExit int
}

// Index is the precomputed per-node superbubble metadata for one
// reference-graph snapshot.
type Index struct {
	entrance map[refgraph.NodeID]bool
	exit     map[refgraph.NodeID]bool
	entries  map[refgraph.NodeID][]Entry

	// minToEnd/maxToEnd give, per node, the extreme forward edge-count
	// distances to the END sentinel over all paths. The A* heuristic
	// reads them to lower-bound the indel cost of any completion.
	minToEnd []int
	maxToEnd []int

	// endNode caches the sentinel so the distance queries can answer for
	// END itself without a lookup.
	endNode refgraph.NodeID
}

// IsEntrance reports whether n is the entrance of at least one superbubble.
func (idx *Index) IsEntrance(n refgraph.NodeID) bool { return idx.entrance[n] }

// IsExit reports whether n is the exit of at least one superbubble.
func (idx *Index) IsExit(n refgraph.NodeID) bool { return idx.exit[n] }

// GetNodeBubbles returns n's ordered (innermost first) list of enclosing
// superbubble exits with their minimum distances.
func (idx *Index) GetNodeBubbles(n refgraph.NodeID) []Entry {
	entries := idx.entries[n]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// MinDistToEnd returns the fewest reference-graph edges on any path from
// n to END.
func (idx *Index) MinDistToEnd(n refgraph.NodeID) int { return idx.minToEnd[n] }

// MaxDistToEnd returns the most reference-graph edges on any path from n
// to END.
func (idx *Index) MaxDistToEnd(n refgraph.NodeID) int { return idx.maxToEnd[n] }
