package astar

import (
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
	"github.com/poasta-go/poasta/visited"
)

// item is one open-set entry: a state plus its search-ordering keys.
// The heap uses lazy deletion: stale entries, superseded by a later and
// better push, are left in place and ignored when popped rather than
// removed eagerly.
type item struct {
	node     refgraph.NodeID
	offset   int
	state    visited.State
	g        score.Score
	f        score.Score
	topoRank int
}

// stateRank gives the tie-break order Match < Deletion < Insertion, with
// the two-piece gap states after their first-piece counterparts — distinct
// from visited.State's own iota ordering, which exists only to index the
// dense visited-store array.
func stateRank(s visited.State) int {
	switch s {
	case visited.Match:
		return 0
	case visited.Deletion:
		return 1
	case visited.Insertion:
		return 2
	case visited.Deletion2:
		return 3
	case visited.Insertion2:
		return 4
	default:
		return 5
	}
}

// pq is a min-heap of *item ordered by (ascending f, descending g,
// ascending topoRank, ascending stateRank): a total order, so two runs on
// identical input produce byte-identical alignments.
type pq []*item

func (q pq) Len() int { return len(q) }

func (q pq) Less(i, j int) bool {
	a, b := q[i], q[j]
	if !a.f.LessOrEqual(b.f) || !b.f.LessOrEqual(a.f) {
		return a.f.Less(b.f)
	}
	if !a.g.LessOrEqual(b.g) || !b.g.LessOrEqual(a.g) {
		return b.g.Less(a.g)
	}
	if a.topoRank != b.topoRank {
		return a.topoRank < b.topoRank
	}
	return stateRank(a.state) < stateRank(b.state)
}

func (q pq) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pq) Push(x any) { *q = append(*q, x.(*item)) }

func (q *pq) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
