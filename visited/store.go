package visited

import (
	"github.com/poasta-go/poasta/bubble"
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
)

const numStates = NumStates

// cell holds one (node, offset, state) slot's best known score and parent,
// plus the closed-set marker MarkReached sets when the state is popped.
type cell struct {
	score   score.Score
	parent  parentPtr
	reached bool
}

// Store is the A* visited/closed bookkeeping for a single alignment run. It
// is owned exclusively by one astar driver invocation and is not safe for
// concurrent use.
type Store struct {
	numNodes int
	length   int // query length L; offsets range over [0, L]

	cells []cell // dense [node][offset][state], row-major

	bubbles *bubble.Index

	// gapPieces is how many gap pieces the scoring model drives through
	// this store; with one piece the *2 states are dead and Prune must
	// not demand dominance over them.
	gapPieces int

	numVisited int
	numPruned  int
}

// New allocates a Store sized for a reference graph with numNodes nodes
// (including START/END) and a query of the given length.
func New(numNodes, queryLength int, bubbles *bubble.Index) *Store {
	s := &Store{
		numNodes:  numNodes,
		length:    queryLength,
		cells:     make([]cell, numNodes*(queryLength+1)*numStates),
		bubbles:   bubbles,
		gapPieces: 2,
	}
	for i := range s.cells {
		s.cells[i].score = score.Unvisited
	}
	return s
}

// SetGapPieces records how many gap pieces the scoring model uses (1 or
// 2); New defaults to the conservative 2.
func (s *Store) SetGapPieces(n int) { s.gapPieces = n }

func (s *Store) index(n refgraph.NodeID, offset int, state State) int {
	return (int(n)*(s.length+1)+offset)*numStates + int(state)
}

// GetScore returns the best known score at (node, offset, state), or
// score.Unvisited if never touched.
func (s *Store) GetScore(n refgraph.NodeID, offset int, state State) score.Score {
	return s.cells[s.index(n, offset, state)].score
}

// SetScore unconditionally writes a score, clearing any parent pointer.
func (s *Store) SetScore(n refgraph.NodeID, offset int, state State, sc score.Score) {
	s.cells[s.index(n, offset, state)] = cell{score: sc}
}

// UpdateScoreIfLower writes newScore and records parent as (parentNode,
// parentOffset, parentState) iff newScore is strictly better than the score
// currently stored at (child, childOffset, childState). Returns whether the
// write occurred.
func (s *Store) UpdateScoreIfLower(
	child refgraph.NodeID, childOffset int, childState State,
	parentNode refgraph.NodeID, parentOffset int, parentState State,
	newScore score.Score,
) bool {
	idx := s.index(child, childOffset, childState)
	if !newScore.Less(s.cells[idx].score) {
		return false
	}
	s.cells[idx] = cell{
		score: newScore,
		parent: parentPtr{
			node:   parentNode,
			offset: parentOffset,
			state:  parentState,
			valid:  true,
		},
	}
	return true
}

// DfaMatch is UpdateScoreIfLower specialized for the DFA's zero-cost match
// extension: the caller guarantees the child's score equals the parent's
// unchanged g-score.
func (s *Store) DfaMatch(g score.Score, parentNode refgraph.NodeID, parentOffset int, childNode refgraph.NodeID, childOffset int) bool {
	return s.UpdateScoreIfLower(childNode, childOffset, Match, parentNode, parentOffset, Match, g)
}

// MarkReached records that (node, offset, state) was popped off the open
// set at g-score sc — the closed-set marker.
func (s *Store) MarkReached(sc score.Score, n refgraph.NodeID, offset int, state State) {
	s.numVisited++
	s.cells[s.index(n, offset, state)].reached = true
}

// Reached reports whether MarkReached was called for (node, offset, state);
// the driver uses it to discard stale open-set entries.
func (s *Store) Reached(n refgraph.NodeID, offset int, state State) bool {
	return s.cells[s.index(n, offset, state)].reached
}

// Prune reports whether a candidate (node, offset, state) at g-score sc
// can be discarded without affecting optimality. Every completion of the
// candidate must leave its enclosing superbubble through the bubble's
// exit, consuming the exit node in a Match- or Deletion-family state at
// some offset >= the candidate's; transition costs are non-negative, so
// the completion arrives there at a score >= sc. If every one of those
// exit states is already recorded at a score <= sc, the recorded paths
// dominate anything the candidate could contribute.
func (s *Store) Prune(sc score.Score, n refgraph.NodeID, offset int, state State) bool {
	if s.bubbles == nil {
		return false
	}
	for _, entry := range s.bubbles.GetNodeBubbles(n) {
		if s.exitDominated(entry.Exit, offset, sc) {
			s.numPruned++
			return true
		}
	}
	return false
}

// exitDominated reports whether every consuming state of exit at offsets
// [offset, L] already holds a score no worse than sc.
func (s *Store) exitDominated(exit refgraph.NodeID, offset int, sc score.Score) bool {
	states := []State{Match, Deletion}
	if s.gapPieces > 1 {
		states = append(states, Deletion2)
	}
	for o := offset; o <= s.length; o++ {
		for _, st := range states {
			if !s.GetScore(exit, o, st).LessOrEqual(sc) {
				return false
			}
		}
	}
	return true
}

// NumVisited returns the count of MarkReached calls.
func (s *Store) NumVisited() int { return s.numVisited }

// NumPruned returns the count of candidates Prune discarded.
func (s *Store) NumPruned() int { return s.numPruned }
