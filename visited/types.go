package visited

import "github.com/poasta-go/poasta/refgraph"

// State is one of the alignment-graph states a search position can
// occupy. Match, Insertion and Deletion are the three states of
// the plain affine model; Insertion2 and Deletion2 are the parallel gap
// states the two-piece (convex) model adds, so that each gap run is scored
// entirely by the penalty pair it was opened with. A single-piece model
// never touches the *2 states, and they cost nothing beyond two extra
// slots per (node, offset) cell.
type State uint8

const (
	Match State = iota
	Insertion
	Deletion
	Insertion2
	Deletion2

	// NumStates sizes the dense per-(node, offset) state axis.
	NumStates = 5
)

// InsertionState returns the Insertion-family state for gap piece i
// (0 or 1).
func InsertionState(piece int) State {
	if piece == 0 {
		return Insertion
	}
	return Insertion2
}

// DeletionState returns the Deletion-family state for gap piece i.
func DeletionState(piece int) State {
	if piece == 0 {
		return Deletion
	}
	return Deletion2
}

// IsInsertion reports whether s consumes query only.
func (s State) IsInsertion() bool { return s == Insertion || s == Insertion2 }

// IsDeletion reports whether s consumes reference only.
func (s State) IsDeletion() bool { return s == Deletion || s == Deletion2 }

// GapPiece returns which scoring-model gap piece s belongs to; Match maps
// to piece 0.
func (s State) GapPiece() int {
	if s == Insertion2 || s == Deletion2 {
		return 1
	}
	return 0
}

func (s State) String() string {
	switch s {
	case Match:
		return "Match"
	case Insertion:
		return "Insertion"
	case Deletion:
		return "Deletion"
	case Insertion2:
		return "Insertion2"
	case Deletion2:
		return "Deletion2"
	default:
		return "Unknown"
	}
}

// AlignmentNode is one point in the implicit alignment graph: a reference
// node paired with a query offset.
type AlignmentNode struct {
	Node   refgraph.NodeID
	Offset int
}

// parentPtr is a packed (parent_rank, parent_offset, parent_state)
// triple.
type parentPtr struct {
	node   refgraph.NodeID
	offset int
	state  State
	valid  bool
}
