package visited

import "github.com/poasta-go/poasta/refgraph"

// Step is one emitted alignment column, expressed in terms of the
// reference node and/or query offset it consumes. Exactly which of RefNode
// / QueryPos is present depends on the state the step was recorded in:
// Match carries both, Insertion-family states carry only QueryPos,
// Deletion-family states carry only RefNode.
type Step struct {
	RefNode  refgraph.NodeID
	HasRef   bool
	QueryPos int
	HasQuery bool
}

// Backtrace walks parent pointers from (terminalNode, terminalOffset,
// terminalState) back to the start state, emitting Steps in forward
// (start-to-terminus) order. Sentinel-node Match states —
// the START seed and the terminal hop onto END — consume neither a symbol
// nor a query byte and therefore emit no Step.
func (s *Store) Backtrace(g refgraph.Graph, terminalNode refgraph.NodeID, terminalOffset int, terminalState State) ([]Step, error) {
	if s.GetScore(terminalNode, terminalOffset, terminalState).IsUnvisited() {
		return nil, ErrNoSuchState
	}

	start, end := g.StartNode(), g.EndNode()

	var reversed []Step
	node, offset, state := terminalNode, terminalOffset, terminalState
	for {
		idx := s.index(node, offset, state)
		p := s.cells[idx].parent
		if !p.valid {
			break
		}

		step := Step{}
		emit := true
		switch {
		case state == Match:
			if node == start || node == end {
				emit = false
				break
			}
			step.RefNode, step.HasRef = node, true
			step.QueryPos, step.HasQuery = offset-1, true
		case state.IsInsertion():
			step.QueryPos, step.HasQuery = offset-1, true
		case state.IsDeletion():
			step.RefNode, step.HasRef = node, true
		}
		if emit {
			reversed = append(reversed, step)
		}

		node, offset, state = p.node, p.offset, p.state
	}

	out := make([]Step, len(reversed))
	for i, st := range reversed {
		out[len(reversed)-1-i] = st
	}
	return out, nil
}
