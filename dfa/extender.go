package dfa

import (
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
	"github.com/poasta-go/poasta/visited"
)

// Extender runs the depth-first greedy match extension over one reference
// graph for one query, at a fixed g-score. It is generic
// over the concrete graph type so the hot successor-walking loop never
// pays for interface dispatch.
type Extender[G refgraph.Graph] struct {
	graph G
	query []byte
	score score.Score

	stack []frame

	numVisited int
	numPruned  int
}

// New creates an Extender ready to descend from start at the given
// g-score.
func New[G refgraph.Graph](graph G, query []byte, sc score.Score, start visited.AlignmentNode) *Extender[G] {
	return &Extender[G]{
		graph: graph,
		query: query,
		score: sc,
		stack: []frame{{node: start, succ: graph.Successors(start.Node)}},
	}
}

// NumVisited returns the count of match states this extension wrote.
func (e *Extender[G]) NumVisited() int { return e.numVisited }

// NumPruned returns the count of match candidates Prune discarded.
func (e *Extender[G]) NumPruned() int { return e.numPruned }

// Extend descends matching successors, recording each as a zero-cost Match
// in store, until it hits a RefGraphEnd, QueryEnd, or Mismatch boundary, or
// the stack drains with nothing left to try (Kind == None).
func (e *Extender[G]) Extend(store *visited.Store) Result {
	if len(e.stack) == 1 && len(e.query) > 0 {
		if res, ok := e.tryEndsFreeStart(store); ok {
			return res
		}
	}

	for len(e.stack) > 0 {
		parent := &e.stack[len(e.stack)-1]
		succRes := e.nextValidSuccessor(parent, store)

		switch succRes.kind {
		case successorRefGraphEnd:
			return Result{Kind: RefGraphEnd, Parent: parent.node, Child: succRes.child}
		case successorQueryEnd:
			return Result{
				Kind:   QueryEnd,
				Parent: parent.node,
				Child:  visited.AlignmentNode{Node: succRes.childRefNode, Offset: parent.node.Offset},
			}
		case successorMatch:
			if store.Prune(e.score, succRes.child.Node, succRes.child.Offset, visited.Match) {
				e.numPruned++
				continue
			}
			store.DfaMatch(e.score, parent.node.Node, parent.node.Offset, succRes.child.Node, succRes.child.Offset)
			e.numVisited++
			e.stack = append(e.stack, frame{
				node: succRes.child,
				succ: e.graph.Successors(succRes.child.Node),
			})
		case successorMismatch:
			return Result{Kind: Mismatch, Parent: parent.node, Child: succRes.child}
		case successorExhausted:
			e.stack = e.stack[:len(e.stack)-1]
		}
	}

	return Result{Kind: None}
}

// tryEndsFreeStart handles the ends-free start edge case: at the stack's
// initial level with offset 0 and a non-empty query, attempt one zero-cost
// match on the start node itself before falling into the regular
// successor walk.
func (e *Extender[G]) tryEndsFreeStart(store *visited.Store) (Result, bool) {
	start := e.stack[0].node
	if start.Offset != 0 {
		return Result{}, false
	}
	if !e.graph.IsSymbolEqual(start.Node, e.query[0]) {
		return Result{}, false
	}

	matchNode := visited.AlignmentNode{Node: start.Node, Offset: 1}
	if !store.UpdateScoreIfLower(matchNode.Node, matchNode.Offset, visited.Match, start.Node, start.Offset, visited.Match, e.score) {
		return Result{}, false
	}

	e.stack[0] = frame{node: matchNode, succ: e.graph.Successors(matchNode.Node)}
	store.DfaMatch(e.score, start.Node, start.Offset, matchNode.Node, matchNode.Offset)
	e.numVisited++

	if matchNode.Offset == len(e.query) {
		return Result{Kind: RefGraphEnd, Parent: start, Child: matchNode}, true
	}
	return Result{}, false
}

type successorKind uint8

const (
	successorExhausted successorKind = iota
	successorRefGraphEnd
	successorQueryEnd
	successorMatch
	successorMismatch
)

type successorResult struct {
	kind         successorKind
	child        visited.AlignmentNode
	childRefNode refgraph.NodeID
}

// nextValidSuccessor advances parent's successor cursor until it finds a
// child that produces a definite event: END reached, query exhausted, a
// matching symbol (recorded and returned), or a mismatching symbol.
// Successors whose update-score-if-lower write loses to an already-better
// score are skipped silently.
func (e *Extender[G]) nextValidSuccessor(parent *frame, store *visited.Store) successorResult {
	for parent.idx < len(parent.succ) {
		child := parent.succ[parent.idx]
		parent.idx++

		if child == e.graph.EndNode() {
			term := visited.AlignmentNode{Node: child, Offset: parent.node.Offset}
			store.UpdateScoreIfLower(term.Node, term.Offset, visited.Match, parent.node.Node, parent.node.Offset, visited.Match, e.score)
			return successorResult{kind: successorRefGraphEnd, child: term}
		}

		if parent.node.Offset >= len(e.query) {
			return successorResult{kind: successorQueryEnd, childRefNode: child}
		}

		childOffset := parent.node.Offset + 1
		if e.graph.IsSymbolEqual(child, e.query[childOffset-1]) {
			childNode := visited.AlignmentNode{Node: child, Offset: childOffset}
			if store.UpdateScoreIfLower(childNode.Node, childOffset, visited.Match, parent.node.Node, parent.node.Offset, visited.Match, e.score) {
				return successorResult{kind: successorMatch, child: childNode}
			}
			continue
		}

		childNode := visited.AlignmentNode{Node: child, Offset: childOffset}
		return successorResult{kind: successorMismatch, child: childNode}
	}

	return successorResult{kind: successorExhausted}
}
