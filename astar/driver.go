package astar

import (
	"container/heap"
	"fmt"

	"github.com/poasta-go/poasta/bubble"
	"github.com/poasta-go/poasta/dfa"
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
	"github.com/poasta-go/poasta/visited"
)

// BudgetError carries the search counters at the moment the
// MaxVisitedStates budget ran out. errors.Is(err, ErrBudgetExhausted)
// matches it.
type BudgetError struct {
	NumVisited int
	NumPruned  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("astar: max visited states budget exhausted after %d states (%d pruned)", e.NumVisited, e.NumPruned)
}

func (e *BudgetError) Is(target error) bool { return target == ErrBudgetExhausted }

// driver holds the per-run search state. It is built fresh for every
// Align call and discarded with it, like the visited store it owns.
type driver[G refgraph.Graph] struct {
	graph   G
	query   []byte
	model   score.Model
	bubbles *bubble.Index
	opts    Options

	store *visited.Store
	open  pq
	order []int

	pieces  []score.GapPiece
	minOpen uint64
	minExt  uint64

	dfaVisited int
}

// Align runs one A* search of query against g under the given scoring
// model, returning the minimum-cost alignment trace. The
// bubble index must have been built for the exact graph snapshot g
// presents; pass the result of bubble.Build(g).
//
// Align is generic over the concrete graph type so the expansion loop and
// the DFA descent are monomorphized, keeping interface dispatch out of the
// hot path.
func Align[G refgraph.Graph](g G, query []byte, model score.Model, bubbles *bubble.Index, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &driver[G]{
		graph:   g,
		query:   query,
		model:   model,
		bubbles: bubbles,
		opts:    o,
		store:   visited.New(g.NodeCountWithStartAndEnd(), len(query), bubbles),
		order:   g.GetNodeOrdering(),
		pieces:  model.GapPieces(),
	}
	d.minOpen, d.minExt = gapMinima(d.pieces)
	d.store.SetGapPieces(len(d.pieces))

	d.seed()
	return d.run()
}

func gapMinima(pieces []score.GapPiece) (minOpen, minExt uint64) {
	minOpen, minExt = pieces[0].Open, pieces[0].Extend
	for _, p := range pieces[1:] {
		if p.Open < minOpen {
			minOpen = p.Open
		}
		if p.Extend < minExt {
			minExt = p.Extend
		}
	}
	return minOpen, minExt
}

// seed installs the start states: (START, 0, Match) always, plus every
// non-sentinel node at offset 0 when ends-free start is enabled.
func (d *driver[G]) seed() {
	start := d.graph.StartNode()
	d.store.SetScore(start, 0, visited.Match, score.Zero)
	d.push(start, 0, visited.Match, score.Zero)

	if !d.opts.EndsFree {
		return
	}
	end := d.graph.EndNode()
	for _, n := range d.graph.AllNodes() {
		if n == start || n == end {
			continue
		}
		d.store.SetScore(n, 0, visited.Match, score.Zero)
		d.push(n, 0, visited.Match, score.Zero)
	}
}

func (d *driver[G]) run() (*Result, error) {
	end := d.graph.EndNode()
	L := len(d.query)

	for d.open.Len() > 0 {
		it := heap.Pop(&d.open).(*item)

		// Lazy-deletion open set: drop entries superseded by a better
		// write, and entries for states already expanded.
		if it.g != d.store.GetScore(it.node, it.offset, it.state) {
			continue
		}
		if d.store.Reached(it.node, it.offset, it.state) {
			continue
		}

		if d.opts.MaxVisitedStates > 0 && d.numVisited() >= d.opts.MaxVisitedStates {
			return nil, &BudgetError{NumVisited: d.numVisited(), NumPruned: d.store.NumPruned()}
		}
		d.store.MarkReached(it.g, it.node, it.offset, it.state)

		if it.offset == L && (it.node == end || d.opts.EndsFree) {
			return d.finish(it)
		}

		switch {
		case it.state == visited.Match:
			d.expandMatch(it)
		case it.state.IsInsertion():
			d.expandInsertion(it)
		case it.state.IsDeletion():
			d.expandDeletion(it)
		}
	}

	return nil, ErrNoAlignment
}

func (d *driver[G]) numVisited() int { return d.store.NumVisited() + d.dfaVisited }

func (d *driver[G]) finish(it *item) (*Result, error) {
	steps, err := d.store.Backtrace(d.graph, it.node, it.offset, it.state)
	if err != nil {
		return nil, err
	}
	g, _ := it.g.Value()
	return &Result{
		Steps:      steps,
		FinalScore: g,
		NumVisited: d.numVisited(),
		NumPruned:  d.store.NumPruned(),
	}, nil
}

// expandMatch delegates the zero-cost match run to the DFA and branches
// on every boundary event it reports until the descent stack drains.
func (d *driver[G]) expandMatch(it *item) {
	L := len(d.query)
	ext := dfa.New(d.graph, d.query, it.g, visited.AlignmentNode{Node: it.node, Offset: it.offset})

	for {
		res := ext.Extend(d.store)
		switch res.Kind {
		case dfa.None:
			d.dfaVisited += ext.NumVisited()
			return

		case dfa.RefGraphEnd:
			if res.Child.Offset == L {
				d.push(res.Child.Node, res.Child.Offset, visited.Match, it.g)
				continue
			}
			// Query bytes remain past the last reference node: the only
			// completion through this terminus is a trailing insertion run
			// opened at the parent.
			d.openInsertions(res.Parent, it.g)

		case dfa.Mismatch:
			mc := it.g.Add(d.model.MatchMismatch(
				d.graph.GetSymbolChar(res.Child.Node), d.query[res.Parent.Offset]))
			d.relax(res.Child.Node, res.Child.Offset, visited.Match,
				res.Parent.Node, res.Parent.Offset, visited.Match, mc)
			d.openInsertions(res.Parent, it.g)
			d.openDeletionAt(res.Child.Node, res.Parent, it.g)

		case dfa.QueryEnd:
			if d.opts.EndsFree {
				// The parent is itself a goal candidate; no trailing
				// deletion is needed when reference ends are free.
				d.push(res.Parent.Node, res.Parent.Offset, visited.Match, it.g)
				continue
			}
			d.openDeletionAt(res.Child.Node, res.Parent, it.g)
		}
	}
}

// openInsertions opens an insertion run from parent, one candidate per
// scoring-model gap piece.
func (d *driver[G]) openInsertions(parent visited.AlignmentNode, g score.Score) {
	for i, p := range d.pieces {
		d.relax(parent.Node, parent.Offset+1, visited.InsertionState(i),
			parent.Node, parent.Offset, visited.Match, g.Add(p.Open+p.Extend))
	}
}

// openDeletionAt opens a deletion run consuming exactly the given child
// node, the successor the DFA stopped at.
func (d *driver[G]) openDeletionAt(child refgraph.NodeID, parent visited.AlignmentNode, g score.Score) {
	if d.graph.IsEnd(child) {
		return
	}
	for i, p := range d.pieces {
		d.relax(child, parent.Offset, visited.DeletionState(i),
			parent.Node, parent.Offset, visited.Match, g.Add(p.Open+p.Extend))
	}
}

// expandInsertion generates the Insertion transitions: extend in place, or
// close back into Match on a successor.
func (d *driver[G]) expandInsertion(it *item) {
	L := len(d.query)
	piece := d.pieces[it.state.GapPiece()]

	if it.offset < L {
		d.relax(it.node, it.offset+1, it.state,
			it.node, it.offset, it.state, it.g.Add(piece.Extend))
		for _, s := range d.graph.Successors(it.node) {
			if d.graph.IsEnd(s) {
				continue
			}
			mc := it.g.Add(d.model.MatchMismatch(d.graph.GetSymbolChar(s), d.query[it.offset]))
			d.relax(s, it.offset+1, visited.Match, it.node, it.offset, it.state, mc)
		}
		return
	}

	// Query exhausted inside an insertion run: the only move left is the
	// free terminal hop onto END.
	d.terminalHop(it)
}

// expandDeletion generates the Deletion transitions: extend onto a
// successor, or close into Match consuming a query byte.
func (d *driver[G]) expandDeletion(it *item) {
	L := len(d.query)
	piece := d.pieces[it.state.GapPiece()]

	for _, s := range d.graph.Successors(it.node) {
		if d.graph.IsEnd(s) {
			continue
		}
		d.relax(s, it.offset, it.state,
			it.node, it.offset, it.state, it.g.Add(piece.Extend))
		if it.offset < L {
			mc := it.g.Add(d.model.MatchMismatch(d.graph.GetSymbolChar(s), d.query[it.offset]))
			d.relax(s, it.offset+1, visited.Match, it.node, it.offset, it.state, mc)
		}
	}

	if it.offset == L {
		d.terminalHop(it)
	}
}

// terminalHop moves a fully-consumed-query state onto END for free:
// closing an open gap carries no penalty beyond its last extension.
func (d *driver[G]) terminalHop(it *item) {
	end := d.graph.EndNode()
	for _, s := range d.graph.Successors(it.node) {
		if s == end {
			d.relax(end, it.offset, visited.Match, it.node, it.offset, it.state, it.g)
			return
		}
	}
}

// relax performs the update-score-if-lower + prune + push protocol for
// one generated child state.
func (d *driver[G]) relax(
	node refgraph.NodeID, offset int, state visited.State,
	parentNode refgraph.NodeID, parentOffset int, parentState visited.State,
	g score.Score,
) {
	if !d.store.UpdateScoreIfLower(node, offset, state, parentNode, parentOffset, parentState, g) {
		return
	}
	if d.store.Prune(g, node, offset, state) {
		return
	}
	d.push(node, offset, state, g)
}

func (d *driver[G]) push(node refgraph.NodeID, offset int, state visited.State, g score.Score) {
	heap.Push(&d.open, &item{
		node:     node,
		offset:   offset,
		state:    state,
		g:        g,
		f:        g.Add(d.heuristic(node, offset, state)),
		topoRank: d.order[node],
	})
}

// heuristic lower-bounds the cost of completing the alignment from
// (node, offset, state): with qRem query bytes left and every path to END
// passing through between nodesMin and nodesMax further symbols, at least
// nodesMin-qRem deletions or qRem-nodesMax insertions are unavoidable,
// priced at the cheapest gap piece. Matches are assumed free, so the bound
// never overestimates.
func (d *driver[G]) heuristic(node refgraph.NodeID, offset int, state visited.State) uint64 {
	if d.bubbles == nil {
		return 0
	}
	qRem := len(d.query) - offset

	nodesMin := d.bubbles.MinDistToEnd(node) - 1
	nodesMax := d.bubbles.MaxDistToEnd(node) - 1
	if nodesMin < 0 {
		nodesMin = 0
	}
	if nodesMax < 0 {
		nodesMax = 0
	}

	var h uint64
	if !d.opts.EndsFree && nodesMin > qRem {
		h += d.gapBound(nodesMin-qRem, state.IsDeletion())
	}
	if qRem > nodesMax {
		h += d.gapBound(qRem-nodesMax, state.IsInsertion())
	}
	return h
}

// gapBound prices k unavoidable gap steps: k extensions at the cheapest
// extend penalty, plus one open unless the matching gap state is already
// open.
func (d *driver[G]) gapBound(k int, alreadyOpen bool) uint64 {
	cost := uint64(k) * d.minExt
	if !alreadyOpen {
		cost += d.minOpen
	}
	return cost
}
